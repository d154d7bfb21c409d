package shop

import (
	"slices"

	"github.com/idilsaglam/shopfront/internal/render"
)

// CardView pairs a catalog card with its add control state.
type CardView struct {
	render.Card
	Button ButtonState
}

// View is everything a front end needs to draw one frame.
type View struct {
	Filter   string
	CartOpen bool
	Cards    []CardView
	Lines    []render.Line
	Summary  render.Summary
}

func (s *Session) View() View {
	v := View{
		Filter:   string(s.filter),
		CartOpen: s.cartOpen,
	}
	for c := range s.renderer.Catalog(s.products, s.filter) {
		v.Cards = append(v.Cards, CardView{Card: c, Button: s.Button(c.ProductID)})
	}
	lines := s.store.Lines()
	v.Lines = slices.Collect(s.renderer.CartLines(lines))
	v.Summary = s.renderer.Summary(lines)
	return v
}
