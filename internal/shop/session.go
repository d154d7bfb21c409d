// Package shop holds the storefront's interaction state: which filter is
// active, whether the cart panel is open, and the per-product state of the
// add buttons. UI front ends drive a Session and draw its View.
package shop

import (
	"go.uber.org/zap"

	"github.com/idilsaglam/shopfront/internal/cart"
	"github.com/idilsaglam/shopfront/internal/logger"
	"github.com/idilsaglam/shopfront/internal/model"
	"github.com/idilsaglam/shopfront/internal/render"
)

// ButtonState is the micro-state of a product's add control.
type ButtonState int

const (
	ButtonIdle ButtonState = iota
	ButtonJustAdded
)

func (b ButtonState) Label() string {
	if b == ButtonJustAdded {
		return "Added!"
	}
	return "Add to Cart"
}

// Feedback identifies one "Added!" window. Only the newest token for a
// product may end that window.
type Feedback struct {
	ProductID int
	Seq       uint64
}

// Receipt is what checkout reports back to the user.
type Receipt struct {
	Items int
	Total string
}

type feedbackEntry struct {
	state ButtonState
	seq   uint64
}

type Session struct {
	store    *cart.Store
	products []model.Product
	renderer render.Renderer
	log      *logger.Logger

	filter   model.Filter
	cartOpen bool
	buttons  map[int]feedbackEntry
	seq      uint64
}

func New(store *cart.Store, products []model.Product, r render.Renderer, log *logger.Logger) *Session {
	return &Session{
		store:    store,
		products: products,
		renderer: r,
		log:      log,
		filter:   model.FilterAll,
		buttons:  map[int]feedbackEntry{},
	}
}

func (s *Session) Filter() model.Filter { return s.filter }
func (s *Session) CartOpen() bool       { return s.cartOpen }
func (s *Session) Store() *cart.Store   { return s.store }

// ToggleCart flips the cart panel and its overlay together.
func (s *Session) ToggleCart() { s.cartOpen = !s.cartOpen }

// CloseCart is the overlay click: it only ever closes.
func (s *Session) CloseCart() { s.cartOpen = false }

// SetFilter replaces the active filter; the last selection wins.
func (s *Session) SetFilter(f model.Filter) {
	if f == "" {
		f = model.FilterAll
	}
	s.filter = f
	s.log.Debug("filter selected", zap.String("filter", string(f)))
}

// Button reports the add control state for productID.
func (s *Session) Button(productID int) ButtonState {
	return s.buttons[productID].state
}

// Add adds productID to the cart unless its button is in the "Added!"
// window. ok is false when nothing was added; the Feedback token must be
// passed to ExpireFeedback once the window elapses.
func (s *Session) Add(productID int) (fb Feedback, ok bool, err error) {
	if s.Button(productID) == ButtonJustAdded {
		return Feedback{}, false, nil
	}
	added, err := s.store.Add(productID)
	if !added {
		return Feedback{}, false, err
	}
	s.seq++
	s.buttons[productID] = feedbackEntry{state: ButtonJustAdded, seq: s.seq}
	return Feedback{ProductID: productID, Seq: s.seq}, true, err
}

// ExpireFeedback ends an "Added!" window. Stale tokens are ignored.
func (s *Session) ExpireFeedback(fb Feedback) {
	e, ok := s.buttons[fb.ProductID]
	if !ok || e.seq != fb.Seq {
		return
	}
	delete(s.buttons, fb.ProductID)
}

// Remove drops a line. Removing re-renders the grid, so every add control
// returns to idle.
func (s *Session) Remove(productID int) error {
	removed, err := s.store.Remove(productID)
	if removed {
		s.resetButtons()
	}
	return err
}

// ChangeQuantity adjusts a line by delta; reaching zero behaves like Remove.
func (s *Session) ChangeQuantity(productID, delta int) error {
	before := s.store.Quantity(productID)
	_, err := s.store.ChangeQuantity(productID, delta)
	if before > 0 && s.store.Quantity(productID) == 0 {
		s.resetButtons()
	}
	return err
}

func (s *Session) resetButtons() {
	clear(s.buttons)
}

// Checkout places the order. On an empty cart it does nothing and ok is
// false. Otherwise the cart is cleared, the panel closes, and the receipt
// describes what was bought.
func (s *Session) Checkout() (r Receipt, ok bool, err error) {
	if s.store.IsEmpty() {
		return Receipt{}, false, nil
	}
	r = Receipt{
		Items: s.store.TotalQuantity(),
		Total: s.renderer.FormatPrice(s.store.TotalPrice()),
	}
	s.log.Info("order placed", zap.Int("items", r.Items), zap.Int64("total", s.store.TotalPrice()))
	if err := s.store.Clear(); err != nil {
		return r, true, err
	}
	s.cartOpen = false
	return r, true, nil
}
