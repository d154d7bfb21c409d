// Package render maps catalog and cart state to display fragments.
// Everything here is a pure function of its inputs; styling happens in the TUI.
package render

import (
	"fmt"
	"iter"

	"github.com/dustin/go-humanize"

	"github.com/idilsaglam/shopfront/internal/model"
)

const (
	DefaultCurrency = "₹"
	EmptyCartText   = "Your cart is empty"
)

// Renderer formats prices with a currency symbol.
type Renderer struct {
	Currency string
}

func New(currency string) Renderer {
	if currency == "" {
		currency = DefaultCurrency
	}
	return Renderer{Currency: currency}
}

// FormatPrice renders minor units grouped by thousands, e.g. ₹149,700.
func (r Renderer) FormatPrice(amount int64) string {
	return r.Currency + humanize.Comma(amount)
}

// Card is one product tile in the catalog grid.
type Card struct {
	ProductID int
	Icon      string
	Title     string
	Category  string
	Price     string
}

func (c Card) String() string {
	return fmt.Sprintf("[%d] %s %s  %s  %s", c.ProductID, c.Icon, c.Title, c.Category, c.Price)
}

// Catalog yields a card per product that passes f, in catalog order.
// The sequence is lazy and can be ranged over any number of times.
func (r Renderer) Catalog(products []model.Product, f model.Filter) iter.Seq[Card] {
	return func(yield func(Card) bool) {
		for _, p := range products {
			if !f.Match(p.Category) {
				continue
			}
			card := Card{
				ProductID: p.ID,
				Icon:      p.Emoji,
				Title:     p.Name,
				Category:  p.Category.Label(),
				Price:     r.FormatPrice(p.Price),
			}
			if !yield(card) {
				return
			}
		}
	}
}

// Line is one row of the cart panel. When the cart is empty a single
// placeholder line carries EmptyCartText instead.
type Line struct {
	ProductID   int
	Icon        string
	Title       string
	Price       string
	Quantity    int
	Subtotal    string
	Placeholder bool
}

func (l Line) String() string {
	if l.Placeholder {
		return l.Title
	}
	return fmt.Sprintf("[%d] %s %s  %s x %d = %s", l.ProductID, l.Icon, l.Title, l.Price, l.Quantity, l.Subtotal)
}

// CartLines yields a line per cart entry in cart order, or the placeholder.
func (r Renderer) CartLines(lines []model.CartLine) iter.Seq[Line] {
	return func(yield func(Line) bool) {
		if len(lines) == 0 {
			yield(Line{Title: EmptyCartText, Placeholder: true})
			return
		}
		for _, l := range lines {
			line := Line{
				ProductID: l.ID,
				Icon:      l.Emoji,
				Title:     l.Name,
				Price:     r.FormatPrice(l.Price),
				Quantity:  l.Quantity,
				Subtotal:  r.FormatPrice(l.Subtotal()),
			}
			if !yield(line) {
				return
			}
		}
	}
}

// Summary is the cart badge count and the formatted running total.
type Summary struct {
	Count int
	Total string
}

func (s Summary) String() string {
	return fmt.Sprintf("%d item(s)  Total: %s", s.Count, s.Total)
}

func (r Renderer) Summary(lines []model.CartLine) Summary {
	var (
		count int
		total int64
	)
	for _, l := range lines {
		count += l.Quantity
		total += l.Subtotal()
	}
	return Summary{Count: count, Total: r.FormatPrice(total)}
}
