package cart

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/idilsaglam/shopfront/internal/logger"
	"github.com/idilsaglam/shopfront/internal/model"
	"github.com/idilsaglam/shopfront/internal/store"
)

// SlotKey is the single persistence key holding the serialized cart.
const SlotKey = "cart"

// Catalog resolves product ids for Add.
type Catalog interface {
	Lookup(id int) (model.Product, bool)
}

// Store owns the cart and mirrors every mutation to its slot.
// It is not safe for concurrent use; all calls come from the UI loop.
type Store struct {
	lines   []model.CartLine
	slot    store.Slot
	catalog Catalog
	log     *logger.Logger
}

// Open loads the cart from slot. A missing, unreadable, or malformed value
// yields an empty cart; it is never an error.
func Open(slot store.Slot, catalog Catalog, log *logger.Logger) *Store {
	s := &Store{slot: slot, catalog: catalog, log: log}
	s.lines = s.load()
	return s
}

func (s *Store) load() []model.CartLine {
	b, ok, err := s.slot.Get(SlotKey)
	if err != nil {
		s.log.Warn("cart slot unreadable, starting empty", zap.Error(err))
		return []model.CartLine{}
	}
	if !ok {
		return []model.CartLine{}
	}
	lines, err := decode(b)
	if err != nil {
		s.log.Warn("cart slot malformed, starting empty", zap.Error(err))
		return []model.CartLine{}
	}
	s.log.Debug("cart loaded", zap.Int("lines", len(lines)))
	return lines
}

func (s *Store) save() error {
	b, err := encode(s.lines)
	if err != nil {
		return err
	}
	if err := s.slot.Put(SlotKey, b); err != nil {
		s.log.Error("cart save failed", zap.Error(err))
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

func (s *Store) index(id int) int {
	for i, l := range s.lines {
		if l.ID == id {
			return i
		}
	}
	return -1
}

// Add puts one more of productID in the cart. Unknown ids are ignored and
// reported with added == false.
func (s *Store) Add(productID int) (added bool, err error) {
	p, ok := s.catalog.Lookup(productID)
	if !ok {
		s.log.Debug("add ignored, unknown product", zap.Int("id", productID))
		return false, nil
	}
	if i := s.index(productID); i >= 0 {
		s.lines[i].Quantity++
	} else {
		s.lines = append(s.lines, model.CartLine{Product: p, Quantity: 1})
	}
	return true, s.save()
}

// Remove deletes the line for productID, if any.
func (s *Store) Remove(productID int) (removed bool, err error) {
	i := s.index(productID)
	if i < 0 {
		return false, nil
	}
	s.lines = append(s.lines[:i], s.lines[i+1:]...)
	return true, s.save()
}

// ChangeQuantity adds delta to the line's quantity. A result of zero or less
// removes the line. Absent lines are ignored.
func (s *Store) ChangeQuantity(productID, delta int) (changed bool, err error) {
	i := s.index(productID)
	if i < 0 {
		return false, nil
	}
	if s.lines[i].Quantity+delta <= 0 {
		return s.Remove(productID)
	}
	s.lines[i].Quantity += delta
	return true, s.save()
}

// Clear empties the cart.
func (s *Store) Clear() error {
	s.lines = []model.CartLine{}
	return s.save()
}

// Lines returns a copy of the cart in insertion order.
func (s *Store) Lines() []model.CartLine {
	out := make([]model.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// Quantity returns how many of productID are in the cart.
func (s *Store) Quantity(productID int) int {
	if i := s.index(productID); i >= 0 {
		return s.lines[i].Quantity
	}
	return 0
}

func (s *Store) IsEmpty() bool { return len(s.lines) == 0 }

func (s *Store) TotalQuantity() int { return TotalQuantity(s.lines) }

func (s *Store) TotalPrice() int64 { return TotalPrice(s.lines) }

// TotalQuantity sums line quantities.
func TotalQuantity(lines []model.CartLine) int {
	n := 0
	for _, l := range lines {
		n += l.Quantity
	}
	return n
}

// TotalPrice sums price*quantity in minor units.
func TotalPrice(lines []model.CartLine) int64 {
	var total int64
	for _, l := range lines {
		total += l.Subtotal()
	}
	return total
}
