package shop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/shopfront/internal/cart"
	"github.com/idilsaglam/shopfront/internal/catalog"
	"github.com/idilsaglam/shopfront/internal/logger"
	"github.com/idilsaglam/shopfront/internal/model"
	"github.com/idilsaglam/shopfront/internal/render"
	"github.com/idilsaglam/shopfront/internal/store/memstore"
)

func newSession(t *testing.T) *Session {
	t.Helper()
	c := catalog.Default()
	st := cart.Open(memstore.New(), c, logger.Nop())
	return New(st, c.Products(), render.New(""), logger.Nop())
}

func TestToggleCart(t *testing.T) {
	s := newSession(t)
	assert.False(t, s.CartOpen())
	s.ToggleCart()
	assert.True(t, s.CartOpen())
	assert.True(t, s.View().CartOpen)
	s.ToggleCart()
	assert.False(t, s.CartOpen())

	s.ToggleCart()
	s.CloseCart()
	s.CloseCart()
	assert.False(t, s.CartOpen())
}

func TestSetFilterLastWins(t *testing.T) {
	s := newSession(t)
	assert.Equal(t, model.FilterAll, s.Filter())
	assert.Len(t, s.View().Cards, 8)

	s.SetFilter(model.Filter(model.Laptops))
	s.SetFilter(model.Filter(model.Headphones))
	assert.Equal(t, model.Filter(model.Headphones), s.Filter())

	v := s.View()
	require.Len(t, v.Cards, 2)
	assert.Equal(t, 3, v.Cards[0].ProductID)
	assert.Equal(t, 6, v.Cards[1].ProductID)

	s.SetFilter("")
	assert.Equal(t, model.FilterAll, s.Filter())
}

func TestAddFeedbackWindow(t *testing.T) {
	s := newSession(t)

	fb, ok, err := s.Add(1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, ButtonJustAdded, s.Button(1))
	assert.Equal(t, "Added!", s.Button(1).Label())

	// disabled while the window is open
	_, ok, err = s.Add(1)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, s.Store().Quantity(1))

	s.ExpireFeedback(fb)
	assert.Equal(t, ButtonIdle, s.Button(1))
	assert.Equal(t, "Add to Cart", s.Button(1).Label())

	_, ok, err = s.Add(1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2, s.Store().Quantity(1))
}

func TestAddUnknownProduct(t *testing.T) {
	s := newSession(t)
	_, ok, err := s.Add(77)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, ButtonIdle, s.Button(77))
}

func TestRemoveResetsButtonsAndIgnoresStaleTimers(t *testing.T) {
	s := newSession(t)
	old, _, _ := s.Add(2)
	_, _, _ = s.Add(5)

	require.NoError(t, s.Remove(5))
	assert.Equal(t, ButtonIdle, s.Button(2))
	assert.Equal(t, ButtonIdle, s.Button(5))

	fresh, ok, _ := s.Add(2)
	require.True(t, ok)

	s.ExpireFeedback(old)
	assert.Equal(t, ButtonJustAdded, s.Button(2), "stale timer must not end the new window")

	s.ExpireFeedback(fresh)
	assert.Equal(t, ButtonIdle, s.Button(2))
}

func TestChangeQuantityToZeroResetsButtons(t *testing.T) {
	s := newSession(t)
	_, _, _ = s.Add(3)
	_, _, _ = s.Add(4)

	require.NoError(t, s.ChangeQuantity(4, 1))
	assert.Equal(t, ButtonJustAdded, s.Button(3))

	require.NoError(t, s.ChangeQuantity(4, -2))
	assert.Equal(t, 0, s.Store().Quantity(4))
	assert.Equal(t, ButtonIdle, s.Button(3))
}

func TestCheckoutEmptyIsNoop(t *testing.T) {
	s := newSession(t)
	s.ToggleCart()

	_, ok, err := s.Checkout()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, s.CartOpen(), "no state change on empty cart")
}

func TestCheckoutClearsAndCloses(t *testing.T) {
	s := newSession(t)
	_, _, _ = s.Add(1)
	fb, _, _ := s.Add(3)
	s.ExpireFeedback(fb)
	_, _, _ = s.Add(3)
	s.ToggleCart()

	r, ok, err := s.Checkout()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Receipt{Items: 3, Total: "₹149,700"}, r)
	assert.True(t, s.Store().IsEmpty())
	assert.False(t, s.CartOpen())

	v := s.View()
	require.Len(t, v.Lines, 1)
	assert.True(t, v.Lines[0].Placeholder)
	assert.Equal(t, 0, v.Summary.Count)
}

func TestViewCarriesButtonState(t *testing.T) {
	s := newSession(t)
	_, _, _ = s.Add(7)
	s.SetFilter(model.Filter(model.Accessories))

	v := s.View()
	require.Len(t, v.Cards, 2)
	assert.Equal(t, ButtonJustAdded, v.Cards[0].Button)
	assert.Equal(t, ButtonIdle, v.Cards[1].Button)
	assert.Equal(t, "accessories", v.Filter)
	assert.Equal(t, "₹2,990", v.Summary.Total)
}
