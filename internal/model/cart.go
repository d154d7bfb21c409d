package model

// CartLine is one product in the cart. The product fields are a copy taken
// when the line was created, so the JSON form is a flat object:
// {id,name,category,price,emoji,quantity}.
type CartLine struct {
	Product
	Quantity int `json:"quantity"`
}

// Subtotal is price * quantity in minor units.
func (l CartLine) Subtotal() int64 { return l.Price * int64(l.Quantity) }
