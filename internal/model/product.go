package model

import "strings"

// Category groups products for filtering.
type Category string

const (
	Phones      Category = "phones"
	Laptops     Category = "laptops"
	Headphones  Category = "headphones"
	Accessories Category = "accessories"
)

// Categories lists every known category in display order.
func Categories() []Category {
	return []Category{Phones, Laptops, Headphones, Accessories}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, k := range Categories() {
		if c == k {
			return true
		}
	}
	return false
}

// Label is the upper-case form shown on product cards.
func (c Category) Label() string { return strings.ToUpper(string(c)) }

// Product is an immutable catalog entry. Price is in minor currency units.
type Product struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Price    int64    `json:"price"`
	Emoji    string   `json:"emoji"`
}
