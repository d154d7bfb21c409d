package catalog

import (
	"errors"
	"fmt"

	"github.com/idilsaglam/shopfront/internal/model"
)

var (
	ErrDuplicateID     = errors.New("duplicate product id")
	ErrUnknownCategory = errors.New("unknown category")
)

// Catalog is a fixed, ordered list of products. It is never mutated after New.
type Catalog struct {
	products []model.Product
	byID     map[int]int
}

// New builds a catalog, rejecting duplicate ids and unknown categories.
func New(products ...model.Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]model.Product, 0, len(products)),
		byID:     make(map[int]int, len(products)),
	}
	for _, p := range products {
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, p.ID)
		}
		if !p.Category.Valid() {
			return nil, fmt.Errorf("%w: %q (product %d)", ErrUnknownCategory, p.Category, p.ID)
		}
		c.byID[p.ID] = len(c.products)
		c.products = append(c.products, p)
	}
	return c, nil
}

// Default is the storefront's built-in product list.
func Default() *Catalog {
	c, err := New(
		model.Product{ID: 1, Name: "iPhone 15 Pro", Category: model.Phones, Price: 99900, Emoji: "📱"},
		model.Product{ID: 2, Name: "MacBook Pro M3", Category: model.Laptops, Price: 199900, Emoji: "💻"},
		model.Product{ID: 3, Name: "AirPods Pro 2", Category: model.Headphones, Price: 24900, Emoji: "🎧"},
		model.Product{ID: 4, Name: "Samsung Galaxy S24", Category: model.Phones, Price: 79900, Emoji: "📱"},
		model.Product{ID: 5, Name: "Dell XPS 13", Category: model.Laptops, Price: 129900, Emoji: "💻"},
		model.Product{ID: 6, Name: "Sony WH-1000XM5", Category: model.Headphones, Price: 34900, Emoji: "🎧"},
		model.Product{ID: 7, Name: "Wireless Charger", Category: model.Accessories, Price: 2990, Emoji: "🔌"},
		model.Product{ID: 8, Name: "Apple Watch Ultra", Category: model.Accessories, Price: 79900, Emoji: "⌚"},
	)
	if err != nil {
		panic(err)
	}
	return c
}

// Products returns a copy of the catalog in order.
func (c *Catalog) Products() []model.Product {
	out := make([]model.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) Lookup(id int) (model.Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return model.Product{}, false
	}
	return c.products[i], true
}

func (c *Catalog) Len() int { return len(c.products) }
