package catalog

import "fmt"

// Catalogue is an immutable code-to-product lookup table. Build it once and
// share it read-only across baskets.
type Catalogue struct {
	products map[string]Product
}

// New indexes the given products by code. Duplicate codes are not an error:
// the last product with a given code wins.
func New(products []Product) *Catalogue {
	index := make(map[string]Product, len(products))
	for _, p := range products {
		index[p.Code] = p
	}
	return &Catalogue{products: index}
}

// Find resolves a product by code.
func (c *Catalogue) Find(code string) (Product, error) {
	p, ok := c.products[code]
	if !ok {
		return Product{}, fmt.Errorf("%w: %s", ErrUnknownProduct, code)
	}
	return p, nil
}

// Exists reports whether the code is present.
func (c *Catalogue) Exists(code string) bool {
	_, ok := c.products[code]
	return ok
}

// All returns every indexed product. Order is unspecified.
func (c *Catalogue) All() []Product {
	out := make([]Product, 0, len(c.products))
	for _, p := range c.products {
		out = append(out, p)
	}
	return out
}
