// Package catalog holds the product value object and the code-indexed
// catalogue used to resolve basket additions.
package catalog

import (
	"errors"
	"fmt"

	"github.com/acmewidgets/checkout/internal/money"
)

// ErrInvalidConfig is returned when a product is constructed with invalid data.
var ErrInvalidConfig = errors.New("invalid product configuration")

// ErrUnknownProduct is returned when a code is not present in the catalogue.
var ErrUnknownProduct = errors.New("unknown product code")

// Product is an immutable product value: code, display name and unit price.
type Product struct {
	Code  string
	Name  string
	Price money.Money
}

// NewProduct validates and builds a product. The code must be non-empty.
func NewProduct(code, name string, price money.Money) (Product, error) {
	if code == "" {
		return Product{}, fmt.Errorf("product code must be a non-empty string: %w", ErrInvalidConfig)
	}
	return Product{Code: code, Name: name, Price: price}, nil
}

// MustProduct is NewProduct for catalogue literals known valid at build time.
func MustProduct(code, name string, price money.Money) Product {
	p, err := NewProduct(code, name, price)
	if err != nil {
		panic(err)
	}
	return p
}

// Equal reports whether code, name and price all match.
func (p Product) Equal(other Product) bool {
	return p.Code == other.Code && p.Name == other.Name && p.Price.Equal(other.Price)
}
