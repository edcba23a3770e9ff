// Package basket aggregates a catalogue, a delivery schedule and a set of
// offers into a checkout basket.
package basket

import (
	"github.com/acmewidgets/checkout/internal/catalog"
	"github.com/acmewidgets/checkout/internal/delivery"
	"github.com/acmewidgets/checkout/internal/money"
	"github.com/acmewidgets/checkout/internal/offer"
	"github.com/acmewidgets/checkout/internal/pricing"
)

// Basket accumulates products and prices them against its injected
// collaborators. Items keep insertion order and duplicates are allowed.
//
// A Basket is not safe for concurrent mutation; callers mutating the same
// basket from multiple goroutines must synchronise externally. The catalogue
// and delivery rules are read-only and may be shared across baskets freely.
type Basket struct {
	catalogue *catalog.Catalogue
	rules     *delivery.Rules
	offers    []offer.Offer
	items     []catalog.Product
}

// New builds an empty basket around the given collaborators.
func New(catalogue *catalog.Catalogue, rules *delivery.Rules, offers ...offer.Offer) *Basket {
	return &Basket{
		catalogue: catalogue,
		rules:     rules,
		offers:    offers,
	}
}

// Add resolves a product code against the catalogue and appends the product.
// On an unknown code the basket is left unmodified and the catalogue error is
// returned.
func (b *Basket) Add(code string) error {
	product, err := b.catalogue.Find(code)
	if err != nil {
		return err
	}
	b.items = append(b.items, product)
	return nil
}

// Len returns the number of items added so far.
func (b *Basket) Len() int {
	return len(b.items)
}

// Items returns a copy of the items in insertion order.
func (b *Basket) Items() []catalog.Product {
	out := make([]catalog.Product, len(b.items))
	copy(out, b.items)
	return out
}

// Summarize prices the current items and returns the component breakdown.
// Pure read; calling it repeatedly without an intervening Add yields the same
// result.
func (b *Basket) Summarize() pricing.Summary {
	return pricing.Compute(b.items, b.offers, b.rules)
}

// Total returns the final amount to pay: subtotal minus offer discounts plus
// the delivery charge on the discounted subtotal.
func (b *Basket) Total() money.Money {
	return b.Summarize().Total
}
