// Package offer holds the promotional-offer strategies a basket can carry.
// An offer is a pure function of the current item list; it keeps no basket
// state and never returns a charge, only a discount.
package offer

import (
	"github.com/acmewidgets/checkout/internal/catalog"
	"github.com/acmewidgets/checkout/internal/money"
)

// Offer computes a discount amount from the items currently in a basket.
// Implementations must be side-effect-free and idempotent for a given item
// list.
type Offer interface {
	Apply(items []catalog.Product) money.Money
}
