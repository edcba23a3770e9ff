// Package pricing composes item prices, offer discounts and the delivery
// schedule into an order total.
package pricing

import (
	"github.com/acmewidgets/checkout/internal/catalog"
	"github.com/acmewidgets/checkout/internal/delivery"
	"github.com/acmewidgets/checkout/internal/money"
	"github.com/acmewidgets/checkout/internal/offer"
)

// Summary aggregates the computed pricing components of a basket.
type Summary struct {
	Subtotal           money.Money
	Discount           money.Money
	DiscountedSubtotal money.Money
	Delivery           money.Money
	Total              money.Money
}

// Compute calculates the order total for the given items. Each offer's
// discount is summed independently, so offer order does not affect the
// result. The discounted subtotal is deliberately not clamped at zero: an
// oversized discount carries through to the total as-is. The delivery charge
// is resolved against the discounted subtotal, not the raw one.
func Compute(items []catalog.Product, offers []offer.Offer, rules *delivery.Rules) Summary {
	subtotal := money.Zero()
	for _, item := range items {
		subtotal = subtotal.Add(item.Price)
	}
	discount := money.Zero()
	for _, o := range offers {
		discount = discount.Add(o.Apply(items))
	}
	discounted := subtotal.Sub(discount)
	charge := rules.Calculate(discounted)
	return Summary{
		Subtotal:           subtotal,
		Discount:           discount,
		DiscountedSubtotal: discounted,
		Delivery:           charge,
		Total:              discounted.Add(charge),
	}
}
