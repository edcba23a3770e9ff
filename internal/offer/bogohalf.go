package offer

import (
	"github.com/shopspring/decimal"

	"github.com/acmewidgets/checkout/internal/catalog"
	"github.com/acmewidgets/checkout/internal/money"
)

// BuyOneGetOneHalfPrice discounts every second matching item by a rate of its
// unit price. With the usual rate of 0.5, each complete pair of the target
// product gets one item at half price.
type BuyOneGetOneHalfPrice struct {
	code string
	rate decimal.Decimal
}

// NewBuyOneGetOneHalfPrice builds the offer for the given product code. The
// rate is normally in [0, 1] but is passed through unvalidated; out-of-range
// rates produce a negative or oversized discount.
func NewBuyOneGetOneHalfPrice(code string, rate float64) BuyOneGetOneHalfPrice {
	return BuyOneGetOneHalfPrice{code: code, rate: decimal.NewFromFloat(rate)}
}

// Apply returns the discount for the current item list. The per-item discount
// is rounded to the nearest cent first, then multiplied by the number of
// complete pairs, so $32.95 at rate 0.5 discounts $16.48 per pair.
func (o BuyOneGetOneHalfPrice) Apply(items []catalog.Product) money.Money {
	var first *catalog.Product
	matching := 0
	for i := range items {
		if items[i].Code != o.code {
			continue
		}
		if first == nil {
			first = &items[i]
		}
		matching++
	}
	pairs := matching / 2
	if pairs == 0 {
		return money.Zero()
	}
	perItem := first.Price.Mul(o.rate)
	return perItem.MulInt(int64(pairs))
}
