// Package delivery resolves the delivery charge for an order subtotal against
// an ordered, tiered schedule.
package delivery

import (
	"errors"

	"github.com/acmewidgets/checkout/internal/money"
)

// ErrMissingCatchAll is returned by Validate when no tier covers arbitrarily
// large subtotals.
var ErrMissingCatchAll = errors.New("delivery tiers must end in a catch-all tier with no threshold")

// Tier pairs an optional subtotal threshold with a charge. A nil threshold
// marks the catch-all tier.
type Tier struct {
	Threshold *money.Money
	Charge    money.Money
}

// Rules is an immutable, ordered delivery-charge schedule.
type Rules struct {
	tiers []Tier
}

// New builds a schedule from tiers ordered by ascending threshold, the last
// of which should carry no threshold. The caller supplying the configuration
// owns that invariant; use Validate to check it.
func New(tiers []Tier) *Rules {
	owned := make([]Tier, len(tiers))
	copy(owned, tiers)
	return &Rules{tiers: owned}
}

// Validate reports ErrMissingCatchAll when the schedule has no tier that
// matches every subtotal. A schedule that fails Validate still works, but
// Calculate falls back to a zero charge for subtotals beyond the last
// threshold, which is a configuration error rather than intended behaviour.
func (r *Rules) Validate() error {
	for _, tier := range r.tiers {
		if tier.Threshold == nil {
			return nil
		}
	}
	return ErrMissingCatchAll
}

// Calculate scans tiers in order and returns the charge of the first tier
// whose threshold is absent or strictly greater than the subtotal. A subtotal
// exactly equal to a threshold falls through to the next tier. Returns zero
// when no tier matches; see Validate.
func (r *Rules) Calculate(subtotal money.Money) money.Money {
	for _, tier := range r.tiers {
		if tier.Threshold == nil || subtotal.LessThan(*tier.Threshold) {
			return tier.Charge
		}
	}
	return money.Zero()
}

// Threshold is a convenience for building tier literals.
func Threshold(m money.Money) *money.Money {
	return &m
}
