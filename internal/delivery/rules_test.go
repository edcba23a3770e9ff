package delivery_test

import (
	"errors"
	"testing"

	"github.com/acmewidgets/checkout/internal/delivery"
	"github.com/acmewidgets/checkout/internal/money"
)

func standardTiers() []delivery.Tier {
	return []delivery.Tier{
		{Threshold: delivery.Threshold(money.New(5000)), Charge: money.New(495)},
		{Threshold: delivery.Threshold(money.New(9000)), Charge: money.New(295)},
		{Charge: money.Zero()},
	}
}

func TestCalculateTierBoundaries(t *testing.T) {
	rules := delivery.New(standardTiers())
	cases := []struct {
		subtotal int64
		want     int64
	}{
		{0, 495},
		{4999, 495},
		{5000, 295}, // exactly on the threshold falls through
		{8999, 295},
		{9000, 0},
		{250000, 0},
	}
	for _, tc := range cases {
		got := rules.Calculate(money.New(tc.subtotal))
		if got.Cents() != tc.want {
			t.Fatalf("Calculate(%d) = %d, want %d", tc.subtotal, got.Cents(), tc.want)
		}
	}
}

func TestCalculateWithoutCatchAllFallsBackToZero(t *testing.T) {
	rules := delivery.New([]delivery.Tier{
		{Threshold: delivery.Threshold(money.New(5000)), Charge: money.New(495)},
	})
	if got := rules.Calculate(money.New(10000)); !got.IsZero() {
		t.Fatalf("expected zero fallback, got %s", got)
	}
}

func TestValidate(t *testing.T) {
	if err := delivery.New(standardTiers()).Validate(); err != nil {
		t.Fatalf("standard tiers should validate: %v", err)
	}
	noCatchAll := delivery.New([]delivery.Tier{
		{Threshold: delivery.Threshold(money.New(5000)), Charge: money.New(495)},
	})
	if err := noCatchAll.Validate(); !errors.Is(err, delivery.ErrMissingCatchAll) {
		t.Fatalf("expected ErrMissingCatchAll, got %v", err)
	}
}
