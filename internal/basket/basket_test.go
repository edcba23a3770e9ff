package basket_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/acmewidgets/checkout/internal/basket"
	"github.com/acmewidgets/checkout/internal/catalog"
	"github.com/acmewidgets/checkout/internal/delivery"
	"github.com/acmewidgets/checkout/internal/money"
	"github.com/acmewidgets/checkout/internal/offer"
)

func widgetCatalogue() *catalog.Catalogue {
	return catalog.New([]catalog.Product{
		catalog.MustProduct("R01", "Red Widget", money.MustFromDecimal("32.95")),
		catalog.MustProduct("G01", "Green Widget", money.MustFromDecimal("24.95")),
		catalog.MustProduct("B01", "Blue Widget", money.MustFromDecimal("7.95")),
	})
}

func standardRules() *delivery.Rules {
	return delivery.New([]delivery.Tier{
		{Threshold: delivery.Threshold(money.MustFromDecimal("50")), Charge: money.MustFromDecimal("4.95")},
		{Threshold: delivery.Threshold(money.MustFromDecimal("90")), Charge: money.MustFromDecimal("2.95")},
		{Charge: money.Zero()},
	})
}

func newBasket(t *testing.T) *basket.Basket {
	t.Helper()
	rules := standardRules()
	require.NoError(t, rules.Validate())
	return basket.New(widgetCatalogue(), rules, offer.NewBuyOneGetOneHalfPrice("R01", 0.5))
}

func TestTotalScenarios(t *testing.T) {
	cases := []struct {
		name  string
		codes []string
		want  string
	}{
		{"delivery only", nil, "$4.95"},
		{"blue and green", []string{"B01", "G01"}, "$37.85"},
		{"red pair gets offer", []string{"R01", "R01"}, "$54.37"},
		{"red and green", []string{"R01", "G01"}, "$60.85"},
		{"mixed large order", []string{"B01", "B01", "R01", "R01", "R01"}, "$98.27"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := newBasket(t)
			for _, code := range tc.codes {
				require.NoError(t, b.Add(code))
			}
			require.Equal(t, tc.want, b.Total().String())
		})
	}
}

func TestAddUnknownCodeLeavesItemsUnchanged(t *testing.T) {
	b := newBasket(t)
	require.NoError(t, b.Add("B01"))

	err := b.Add("ZZZ")
	require.ErrorIs(t, err, catalog.ErrUnknownProduct)
	require.Equal(t, 1, b.Len())
}

func TestTotalIsRepeatable(t *testing.T) {
	b := newBasket(t)
	require.NoError(t, b.Add("R01"))
	require.NoError(t, b.Add("R01"))

	first := b.Total()
	require.True(t, first.Equal(b.Total()))
	require.Equal(t, 2, b.Len())

	require.NoError(t, b.Add("B01"))
	require.False(t, first.Equal(b.Total()))
}

func TestItemsReturnsCopy(t *testing.T) {
	b := newBasket(t)
	require.NoError(t, b.Add("B01"))

	items := b.Items()
	items[0] = catalog.MustProduct("X99", "Bogus", money.Zero())
	require.Equal(t, "B01", b.Items()[0].Code)
}

func TestSummarizeBreakdown(t *testing.T) {
	b := newBasket(t)
	for _, code := range []string{"R01", "R01"} {
		require.NoError(t, b.Add(code))
	}
	s := b.Summarize()
	require.Equal(t, "$65.90", s.Subtotal.String())
	require.Equal(t, "$16.48", s.Discount.String())
	require.Equal(t, "$49.42", s.DiscountedSubtotal.String())
	require.Equal(t, "$4.95", s.Delivery.String())
	require.Equal(t, "$54.37", s.Total.String())
}
