// Command checkout prices a basket of widget product codes against the
// built-in demo catalogue, delivery schedule and offers, and prints the
// total.
//
//	checkout B01 B01 R01 R01 R01
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/acmewidgets/checkout/internal/basket"
	"github.com/acmewidgets/checkout/internal/catalog"
	"github.com/acmewidgets/checkout/internal/common"
	"github.com/acmewidgets/checkout/internal/config"
	"github.com/acmewidgets/checkout/internal/delivery"
	"github.com/acmewidgets/checkout/internal/money"
	"github.com/acmewidgets/checkout/internal/obs"
	"github.com/acmewidgets/checkout/internal/offer"
)

func main() {
	cfg := config.MustLoad()
	logger := obs.NewLogger(cfg.LogFormat, cfg.LogLevel)

	if err := run(os.Args[1:], os.Stdout, logger); err != nil {
		logger.Fatal().
			Str("code", common.CodeOf(err)).
			Err(err).
			Msg("checkout failed")
	}
}

func demoCatalogue() *catalog.Catalogue {
	return catalog.New([]catalog.Product{
		catalog.MustProduct("R01", "Red Widget", money.MustFromDecimal("32.95")),
		catalog.MustProduct("G01", "Green Widget", money.MustFromDecimal("24.95")),
		catalog.MustProduct("B01", "Blue Widget", money.MustFromDecimal("7.95")),
	})
}

func demoDeliveryRules() *delivery.Rules {
	return delivery.New([]delivery.Tier{
		{Threshold: delivery.Threshold(money.MustFromDecimal("50")), Charge: money.MustFromDecimal("4.95")},
		{Threshold: delivery.Threshold(money.MustFromDecimal("90")), Charge: money.MustFromDecimal("2.95")},
		{Charge: money.Zero()},
	})
}

func run(codes []string, out io.Writer, logger zerolog.Logger) error {
	rules := demoDeliveryRules()
	if err := rules.Validate(); err != nil {
		return err
	}

	checkoutID := uuid.New()
	b := basket.New(demoCatalogue(), rules, offer.NewBuyOneGetOneHalfPrice("R01", 0.5))
	for _, code := range codes {
		if err := b.Add(code); err != nil {
			return fmt.Errorf("add %s: %w", code, err)
		}
	}

	s := b.Summarize()
	logger.Info().
		Str("checkout_id", checkoutID.String()).
		Int("items", b.Len()).
		Str("subtotal", s.Subtotal.String()).
		Str("discount", s.Discount.String()).
		Str("delivery", s.Delivery.String()).
		Str("total", s.Total.String()).
		Msg("basket priced")

	_, err := fmt.Fprintln(out, s.Total)
	return err
}
