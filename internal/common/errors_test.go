package common_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/acmewidgets/checkout/internal/catalog"
	"github.com/acmewidgets/checkout/internal/common"
	"github.com/acmewidgets/checkout/internal/delivery"
	"github.com/acmewidgets/checkout/internal/money"
)

func TestCodeOf(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{money.ErrInvalidAmount, common.CodeInvalidAmount},
		{money.ErrDivisionByZero, common.CodeDivisionByZero},
		{catalog.ErrUnknownProduct, common.CodeUnknownProduct},
		{catalog.ErrInvalidConfig, common.CodeInvalidConfig},
		{delivery.ErrMissingCatchAll, common.CodeInvalidConfig},
		{errors.New("boom"), common.CodeInternal},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, common.CodeOf(tc.err), "error: %v", tc.err)
	}
}

func TestCodeOfWrapped(t *testing.T) {
	err := fmt.Errorf("add item: %w", catalog.ErrUnknownProduct)
	require.Equal(t, common.CodeUnknownProduct, common.CodeOf(err))
}

func TestWrapPreservesChain(t *testing.T) {
	wrapped := common.Wrap(fmt.Errorf("lookup: %w", catalog.ErrUnknownProduct))
	require.Equal(t, common.CodeUnknownProduct, wrapped.Code)
	require.ErrorIs(t, wrapped, catalog.ErrUnknownProduct)
	require.Nil(t, common.Wrap(nil))
}
