// Package common carries the cross-cutting error-code surface used at the
// application boundary.
package common

import (
	"errors"

	"github.com/acmewidgets/checkout/internal/catalog"
	"github.com/acmewidgets/checkout/internal/delivery"
	"github.com/acmewidgets/checkout/internal/money"
)

// Stable error codes for the pricing error taxonomy.
const (
	CodeInvalidAmount  = "INVALID_AMOUNT"
	CodeDivisionByZero = "DIVISION_BY_ZERO"
	CodeUnknownProduct = "UNKNOWN_PRODUCT"
	CodeInvalidConfig  = "INVALID_CONFIG"
	CodeInternal       = "INTERNAL"
)

// Error is an error with an attached stable code.
type Error struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// Unwrap allows errors.Is/As to inspect the underlying error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewError constructs an Error.
func NewError(code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// Wrap attaches the code derived from the sentinel taxonomy to err.
func Wrap(err error) *Error {
	if err == nil {
		return nil
	}
	return &Error{Code: CodeOf(err), Message: err.Error(), Err: err}
}

// CodeOf maps an error to its stable code. Errors outside the pricing
// taxonomy map to INTERNAL.
func CodeOf(err error) string {
	switch {
	case errors.Is(err, money.ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, money.ErrDivisionByZero):
		return CodeDivisionByZero
	case errors.Is(err, catalog.ErrUnknownProduct):
		return CodeUnknownProduct
	case errors.Is(err, catalog.ErrInvalidConfig),
		errors.Is(err, delivery.ErrMissingCatchAll):
		return CodeInvalidConfig
	default:
		return CodeInternal
	}
}
