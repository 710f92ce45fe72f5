package service

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ValidationError is raised before any backend call. Two validation errors match under
// errors.Is when their codes match.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Code == e.Code
}

var (
	ErrCartEmpty      = &ValidationError{Code: "cart_empty", Message: "cart is empty"}
	ErrBelowMinimum   = &ValidationError{Code: "below_minimum", Message: "order total is below the minimum order value"}
	ErrNotReviewing   = &ValidationError{Code: "not_reviewing", Message: "open the order review before submitting"}
	ErrSubmitInFlight = &ValidationError{Code: "submit_in_flight", Message: "order is already being submitted"}

	ErrReorderFailed    = errors.New("none of the order's items could be added to the cart")
	ErrNothingToReorder = errors.New("order has no items to reorder")
	ErrBillNotFound     = errors.New("bill not found")
	ErrBillNotFinalized = errors.New("bill is awaiting prices")
)

func belowMinimum(minimum decimal.Decimal) error {
	return &ValidationError{
		Code:    ErrBelowMinimum.Code,
		Message: fmt.Sprintf("minimum order value is %s; add more items or consider a bulk order", minimum.StringFixed(2)),
	}
}
