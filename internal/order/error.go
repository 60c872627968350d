package order

import (
	"fmt"

	"fishmarket-be/internal/apperr"
)

var (
	ErrNotFound          = fmt.Errorf("order %w", apperr.ErrNotFound)
	ErrEmptyCart         = fmt.Errorf("%w: cart is empty", apperr.ErrValidation)
	ErrInvalidTransition = fmt.Errorf("%w: illegal status transition", apperr.ErrValidation)
)

// PartialFailure reports a checkout where some farmer groups committed before
// another failed. Committed groups stay committed; the caller must be able to
// tell "some of it happened" from "nothing happened".
type PartialFailure struct {
	Committed      []Order
	FailedFarmerID string
	Cause          error
}

func (e *PartialFailure) Error() string {
	return fmt.Sprintf("order placement failed for farmer %s after %d group(s) committed: %v",
		e.FailedFarmerID, len(e.Committed), e.Cause)
}

func (e *PartialFailure) Unwrap() error {
	return e.Cause
}
