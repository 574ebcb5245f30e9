package checkout

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyCart blocks checkout when the cart has no lines.
	ErrEmptyCart = errors.New("checkout: cart is empty")

	// ErrPaymentInFlight rejects a confirm while a previous payment attempt
	// for the same session is still outstanding.
	ErrPaymentInFlight = errors.New("checkout: payment already in progress")

	// ErrNoSession is returned for checkout actions without an open session.
	ErrNoSession = errors.New("checkout: no active checkout session")

	// ErrInvalidTransition marks an action the current state does not allow.
	ErrInvalidTransition = errors.New("checkout: invalid state transition")

	// ErrInvalidPaymentMethod rejects unknown payment methods.
	ErrInvalidPaymentMethod = errors.New("checkout: invalid payment method")

	// ErrPaymentDeclined marks a gateway result that came back unsuccessful.
	ErrPaymentDeclined = errors.New("checkout: payment declined by gateway")
)

// ValidationError reports the required shipping fields that were empty after
// trimming. The session stays in CollectingShipping and nothing is recorded.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("checkout: missing required fields: %s", strings.Join(e.Missing, ", "))
}

// PaymentError wraps any failure during the payment flow. The session stays
// in ReviewingPayment and neither the cart nor the order history is mutated.
type PaymentError struct {
	Err error
}

func (e *PaymentError) Error() string {
	return fmt.Sprintf("checkout: payment failed: %v", e.Err)
}

func (e *PaymentError) Unwrap() error {
	return e.Err
}
