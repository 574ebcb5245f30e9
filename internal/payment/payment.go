package payment

import (
	"context"
	"fmt"
	"time"
)

// CurrencyNGN is the only currency the storefront charges in.
const CurrencyNGN = "NGN"

type Request struct {
	Amount   int64
	Currency string
	Method   string
}

type Result struct {
	Reference string
	Success   bool
	Amount    int64
	Currency  string
}

// Gateway is the payment provider boundary. The Simulator below stands in
// for a real processor; swapping in a live integration only touches main.go.
type Gateway interface {
	Charge(ctx context.Context, req Request) (Result, error)
}

// Simulator approves every charge after a fixed processing delay. References
// are timestamp-derived, matching the storefront's NJ_<millis> scheme.
type Simulator struct {
	delay time.Duration
	now   func() time.Time
}

func NewSimulator(delay time.Duration) *Simulator {
	return &Simulator{delay: delay, now: time.Now}
}

func (s *Simulator) Charge(ctx context.Context, req Request) (Result, error) {
	reference := fmt.Sprintf("NJ_%d", s.now().UnixMilli())

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return Result{}, ctx.Err()
		}
	}

	return Result{
		Reference: reference,
		Success:   true,
		Amount:    req.Amount,
		Currency:  req.Currency,
	}, nil
}
