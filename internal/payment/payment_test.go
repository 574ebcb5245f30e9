package payment

import (
	"context"
	"testing"
	"time"
)

func TestSimulatorReferenceIsTimestampDerived(t *testing.T) {
	fixed := time.Date(2025, 8, 28, 12, 0, 0, 0, time.UTC)
	sim := &Simulator{now: func() time.Time { return fixed }}

	result, err := sim.Charge(context.Background(), Request{Amount: 4000, Currency: CurrencyNGN, Method: "card"})
	if err != nil {
		t.Fatalf("charge: %v", err)
	}
	want := "NJ_" + "1756382400000"
	if result.Reference != want {
		t.Fatalf("expected reference %s, got %s", want, result.Reference)
	}
}

func TestSimulatorAlwaysSucceeds(t *testing.T) {
	sim := NewSimulator(0)

	result, err := sim.Charge(context.Background(), Request{Amount: 12500, Currency: CurrencyNGN, Method: "bank"})
	if err != nil {
		t.Fatalf("charge: %v", err)
	}
	if !result.Success {
		t.Fatal("expected synthetic success")
	}
	if result.Amount != 12500 || result.Currency != CurrencyNGN {
		t.Fatalf("expected request amount echoed, got %+v", result)
	}
}

func TestSimulatorWaitsForDelay(t *testing.T) {
	sim := NewSimulator(20 * time.Millisecond)

	start := time.Now()
	if _, err := sim.Charge(context.Background(), Request{Amount: 100, Currency: CurrencyNGN}); err != nil {
		t.Fatalf("charge: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Fatalf("expected charge to take at least the configured delay, took %v", elapsed)
	}
}

func TestSimulatorHonorsContextCancellation(t *testing.T) {
	sim := NewSimulator(time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := sim.Charge(ctx, Request{Amount: 100, Currency: CurrencyNGN}); err == nil {
		t.Fatal("expected context error")
	}
}
