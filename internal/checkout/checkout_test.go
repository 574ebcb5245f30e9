package checkout

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"naijakart/internal/cart"
	"naijakart/internal/catalog"
	"naijakart/internal/events"
	"naijakart/internal/models"
	"naijakart/internal/notify"
	"naijakart/internal/orders"
	"naijakart/internal/payment"
	"naijakart/internal/store"
)

const owner = "ada@example.com"

type fakeGateway struct {
	mu      sync.Mutex
	err     error
	decline bool
	block   chan struct{}
	calls   int
}

func (g *fakeGateway) Charge(_ context.Context, req payment.Request) (payment.Result, error) {
	g.mu.Lock()
	g.calls++
	block, err, decline := g.block, g.err, g.decline
	g.mu.Unlock()

	if block != nil {
		<-block
	}
	if err != nil {
		return payment.Result{}, err
	}
	if decline {
		return payment.Result{Success: false}, nil
	}
	return payment.Result{
		Reference: "NJ_1756400000000",
		Success:   true,
		Amount:    req.Amount,
		Currency:  req.Currency,
	}, nil
}

func (g *fakeGateway) chargeCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

type recordingSink struct {
	mu    sync.Mutex
	notes []string
}

func (s *recordingSink) Notify(kind notify.Kind, title, _ string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = append(s.notes, string(kind)+": "+title)
}

func (s *recordingSink) contains(fragment string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.notes {
		if strings.Contains(n, fragment) {
			return true
		}
	}
	return false
}

// flakyKV fails deletes of one key, to exercise the commit compensation.
type flakyKV struct {
	store.KV
	failDeleteKey string
}

func (f *flakyKV) Delete(ctx context.Context, key string) error {
	if key == f.failDeleteKey {
		return errors.New("simulated storage failure")
	}
	return f.KV.Delete(ctx, key)
}

type fixture struct {
	manager *Manager
	carts   *cart.Service
	history *orders.History
	gateway *fakeGateway
	sink    *recordingSink
	kv      store.KV
}

func newFixture(t *testing.T, kv store.KV) *fixture {
	t.Helper()
	if kv == nil {
		kv = store.NewMemory()
	}

	carts := cart.NewService(kv, catalog.NewStatic())
	history := orders.NewHistory(kv)
	gateway := &fakeGateway{}
	sink := &recordingSink{}
	manager := NewManager(carts, history, gateway, events.Nop{}, sink)
	manager.now = func() time.Time { return time.Date(2025, 8, 28, 12, 0, 0, 0, time.UTC) }

	return &fixture{
		manager: manager,
		carts:   carts,
		history: history,
		gateway: gateway,
		sink:    sink,
		kv:      kv,
	}
}

func (f *fixture) seedCart(t *testing.T, productIDs ...string) {
	t.Helper()
	for _, id := range productIDs {
		if _, err := f.carts.Add(context.Background(), owner, id); err != nil {
			t.Fatalf("seed cart: %v", err)
		}
	}
}

func validShipping() models.ShippingInfo {
	return models.ShippingInfo{
		FullName: "Ada Obi",
		Phone:    "+2348012345678",
		Email:    owner,
		Address:  "12 Allen Avenue",
		City:     "Ikeja",
		State:    "Lagos",
	}
}

func startSession(t *testing.T, f *fixture) *Session {
	t.Helper()
	session, err := f.manager.Start(context.Background(), owner)
	if err != nil {
		t.Fatalf("start checkout: %v", err)
	}
	return session
}

func TestStartRequiresNonEmptyCart(t *testing.T) {
	f := newFixture(t, nil)

	if _, err := f.manager.Start(context.Background(), owner); !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
	if !f.sink.contains("Cart is Empty") {
		t.Fatal("expected empty-cart notification")
	}
}

func TestShippingValidationBlocksReview(t *testing.T) {
	f := newFixture(t, nil)
	f.seedCart(t, "1")
	session := startSession(t, f)

	tests := []func(*models.ShippingInfo){
		func(s *models.ShippingInfo) { s.FullName = "" },
		func(s *models.ShippingInfo) { s.Phone = "   " },
		func(s *models.ShippingInfo) { s.Email = "" },
		func(s *models.ShippingInfo) { s.Address = "\t" },
		func(s *models.ShippingInfo) { s.City = "" },
		func(s *models.ShippingInfo) { s.State = " " },
	}
	for i, mutate := range tests {
		info := validShipping()
		mutate(&info)

		err := session.SubmitShipping(info)
		var validationErr *ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("case %d: expected ValidationError, got %v", i, err)
		}
		if session.State() != StateCollectingShipping {
			t.Fatalf("case %d: state advanced despite invalid form", i)
		}
		if session.Shipping() != (models.ShippingInfo{}) {
			t.Fatalf("case %d: partial shipping info recorded", i)
		}
	}
}

func TestLandmarkIsOptional(t *testing.T) {
	f := newFixture(t, nil)
	f.seedCart(t, "1")
	session := startSession(t, f)

	info := validShipping()
	info.Landmark = ""
	if err := session.SubmitShipping(info); err != nil {
		t.Fatalf("expected landmark to be optional, got %v", err)
	}
	if session.State() != StateReviewingPayment {
		t.Fatalf("expected ReviewingPayment, got %s", session.State())
	}
}

func TestEditShippingStepsBackKeepingForm(t *testing.T) {
	f := newFixture(t, nil)
	f.seedCart(t, "1")
	session := startSession(t, f)

	info := validShipping()
	if err := session.SubmitShipping(info); err != nil {
		t.Fatalf("submit shipping: %v", err)
	}
	if err := session.EditShipping(); err != nil {
		t.Fatalf("edit shipping: %v", err)
	}
	if session.State() != StateCollectingShipping {
		t.Fatalf("expected CollectingShipping, got %s", session.State())
	}
	if session.Shipping() != info {
		t.Fatal("expected entered form to be kept on back-transition")
	}
}

func TestEditShippingOnlyFromReview(t *testing.T) {
	f := newFixture(t, nil)
	f.seedCart(t, "1")
	session := startSession(t, f)

	if err := session.EditShipping(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestAbortCreatesNoOrder(t *testing.T) {
	f := newFixture(t, nil)
	f.seedCart(t, "1")
	session := startSession(t, f)

	if err := session.SubmitShipping(validShipping()); err != nil {
		t.Fatalf("submit shipping: %v", err)
	}
	if err := f.manager.Abort(owner); err != nil {
		t.Fatalf("abort: %v", err)
	}
	if session.State() != StateClosed {
		t.Fatalf("expected Closed, got %s", session.State())
	}

	all, _ := f.history.List(context.Background())
	if len(all) != 0 {
		t.Fatalf("abort must not create orders, found %d", len(all))
	}
	lines, _ := f.carts.Get(context.Background(), owner)
	if len(lines) != 1 {
		t.Fatal("abort must not touch the cart")
	}
	if _, err := f.manager.Lookup(owner); !errors.Is(err, ErrNoSession) {
		t.Fatal("expected session to be dropped after abort")
	}
}

func TestConfirmRequiresReviewState(t *testing.T) {
	f := newFixture(t, nil)
	f.seedCart(t, "1")
	session := startSession(t, f)

	if _, err := session.Confirm(context.Background(), "card"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if f.gateway.chargeCount() != 0 {
		t.Fatal("gateway must not be called before ReviewingPayment")
	}
}

func TestConfirmRejectsUnknownPaymentMethod(t *testing.T) {
	f := newFixture(t, nil)
	f.seedCart(t, "1")
	session := startSession(t, f)
	if err := session.SubmitShipping(validShipping()); err != nil {
		t.Fatalf("submit shipping: %v", err)
	}

	if _, err := session.Confirm(context.Background(), "cowries"); !errors.Is(err, ErrInvalidPaymentMethod) {
		t.Fatalf("expected ErrInvalidPaymentMethod, got %v", err)
	}
}

func TestConfirmSuccessCommitsOrderAndClearsCart(t *testing.T) {
	f := newFixture(t, nil)
	f.seedCart(t, "1", "1", "9")
	session := startSession(t, f)
	if err := session.SubmitShipping(validShipping()); err != nil {
		t.Fatalf("submit shipping: %v", err)
	}

	order, err := session.Confirm(context.Background(), "card")
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}

	if order.ID != "NJ_1756400000000" {
		t.Fatalf("expected gateway reference as order id, got %s", order.ID)
	}
	if order.Subtotal != 11000 || order.DeliveryFee != 0 || order.Total != 11000 {
		t.Fatalf("unexpected totals on order: %+v", order)
	}
	if order.Status != models.OrderStatusConfirmed {
		t.Fatalf("expected confirmed status, got %s", order.Status)
	}
	if order.PaymentMethod != "card" || order.Owner != owner {
		t.Fatalf("unexpected order metadata: %+v", order)
	}
	if len(order.Items) != 2 {
		t.Fatalf("expected 2 lines on order snapshot, got %d", len(order.Items))
	}

	all, _ := f.history.List(context.Background())
	if len(all) != 1 {
		t.Fatalf("expected exactly one appended order, got %d", len(all))
	}
	lines, _ := f.carts.Get(context.Background(), owner)
	if len(lines) != 0 {
		t.Fatalf("expected cart cleared, got %d lines", len(lines))
	}
	if session.State() != StateCompleted {
		t.Fatalf("expected Completed, got %s", session.State())
	}
	if session.Shipping() != (models.ShippingInfo{}) {
		t.Fatal("expected shipping info reset after success")
	}
	if !f.sink.contains("Order Placed Successfully") {
		t.Fatal("expected success notification")
	}
	if _, err := f.manager.Lookup(owner); !errors.Is(err, ErrNoSession) {
		t.Fatal("expected session removed after completion")
	}
}

func TestConfirmFailureLeavesStateAndStores(t *testing.T) {
	f := newFixture(t, nil)
	f.seedCart(t, "1")
	session := startSession(t, f)
	if err := session.SubmitShipping(validShipping()); err != nil {
		t.Fatalf("submit shipping: %v", err)
	}

	f.gateway.err = errors.New("gateway timeout")
	_, err := session.Confirm(context.Background(), "card")

	var paymentErr *PaymentError
	if !errors.As(err, &paymentErr) {
		t.Fatalf("expected PaymentError, got %v", err)
	}
	if session.State() != StateReviewingPayment {
		t.Fatalf("expected to stay in ReviewingPayment, got %s", session.State())
	}

	all, _ := f.history.List(context.Background())
	if len(all) != 0 {
		t.Fatal("failed payment must not append an order")
	}
	lines, _ := f.carts.Get(context.Background(), owner)
	if len(lines) != 1 {
		t.Fatal("failed payment must not touch the cart")
	}
	if !f.sink.contains("Payment Failed") {
		t.Fatal("expected failure notification")
	}

	// The session is retryable after the failure.
	f.gateway.err = nil
	if _, err := session.Confirm(context.Background(), "card"); err != nil {
		t.Fatalf("retry after failure: %v", err)
	}
}

func TestConfirmDeclineLeavesStateAndStores(t *testing.T) {
	f := newFixture(t, nil)
	f.seedCart(t, "1")
	session := startSession(t, f)
	if err := session.SubmitShipping(validShipping()); err != nil {
		t.Fatalf("submit shipping: %v", err)
	}

	f.gateway.decline = true
	_, err := session.Confirm(context.Background(), "card")
	if !errors.Is(err, ErrPaymentDeclined) {
		t.Fatalf("expected ErrPaymentDeclined, got %v", err)
	}
	if session.State() != StateReviewingPayment {
		t.Fatalf("expected ReviewingPayment, got %s", session.State())
	}
}

func TestSecondConfirmBlockedWhileInFlight(t *testing.T) {
	f := newFixture(t, nil)
	f.seedCart(t, "1")
	session := startSession(t, f)
	if err := session.SubmitShipping(validShipping()); err != nil {
		t.Fatalf("submit shipping: %v", err)
	}

	release := make(chan struct{})
	f.gateway.block = release

	done := make(chan error, 1)
	go func() {
		_, err := session.Confirm(context.Background(), "card")
		done <- err
	}()

	// Wait for the first attempt to reach the gateway.
	deadline := time.After(2 * time.Second)
	for f.gateway.chargeCount() == 0 {
		select {
		case <-deadline:
			t.Fatal("first confirm never reached the gateway")
		default:
			time.Sleep(time.Millisecond)
		}
	}

	if _, err := session.Confirm(context.Background(), "card"); !errors.Is(err, ErrPaymentInFlight) {
		t.Fatalf("expected ErrPaymentInFlight, got %v", err)
	}
	if err := session.Close(); !errors.Is(err, ErrPaymentInFlight) {
		t.Fatalf("expected close to be blocked while in flight, got %v", err)
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("first confirm failed: %v", err)
	}
	if f.gateway.chargeCount() != 1 {
		t.Fatalf("expected exactly one charge, got %d", f.gateway.chargeCount())
	}

	all, _ := f.history.List(context.Background())
	if len(all) != 1 {
		t.Fatalf("expected exactly one order, got %d", len(all))
	}
}

func TestCommitCompensatesWhenCartClearFails(t *testing.T) {
	flaky := &flakyKV{KV: store.NewMemory(), failDeleteKey: store.CartKey(owner)}
	f := newFixture(t, flaky)
	f.seedCart(t, "1")
	session := startSession(t, f)
	if err := session.SubmitShipping(validShipping()); err != nil {
		t.Fatalf("submit shipping: %v", err)
	}

	_, err := session.Confirm(context.Background(), "card")
	var paymentErr *PaymentError
	if !errors.As(err, &paymentErr) {
		t.Fatalf("expected PaymentError, got %v", err)
	}

	// Append and clear are one observable unit: neither may survive alone.
	all, _ := f.history.List(context.Background())
	if len(all) != 0 {
		t.Fatalf("expected order rolled back after failed cart clear, found %d", len(all))
	}
	lines, _ := f.carts.Get(context.Background(), owner)
	if len(lines) != 1 {
		t.Fatal("expected cart intact after failed commit")
	}
	if session.State() != StateReviewingPayment {
		t.Fatalf("expected ReviewingPayment, got %s", session.State())
	}
}

func TestStartReturnsExistingSession(t *testing.T) {
	f := newFixture(t, nil)
	f.seedCart(t, "1")

	first := startSession(t, f)
	second := startSession(t, f)
	if first != second {
		t.Fatal("expected one session per owner")
	}
}
