package checkout

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"naijakart/internal/cart"
	"naijakart/internal/events"
	"naijakart/internal/models"
	"naijakart/internal/notify"
	"naijakart/internal/orders"
	"naijakart/internal/payment"
)

// State is the checkout session state. The flow is
// CollectingShipping -> ReviewingPayment -> Completed, with a back edge to
// CollectingShipping and an abort to Closed from either live state.
type State string

const (
	StateCollectingShipping State = "collecting_shipping"
	StateReviewingPayment   State = "reviewing_payment"
	StateCompleted          State = "completed"
	StateClosed             State = "closed"
)

var allowedPaymentMethods = map[string]bool{
	"card": true,
	"bank": true,
	"ussd": true,
}

// Session is one shopper's checkout in progress. All transitions are
// serialized through the session mutex; the only suspension point is the
// payment charge, during which the in-flight flag keeps a second confirm
// out.
type Session struct {
	mu       sync.Mutex
	id       string
	owner    string
	state    State
	shipping models.ShippingInfo
	inFlight bool
	mgr      *Manager
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Shipping() models.ShippingInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shipping
}

// SubmitShipping validates the form and advances to ReviewingPayment. On a
// validation failure the session stays in CollectingShipping and records
// nothing.
func (s *Session) SubmitShipping(info models.ShippingInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateCollectingShipping {
		return ErrInvalidTransition
	}
	if missing := info.MissingFields(); len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}

	s.shipping = info
	s.state = StateReviewingPayment
	return nil
}

// EditShipping steps back from ReviewingPayment to CollectingShipping. The
// entered form is kept so the shopper can amend rather than retype it.
func (s *Session) EditShipping() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inFlight {
		return ErrPaymentInFlight
	}
	if s.state != StateReviewingPayment {
		return ErrInvalidTransition
	}

	s.state = StateCollectingShipping
	return nil
}

// Close aborts the session from either live state. No order is created and
// the shipping form is dropped. An in-flight payment runs to completion and
// cannot be aborted.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inFlight {
		return ErrPaymentInFlight
	}
	if s.state != StateCollectingShipping && s.state != StateReviewingPayment {
		return ErrInvalidTransition
	}

	s.state = StateClosed
	s.shipping = models.ShippingInfo{}
	return nil
}

// Confirm runs the payment and, on success, commits the order: the order is
// appended and the cart cleared as one observable unit before any success
// notification fires. At most one attempt is in flight per session; while it
// is outstanding further confirms fail with ErrPaymentInFlight. On any
// failure the session stays in ReviewingPayment with the cart and order
// history untouched.
func (s *Session) Confirm(ctx context.Context, method string) (models.Order, error) {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return models.Order{}, ErrPaymentInFlight
	}
	if s.state != StateReviewingPayment {
		s.mu.Unlock()
		return models.Order{}, ErrInvalidTransition
	}
	if !allowedPaymentMethods[method] {
		s.mu.Unlock()
		return models.Order{}, ErrInvalidPaymentMethod
	}
	s.inFlight = true
	shipping := s.shipping
	s.mu.Unlock()

	order, err := s.mgr.placeOrder(ctx, s.owner, shipping, method)

	s.mu.Lock()
	s.inFlight = false
	if err != nil {
		s.mu.Unlock()
		s.mgr.sink.Notify(notify.KindError, "Payment Failed",
			"There was an issue processing your payment. Please try again.")
		return models.Order{}, err
	}
	s.state = StateCompleted
	s.shipping = models.ShippingInfo{}
	s.mu.Unlock()

	s.mgr.finishSession(s.owner, order)
	return order, nil
}

// Manager opens and tracks checkout sessions, one per owner.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	carts     *cart.Service
	history   *orders.History
	gateway   payment.Gateway
	publisher events.Publisher
	sink      notify.Sink
	now       func() time.Time
}

func NewManager(carts *cart.Service, history *orders.History, gateway payment.Gateway, publisher events.Publisher, sink notify.Sink) *Manager {
	return &Manager{
		sessions:  make(map[string]*Session),
		carts:     carts,
		history:   history,
		gateway:   gateway,
		publisher: publisher,
		sink:      sink,
		now:       time.Now,
	}
}

// Start opens a checkout session for the owner, or returns the one already
// open. Checkout never starts on an empty cart.
func (m *Manager) Start(ctx context.Context, owner string) (*Session, error) {
	lines, err := m.carts.Get(ctx, owner)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		m.sink.Notify(notify.KindError, "Cart is Empty",
			"Please add items to your cart before checking out.")
		return nil, ErrEmptyCart
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.sessions[owner]; ok {
		return existing, nil
	}

	session := &Session{
		id:    uuid.NewString(),
		owner: owner,
		state: StateCollectingShipping,
		mgr:   m,
	}
	m.sessions[owner] = session
	return session, nil
}

// Lookup returns the owner's open session.
func (m *Manager) Lookup(owner string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[owner]
	if !ok {
		return nil, ErrNoSession
	}
	return session, nil
}

// Abort dismisses the owner's session without creating an order.
func (m *Manager) Abort(owner string) error {
	m.mu.Lock()
	session, ok := m.sessions[owner]
	m.mu.Unlock()
	if !ok {
		return ErrNoSession
	}

	if err := session.Close(); err != nil {
		return err
	}

	m.mu.Lock()
	delete(m.sessions, owner)
	m.mu.Unlock()
	return nil
}

// placeOrder charges the gateway and commits the order snapshot. Append and
// cart-clear form one observable unit: if the clear cannot be persisted the
// appended order is taken back out and the whole attempt fails.
func (m *Manager) placeOrder(ctx context.Context, owner string, shipping models.ShippingInfo, method string) (models.Order, error) {
	lines, err := m.carts.Get(ctx, owner)
	if err != nil {
		return models.Order{}, &PaymentError{Err: err}
	}
	if len(lines) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	totals := cart.Totals(lines)
	result, err := m.gateway.Charge(ctx, payment.Request{
		Amount:   totals.Total,
		Currency: payment.CurrencyNGN,
		Method:   method,
	})
	if err != nil {
		return models.Order{}, &PaymentError{Err: err}
	}
	if !result.Success {
		return models.Order{}, &PaymentError{Err: ErrPaymentDeclined}
	}

	order := models.Order{
		ID:            result.Reference,
		Owner:         owner,
		Items:         lines,
		Shipping:      shipping,
		PaymentMethod: method,
		Subtotal:      totals.Subtotal,
		DeliveryFee:   totals.DeliveryFee,
		Total:         totals.Total,
		Status:        models.OrderStatusConfirmed,
		CreatedAt:     m.now(),
	}

	if err := m.history.Append(ctx, order); err != nil {
		return models.Order{}, &PaymentError{Err: err}
	}
	if err := m.carts.Clear(ctx, owner); err != nil {
		if rbErr := m.history.Remove(ctx, order.ID); rbErr != nil {
			log.Printf("[CHECKOUT] [ERROR] rollback of order %s failed: %v", order.ID, rbErr)
		}
		return models.Order{}, &PaymentError{Err: err}
	}

	return order, nil
}

func (m *Manager) finishSession(owner string, order models.Order) {
	m.mu.Lock()
	delete(m.sessions, owner)
	m.mu.Unlock()

	m.sink.Notify(notify.KindSuccess, "Order Placed Successfully!",
		"Your order #"+order.ID+" has been confirmed. We'll start preparing your items right away!")

	event := models.OrderEvent{
		OrderID:  order.ID,
		Owner:    owner,
		Type:     "created",
		Status:   order.Status,
		Total:    order.Total,
		Occurred: m.now(),
	}
	if err := m.publisher.PublishOrderCreated(context.Background(), event); err != nil {
		log.Printf("[CHECKOUT] [ERROR] publish order event %s failed: %v", order.ID, err)
	}
}
