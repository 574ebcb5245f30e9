package models

import "time"

// OrderStatusConfirmed is the only status an order ever has: orders are
// created confirmed and never move afterwards.
const OrderStatusConfirmed = "confirmed"

// Order is the persisted record of a completed checkout. The ID doubles as
// the payment reference. Orders are append-only; nothing mutates them after
// creation.
type Order struct {
	ID            string       `json:"id"`
	Owner         string       `json:"owner"`
	Items         []CartLine   `json:"items"`
	Shipping      ShippingInfo `json:"shippingInfo"`
	PaymentMethod string       `json:"paymentMethod"`
	Subtotal      int64        `json:"subtotal"`
	DeliveryFee   int64        `json:"deliveryFee"`
	Total         int64        `json:"total"`
	Status        string       `json:"status"`
	CreatedAt     time.Time    `json:"createdAt"`
}

// OrderEvent is the message published when an order completes.
type OrderEvent struct {
	OrderID  string    `json:"orderId"`
	Owner    string    `json:"owner"`
	Type     string    `json:"type"`
	Status   string    `json:"status"`
	Total    int64     `json:"total"`
	Occurred time.Time `json:"occurred"`
}
