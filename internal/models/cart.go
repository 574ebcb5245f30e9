package models

// CartLine is one product's entry in a cart. Name, price, image and unit are
// snapshotted from the product at the time of the first add and are not
// refreshed by later quantity changes. A line with quantity < 1 never exists;
// removal is the only representation of zero.
type CartLine struct {
	ProductID string `json:"id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Image     string `json:"image"`
	Unit      string `json:"unit"`
	Quantity  int    `json:"quantity"`
}

// Totals holds the derived cart amounts. They are recomputed on every read
// and never stored.
type Totals struct {
	Subtotal    int64 `json:"subtotal"`
	DeliveryFee int64 `json:"deliveryFee"`
	Total       int64 `json:"total"`
}
