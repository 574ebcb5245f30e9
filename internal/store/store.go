package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no value exists under the key.
var ErrNotFound = errors.New("store: key not found")

// KV is the persistence boundary for carts, orders and users. Values are
// opaque JSON blobs; callers own the encoding. The same cart/order logic runs
// against any backend, so tests use the in-memory implementation and
// production picks redis or mongo via config.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Fixed key namespace, kept identical to the storefront's original
// client-side storage keys so existing exported data stays readable.
const (
	OrdersKey     = "naija_kart_orders"
	UsersKey      = "naija_kart_users"
	cartKeyPrefix = "naija_kart_cart_"
)

// CartKey derives the storage key for one user's cart snapshot. Distinct
// users get disjoint carts.
func CartKey(email string) string {
	return cartKeyPrefix + email
}
