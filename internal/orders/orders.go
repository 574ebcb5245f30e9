package orders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"naijakart/internal/models"
	"naijakart/internal/store"
)

// History is the append-only order record. All orders live as one ordered
// sequence under a single global key; records are never modified after they
// are appended.
type History struct {
	kv store.KV
}

func NewHistory(kv store.KV) *History {
	return &History{kv: kv}
}

func (h *History) Append(ctx context.Context, order models.Order) error {
	existing, err := h.List(ctx)
	if err != nil {
		return err
	}

	existing = append(existing, order)
	raw, err := json.Marshal(existing)
	if err != nil {
		return fmt.Errorf("encode order history: %w", err)
	}
	return h.kv.Put(ctx, store.OrdersKey, raw)
}

func (h *History) List(ctx context.Context) ([]models.Order, error) {
	raw, err := h.kv.Get(ctx, store.OrdersKey)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var all []models.Order
	if err := json.Unmarshal(raw, &all); err != nil {
		return nil, fmt.Errorf("decode order history: %w", err)
	}
	return all, nil
}

// Remove takes a just-appended order back out of the history. It exists only
// as the compensation step for a checkout commit whose cart-clear could not
// be persisted; completed orders are otherwise never touched.
func (h *History) Remove(ctx context.Context, id string) error {
	all, err := h.List(ctx)
	if err != nil {
		return err
	}

	kept := all[:0]
	for _, order := range all {
		if order.ID != id {
			kept = append(kept, order)
		}
	}

	raw, err := json.Marshal(kept)
	if err != nil {
		return fmt.Errorf("encode order history: %w", err)
	}
	return h.kv.Put(ctx, store.OrdersKey, raw)
}

// ListByOwner filters the global history down to one shopper's orders,
// preserving append order.
func (h *History) ListByOwner(ctx context.Context, owner string) ([]models.Order, error) {
	all, err := h.List(ctx)
	if err != nil {
		return nil, err
	}

	var mine []models.Order
	for _, order := range all {
		if order.Owner == owner {
			mine = append(mine, order)
		}
	}
	return mine, nil
}
