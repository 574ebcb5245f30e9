package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"naijakart/internal/catalog"
	"naijakart/internal/models"
	"naijakart/internal/store"
)

// Delivery pricing. Orders at or above the threshold ship free.
const (
	FreeDeliveryThreshold int64 = 5000
	DeliveryFee           int64 = 1000
)

// ErrAuthRequired is returned when a cart operation is attempted without an
// authenticated owner. No mutation happens in that case.
var ErrAuthRequired = errors.New("cart: authentication required")

// Lookup resolves a product id against the catalog.
type Lookup interface {
	Lookup(ctx context.Context, id string) (models.Product, error)
}

// Service owns cart mutations. Each owner (authenticated email) has an
// ordered line list persisted as one snapshot under the owner's storage key;
// every mutation writes the full snapshot before returning.
type Service struct {
	kv       store.KV
	products Lookup
}

func NewService(kv store.KV, products Lookup) *Service {
	return &Service{kv: kv, products: products}
}

// Get loads the owner's cart. A missing snapshot is an empty cart.
func (s *Service) Get(ctx context.Context, owner string) ([]models.CartLine, error) {
	if err := requireOwner(owner); err != nil {
		return nil, err
	}
	return s.load(ctx, owner)
}

// Add puts one unit of the product into the cart. An existing line has its
// quantity incremented; its snapshotted name/price/image/unit are left as
// they were at the time of the first add. Out-of-stock products are rejected
// here, at the add stage only.
func (s *Service) Add(ctx context.Context, owner, productID string) ([]models.CartLine, error) {
	if err := requireOwner(owner); err != nil {
		return nil, err
	}

	product, err := s.products.Lookup(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !product.InStock {
		return nil, catalog.ErrOutOfStock
	}

	lines, err := s.load(ctx, owner)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		lines = append(lines, models.CartLine{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Image:     product.Image,
			Unit:      product.Unit,
			Quantity:  1,
		})
	}

	if err := s.save(ctx, owner, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// SetQuantity sets a line to exactly qty. A qty below 1 removes the line;
// zero quantity is never stored. Quantity edits do not re-check stock: the
// in-stock gate applies to Add only.
func (s *Service) SetQuantity(ctx context.Context, owner, productID string, qty int) ([]models.CartLine, error) {
	if err := requireOwner(owner); err != nil {
		return nil, err
	}
	if qty < 1 {
		return s.Remove(ctx, owner, productID)
	}

	lines, err := s.load(ctx, owner)
	if err != nil {
		return nil, err
	}

	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Quantity = qty
			break
		}
	}

	if err := s.save(ctx, owner, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// Remove deletes the line if present. Removing an absent id is not an error.
func (s *Service) Remove(ctx context.Context, owner, productID string) ([]models.CartLine, error) {
	if err := requireOwner(owner); err != nil {
		return nil, err
	}

	lines, err := s.load(ctx, owner)
	if err != nil {
		return nil, err
	}

	kept := lines[:0]
	for _, line := range lines {
		if line.ProductID != productID {
			kept = append(kept, line)
		}
	}

	if err := s.save(ctx, owner, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

// Clear empties the owner's cart.
func (s *Service) Clear(ctx context.Context, owner string) error {
	if err := requireOwner(owner); err != nil {
		return err
	}
	return s.kv.Delete(ctx, store.CartKey(owner))
}

// Totals derives the cart amounts from the current lines. It is a pure
// function of its input.
func Totals(lines []models.CartLine) models.Totals {
	var subtotal int64
	for _, line := range lines {
		subtotal += line.Price * int64(line.Quantity)
	}

	fee := DeliveryFee
	if subtotal >= FreeDeliveryThreshold {
		fee = 0
	}

	return models.Totals{
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Total:       subtotal + fee,
	}
}

func requireOwner(owner string) error {
	if strings.TrimSpace(owner) == "" {
		return ErrAuthRequired
	}
	return nil
}

func (s *Service) load(ctx context.Context, owner string) ([]models.CartLine, error) {
	raw, err := s.kv.Get(ctx, store.CartKey(owner))
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var lines []models.CartLine
	if err := json.Unmarshal(raw, &lines); err != nil {
		return nil, fmt.Errorf("decode cart snapshot: %w", err)
	}
	return lines, nil
}

func (s *Service) save(ctx context.Context, owner string, lines []models.CartLine) error {
	if lines == nil {
		lines = []models.CartLine{}
	}
	raw, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("encode cart snapshot: %w", err)
	}
	return s.kv.Put(ctx, store.CartKey(owner), raw)
}
