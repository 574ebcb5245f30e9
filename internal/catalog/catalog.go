package catalog

import (
	"context"
	"errors"
	"strings"

	"naijakart/internal/models"
)

// CategoryAll is the sentinel category that disables category filtering.
const CategoryAll = "All"

var (
	ErrNotFound   = errors.New("catalog: product not found")
	ErrOutOfStock = errors.New("catalog: product out of stock")
)

// Source lists purchasable products. The static implementation below serves
// the demo; a live inventory service can replace it without touching cart or
// checkout code.
type Source interface {
	ListAll(ctx context.Context) ([]models.Product, error)
	Categories() []string
}

// Static serves the fixed product list defined in data.go.
type Static struct {
	products []models.Product
	byID     map[string]models.Product
}

func NewStatic() *Static {
	s := &Static{
		products: defaultProducts,
		byID:     make(map[string]models.Product, len(defaultProducts)),
	}
	for _, p := range defaultProducts {
		s.byID[p.ID] = p
	}
	return s
}

func (s *Static) ListAll(_ context.Context) ([]models.Product, error) {
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

func (s *Static) Categories() []string {
	out := make([]string, len(defaultCategories))
	copy(out, defaultCategories)
	return out
}

// Lookup returns the product with the given id.
func (s *Static) Lookup(_ context.Context, id string) (models.Product, error) {
	p, ok := s.byID[id]
	if !ok {
		return models.Product{}, ErrNotFound
	}
	return p, nil
}

// ByCategory keeps products in the given category. The "All" sentinel is an
// identity filter.
func ByCategory(products []models.Product, category string) []models.Product {
	if category == CategoryAll {
		return products
	}

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Search keeps products whose name, description, category or tags contain
// the query, case-insensitively. An empty or whitespace-only query keeps
// everything.
func Search(products []models.Product, query string) []models.Product {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return products
	}

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if matches(p, term) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func matches(p models.Product, term string) bool {
	if strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Description), term) ||
		strings.Contains(strings.ToLower(p.Category), term) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

// Filter applies the category and search predicates as an intersection. The
// two are independent, so the order they run in does not matter.
func Filter(products []models.Product, category, query string) []models.Product {
	return Search(ByCategory(products, category), query)
}
