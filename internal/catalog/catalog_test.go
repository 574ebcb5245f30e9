package catalog

import (
	"context"
	"testing"
)

func TestSearchEmptyQueryReturnsFullCatalog(t *testing.T) {
	source := NewStatic()
	products, err := source.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll returned error: %v", err)
	}

	for _, query := range []string{"", "   ", "\t"} {
		got := Search(products, query)
		if len(got) != len(products) {
			t.Fatalf("query %q: expected %d products, got %d", query, len(products), len(got))
		}
	}
}

func TestSearchMatchesCaseInsensitively(t *testing.T) {
	source := NewStatic()
	products, _ := source.ListAll(context.Background())

	got := Search(products, "ata")
	if len(got) == 0 {
		t.Fatal("expected at least one match for query 'ata'")
	}
	found := false
	for _, p := range got {
		if p.Name == "Fresh Pepper (Ata Rodo)" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected 'Fresh Pepper (Ata Rodo)' to match query 'ata'")
	}

	upper := Search(products, "ATA")
	if len(upper) != len(got) {
		t.Fatalf("expected case-insensitive search, got %d vs %d matches", len(upper), len(got))
	}
}

func TestSearchMatchesTags(t *testing.T) {
	source := NewStatic()
	products, _ := source.ListAll(context.Background())

	got := Search(products, "vitamin-c")
	if len(got) != 1 || got[0].Name != "Sweet Oranges" {
		t.Fatalf("expected tag search to find Sweet Oranges, got %v", got)
	}
}

func TestByCategoryAllIsIdentity(t *testing.T) {
	source := NewStatic()
	products, _ := source.ListAll(context.Background())

	got := ByCategory(products, CategoryAll)
	if len(got) != len(products) {
		t.Fatalf("expected identity filter for %q, got %d of %d", CategoryAll, len(got), len(products))
	}
}

func TestByCategoryExactMatch(t *testing.T) {
	source := NewStatic()
	products, _ := source.ListAll(context.Background())

	got := ByCategory(products, "Vegetables")
	if len(got) != 4 {
		t.Fatalf("expected 4 vegetables, got %d", len(got))
	}
	for _, p := range got {
		if p.Category != "Vegetables" {
			t.Fatalf("unexpected category %q in filtered set", p.Category)
		}
	}
}

func TestFilterIsIntersection(t *testing.T) {
	source := NewStatic()
	products, _ := source.ListAll(context.Background())

	// "fresh" matches products across several categories; the category
	// filter must still cut the result down to one of them.
	combined := Filter(products, "Meat & Fish", "fresh")
	if len(combined) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(combined))
	}

	// The two predicates are independent, so order must not matter.
	reversed := ByCategory(Search(products, "fresh"), "Meat & Fish")
	if len(reversed) != len(combined) {
		t.Fatalf("filter order changed the result: %d vs %d", len(reversed), len(combined))
	}
}

func TestLookup(t *testing.T) {
	source := NewStatic()

	p, err := source.Lookup(context.Background(), "9")
	if err != nil {
		t.Fatalf("Lookup returned error: %v", err)
	}
	if p.Name != "Local Rice (Ofada)" || p.Price != 8000 {
		t.Fatalf("unexpected product: %+v", p)
	}

	if _, err := source.Lookup(context.Background(), "999"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestOriginalPriceNeverBelowPrice(t *testing.T) {
	source := NewStatic()
	products, _ := source.ListAll(context.Background())

	if len(products) != 24 {
		t.Fatalf("expected 24 products, got %d", len(products))
	}
	for _, p := range products {
		if p.OriginalPrice != 0 && p.OriginalPrice < p.Price {
			t.Fatalf("product %s: originalPrice %d below price %d", p.ID, p.OriginalPrice, p.Price)
		}
		if p.Price < 0 {
			t.Fatalf("product %s: negative price", p.ID)
		}
	}
}
