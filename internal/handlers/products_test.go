package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"naijakart/internal/catalog"
	"naijakart/internal/models"
)

func getProducts(t *testing.T, query string) (int, []models.Product) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest("GET", "/products"+query, nil)

	GetProducts(catalog.NewStatic())(c)

	var products []models.Product
	if rec.Code == 200 {
		if err := json.Unmarshal(rec.Body.Bytes(), &products); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
	return rec.Code, products
}

func TestGetProductsReturnsFullCatalog(t *testing.T) {
	code, products := getProducts(t, "")
	if code != 200 {
		t.Fatalf("expected 200, got %d", code)
	}
	if len(products) != 24 {
		t.Fatalf("expected 24 products, got %d", len(products))
	}
}

func TestGetProductsSearchIsCaseInsensitive(t *testing.T) {
	code, products := getProducts(t, "?search=ATA")
	if code != 200 {
		t.Fatalf("expected 200, got %d", code)
	}
	if len(products) == 0 {
		t.Fatal("expected matches for search=ATA")
	}
	for _, p := range products {
		if p.Name == "Fresh Pepper (Ata Rodo)" {
			return
		}
	}
	t.Fatalf("expected Fresh Pepper (Ata Rodo) in results, got %d others", len(products))
}

func TestGetProductsCombinesCategoryAndSearch(t *testing.T) {
	code, products := getProducts(t, "?category=Vegetables&search=soup")
	if code != 200 {
		t.Fatalf("expected 200, got %d", code)
	}
	for _, p := range products {
		if p.Category != "Vegetables" {
			t.Fatalf("expected only Vegetables, got %s", p.Category)
		}
	}
}

func TestGetProductsPagination(t *testing.T) {
	code, all := getProducts(t, "")
	if code != 200 {
		t.Fatalf("expected 200, got %d", code)
	}

	code, page2 := getProducts(t, "?page=2&limit=10")
	if code != 200 {
		t.Fatalf("expected 200, got %d", code)
	}
	if len(page2) != 10 {
		t.Fatalf("expected 10 products on page 2, got %d", len(page2))
	}
	if page2[0].ID != all[10].ID {
		t.Fatalf("expected page 2 to start at product %s, got %s", all[10].ID, page2[0].ID)
	}

	code, tail := getProducts(t, "?page=3&limit=10")
	if code != 200 || len(tail) != 4 {
		t.Fatalf("expected 4 products on last page, got %d (code %d)", len(tail), code)
	}

	code, _ = getProducts(t, "?page=0&limit=10")
	if code != 400 {
		t.Fatalf("expected 400 for invalid page, got %d", code)
	}
}

func TestGetCategories(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest("GET", "/categories", nil)

	GetCategories(catalog.NewStatic())(c)

	var categories []string
	if err := json.Unmarshal(rec.Body.Bytes(), &categories); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(categories) == 0 || categories[0] != catalog.CategoryAll {
		t.Fatalf("expected categories starting with %q, got %v", catalog.CategoryAll, categories)
	}
}
