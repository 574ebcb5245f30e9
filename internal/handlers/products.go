package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"naijakart/internal/catalog"
	"naijakart/internal/models"
)

/*
GET /products
- category and search filters are independent and combine as an intersection
- pagination is applied only when both page and limit are present
*/
func GetProducts(source catalog.Source) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /products"
		defer handlePanic(c, route)

		log.Printf(
			"[%s] hit page=%s limit=%s category=%s search=%s",
			route,
			c.Query("page"),
			c.Query("limit"),
			c.Query("category"),
			c.Query("search"),
		)

		products, err := source.ListAll(c.Request.Context())
		if err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "catalog unavailable")
			return
		}

		category := strings.TrimSpace(c.Query("category"))
		if category == "" {
			category = catalog.CategoryAll
		}
		filtered := catalog.Filter(products, category, c.Query("search"))

		pageStr := c.Query("page")
		limitStr := c.Query("limit")
		if pageStr != "" && limitStr != "" {
			page, limit, err := parsePaginationParams(pageStr, limitStr)
			if err != nil {
				respondWithError(c, http.StatusBadRequest, route, "invalid pagination params")
				return
			}
			filtered = paginate(filtered, page, limit)
		}

		log.Printf("[%s] returning %d products", route, len(filtered))
		c.JSON(http.StatusOK, filtered)
	}
}

// GET /categories
func GetCategories(source catalog.Source) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, source.Categories())
	}
}

func paginate(products []models.Product, page, limit int) []models.Product {
	start := (page - 1) * limit
	if start >= len(products) {
		return []models.Product{}
	}
	end := start + limit
	if end > len(products) {
		end = len(products)
	}
	return products[start:end]
}
