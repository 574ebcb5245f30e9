package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"naijakart/internal/cart"
	"naijakart/internal/catalog"
	"naijakart/internal/middleware"
	"naijakart/internal/models"
)

type AddCartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// GET /cart
func GetCart(carts *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /cart"
		defer handlePanic(c, route)

		owner, ok := currentOwner(c)
		if !ok {
			respondWithError(c, http.StatusUnauthorized, route, "unauthorized")
			return
		}

		lines, err := carts.Get(c.Request.Context(), owner)
		if err != nil {
			respondCartError(c, route, err)
			return
		}
		respondCart(c, lines)
	}
}

// POST /cart/items
func AddCartItem(carts *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /cart/items"
		defer handlePanic(c, route)

		owner, ok := currentOwner(c)
		if !ok {
			respondWithError(c, http.StatusUnauthorized, route, "unauthorized")
			return
		}

		var req AddCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		lines, err := carts.Add(c.Request.Context(), owner, req.ProductID)
		middleware.RecordCartOperation("add", err == nil)
		if err != nil {
			respondCartError(c, route, err)
			return
		}

		log.Printf("[%s] product %s added for %s", route, req.ProductID, owner)
		respondCart(c, lines)
	}
}

// PUT /cart/items/:id
func UpdateCartItem(carts *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /cart/items/:id"
		defer handlePanic(c, route)

		owner, ok := currentOwner(c)
		if !ok {
			respondWithError(c, http.StatusUnauthorized, route, "unauthorized")
			return
		}

		var req UpdateCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		lines, err := carts.SetQuantity(c.Request.Context(), owner, c.Param("id"), req.Quantity)
		middleware.RecordCartOperation("set_quantity", err == nil)
		if err != nil {
			respondCartError(c, route, err)
			return
		}
		respondCart(c, lines)
	}
}

// DELETE /cart/items/:id
func RemoveCartItem(carts *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /cart/items/:id"
		defer handlePanic(c, route)

		owner, ok := currentOwner(c)
		if !ok {
			respondWithError(c, http.StatusUnauthorized, route, "unauthorized")
			return
		}

		lines, err := carts.Remove(c.Request.Context(), owner, c.Param("id"))
		middleware.RecordCartOperation("remove", err == nil)
		if err != nil {
			respondCartError(c, route, err)
			return
		}
		respondCart(c, lines)
	}
}

func respondCart(c *gin.Context, lines []models.CartLine) {
	if lines == nil {
		lines = []models.CartLine{}
	}
	c.JSON(http.StatusOK, gin.H{
		"items":  lines,
		"totals": cart.Totals(lines),
	})
}

func respondCartError(c *gin.Context, route string, err error) {
	switch {
	case errors.Is(err, cart.ErrAuthRequired):
		respondWithError(c, http.StatusUnauthorized, route, "login required")
	case errors.Is(err, catalog.ErrNotFound):
		respondWithError(c, http.StatusNotFound, route, "product not found")
	case errors.Is(err, catalog.ErrOutOfStock):
		respondWithError(c, http.StatusBadRequest, route, "product out of stock")
	default:
		respondWithError(c, http.StatusInternalServerError, route, "cart storage error")
	}
}
