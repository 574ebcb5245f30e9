package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"naijakart/internal/models"
	"naijakart/internal/orders"
)

// GET /orders
func GetOrders(history *orders.History) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /orders"
		defer handlePanic(c, route)

		owner, ok := currentOwner(c)
		if !ok {
			respondWithError(c, http.StatusUnauthorized, route, "unauthorized")
			return
		}

		mine, err := history.ListByOwner(c.Request.Context(), owner)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "orders could not be fetched")
			return
		}
		if mine == nil {
			mine = []models.Order{}
		}
		c.JSON(http.StatusOK, mine)
	}
}
