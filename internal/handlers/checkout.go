package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"naijakart/internal/cart"
	"naijakart/internal/checkout"
	"naijakart/internal/middleware"
	"naijakart/internal/models"
)

type ShippingRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Address  string `json:"address" binding:"required"`
	City     string `json:"city" binding:"required"`
	State    string `json:"state" binding:"required"`
	Landmark string `json:"landmark"`
}

type ConfirmRequest struct {
	PaymentMethod string `json:"paymentMethod" binding:"required"`
}

// POST /checkout
func StartCheckout(manager *checkout.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /checkout"
		defer handlePanic(c, route)

		owner, ok := currentOwner(c)
		if !ok {
			respondWithError(c, http.StatusUnauthorized, route, "unauthorized")
			return
		}

		session, err := manager.Start(c.Request.Context(), owner)
		if err != nil {
			respondCheckoutError(c, route, err)
			return
		}

		log.Printf("[%s] session %s opened for %s", route, session.ID(), owner)
		c.JSON(http.StatusCreated, gin.H{
			"sessionId": session.ID(),
			"state":     session.State(),
		})
	}
}

// PUT /checkout/shipping
func SubmitShipping(manager *checkout.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /checkout/shipping"
		defer handlePanic(c, route)

		owner, ok := currentOwner(c)
		if !ok {
			respondWithError(c, http.StatusUnauthorized, route, "unauthorized")
			return
		}

		var req ShippingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		session, err := manager.Lookup(owner)
		if err != nil {
			respondCheckoutError(c, route, err)
			return
		}

		info := models.ShippingInfo{
			FullName: req.FullName,
			Phone:    req.Phone,
			Email:    req.Email,
			Address:  req.Address,
			City:     req.City,
			State:    req.State,
			Landmark: req.Landmark,
		}
		if err := session.SubmitShipping(info); err != nil {
			respondCheckoutError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"state": session.State()})
	}
}

// POST /checkout/back
func EditShipping(manager *checkout.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /checkout/back"
		defer handlePanic(c, route)

		owner, ok := currentOwner(c)
		if !ok {
			respondWithError(c, http.StatusUnauthorized, route, "unauthorized")
			return
		}

		session, err := manager.Lookup(owner)
		if err != nil {
			respondCheckoutError(c, route, err)
			return
		}
		if err := session.EditShipping(); err != nil {
			respondCheckoutError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"state":        session.State(),
			"shippingInfo": session.Shipping(),
		})
	}
}

// POST /checkout/confirm
func ConfirmPayment(manager *checkout.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /checkout/confirm"
		defer handlePanic(c, route)

		owner, ok := currentOwner(c)
		if !ok {
			respondWithError(c, http.StatusUnauthorized, route, "unauthorized")
			return
		}

		var req ConfirmRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		session, err := manager.Lookup(owner)
		if err != nil {
			respondCheckoutError(c, route, err)
			return
		}

		order, err := session.Confirm(c.Request.Context(), req.PaymentMethod)
		middleware.RecordOrderOperation("confirm", err == nil)
		if err != nil {
			respondCheckoutError(c, route, err)
			return
		}

		log.Printf("[%s] order %s confirmed for %s", route, order.ID, owner)
		c.JSON(http.StatusCreated, gin.H{
			"orderId": order.ID,
			"order":   order,
			"message": "order confirmed",
		})
	}
}

// DELETE /checkout
func AbortCheckout(manager *checkout.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /checkout"
		defer handlePanic(c, route)

		owner, ok := currentOwner(c)
		if !ok {
			respondWithError(c, http.StatusUnauthorized, route, "unauthorized")
			return
		}

		if err := manager.Abort(owner); err != nil {
			respondCheckoutError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "checkout dismissed"})
	}
}

func respondCheckoutError(c *gin.Context, route string, err error) {
	var validationErr *checkout.ValidationError
	var paymentErr *checkout.PaymentError

	switch {
	case errors.As(err, &validationErr):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":   "validation failed",
			"details": validationErr.Missing,
		})
	case errors.Is(err, cart.ErrAuthRequired):
		respondWithError(c, http.StatusUnauthorized, route, "login required")
	case errors.Is(err, checkout.ErrEmptyCart):
		respondWithError(c, http.StatusBadRequest, route, "cart is empty")
	case errors.Is(err, checkout.ErrNoSession):
		respondWithError(c, http.StatusNotFound, route, "no active checkout session")
	case errors.Is(err, checkout.ErrPaymentInFlight):
		respondWithError(c, http.StatusConflict, route, "payment already in progress")
	case errors.Is(err, checkout.ErrInvalidPaymentMethod):
		respondWithError(c, http.StatusBadRequest, route, "invalid payment method")
	case errors.Is(err, checkout.ErrInvalidTransition):
		respondWithError(c, http.StatusConflict, route, "action not allowed in current state")
	case errors.As(err, &paymentErr):
		respondWithError(c, http.StatusBadGateway, route, "payment failed")
	default:
		respondWithError(c, http.StatusInternalServerError, route, "checkout error")
	}
}
