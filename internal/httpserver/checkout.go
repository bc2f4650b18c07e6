package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"storefront-backend/internal/domain"
	checkoutsvc "storefront-backend/internal/service/checkout"
	"github.com/gin-gonic/gin"
)

func createCheckoutHandler(svc checkoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in checkoutsvc.CreateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
			return
		}
		claims := claimsFrom(c)
		co, err := svc.Create(c.Request.Context(), claims.UserID, in)
		if err != nil {
			var gone *domain.ProductGoneError
			var shortage *domain.StockShortageError
			switch {
			case errors.Is(err, checkoutsvc.ErrNoItems):
				c.JSON(http.StatusBadRequest, gin.H{"message": "No items in checkout"})
			case errors.Is(err, checkoutsvc.ErrInvalidQuantity):
				c.JSON(http.StatusBadRequest, gin.H{"message": "Quantity must be positive"})
			case errors.As(err, &gone):
				c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("Product not found: %s", gone.ProductID)})
			case errors.As(err, &shortage):
				c.JSON(http.StatusBadRequest, gin.H{"message": fmt.Sprintf("Insufficient stock for product: %s", shortage.Name)})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
			}
			return
		}
		c.JSON(http.StatusCreated, co)
	}
}

func getCheckoutHandler(svc checkoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := claimsFrom(c)
		co, err := svc.Get(c.Request.Context(), c.Param("id"), claims.UserID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Checkout not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
			return
		}
		c.JSON(http.StatusOK, co)
	}
}

type payRequest struct {
	PaymentStatus  string                 `json:"paymentStatus"`
	PaymentDetails map[string]interface{} `json:"paymentDetails"`
}

func payCheckoutHandler(svc checkoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in payRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
			return
		}
		claims := claimsFrom(c)
		co, err := svc.Pay(c.Request.Context(), c.Param("id"), claims.UserID, in.PaymentStatus, in.PaymentDetails)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"message": "Checkout not found"})
			case errors.Is(err, checkoutsvc.ErrInvalidPaymentStatus):
				c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid Payment Status"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
			}
			return
		}
		c.JSON(http.StatusOK, co)
	}
}

// finalizeCheckoutHandler converts a paid checkout into an order. Any
// commit-phase failure reported here arrives with stock already restored.
func finalizeCheckoutHandler(svc checkoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := claimsFrom(c)
		order, err := svc.Finalize(c.Request.Context(), c.Param("id"), claims.UserID)
		if err != nil {
			var gone *domain.ProductGoneError
			var shortage *domain.StockShortageError
			switch {
			case errors.As(err, &gone):
				c.JSON(http.StatusBadRequest, gin.H{"message": fmt.Sprintf("Product not found: %s", gone.Name)})
			case errors.As(err, &shortage):
				c.JSON(http.StatusBadRequest, gin.H{"message": fmt.Sprintf("Insufficient stock for: %s", shortage.Name)})
			case errors.Is(err, domain.ErrNotPaid):
				c.JSON(http.StatusBadRequest, gin.H{"message": "Checkout is not paid"})
			case errors.Is(err, domain.ErrAlreadyFinalized):
				c.JSON(http.StatusBadRequest, gin.H{"message": "Checkout already finalized"})
			case errors.Is(err, domain.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"message": "Checkout not found"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
			}
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}
