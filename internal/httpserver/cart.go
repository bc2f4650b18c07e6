package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"storefront-backend/internal/domain"
	cartsvc "storefront-backend/internal/service/cart"
	"github.com/gin-gonic/gin"
)

func getCartHandler(svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := claimsFrom(c)
		cart, err := svc.Get(c.Request.Context(), claims.UserID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

func addCartItemHandler(svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in cartsvc.AddItemInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
			return
		}
		claims := claimsFrom(c)
		cart, err := svc.AddItem(c.Request.Context(), claims.UserID, in)
		if err != nil {
			var gone *domain.ProductGoneError
			if errors.As(err, &gone) {
				c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("Product not found: %s", gone.ProductID)})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}
