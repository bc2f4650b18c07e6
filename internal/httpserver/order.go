package httpserver

import (
	"errors"
	"net/http"

	"storefront-backend/internal/domain"
	"github.com/gin-gonic/gin"
)

func listMyOrdersHandler(svc orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := claimsFrom(c)
		orders, err := svc.ListByUser(c.Request.Context(), claims.UserID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
			return
		}
		if orders == nil {
			orders = []domain.Order{}
		}
		c.JSON(http.StatusOK, orders)
	}
}

func getOrderHandler(svc orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := claimsFrom(c)
		o, err := svc.Get(c.Request.Context(), c.Param("id"), claims.UserID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
			return
		}
		c.JSON(http.StatusOK, o)
	}
}
