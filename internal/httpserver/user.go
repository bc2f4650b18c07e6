package httpserver

import (
	"errors"
	"net/http"

	"storefront-backend/internal/domain"
	authsvc "storefront-backend/internal/service/auth"
	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type authResponse struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

func registerHandler(svc authService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in authsvc.RegisterInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
			return
		}
		u, token, err := svc.Register(c.Request.Context(), in)
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, authResponse{User: u, Token: token})
	}
}

func loginHandler(svc authService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in loginRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
			return
		}
		u, token, err := svc.Login(c.Request.Context(), in.Email, in.Password)
		if err != nil {
			if errors.Is(err, authsvc.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
			return
		}
		c.JSON(http.StatusOK, authResponse{User: u, Token: token})
	}
}

func profileHandler(svc authService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := claimsFrom(c)
		u, err := svc.Lookup(c.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
			return
		}
		c.JSON(http.StatusOK, u)
	}
}
