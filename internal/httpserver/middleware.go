package httpserver

import (
	"net/http"
	"strings"

	authsvc "storefront-backend/internal/service/auth"
	"github.com/gin-gonic/gin"
)

const claimsKey = "authClaims"

// authRequired validates the bearer token and stores the caller's
// claims on the gin context.
func authRequired(svc authService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, no token"})
			return
		}
		claims, err := svc.ParseToken(strings.TrimSpace(token))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, token failed"})
			return
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// adminRequired rejects non-admin callers. Must run after authRequired.
func adminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := claimsFrom(c)
		if !claims.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Not authorized as admin"})
			return
		}
		c.Next()
	}
}

func claimsFrom(c *gin.Context) authsvc.Claims {
	v, ok := c.Get(claimsKey)
	if !ok {
		return authsvc.Claims{}
	}
	claims, _ := v.(authsvc.Claims)
	return claims
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			origins = append(origins, v)
		}
	}
	return origins
}
