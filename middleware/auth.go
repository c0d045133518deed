package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/storelane/storefront-api/auth"
	"github.com/storelane/storefront-api/cache"
)

// RequireAuth validates the bearer token and puts user_id, email, and
// store_name on the context for downstream handlers.
func RequireAuth(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
		c.Abort()
		return
	}
	tokenString := strings.TrimPrefix(header, "Bearer ")

	if cache.TokenRevoked(c.Request.Context(), tokenString) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token has been revoked"})
		c.Abort()
		return
	}

	claims, err := auth.ParseToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	c.Set("user_id", claims["user_id"])
	c.Set("email", claims["email"])
	c.Set("store_name", claims["store_name"])

	c.Next()
}

// StoreName returns the caller's store from the validated token.
func StoreName(c *gin.Context) string {
	store, _ := c.Get("store_name")
	s, _ := store.(string)
	return s
}
