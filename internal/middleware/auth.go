package middleware

import (
	"net/http"
	"strings"

	"shopvid_backend/internal/logger"
	"shopvid_backend/internal/shopify"
	"shopvid_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// SessionAuthMiddleware verifies the embedded-app session token and puts
// the tenant (shop domain) into the context. The OAuth handshake that
// issues these tokens is external; every admin handler downstream only
// consumes the shop identity.
func SessionAuthMiddleware(apiKey, apiSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		shop, err := shopify.VerifySessionToken(tokenStr, apiKey, apiSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid session token"})
			return
		}

		c.Set(string(contextkeys.ShopContextKey), shop)
		c.Request = c.Request.WithContext(logger.WithShop(c.Request.Context(), shop))
		c.Next()
	}
}

// GetShop extracts the authenticated shop domain from the gin context.
func GetShop(c *gin.Context) string {
	shop, exists := c.Get(string(contextkeys.ShopContextKey))
	if !exists {
		return ""
	}

	s, ok := shop.(string)
	if !ok {
		return ""
	}

	return s
}
