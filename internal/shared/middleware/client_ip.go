package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"dadadu-backend/internal/shared/utils"
)

type clientIPKey struct{}

// ClientIPMiddleware extracts the client IP address from the request
// and injects it into the context for downstream handlers to use.
// Register early in the chain so all handlers see it.
func ClientIPMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := utils.ExtractClientIP(c)

		// gin-level for handlers, request context for services
		c.Set("client_ip", clientIP)
		ctx := context.WithValue(c.Request.Context(), clientIPKey{}, clientIP)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetClientIPFromContext retrieves the client IP from context.
// Returns empty string if not found.
func GetClientIPFromContext(ctx context.Context) string {
	if ip, ok := ctx.Value(clientIPKey{}).(string); ok {
		return ip
	}
	return ""
}
