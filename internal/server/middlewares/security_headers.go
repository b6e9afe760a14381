package middlewares

import (
	"github.com/gin-gonic/gin"
)

// SecurityHeaders adds headers that keep browsers from framing or sniffing API responses.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Prevent clickjacking attacks
		c.Header("X-Frame-Options", "DENY")

		// Prevent MIME type sniffing
		c.Header("X-Content-Type-Options", "nosniff")

		// Control referrer information
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")

		c.Next()
	}
}
