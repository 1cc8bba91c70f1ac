package middleware

import "github.com/gin-gonic/gin"

// requestIDKey is the key used to store the request id in the Gin context.
const requestIDKey = contextKey("requestID")

// GetRequestIDFromContext returns the id assigned by StructuredLoggingMiddleware.
func GetRequestIDFromContext(c *gin.Context) (string, bool) {
	val, exists := c.Get(string(requestIDKey))
	if !exists {
		return "", false
	}
	id, ok := val.(string)
	return id, ok
}
