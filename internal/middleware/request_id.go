// Package middleware provides gin middleware shared by all routes.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the gin context key holding the request's correlation ID
const RequestIDKey = "RequestID"

// RequestIDHeader carries the correlation ID on requests and responses
const RequestIDHeader = "X-Request-ID"

// RequestID adds a unique request ID to each request.
// An ID supplied by the caller is kept; otherwise a new UUID is generated.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()
	}
}
