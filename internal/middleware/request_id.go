// Package middleware provides the HTTP middleware chain for the carton service.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader is the correlation header honored and echoed back.
	RequestIDHeader = "X-Request-ID"
)

// ContextKey keys values stored on the gin context.
type ContextKey string

const (
	// RequestIDKey is where the request ID lives on the context.
	RequestIDKey ContextKey = "request_id"
)

// RequestID guarantees every request carries an ID. Caller-supplied
// X-Request-ID values are kept so warehouse clients can correlate a
// recommendation with their own traces; otherwise a UUID is minted.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(string(RequestIDKey), requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// GetRequestID returns the request ID set by RequestID, or empty.
func GetRequestID(c *gin.Context) string {
	if id, exists := c.Get(string(RequestIDKey)); exists {
		if requestID, ok := id.(string); ok {
			return requestID
		}
	}
	return ""
}
