package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/xid"
)

const (
	// RequestIDContextKey is a gin context key for the request identifier.
	RequestIDContextKey = "requestID"
	requestIDHeader     = "X-Request-Id"
)

// RequestID assigns each request a unique identifier, reusing the one a
// proxy already set when present.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = xid.New().String()
		}
		c.Set(RequestIDContextKey, id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

// CurrentRequestID extracts the request identifier from context.
func CurrentRequestID(c *gin.Context) string {
	val, ok := c.Get(RequestIDContextKey)
	if !ok {
		return ""
	}
	id, _ := val.(string)
	return id
}
