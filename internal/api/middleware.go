package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Constants for context keys and headers
const (
	ContextRequestIDKey = "requestID"
	HeaderRequestID     = "X-Request-ID"
)

// RequestIDMiddleware tags every request with an id, reusing the caller's
// X-Request-ID when present, so log lines can be matched to responses.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ContextRequestIDKey, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// CORSMiddleware lets the browser client at allowedOrigin call the API.
// An empty origin disables the headers entirely.
func CORSMiddleware(allowedOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if allowedOrigin == "" {
			c.Next()
			return
		}
		c.Header("Access-Control-Allow-Origin", allowedOrigin)
		c.Header("Access-Control-Allow-Headers", "Content-Type, "+HeaderRequestID)
		c.Header("Access-Control-Allow-Methods", "POST, OPTIONS")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// requestIDFrom returns the id set by RequestIDMiddleware, if any.
func requestIDFrom(c *gin.Context) string {
	return c.GetString(ContextRequestIDKey)
}
