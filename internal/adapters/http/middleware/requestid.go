// Package middleware provides the gin middleware chain of the HTTP adapter:
// panic recovery, request and correlation ids, access logging and request deadlines.
package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/speech-service/internal/platform/logging"
)

const (
	// HeaderRequestID is the header carrying the per-request id.
	HeaderRequestID = "X-Request-ID"

	// ContextKeyRequestID is the gin context key of the request id.
	ContextKeyRequestID = "request_id"
)

// RequestID returns middleware that reuses the X-Request-ID header or generates a UUID v4,
// echoes it on the response and adds it to the request logger.
func RequestID() gin.HandlerFunc {
	return createIDMiddleware(idMiddlewareConfig{
		headerName:      HeaderRequestID,
		contextKey:      ContextKeyRequestID,
		contextEnricher: logging.WithRequestID,
	})
}

// GetRequestID returns the request id, or "" when the middleware did not run.
func GetRequestID(c *gin.Context) string {
	return getIDFromContext(c, ContextKeyRequestID)
}
