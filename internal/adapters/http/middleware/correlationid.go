package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/speech-service/internal/platform/logging"
)

const (
	// HeaderCorrelationID is the header carrying the id of the calling transaction.
	// Unlike the request id it is propagated unchanged across services.
	HeaderCorrelationID = "X-Correlation-ID"

	// ContextKeyCorrelationID is the gin context key of the correlation id.
	ContextKeyCorrelationID = "correlation_id"
)

// CorrelationID returns middleware that propagates X-Correlation-ID, starting a new
// UUID v4 when the caller sent none.
func CorrelationID() gin.HandlerFunc {
	return createIDMiddleware(idMiddlewareConfig{
		headerName:      HeaderCorrelationID,
		contextKey:      ContextKeyCorrelationID,
		contextEnricher: logging.WithCorrelationID,
	})
}

// GetCorrelationID returns the correlation id, or "" when the middleware did not run.
func GetCorrelationID(c *gin.Context) string {
	return getIDFromContext(c, ContextKeyCorrelationID)
}
