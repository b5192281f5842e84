package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/speech-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/speech-service/internal/platform/logging"
)

// Recovery returns middleware that turns a panic into a 500 envelope.
// The panic value and stack are logged at ERROR with the request's ids;
// the client only sees the generic message and trace id.
//
// Apply it first so it covers every later middleware and handler.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}

			if r == http.ErrAbortHandler {
				panic(r)
			}

			ctx := c.Request.Context()
			logging.FromContextOr(ctx, logger).ErrorContext(ctx, "panic recovered",
				slog.String("error", fmt.Sprint(r)),
				slog.String("stack", string(debug.Stack())),
				slog.String("method", c.Request.Method),
				slog.String("path", c.Request.URL.Path),
				slog.String("trace_id", dto.GetTraceID(c)),
			)

			if c.Writer.Written() {
				c.Abort()
				return
			}

			dto.AbortWithStatus(c, http.StatusInternalServerError, dto.MessageInternalError)
		}()

		c.Next()
	}
}
