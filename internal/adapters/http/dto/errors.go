package dto

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/speech-service/internal/domain"
	"github.com/jsamuelsen/speech-service/internal/platform/logging"
)

// Envelope messages shared by the error responses.
const (
	MessageValidationFailed = "Validation failed"
	MessageInternalError    = "Internal server error"
	MessageUnavailable      = "Service temporarily unavailable"
	MessageRequestTimeout   = "Request timed out"
	MessageBodyTooLarge     = "Request body too large"
)

// TraceIDKey is the gin context key holding the trace ID of the request.
const TraceIDKey = "trace_id"

// MapDomainError maps an error to an HTTP status code and response envelope.
// Unknown errors are mapped to 500 Internal Server Error with a generic message.
func MapDomainError(err error) (int, *Response) {
	if err == nil {
		return http.StatusOK, nil
	}

	var maxBytesErr *http.MaxBytesError

	switch {
	case errors.As(err, &maxBytesErr):
		return http.StatusRequestEntityTooLarge, NewErrorResponse(http.StatusRequestEntityTooLarge, MessageBodyTooLarge,
			fmt.Sprintf("body: must not exceed %d bytes", maxBytesErr.Limit))

	case errors.Is(err, ErrBinding) || errors.Is(err, ErrValidation):
		return http.StatusBadRequest, NewErrorResponse(http.StatusBadRequest, MessageValidationFailed, ValidationErrors(err)...)

	case domain.IsValidation(err):
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) && validationErr.Field != "" {
			return http.StatusBadRequest, NewErrorResponse(http.StatusBadRequest, MessageValidationFailed,
				validationErr.Field+": "+validationErr.Message)
		}

		return http.StatusBadRequest, NewErrorResponse(http.StatusBadRequest, MessageValidationFailed, err.Error())

	case domain.IsNotFound(err):
		return http.StatusNotFound, NewErrorResponse(http.StatusNotFound, sentence(notFoundMessage(err)))

	case domain.IsConflict(err):
		var conflictErr *domain.ConflictError
		if errors.As(err, &conflictErr) {
			return http.StatusConflict, NewErrorResponse(http.StatusConflict, sentence(conflictErr.Reason))
		}

		return http.StatusConflict, NewErrorResponse(http.StatusConflict, sentence(err.Error()))

	case domain.IsUnavailable(err):
		return http.StatusServiceUnavailable, NewErrorResponse(http.StatusServiceUnavailable, MessageUnavailable)

	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, NewErrorResponse(http.StatusServiceUnavailable, MessageRequestTimeout)

	default:
		// Unknown errors get a generic message to avoid leaking internals.
		return http.StatusInternalServerError, NewErrorResponse(http.StatusInternalServerError,
			MessageInternalError, "an unexpected error occurred")
	}
}

// HandleError writes the error envelope for err, including the trace ID.
// Internal errors are logged with full details.
func HandleError(c *gin.Context, err error) {
	status, resp := MapDomainError(err)
	resp.WithTraceID(GetTraceID(c))

	if status == http.StatusInternalServerError {
		logging.FromContext(c.Request.Context()).ErrorContext(c.Request.Context(), "internal error",
			"error", err.Error(),
			"trace_id", resp.TraceID,
		)
	}

	c.JSON(status, resp)
}

// AbortWithError aborts the request chain and writes the error envelope.
// Use this in middleware when you want to stop further processing.
func AbortWithError(c *gin.Context, err error) {
	status, resp := MapDomainError(err)
	c.AbortWithStatusJSON(status, resp.WithTraceID(GetTraceID(c)))
}

// AbortWithStatus aborts the request chain with a fixed status and message.
func AbortWithStatus(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, NewErrorResponse(status, message).WithTraceID(GetTraceID(c)))
}

// GetTraceID returns the trace ID of the request.
// It prefers an explicit context value, then the active span, then the request ID
// echoed on the response, then the X-Request-ID request header.
func GetTraceID(c *gin.Context) string {
	if v, ok := c.Get(TraceIDKey); ok {
		if id, ok := v.(string); ok {
			return id
		}

		return ""
	}

	if c.Request == nil {
		return ""
	}

	if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().HasTraceID() {
		return span.SpanContext().TraceID().String()
	}

	if id := c.Writer.Header().Get("X-Request-ID"); id != "" {
		return id
	}

	return c.GetHeader("X-Request-ID")
}

// bindingMessages renders JSON decoding failures as "field: message" strings.
func bindingMessages(err error) []string {
	var (
		syntaxErr    *json.SyntaxError
		typeErr      *json.UnmarshalTypeError
		timeParseErr *time.ParseError
	)

	switch {
	case errors.Is(err, io.EOF):
		return []string{"body: request body is required"}
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return []string{"body: malformed JSON"}
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "body"
		}

		return []string{field + ": must be a " + typeErr.Type.String()}
	case errors.As(err, &timeParseErr):
		return []string{"body: timestamps must be RFC 3339 with an offset, e.g. 2023-01-01T00:00:00Z"}
	default:
		return []string{"body: " + err.Error()}
	}
}

func notFoundMessage(err error) string {
	var notFound *domain.NotFoundError
	if errors.As(err, &notFound) {
		return notFound.Error()
	}

	return err.Error()
}

// sentence capitalizes the first letter of s.
func sentence(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return string(unicode.ToUpper(r)) + s[size:]
}
