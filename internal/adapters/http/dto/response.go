// Package dto provides Data Transfer Objects for HTTP request/response handling.
package dto

// Response is the envelope for every API response, success or failure.
//
//	{"status": 200, "message": "Speech retrieved successfully", "data": {...}}
//	{"status": 400, "message": "Validation failed", "errors": ["content: must not be blank"]}
type Response struct {
	// Status repeats the HTTP status code.
	Status int `json:"status"`

	// Message is a human-readable summary.
	Message string `json:"message"`

	// Data holds the payload of successful responses.
	Data any `json:"data,omitempty"`

	// Errors lists individual problems, as "field: message" for validation failures.
	Errors []string `json:"errors,omitempty"`

	// TraceID correlates the response with server-side traces and logs.
	TraceID string `json:"traceId,omitempty"`
}

// NewResponse creates a success envelope.
func NewResponse(status int, message string, data any) *Response {
	return &Response{
		Status:  status,
		Message: message,
		Data:    data,
	}
}

// NewErrorResponse creates a failure envelope with optional error details.
func NewErrorResponse(status int, message string, errs ...string) *Response {
	resp := &Response{
		Status:  status,
		Message: message,
	}

	if len(errs) > 0 {
		resp.Errors = errs
	}

	return resp
}

// WithTraceID adds a trace ID to the response.
func (r *Response) WithTraceID(traceID string) *Response {
	r.TraceID = traceID
	return r
}
