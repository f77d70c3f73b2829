// Package respond owns the canonical JSON envelope every endpoint uses:
//
//	{"success": bool, "message": ..., "data": ..., "errors": [...]}
//
// Handlers emit success envelopes directly; failures travel as errors to
// the central HTTP error handler, which renders the same shape.
package respond

import (
	"fmt"

	"github.com/labstack/echo/v4"
)

// Pagination is the page metadata attached to list responses.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// FieldError describes a single invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
}

// Envelope is the uniform response body.
type Envelope struct {
	Success    bool         `json:"success"`
	Message    string       `json:"message,omitempty"`
	Count      *int         `json:"count,omitempty"`
	Pagination *Pagination  `json:"pagination,omitempty"`
	Data       any          `json:"data,omitempty"`
	Errors     []FieldError `json:"errors,omitempty"`
	RetryAfter int64        `json:"retryAfter,omitempty"`
	Stack      string       `json:"stack,omitempty"`
}

// Data renders a success envelope with a payload.
func Data(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, Envelope{Success: true, Message: message, Data: data})
}

// Message renders a success envelope without a payload.
func Message(c echo.Context, status int, message string) error {
	return c.JSON(status, Envelope{Success: true, Message: message})
}

// List renders a success envelope with a payload, item count and
// pagination metadata.
func List(c echo.Context, status int, data any, count int, p Pagination) error {
	return c.JSON(status, Envelope{Success: true, Count: &count, Pagination: &p, Data: data})
}

// ValidationError carries per-field input failures; the error handler
// renders it as a 400 with the errors array.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed (%d fields)", len(e.Fields))
}

// RateLimitError is returned by the rate-limiting middleware; the error
// handler renders it as a 429 with a retryAfter hint in seconds.
type RateLimitError struct {
	Message    string
	RetryAfter int64
}

func (e *RateLimitError) Error() string {
	return e.Message
}
