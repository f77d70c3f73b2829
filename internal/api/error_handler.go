package api

import (
	"errors"
	"net/http"
	"runtime/debug"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pruthvirajtarode/backendProject/internal/api/respond"
	"github.com/pruthvirajtarode/backendProject/internal/core/domain"
)

// statusFor maps domain sentinel errors to HTTP status codes. Anything not
// listed here is treated as an internal error.
func statusFor(err error) (int, bool) {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, true
	case errors.Is(err, domain.ErrInvalidToken), errors.Is(err, domain.ErrTokenExpired):
		return http.StatusUnauthorized, true
	case errors.Is(err, domain.ErrAccountInactive), errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, true
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrTaskNotFound):
		return http.StatusNotFound, true
	case errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, domain.ErrSelfDeletion):
		return http.StatusBadRequest, true
	}
	return 0, false
}

// NewErrorHandler builds the central echo.HTTPErrorHandler. Every failure
// path in the API funnels through here so clients always see the same
// envelope shape. In development mode internal errors carry their detail
// and a stack trace; in production they render a generic message.
func NewErrorHandler(log zerolog.Logger, development bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var (
			status   = http.StatusInternalServerError
			envelope = respond.Envelope{Success: false}
		)

		var ve *respond.ValidationError
		var rle *respond.RateLimitError
		var he *echo.HTTPError

		switch {
		case errors.As(err, &ve):
			status = http.StatusBadRequest
			envelope.Message = "Validation failed"
			envelope.Errors = ve.Fields

		case errors.As(err, &rle):
			status = http.StatusTooManyRequests
			envelope.Message = rle.Message
			envelope.RetryAfter = rle.RetryAfter
			c.Response().Header().Set("Retry-After", strconv.FormatInt(rle.RetryAfter, 10))

		case errors.As(err, &he):
			status = he.Code
			if msg, ok := he.Message.(string); ok {
				envelope.Message = msg
			} else {
				envelope.Message = http.StatusText(status)
			}

		default:
			if s, ok := statusFor(err); ok {
				status = s
				envelope.Message = err.Error()
			} else {
				log.Error().Err(err).
					Str("method", c.Request().Method).
					Str("path", c.Request().URL.Path).
					Msg("unhandled error")
				envelope.Message = "Internal server error"
				if development {
					envelope.Message = err.Error()
					envelope.Stack = string(debug.Stack())
				}
			}
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, envelope)
		}
		if writeErr != nil {
			log.Error().Err(writeErr).Msg("failed to write error response")
		}
	}
}
