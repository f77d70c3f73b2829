package middleware

import (
	"math"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pruthvirajtarode/backendProject/internal/api/metrics"
	"github.com/pruthvirajtarode/backendProject/internal/api/respond"
	"github.com/pruthvirajtarode/backendProject/internal/core/ports"
)

// Scope configures one rate-limiting window. Each scope counts
// independently, so a client throttled on task creation can still read.
type Scope struct {
	Name   string
	Max    int
	Window time.Duration
	// SkipSuccessful forgives requests that complete below 400, so
	// successful logins never count toward the authentication budget.
	SkipSuccessful bool
	Message        string
}

// RateLimit rejects requests beyond Scope.Max per window, keyed by client
// address. Counter-store failures are absorbed as allows: availability
// wins over strictness, and the failure is logged.
func RateLimit(store ports.RateCounterStore, scope Scope, log zerolog.Logger) echo.MiddlewareFunc {
	message := scope.Message
	if message == "" {
		message = "Too many requests, please try again later."
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := scope.Name + ":" + c.RealIP()

			count, resetIn, err := store.Incr(ctx, key, scope.Window)
			if err != nil {
				log.Error().Err(err).Str("scope", scope.Name).Msg("rate limit store failure")
				return next(c)
			}

			if count > int64(scope.Max) {
				metrics.RateLimitRejectionsTotal.WithLabelValues(scope.Name).Inc()
				retryAfter := int64(math.Ceil(resetIn.Seconds()))
				if retryAfter < 1 {
					retryAfter = 1
				}
				c.Response().Header().Set("Retry-After", strconv.FormatInt(retryAfter, 10))
				log.Warn().
					Str("scope", scope.Name).
					Str("client", c.RealIP()).
					Int64("retry_after", retryAfter).
					Msg("rate limit exceeded")
				return &respond.RateLimitError{Message: message, RetryAfter: retryAfter}
			}

			err = next(c)

			if scope.SkipSuccessful && err == nil && c.Response().Status < 400 {
				if ferr := store.Forgive(ctx, key); ferr != nil {
					log.Warn().Err(ferr).Str("scope", scope.Name).Msg("rate limit forgive failed")
				}
			}
			return err
		}
	}
}
