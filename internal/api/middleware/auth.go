package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pruthvirajtarode/backendProject/internal/core/domain"
	"github.com/pruthvirajtarode/backendProject/internal/core/ports"
)

const identityKey = "identity"

// IdentityFrom returns the authenticated user attached by Authenticate,
// or false when the request is anonymous.
func IdentityFrom(c echo.Context) (*domain.User, bool) {
	user, ok := c.Get(identityKey).(*domain.User)
	return user, ok
}

// Authenticate is the mandatory access gate. It extracts the bearer token,
// verifies it, then loads the live user record: the token's role claim is
// only a snapshot, so the stored role and active flag are authoritative on
// every request. Invalid and expired tokens produce the same client-facing
// failure; the distinction is logged for diagnostics only.
func Authenticate(tokens ports.TokenService, users ports.UserRepository, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := resolveIdentity(c, tokens, users, log)
			if err != nil {
				return err
			}
			c.Set(identityKey, user)
			return next(c)
		}
	}
}

// OptionalAuthenticate attempts the same resolution as Authenticate but
// never rejects: on any failure the request proceeds anonymous.
func OptionalAuthenticate(tokens ports.TokenService, users ports.UserRepository, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if user, err := resolveIdentity(c, tokens, users, log); err == nil {
				c.Set(identityKey, user)
			}
			return next(c)
		}
	}
}

// RequireRoles enforces role-based access control. It composes after
// Authenticate and checks the live role against the allow-list.
func RequireRoles(allowed ...domain.Role) echo.MiddlewareFunc {
	allowList := make(map[domain.Role]struct{}, len(allowed))
	for _, r := range allowed {
		allowList[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := IdentityFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
			}
			if _, ok := allowList[user.Role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden,
					"role '"+string(user.Role)+"' is not authorized to access this route")
			}
			return next(c)
		}
	}
}

func resolveIdentity(c echo.Context, tokens ports.TokenService, users ports.UserRepository, log zerolog.Logger) (*domain.User, error) {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
	}

	claims, err := tokens.Verify(parts[1])
	if err != nil {
		// Expired vs malformed matters for diagnostics but must not be
		// visible to the caller.
		log.Debug().Err(err).Str("path", c.Path()).Msg("token verification failed")
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
	}

	user, err := users.FindByID(c.Request().Context(), claims.UserID)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
	}

	if !user.IsActive {
		return nil, echo.NewHTTPError(http.StatusForbidden, "account has been deactivated")
	}

	return user, nil
}
