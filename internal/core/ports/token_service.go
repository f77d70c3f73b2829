package ports

import (
	"time"

	"github.com/pruthvirajtarode/backendProject/internal/core/domain"
)

// TokenClaims is the verified content of a bearer token. The role and email
// are snapshots taken at issuance; the access gate re-validates against the
// live user record.
type TokenClaims struct {
	UserID    string
	Email     string
	Role      domain.Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService issues and verifies signed, time-limited bearer tokens.
type TokenService interface {
	// Issue encodes the user's identity into a signed token. Pure computation.
	Issue(user *domain.User) (string, error)
	// Verify checks signature integrity first, then expiry. It returns
	// domain.ErrTokenExpired for expired tokens and domain.ErrInvalidToken
	// for anything else; callers must not expose the distinction.
	Verify(raw string) (*TokenClaims, error)
}
