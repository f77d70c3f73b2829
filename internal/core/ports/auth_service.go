package ports

import (
	"context"

	"github.com/pruthvirajtarode/backendProject/internal/core/domain"
)

// RegisterInput carries the fields needed to create an account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string // optional; defaults to "user"
}

// UpdateProfileInput carries the self-service profile fields. Nil means
// "leave unchanged".
type UpdateProfileInput struct {
	Name  *string
	Email *string
}

// AuthResult is returned on successful registration or login.
type AuthResult struct {
	Token string
	User  *domain.User
}

// AuthService implements the credential lifecycle: registration with
// auto-login, login, and self-service profile operations.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*domain.User, error)
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
}
