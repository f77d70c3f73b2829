package ports

import (
	"context"
	"time"

	"github.com/pruthvirajtarode/backendProject/internal/core/domain"
)

// ListUsersFilter carries query parameters for listing users.
type ListUsersFilter struct {
	Role     string // optional: filter by role
	IsActive *bool  // optional: filter by active flag
	Page     int    // 1-based
	Limit    int    // rows per page (capped by service)
}

// UserRepository defines persistence operations for users.
// Implementations must map duplicate-email conflicts to domain.ErrEmailTaken
// and malformed or unknown IDs to domain.ErrUserNotFound.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Update persists the full user record and returns the stored state.
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, id string) error
	// List returns a page of users matching filter, newest first, with the total count.
	List(ctx context.Context, filter ListUsersFilter) ([]*domain.User, int64, error)
}
