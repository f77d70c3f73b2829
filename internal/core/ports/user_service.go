package ports

import (
	"context"

	"github.com/pruthvirajtarode/backendProject/internal/core/domain"
)

// UpdateUserInput carries the admin-editable user fields. Nil means
// "leave unchanged". Password, when set, is re-hashed before persisting.
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Role     *string
	IsActive *bool
	Password *string
}

// UserPage is a page of users plus pagination metadata.
type UserPage struct {
	Items      []*domain.User
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// UserService defines the admin-only user management operations.
type UserService interface {
	List(ctx context.Context, filter ListUsersFilter) (*UserPage, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	// Delete removes the user with the given id. actorID identifies the
	// admin performing the deletion; deleting oneself fails with
	// domain.ErrSelfDeletion.
	Delete(ctx context.Context, actorID, id string) error
}
