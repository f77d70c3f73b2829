package ports

import (
	"context"

	"github.com/pruthvirajtarode/backendProject/internal/core/domain"
)

// ListTasksFilter carries all query parameters for listing tasks.
// UserID is enforced by the service layer for non-admin callers, so the
// ownership scope is applied at the query rather than after fetching.
type ListTasksFilter struct {
	UserID    string // empty = no owner filter (admin); non-empty = scoped to owner
	Status    string // optional: filter by task status
	Priority  string // optional: filter by task priority
	SortField string // validated by the service; defaults to createdAt
	SortAsc   bool
	Page      int // 1-based
	Limit     int // max rows per page (capped at 100 by service)
}

// TaskRepository defines persistence operations for tasks.
// Implementations must map malformed or unknown IDs to domain.ErrTaskNotFound.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	FindByID(ctx context.Context, id string) (*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
	// List returns a page of tasks matching filter and the total count.
	List(ctx context.Context, filter ListTasksFilter) ([]*domain.Task, int64, error)
	// CountByStatus aggregates the given user's tasks grouped by status.
	CountByStatus(ctx context.Context, userID string) (map[domain.TaskStatus]int64, error)
}
