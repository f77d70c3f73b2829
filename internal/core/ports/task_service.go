package ports

import (
	"context"
	"time"

	"github.com/pruthvirajtarode/backendProject/internal/core/domain"
)

// CreateTaskInput carries the fields for creating a task. The owner is
// always the acting user.
type CreateTaskInput struct {
	Title       string
	Description string
	Status      string // optional; defaults to pending
	Priority    string // optional; defaults to medium
	DueDate     *time.Time
}

// UpdateTaskInput carries the editable task fields. Nil means "leave
// unchanged".
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *string
	Priority    *string
	DueDate     *time.Time
}

// ListTasksInput carries the query parameters for the task list endpoint.
type ListTasksInput struct {
	Status   string
	Priority string
	SortBy   string // "field:asc" or "field:desc"; defaults to createdAt:desc
	Page     int
	Limit    int
}

// TaskPage is a page of tasks plus pagination metadata.
type TaskPage struct {
	Items      []*domain.Task
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// TaskService defines use-case operations for tasks. Every operation takes
// the resolved acting identity so the ownership policy can be applied.
type TaskService interface {
	Create(ctx context.Context, actor *domain.User, input CreateTaskInput) (*domain.Task, error)
	Get(ctx context.Context, actor *domain.User, id string) (*domain.Task, error)
	Update(ctx context.Context, actor *domain.User, id string, input UpdateTaskInput) (*domain.Task, error)
	Delete(ctx context.Context, actor *domain.User, id string) error
	List(ctx context.Context, actor *domain.User, input ListTasksInput) (*TaskPage, error)
	Stats(ctx context.Context, userID string) (*domain.TaskStats, error)
}
