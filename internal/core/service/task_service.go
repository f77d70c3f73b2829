package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/pruthvirajtarode/backendProject/internal/core/domain"
	"github.com/pruthvirajtarode/backendProject/internal/core/ports"
)

// sortFields whitelists the task list sort keys accepted from callers.
var sortFields = map[string]struct{}{
	"createdAt": {},
	"dueDate":   {},
	"priority":  {},
	"status":    {},
	"title":     {},
}

// TaskService implements task CRUD with the ownership policy applied
// before every single-resource operation and at the query for lists.
type TaskService struct {
	tasks  ports.TaskRepository
	logger zerolog.Logger
}

func NewTaskService(tasks ports.TaskRepository, logger zerolog.Logger) *TaskService {
	return &TaskService{tasks: tasks, logger: logger}
}

func (s *TaskService) Create(ctx context.Context, actor *domain.User, input ports.CreateTaskInput) (*domain.Task, error) {
	now := time.Now().UTC()
	task := &domain.Task{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Status:      domain.StatusPending,
		Priority:    domain.PriorityMedium,
		DueDate:     input.DueDate,
		UserID:      actor.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if input.Priority != "" {
		task.Priority = domain.TaskPriority(input.Priority)
	}
	if input.Status != "" {
		task.SetStatus(domain.TaskStatus(input.Status), now)
	}

	created, err := s.tasks.Create(ctx, task)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", actor.ID).Msg("failed to create task")
		return nil, err
	}

	s.logger.Info().Str("task_id", created.ID).Str("user_id", actor.ID).Msg("task created")
	return created, nil
}

func (s *TaskService) Get(ctx context.Context, actor *domain.User, id string) (*domain.Task, error) {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccess(task.UserID) {
		return nil, domain.ErrForbidden
	}
	return task, nil
}

func (s *TaskService) Update(ctx context.Context, actor *domain.User, id string, input ports.UpdateTaskInput) (*domain.Task, error) {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccess(task.UserID) {
		return nil, domain.ErrForbidden
	}

	now := time.Now().UTC()
	if input.Title != nil {
		task.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		task.Description = strings.TrimSpace(*input.Description)
	}
	if input.Priority != nil {
		task.Priority = domain.TaskPriority(*input.Priority)
	}
	if input.DueDate != nil {
		task.DueDate = input.DueDate
	}
	if input.Status != nil {
		task.SetStatus(domain.TaskStatus(*input.Status), now)
	}
	task.UpdatedAt = now

	updated, err := s.tasks.Update(ctx, task)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("task_id", updated.ID).Str("user_id", actor.ID).Msg("task updated")
	return updated, nil
}

func (s *TaskService) Delete(ctx context.Context, actor *domain.User, id string) error {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.CanAccess(task.UserID) {
		return domain.ErrForbidden
	}

	if err := s.tasks.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("task_id", id).Str("user_id", actor.ID).Msg("task deleted")
	return nil
}

// List returns a page of tasks. Non-admin callers are scoped to their own
// tasks at the query regardless of the filters supplied.
func (s *TaskService) List(ctx context.Context, actor *domain.User, input ports.ListTasksInput) (*ports.TaskPage, error) {
	page, limit := clampPage(input.Page, input.Limit)

	filter := ports.ListTasksFilter{
		Status:   input.Status,
		Priority: input.Priority,
		Page:     page,
		Limit:    limit,
	}
	if !actor.IsAdmin() {
		filter.UserID = actor.ID
	}
	filter.SortField, filter.SortAsc = parseSortBy(input.SortBy)

	items, total, err := s.tasks.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ports.TaskPage{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

func (s *TaskService) Stats(ctx context.Context, userID string) (*domain.TaskStats, error) {
	counts, err := s.tasks.CountByStatus(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := &domain.TaskStats{
		Pending:    counts[domain.StatusPending],
		InProgress: counts[domain.StatusInProgress],
		Completed:  counts[domain.StatusCompleted],
	}
	stats.Total = stats.Pending + stats.InProgress + stats.Completed
	return stats, nil
}

// parseSortBy interprets "field:asc" / "field:desc", falling back to
// createdAt descending for unknown fields or malformed input.
func parseSortBy(sortBy string) (field string, asc bool) {
	field, asc = "createdAt", false
	if sortBy == "" {
		return field, asc
	}

	parts := strings.SplitN(sortBy, ":", 2)
	if _, ok := sortFields[parts[0]]; !ok {
		return field, asc
	}
	field = parts[0]
	asc = len(parts) < 2 || parts[1] != "desc"
	return field, asc
}
