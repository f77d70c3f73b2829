package handler

import (
	"time"

	"github.com/pruthvirajtarode/backendProject/internal/core/domain"
)

type createTaskRequest struct {
	Title       string     `json:"title"       validate:"required,min=3,max=100"`
	Description string     `json:"description" validate:"omitempty,max=500"`
	Status      string     `json:"status"      validate:"omitempty,oneof=pending in-progress completed"`
	Priority    string     `json:"priority"    validate:"omitempty,oneof=low medium high"`
	DueDate     *time.Time `json:"dueDate"`
}

type updateTaskRequest struct {
	Title       *string    `json:"title"       validate:"omitempty,min=3,max=100"`
	Description *string    `json:"description" validate:"omitempty,max=500"`
	Status      *string    `json:"status"      validate:"omitempty,oneof=pending in-progress completed"`
	Priority    *string    `json:"priority"    validate:"omitempty,oneof=low medium high"`
	DueDate     *time.Time `json:"dueDate"`
}

type listTasksQuery struct {
	Page     int    `query:"page"     validate:"omitempty,min=1"`
	Limit    int    `query:"limit"    validate:"omitempty,min=1,max=100"`
	Status   string `query:"status"   validate:"omitempty,oneof=pending in-progress completed"`
	Priority string `query:"priority" validate:"omitempty,oneof=low medium high"`
	SortBy   string `query:"sortBy"`
}

// taskView augments the stored task with the computed overdue flag.
type taskView struct {
	*domain.Task
	Overdue bool `json:"overdue"`
}

func newTaskView(t *domain.Task, now time.Time) taskView {
	return taskView{Task: t, Overdue: t.Overdue(now)}
}

// taskPayload wraps a single task for the data section.
type taskPayload struct {
	Task taskView `json:"task"`
}

// tasksPayload wraps a task list for the data section.
type tasksPayload struct {
	Tasks []taskView `json:"tasks"`
}

// statsPayload wraps the per-status aggregate for the data section.
type statsPayload struct {
	Stats *domain.TaskStats `json:"stats"`
}
