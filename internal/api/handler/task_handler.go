package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pruthvirajtarode/backendProject/internal/api/metrics"
	"github.com/pruthvirajtarode/backendProject/internal/api/respond"
	"github.com/pruthvirajtarode/backendProject/internal/core/ports"
)

// TaskHandler handles the task CRUD and statistics routes. Every route is
// behind the mandatory auth gate; ownership is enforced by the service.
type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// List returns a page of tasks. Non-admins only ever see their own.
//
// @Summary      List tasks
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        page      query     int     false  "Page number"
// @Param        limit     query     int     false  "Items per page (max 100)"
// @Param        status    query     string  false  "Filter by status"
// @Param        priority  query     string  false  "Filter by priority"
// @Param        sortBy    query     string  false  "Sort as field:asc or field:desc"
// @Success      200       {object}  respond.Envelope
// @Failure      401       {object}  respond.Envelope
// @Router       /tasks [get]
func (h *TaskHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var q listTasksQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	if err := c.Validate(&q); err != nil {
		return err
	}

	page, err := h.taskService.List(c.Request().Context(), user, ports.ListTasksInput{
		Status:   q.Status,
		Priority: q.Priority,
		SortBy:   q.SortBy,
		Page:     q.Page,
		Limit:    q.Limit,
	})
	if err != nil {
		return err
	}

	now := time.Now()
	views := make([]taskView, len(page.Items))
	for i, t := range page.Items {
		views[i] = newTaskView(t, now)
	}

	return respond.List(c, http.StatusOK, tasksPayload{Tasks: views}, len(views), respond.Pagination{
		Page:  page.Page,
		Limit: page.Limit,
		Total: page.Total,
		Pages: page.TotalPages,
	})
}

// Get returns a single task the caller owns (or any task for admins).
//
// @Summary      Get a task
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Task ID"
// @Success      200  {object}  respond.Envelope
// @Failure      403  {object}  respond.Envelope
// @Failure      404  {object}  respond.Envelope
// @Router       /tasks/{id} [get]
func (h *TaskHandler) Get(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	task, err := h.taskService.Get(c.Request().Context(), user, c.Param("id"))
	if err != nil {
		return err
	}

	return respond.Data(c, http.StatusOK, "", taskPayload{Task: newTaskView(task, time.Now())})
}

// Create adds a task owned by the caller.
//
// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTaskRequest  true  "Task details"
// @Success      201   {object}  respond.Envelope
// @Failure      400   {object}  respond.Envelope
// @Failure      429   {object}  respond.Envelope
// @Router       /tasks [post]
func (h *TaskHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	task, err := h.taskService.Create(c.Request().Context(), user, ports.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	})
	if err != nil {
		return err
	}

	metrics.TasksCreatedTotal.WithLabelValues(string(task.Priority)).Inc()
	return respond.Data(c, http.StatusCreated, "Task created successfully", taskPayload{
		Task: newTaskView(task, time.Now()),
	})
}

// Update modifies a task the caller owns (or any task for admins).
//
// @Summary      Update a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Task ID"
// @Param        body  body      updateTaskRequest  true  "Fields to change"
// @Success      200   {object}  respond.Envelope
// @Failure      403   {object}  respond.Envelope
// @Failure      404   {object}  respond.Envelope
// @Router       /tasks/{id} [put]
func (h *TaskHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req updateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	task, err := h.taskService.Update(c.Request().Context(), user, c.Param("id"), ports.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	})
	if err != nil {
		return err
	}

	return respond.Data(c, http.StatusOK, "Task updated successfully", taskPayload{
		Task: newTaskView(task, time.Now()),
	})
}

// Delete removes a task the caller owns (or any task for admins).
//
// @Summary      Delete a task
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Task ID"
// @Success      200  {object}  respond.Envelope
// @Failure      403  {object}  respond.Envelope
// @Failure      404  {object}  respond.Envelope
// @Router       /tasks/{id} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.taskService.Delete(c.Request().Context(), user, c.Param("id")); err != nil {
		return err
	}

	return respond.Message(c, http.StatusOK, "Task deleted successfully")
}

// Stats returns the caller's task counts grouped by status.
//
// @Summary      Own task statistics
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  respond.Envelope
// @Router       /tasks/stats/me [get]
func (h *TaskHandler) Stats(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	stats, err := h.taskService.Stats(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	return respond.Data(c, http.StatusOK, "", statsPayload{Stats: stats})
}
