package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pruthvirajtarode/backendProject/internal/api/respond"
	"github.com/pruthvirajtarode/backendProject/internal/core/ports"
)

// UserHandler handles the admin-only user management routes. The admin
// role gate sits in front of every route at the router.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List returns a page of users.
//
// @Summary      List users (admin)
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        page      query     int     false  "Page number"
// @Param        limit     query     int     false  "Items per page (max 100)"
// @Param        role      query     string  false  "Filter by role"
// @Param        isActive  query     bool    false  "Filter by active flag"
// @Success      200       {object}  respond.Envelope
// @Failure      403       {object}  respond.Envelope
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	var q listUsersQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	if err := c.Validate(&q); err != nil {
		return err
	}

	page, err := h.userService.List(c.Request().Context(), ports.ListUsersFilter{
		Role:     q.Role,
		IsActive: q.IsActive,
		Page:     q.Page,
		Limit:    q.Limit,
	})
	if err != nil {
		return err
	}

	return respond.List(c, http.StatusOK, usersPayload{Users: page.Items}, len(page.Items), respond.Pagination{
		Page:  page.Page,
		Limit: page.Limit,
		Total: page.Total,
		Pages: page.TotalPages,
	})
}

// Get returns a single user.
//
// @Summary      Get a user (admin)
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  respond.Envelope
// @Failure      404  {object}  respond.Envelope
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.userService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond.Data(c, http.StatusOK, "", userPayload{User: user})
}

// Update applies a partial admin edit to a user.
//
// @Summary      Update a user (admin)
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User ID"
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  respond.Envelope
// @Failure      404   {object}  respond.Envelope
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userService.Update(c.Request().Context(), c.Param("id"), ports.UpdateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Role:     req.Role,
		IsActive: req.IsActive,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return respond.Data(c, http.StatusOK, "User updated successfully", userPayload{User: user})
}

// Delete removes a user. Deleting one's own account is rejected.
//
// @Summary      Delete a user (admin)
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  respond.Envelope
// @Failure      400  {object}  respond.Envelope
// @Failure      404  {object}  respond.Envelope
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.userService.Delete(c.Request().Context(), actor.ID, c.Param("id")); err != nil {
		return err
	}

	return respond.Message(c, http.StatusOK, "User deleted successfully")
}
