package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pruthvirajtarode/backendProject/internal/api/middleware"
	"github.com/pruthvirajtarode/backendProject/internal/core/domain"
)

// currentUser extracts the identity attached by the Authenticate
// middleware. Its absence on a gated route means the middleware did not
// run; fail closed with 401 rather than panic.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := middleware.IdentityFrom(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}
