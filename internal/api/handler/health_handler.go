package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pruthvirajtarode/backendProject/internal/api/middleware"
	"github.com/pruthvirajtarode/backendProject/internal/api/respond"
)

// HealthHandler handles GET /health — liveness probe.
// Returns 200 immediately; confirms the process is alive.
type HealthHandler struct {
	env string
}

func NewHealthHandler(env string) *HealthHandler {
	return &HealthHandler{env: env}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, respond.Envelope{
		Success: true,
		Message: "Server is running",
		Data: map[string]string{
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
			"environment": h.env,
		},
	})
}

// ReadinessHandler handles GET /health/ready — readiness probe.
// Checks MongoDB and Redis connectivity before declaring the service ready.
type ReadinessHandler struct {
	mongo *mongo.Database
	redis *redis.Client
}

func NewReadinessHandler(db *mongo.Database, rdb *redis.Client) *ReadinessHandler {
	return &ReadinessHandler{mongo: db, redis: rdb}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func (h *ReadinessHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	deps := make(map[string]dependencyStatus)
	healthy := true

	if err := h.mongo.Client().Ping(ctx, nil); err != nil {
		deps["mongodb"] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
		healthy = false
	} else {
		deps["mongodb"] = dependencyStatus{Status: "ok"}
	}

	if h.redis != nil {
		if _, err := h.redis.Ping(ctx).Result(); err != nil {
			deps["redis"] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
			healthy = false
		} else {
			deps["redis"] = dependencyStatus{Status: "ok"}
		}
	}

	status, httpStatus := "ok", http.StatusOK
	if !healthy {
		status, httpStatus = "degraded", http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, respond.Envelope{
		Success: healthy,
		Message: status,
		Data:    map[string]any{"dependencies": deps},
	})
}

// IndexHandler handles GET / — the service index. The route uses optional
// authentication: anonymous callers get the generic index, authenticated
// callers are greeted by name.
type IndexHandler struct{}

func NewIndexHandler() *IndexHandler {
	return &IndexHandler{}
}

func (h *IndexHandler) Index(c echo.Context) error {
	data := map[string]any{
		"documentation": "/swagger/index.html",
		"health":        "/health",
		"endpoints": map[string]string{
			"auth":  "/api/v1/auth",
			"users": "/api/v1/users",
			"tasks": "/api/v1/tasks",
		},
	}

	message := "Welcome to the Task Manager API"
	if user, ok := middleware.IdentityFrom(c); ok {
		message = "Welcome back, " + user.Name
	}

	return respond.Data(c, http.StatusOK, message, data)
}
