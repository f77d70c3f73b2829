package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/pruthvirajtarode/backendProject/docs"
	"github.com/pruthvirajtarode/backendProject/internal/api/handler"
	"github.com/pruthvirajtarode/backendProject/internal/api/middleware"
	"github.com/pruthvirajtarode/backendProject/internal/core/domain"
	"github.com/pruthvirajtarode/backendProject/internal/core/ports"
	"github.com/pruthvirajtarode/backendProject/internal/core/service"
	"github.com/pruthvirajtarode/backendProject/internal/infrastructure/config"
	mongorepo "github.com/pruthvirajtarode/backendProject/internal/infrastructure/db/mongo"
	redisinfra "github.com/pruthvirajtarode/backendProject/internal/infrastructure/db/redis"
	"github.com/pruthvirajtarode/backendProject/internal/infrastructure/ratelimit"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewErrorHandler(log, cfg.IsDevelopment())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("taskapi"))

	// --- Dependencies ---
	userRepo := mongorepo.NewUserRepository(db)
	taskRepo := mongorepo.NewTaskRepository(db)

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)
	authService := service.NewAuthService(userRepo, tokenService, log)
	userService := service.NewUserService(userRepo, log)
	taskService := service.NewTaskService(taskRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	taskHandler := handler.NewTaskHandler(taskService)

	authenticate := middleware.Authenticate(tokenService, userRepo, log)
	adminOnly := middleware.RequireRoles(domain.RoleAdmin)

	// --- Rate limiting ---
	var counters ports.RateCounterStore
	if cfg.RateLimit.Store == "redis" && rdb != nil {
		counters = redisinfra.NewRateCounterStore(rdb)
	} else {
		counters = ratelimit.NewMemoryStore()
	}

	generalLimit := middleware.RateLimit(counters, middleware.Scope{
		Name:   "general",
		Max:    cfg.RateLimit.GeneralMax,
		Window: cfg.RateLimit.GeneralWindow,
	}, log)
	authLimit := middleware.RateLimit(counters, middleware.Scope{
		Name:           "auth",
		Max:            cfg.RateLimit.AuthMax,
		Window:         cfg.RateLimit.AuthWindow,
		SkipSuccessful: true,
		Message:        "Too many authentication attempts, please try again later.",
	}, log)
	createLimit := middleware.RateLimit(counters, middleware.Scope{
		Name:    "create",
		Max:     cfg.RateLimit.CreateMax,
		Window:  cfg.RateLimit.CreateWindow,
		Message: "Too many tasks created, please slow down.",
	}, log)

	// --- Service index ---
	indexHandler := handler.NewIndexHandler()
	e.GET("/", indexHandler.Index, middleware.OptionalAuthenticate(tokenService, userRepo, log))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler(cfg.Env)
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- API v1 ---
	v1 := e.Group("/api/v1", generalLimit)

	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register, authLimit)
	auth.POST("/login", authHandler.Login, authLimit)
	auth.GET("/me", authHandler.Me, authenticate)
	auth.PUT("/me", authHandler.UpdateProfile, authenticate)
	auth.PUT("/me/password", authHandler.ChangePassword, authenticate)

	tasks := v1.Group("/tasks", authenticate)
	tasks.GET("", taskHandler.List)
	tasks.POST("", taskHandler.Create, createLimit)
	tasks.GET("/stats/me", taskHandler.Stats)
	tasks.GET("/:id", taskHandler.Get)
	tasks.PUT("/:id", taskHandler.Update)
	tasks.DELETE("/:id", taskHandler.Delete)

	users := v1.Group("/users", authenticate, adminOnly)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	return e
}
