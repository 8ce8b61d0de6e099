package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/DanielMb24/SchoolManager/internal/api/handler"
	"github.com/DanielMb24/SchoolManager/internal/api/middleware"
	"github.com/DanielMb24/SchoolManager/internal/core/domain"
	"github.com/DanielMb24/SchoolManager/internal/core/service"
	mongodb "github.com/DanielMb24/SchoolManager/internal/infrastructure/db/mongo"
	redisdb "github.com/DanielMb24/SchoolManager/internal/infrastructure/db/redis"
	"github.com/DanielMb24/SchoolManager/internal/infrastructure/queue"
	"github.com/DanielMb24/SchoolManager/internal/pkg/config"
)

// NewRouter builds the Echo instance with all routes registered, and the
// audit dispatcher whose workers the caller must Start.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, *queue.Dispatcher) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("schoolmanager"))

	// --- Dependencies ---
	accountRepo := mongodb.NewAccountRepository(db)
	studentRepo := mongodb.NewStudentRepository(db)
	teacherRepo := mongodb.NewTeacherRepository(db)
	auditRepo := mongodb.NewAuditRepository(db)

	auditService := service.NewAuditService(auditRepo, log)
	dispatcher := queue.NewDispatcher(cfg.AuditWorkers, auditService, log)

	hasher := service.NewBcryptHasher(0)
	sessions := service.NewSessionService(accountRepo, []byte(cfg.JWTSecret), cfg.SessionTTL, log)
	throttle := redisdb.NewLoginThrottle(rdb)
	authService := service.NewAuthService(accountRepo, hasher, sessions, throttle, dispatcher, log)
	rosterService := service.NewRosterService(studentRepo, teacherRepo, log)

	authHandler := handler.NewAuthHandler(authService, sessions, cfg.SessionTTL, cfg.Production())
	rosterHandler := handler.NewRosterHandler(rosterService)

	sessionMW := middleware.Session(sessions)
	adminOnly := middleware.RequireRole(domain.RoleAdministrator)
	staffOnly := middleware.RequireRole(domain.RoleAdministrator, domain.RoleTeacher)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/status", authHandler.Status)

	// --- Roster routes (session required; mutations admin-only) ---
	students := e.Group("/api/students", sessionMW)
	students.GET("", rosterHandler.ListStudents, staffOnly)
	students.POST("", rosterHandler.CreateStudent, adminOnly)
	students.PUT("/:id", rosterHandler.UpdateStudent, adminOnly)
	students.DELETE("/:id", rosterHandler.DeleteStudent, adminOnly)

	teachers := e.Group("/api/teachers", sessionMW)
	teachers.GET("", rosterHandler.ListTeachers, staffOnly)
	teachers.POST("", rosterHandler.CreateTeacher, adminOnly)
	teachers.PUT("/:id", rosterHandler.UpdateTeacher, adminOnly)
	teachers.DELETE("/:id", rosterHandler.DeleteTeacher, adminOnly)

	// --- Observability (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e, dispatcher
}
