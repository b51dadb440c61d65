package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/medtrack/medication-reminder/docs"
	"github.com/medtrack/medication-reminder/internal/api/handler"
	"github.com/medtrack/medication-reminder/internal/api/middleware"
	"github.com/medtrack/medication-reminder/internal/core/ports"
)

// Dependencies carries everything the router wires into handlers.
type Dependencies struct {
	Auth        ports.AuthService
	Sessions    middleware.SessionReader
	Medications ports.MedicationService
	JWTSecret   string
	Logger      zerolog.Logger
	// Checks are the readiness probes, keyed by dependency name.
	Checks map[string]handler.PingFunc
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("medreminder"))

	sessions := deps.Sessions
	if sessions == nil {
		sessions = deps.Auth
	}
	authMiddleware := middleware.Auth(deps.JWTSecret, sessions)

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	e.POST("/auth/signup", authHandler.SignUp)
	e.POST("/auth/signin", authHandler.SignIn)
	e.POST("/auth/signout", authHandler.SignOut, authMiddleware)
	e.GET("/auth/session", authHandler.Session, authMiddleware)

	// --- Medication routes ---
	medHandler := handler.NewMedicationHandler(deps.Medications)
	v1 := e.Group("/v1", authMiddleware)
	v1.GET("/medications", medHandler.List)
	v1.POST("/medications", medHandler.Create)
	v1.GET("/medications/next", medHandler.Next)
	v1.GET("/medications/summary", medHandler.Summary)
	v1.GET("/medications/markers", medHandler.Markers)
	v1.POST("/medications/refresh", medHandler.Refresh)
	v1.GET("/medications/:id", medHandler.Get)
	v1.PATCH("/medications/:id/status", medHandler.UpdateStatus)
	v1.DELETE("/medications/:id", medHandler.Delete)

	// --- Health probes, metrics and docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Checks)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
