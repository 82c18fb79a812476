// Package server assembles the HTTP surface: route registration, middleware
// ordering, and dependency wiring between stores, services, and handlers.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"fintrack/internal/config"
	"fintrack/internal/handlers"
	"fintrack/internal/middleware"
	"fintrack/internal/services"
	"fintrack/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// Server bundles the Echo instance with its configuration
type Server struct {
	echo *echo.Echo
	cfg  *config.Config
}

// New wires the full application: storage adapters, services, handlers,
// middleware, and routes.
func New(cfg *config.Config, db *gorm.DB) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	// Stores
	kv := store.NewGormStore(db)
	records := store.NewRecordStore(kv)
	users := store.NewUserStore(kv)

	// Services
	metrics := services.NewPrometheusMetrics()
	passwordService := services.NewPasswordServiceWithConfig(
		cfg.Security.BCryptCost, cfg.Security.PasswordMinLength)
	tokenService := services.NewTokenService(&cfg.JWT)
	authService := services.NewAuthService(users, passwordService, metrics)
	ledgerService := services.NewLedgerService(records, metrics)
	sampleDataService := services.NewSampleDataService(ledgerService)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, tokenService)
	transactionHandler := handlers.NewTransactionHandler(ledgerService)
	categoryHandler := handlers.NewCategoryHandler(ledgerService)
	analyticsHandler := handlers.NewAnalyticsHandler(ledgerService)
	healthHandler := handlers.NewHealthCheckHandler(db)
	devHandler := handlers.NewDevHandler(sampleDataService, cfg)

	// Global middleware, outermost first
	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())

	rateLimiter := middleware.NewRateLimiter(
		float64(cfg.Security.RateLimitPerSecond), cfg.Security.RateLimitBurst)
	e.Use(rateLimiter.Middleware())

	// Unauthenticated surface
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Everything below requires a session token
	protected := api.Group("", middleware.RequireAuth(tokenService))

	protected.GET("/transactions", transactionHandler.List)
	protected.POST("/transactions", transactionHandler.Create)
	protected.PUT("/transactions/:id", transactionHandler.Update)
	protected.DELETE("/transactions/:id", transactionHandler.Delete)

	protected.GET("/categories", categoryHandler.List)
	protected.PUT("/categories", categoryHandler.Replace)

	protected.GET("/analytics/summary", analyticsHandler.Summary)
	protected.GET("/analytics/daily", analyticsHandler.Daily)
	protected.GET("/analytics/distribution", analyticsHandler.Distribution)

	protected.POST("/dev/seed", devHandler.Seed)

	return &Server{echo: e, cfg: cfg}
}

// Start begins serving and blocks until the listener fails or closes
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%s", s.cfg.Server.Host, s.cfg.Server.Port)
	s.echo.Server.ReadTimeout = s.cfg.Server.ReadTimeout
	s.echo.Server.WriteTimeout = s.cfg.Server.WriteTimeout

	slog.Info("starting server", "addr", addr, "environment", s.cfg.Server.Environment)
	if err := s.echo.Start(addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Echo exposes the underlying instance for tests
func (s *Server) Echo() *echo.Echo {
	return s.echo
}
