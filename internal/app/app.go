// Package app provides application lifecycle management following clean architecture
package app

import (
	"context"
	"fmt"
	"library-service/internal/container"
	domainapp "library-service/internal/domain/app"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"library-service/internal/infrastructure/auth"
	"library-service/internal/infrastructure/config"
	log "library-service/internal/infrastructure/logger"
	"library-service/internal/infrastructure/shutdown"
)

// App represents the application with all its dependencies
type App struct {
	logger       *zap.Logger
	config       *config.Config
	repositories *domainapp.Repositories
	authServices *container.AuthServices
	usecases     *container.Container
	httpServer   *Server
}

// Validator wraps go-playground/validator
type Validator struct {
	validate *validator.Validate
}

// Validate validates a struct
func (v *Validator) Validate(i interface{}) error {
	if v.validate == nil {
		v.validate = validator.New()
	}
	return v.validate.Struct(i)
}

// New creates a new application instance.
//
// Bootstrap Order (CRITICAL - must follow this sequence):
//  1. Logger - First so all subsequent steps can log
//  2. Config - Load environment variables and settings
//  3. Repositories - PostgreSQL/memory implementations
//  4. Auth Services - JWT + Password (infrastructure service)
//  5. Use Case Container - Wires everything together
//  6. HTTP Server - Routes and middleware
func New() (*App, error) {
	app := &App{}

	// Initialize logger first
	logger, err := log.NewLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	app.logger = logger

	// Load configuration
	cfg := config.MustLoad("")
	app.config = cfg
	app.logger.Info("configuration loaded", zap.String("environment", cfg.App.Environment))

	// Initialize repositories
	repos, err := domainapp.NewRepositories(domainapp.WithMemoryStore())
	if err != nil {
		app.logger.Error("failed to initialize repositories", zap.Error(err))
		return nil, err
	}
	app.repositories = repos
	app.logger.Info("repositories initialized")

	// Initialize auth service
	authServices := &container.AuthServices{
		JWTService: auth.NewJWTService(
			cfg.JWT.Secret,
			cfg.JWT.AccessTokenTTL,
			cfg.JWT.RefreshTokenTTL,
			cfg.JWT.Issuer,
		),
		PasswordService: auth.NewPasswordService(),
	}
	app.authServices = authServices
	app.logger.Info("auth service initialized")

	// Initialize validator
	validator := &Validator{}
	app.logger.Info("validator initialized")

	// Initialize usecases
	usecaseRepos := &container.Repositories{
		Reservation: repos.Reservation,
		Stock:       repos.Stock,
		Product:     repos.Product,
		Outbox:      repos.Outbox,
		Idempotency: repos.Idempotency,
	}
	reservationCfg := container.ReservationConfig{
		TxManager:        repos.TxManager,
		TTL:              cfg.Reservation.TTL(),
		MaxActivePerUser: cfg.Reservation.MaxActivePerUser,
		IdempotencyTTL:   cfg.Reservation.IdempotencyKeyTTL,
	}
	usecases := container.NewContainer(usecaseRepos, authServices, validator, reservationCfg)
	app.usecases = usecases
	app.logger.Info("usecases initialized")

	// Initialize HTTP server
	httpSrv, err := NewHTTPServer(cfg, usecases, authServices, app.logger)
	if err != nil {
		app.logger.Error("failed to initialize server", zap.Error(err))
		return nil, err
	}
	app.httpServer = httpSrv
	app.logger.Info("server initialized")

	return app, nil
}

// Run starts the application and handles graceful shutdown with phased execution.
//
// Shutdown Phases:
//  1. Pre-shutdown: Mark service unhealthy, prepare for shutdown
//  2. Stop accepting: Stop accepting new connections
//  3. Drain connections: Wait for in-flight requests (10s max)
//  4. Cleanup: Close DB, cache, external connections
//  5. Post-shutdown: Flush logs, final cleanup
//
// Total shutdown time: ~20 seconds maximum
//
// See Also:
//   - Shutdown manager: internal/infrastructure/shutdown/shutdown.go
func (a *App) Run() error {
	// Start server
	if err := a.httpServer.Start(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	a.logger.Info("application started",
		zap.Int("port", a.config.Server.Port),
		zap.String("environment", a.config.App.Environment),
	)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	sig := <-quit

	a.logger.Info("received shutdown signal",
		zap.String("signal", sig.String()),
	)

	// Create shutdown manager and register hooks
	shutdownMgr := shutdown.NewManager(a.logger)
	shutdownMgr.RegisterDefaultHooks(a.httpServer, a.repositories)

	// Execute graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := shutdownMgr.Shutdown(ctx); err != nil {
		a.logger.Error("graceful shutdown completed with errors", zap.Error(err))
		return err
	}

	a.logger.Info("application stopped gracefully")
	return nil
}
