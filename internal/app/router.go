package app

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"library-service/internal/container"
	"library-service/internal/infrastructure/config"
	middleware2 "library-service/internal/pkg/middleware"
	reservationhttp "library-service/internal/reservations/handler"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Config       *config.Config
	Usecases     *container.Container
	AuthServices *container.AuthServices
	Logger       *zap.Logger
}

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Base middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware2.RequestLogger(cfg.Logger))
	r.Use(middleware2.ErrorHandler(cfg.Logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.Config.Server.ReadTimeout))
	r.Use(middleware.Heartbeat("/health"))

	// Prometheus metrics (outbox publisher / reaper counters, among others)
	r.Handle("/metrics", promhttp.Handler())

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"),
	))

	// Create auth middleware
	authMiddleware := middleware2.NewAuthMiddleware(cfg.AuthServices.JWTService)

	// Create validator (shared across all handlers)
	validator := middleware2.NewValidator()

	reservationHandler := reservationhttp.NewReservationHandler(
		cfg.Usecases,
		validator,
	)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Reservation routes (protected)
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Mount("/reservations", reservationHandler.Routes())
		})
	})

	return r
}
