package app

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"library-service/internal/container"
	"library-service/internal/infrastructure/config"
)

// Server wraps the HTTP server hosting the reservation API.
type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
}

// NewHTTPServer creates a new HTTP server bound to the configured port.
func NewHTTPServer(cfg *config.Config, usecases *container.Container, authServices *container.AuthServices, logger *zap.Logger) (*Server, error) {
	router := NewRouter(RouterConfig{
		Config:       cfg,
		Usecases:     usecases,
		AuthServices: authServices,
		Logger:       logger,
	})

	httpServer := &http.Server{
		Addr:        fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:     router,
		ReadTimeout: cfg.Server.ReadTimeout,
	}

	return &Server{
		httpServer: httpServer,
		logger:     logger,
	}, nil
}

// Start starts the HTTP server in the background.
func (s *Server) Start() error {
	go func() {
		s.logger.Info("starting HTTP server", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("HTTP server error", zap.Error(err))
		}
	}()
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("HTTP server shutdown error: %w", err)
	}
	s.logger.Info("HTTP server stopped")
	return nil
}
