// Package server provides HTTP server initialization and lifecycle management.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/VictoriaMetrics/metrics"
	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "phonebook/src/app/docs"
	"phonebook/src/app/http/handler"
	"phonebook/src/app/http/response"
	"phonebook/src/app/middleware"
	"phonebook/src/core/ports"
	"phonebook/src/core/usecase"
	"phonebook/src/infra/config"
	"phonebook/src/infra/logger"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	cfg     *config.Config
	log     *slog.Logger
	router  *gin.Engine
	http    *http.Server
	metrics *metrics.Set

	// Handlers
	healthHandler  *handler.HealthHandler
	contactHandler *handler.ContactHandler
}

// New creates a new Server with all dependencies wired up.
func New(cfg *config.Config, log *slog.Logger, repo ports.ContactRepository) *Server {
	// Set Gin mode based on log level
	if cfg.Log.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router without default middleware
	router := gin.New()

	// Create services
	healthService := usecase.NewHealthService(repo, logger.WithComponent(log, "health"))
	contactService := usecase.NewContactService(repo, logger.WithComponent(log, "contacts"))

	s := &Server{
		cfg:            cfg,
		log:            log,
		router:         router,
		metrics:        metrics.NewSet(),
		healthHandler:  handler.NewHealthHandler(healthService),
		contactHandler: handler.NewContactHandler(contactService),
	}

	s.setupMiddleware()
	s.setupRoutes()
	s.setupHTTPServer()

	return s
}

// setupMiddleware configures global middleware.
func (s *Server) setupMiddleware() {
	// Order matters: Logging and Metrics wrap Recovery so panicked
	// requests are still logged and counted with their 500 status.
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.Logging(s.log))
	s.router.Use(middleware.Metrics(s.metrics))
	s.router.Use(middleware.Recovery(s.log))
	s.router.Use(middleware.CORS())
	s.router.Use(middleware.ErrorHandler(s.log))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.healthHandler.Health)
	s.router.GET("/health/detailed", s.healthHandler.DetailedHealth)
	s.router.GET("/metrics", s.writeMetrics)

	if s.cfg.Docs.Enabled {
		s.router.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		)))
	}

	s.contactHandler.Register(s.router)

	// Handle 404
	s.router.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "The requested resource was not found", middleware.GetRequestID(c))
	})
}

// writeMetrics serves the request metrics plus Go process metrics
// in Prometheus text format.
func (s *Server) writeMetrics(c *gin.Context) {
	c.Header("Content-Type", "text/plain; version=0.0.4; charset=utf-8")
	c.Status(http.StatusOK)
	s.metrics.WritePrometheus(c.Writer)
	metrics.WriteProcessMetrics(c.Writer)
}

// setupHTTPServer configures the underlying HTTP server.
func (s *Server) setupHTTPServer() {
	s.http = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}
}

// Run starts the HTTP server and blocks until shutdown.
// It handles graceful shutdown on SIGINT/SIGTERM.
func (s *Server) Run() error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	errCh := make(chan error, 1)

	go func() {
		s.log.Info("starting HTTP server",
			"addr", s.cfg.Server.Addr(),
			"docs", s.cfg.Docs.Enabled,
		)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server error: %w", err)
		}
	}()

	select {
	case sig := <-quit:
		s.log.Info("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		return err
	}

	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	s.log.Info("shutting down server", "timeout", s.cfg.Server.ShutdownTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	s.log.Info("server stopped gracefully")
	return nil
}

// Router returns the Gin router for testing.
func (s *Server) Router() *gin.Engine {
	return s.router
}
