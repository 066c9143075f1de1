// Package http provides the HTTP server, router and shared middleware.
package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	authHTTP "github.com/allisson/itemsapi/internal/auth/http"
	authUseCase "github.com/allisson/itemsapi/internal/auth/usecase"
	"github.com/allisson/itemsapi/internal/config"
	apperrors "github.com/allisson/itemsapi/internal/errors"
	"github.com/allisson/itemsapi/internal/httputil"
	itemHTTP "github.com/allisson/itemsapi/internal/item/http"
	"github.com/allisson/itemsapi/internal/metrics"
)

// HealthChecker probes the backing store.
type HealthChecker interface {
	Check(ctx context.Context) error
}

var errUnconfiguredHealthCheck = apperrors.Wrap(apperrors.ErrUnavailable, "health check not configured")

// Server represents the HTTP server.
type Server struct {
	healthChecker HealthChecker
	server        *http.Server
	router        *gin.Engine
	logger        *slog.Logger
}

// NewServer creates a new HTTP server. SetupRouter must be called before Start.
func NewServer(
	healthChecker HealthChecker,
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	return &Server{
		healthChecker: healthChecker,
		logger:        logger,
		server:        newListener(host, port),
	}
}

// newListener returns an http.Server with the timeouts shared by every listener of the process.
func newListener(host string, port int) *http.Server {
	return &http.Server{
		Addr:              net.JoinHostPort(host, strconv.Itoa(port)),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

// listenAndServe blocks until srv fails or is shut down. A graceful shutdown is not an error.
func listenAndServe(srv *http.Server, name string, logger *slog.Logger) error {
	logger.Info("starting "+name+" server", slog.String("addr", srv.Addr))

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s server: %w", name, err)
	}
	return nil
}

// SetupRouter configures the Gin router with all routes and middleware.
//
// ctx bounds the lifetime of the rate limiter cleanup goroutines. metricsProvider may be nil.
func (s *Server) SetupRouter(
	ctx context.Context,
	cfg *config.Config,
	accessGuard authUseCase.AccessGuard,
	tokenHandler *authHTTP.TokenHandler,
	clientHandler *authHTTP.ClientHandler,
	itemHandler *itemHTTP.ItemHandler,
	metricsProvider *metrics.Provider,
) {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware())
	router.Use(RequestLogger(s.logger))

	if middleware, ok := corsMiddleware(cfg, s.logger); ok {
		router.Use(middleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	router.GET("/", s.rootHandler)
	router.GET("/health", s.healthHandler)

	api := router.Group("/api")

	tokenRoute := []gin.HandlerFunc{}
	if cfg.RateLimitTokenEnabled {
		tokenRoute = append(tokenRoute, authHTTP.TokenRateLimitMiddleware(
			ctx,
			cfg.RateLimitTokenRequestsPerSec,
			cfg.RateLimitTokenBurst,
			s.logger,
		))
	}
	tokenRoute = append(tokenRoute, tokenHandler.IssueTokenHandler)
	api.POST("/auth/token", tokenRoute...)

	v1 := api.Group("/v1")

	var clientRateLimit gin.HandlerFunc
	if cfg.RateLimitEnabled {
		clientRateLimit = authHTTP.RateLimitMiddleware(
			ctx,
			cfg.RateLimitRequestsPerSec,
			cfg.RateLimitBurst,
			s.logger,
		)
	}

	clients := v1.Group("/clients", authHTTP.AdminMiddleware(accessGuard, s.logger))
	if clientRateLimit != nil {
		clients.Use(clientRateLimit)
	}
	{
		clients.POST("", clientHandler.CreateHandler)
		clients.GET("", clientHandler.ListHandler)
		clients.GET("/:id", clientHandler.GetHandler)
		clients.PATCH("/:id", clientHandler.UpdateHandler)
		clients.DELETE("/:id", clientHandler.DeleteHandler)
	}

	items := v1.Group("/items", authHTTP.AuthenticationMiddleware(accessGuard, s.logger))
	if clientRateLimit != nil {
		items.Use(clientRateLimit)
	}
	{
		items.POST("", itemHandler.CreateHandler)
		items.GET("", itemHandler.ListHandler)
		items.GET("/:id", itemHandler.GetHandler)
		items.PATCH("/:id", itemHandler.UpdateHandler)
		items.DELETE("/:id", itemHandler.DeleteHandler)
	}

	s.router = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

func (s *Server) rootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello World"})
}

// healthHandler answers 204 when the store responds within the probe timeout and 503 otherwise.
func (s *Server) healthHandler(c *gin.Context) {
	if s.healthChecker == nil {
		httputil.HandleErrorGin(c, errUnconfiguredHealthCheck, s.logger)
		return
	}

	if err := s.healthChecker.Check(c.Request.Context()); err != nil {
		httputil.HandleErrorGin(c, err, s.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// Start starts the HTTP server.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return fmt.Errorf("router not configured")
	}
	s.server.Handler = s.router

	return listenAndServe(s.server, "http", s.logger)
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
