package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/eventfold/sponsorpipe/internal/api/middleware"
	"github.com/eventfold/sponsorpipe/internal/api/rest"
	"github.com/eventfold/sponsorpipe/internal/deliverable"
	"github.com/eventfold/sponsorpipe/internal/logger"
	"github.com/eventfold/sponsorpipe/internal/portal"
	"github.com/eventfold/sponsorpipe/internal/sponsorship"
	"github.com/eventfold/sponsorpipe/internal/stats"
)

// Config holds the server configuration
type Config struct {
	Debug        bool
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	Auth         middleware.AuthConfig
	PortalLink   rest.PortalLinkConfig
}

// Services holds the business services the API exposes
type Services struct {
	Sponsorships sponsorship.Service
	Deliverables deliverable.Service
	Portal       portal.Service
	Stats        stats.Engine
}

// Server wraps the HTTP server
type Server struct {
	config     Config
	services   Services
	httpServer *http.Server
}

// New creates a new API server
func New(cfg Config, services Services) *Server {
	return &Server{
		config:   cfg,
		services: services,
	}
}

// Start initializes and starts the HTTP server
func (s *Server) Start() error {
	// Set Gin mode based on debug flag
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create Gin router
	router := gin.New()

	// Setup middleware
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.SetupCORS())

	// Create REST handler
	restHandler := rest.NewHandler(
		s.services.Sponsorships,
		s.services.Deliverables,
		s.services.Portal,
		s.services.Stats,
		s.config.PortalLink,
	)

	// Setup REST routes
	rest.SetupRoutes(router, restHandler, s.config.Auth)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.Info("Starting API server",
		zap.String("address", addr),
	)

	// Start server
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down API server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	return nil
}
