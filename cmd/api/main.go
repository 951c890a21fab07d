package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/eventfold/sponsorpipe/internal/adapter"
	"github.com/eventfold/sponsorpipe/internal/api/middleware"
	"github.com/eventfold/sponsorpipe/internal/api/rest"
	"github.com/eventfold/sponsorpipe/internal/api/server"
	"github.com/eventfold/sponsorpipe/internal/config"
	"github.com/eventfold/sponsorpipe/internal/deliverable"
	"github.com/eventfold/sponsorpipe/internal/events"
	"github.com/eventfold/sponsorpipe/internal/logger"
	"github.com/eventfold/sponsorpipe/internal/mailer"
	"github.com/eventfold/sponsorpipe/internal/portal"
	"github.com/eventfold/sponsorpipe/internal/sponsorship"
	"github.com/eventfold/sponsorpipe/internal/stats"
	"github.com/eventfold/sponsorpipe/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Create shutdown context with timeout
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Sponsorpipe API")

	// Initialize adapters
	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()
	httpClient := adapter.NewHTTPClient(cfg.Store.Timeout)

	// Initialize record store client
	dataStore := store.NewRecordStore(store.Config{
		BaseURL:   cfg.Store.BaseURL,
		AuthToken: cfg.Store.AuthToken,
	}, httpClient, jsonAdapter)
	logger.InfoCtx(ctx, "Record store client ready", zap.String("base_url", cfg.Store.BaseURL))

	// Event publishing is optional; without a NATS URL we fall back to a no-op
	publisher := events.NewNoopPublisher()
	if cfg.NATS.URL != "" {
		publisher, err = events.NewPublisher(events.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		}, adapter.NewNatsJetStream(), jsonAdapter)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
		}
		logger.InfoCtx(ctx, "Connected to NATS", zap.String("url", cfg.NATS.URL))
	} else {
		logger.WarnCtx(ctx, "NATS URL not configured, domain events will not be published")
	}
	defer publisher.Close()

	// Outbound mail is optional as well
	var mail mailer.Mailer
	if cfg.Mailer.APIURL != "" {
		mail = mailer.NewAPIMailer(mailer.Config{
			APIURL: cfg.Mailer.APIURL,
			APIKey: cfg.Mailer.APIKey,
			From:   cfg.Mailer.From,
		}, httpClient, jsonAdapter)
		logger.InfoCtx(ctx, "Mailer configured", zap.String("from", cfg.Mailer.From))
	} else {
		logger.WarnCtx(ctx, "Mailer not configured, delivery notifications disabled")
	}

	// Build services
	services := server.Services{
		Sponsorships: sponsorship.NewService(dataStore, clock, publisher),
		Deliverables: deliverable.NewService(deliverable.Config{
			DueSoonDays: cfg.Portal.DueSoonDays,
		}, dataStore, clock, mail, publisher),
		Portal: portal.NewService(portal.Config{
			DefaultExpiryDays: cfg.Portal.ExpiryDays,
		}, dataStore, clock, publisher),
		Stats: stats.NewEngine(dataStore),
	}

	// Create server config
	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
		PortalLink: rest.PortalLinkConfig{
			BaseURL:    cfg.Portal.BaseURL,
			ExpiryDays: cfg.Portal.ExpiryDays,
		},
	}

	// Create and start server
	srv := server.New(serverConfig, services)

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	// Shutdown server
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	// Use non-context logger for final message since original ctx is canceled
	logger.Info("API server stopped")
}
