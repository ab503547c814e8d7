// cmd/service/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"devfolio/internal/config"
	"devfolio/internal/content"
	"devfolio/internal/github"
	"devfolio/internal/viewer"
	"devfolio/internal/web"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Application startup error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Initialize structured logger
	logLevel := new(slog.LevelVar)
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	logger := slog.New(handler)
	slog.SetDefault(logger)

	// 2. Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	setLogLevel(cfg.LogLevel, logLevel)
	logger.Info("Configuration loaded successfully", "username", cfg.GithubUsername)

	// 3. Setup context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// 4. Initialize application components
	srv, err := newServer(cfg, logger)
	if err != nil {
		return err
	}

	// 5. Start serving in a separate goroutine
	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// 6. Wait for shutdown signal
	select {
	case err := <-errCh:
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}
	logger.Info("Shutdown signal received. Exiting.")

	// In-flight page views get ShutdownTimeout to finish.
	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down http server: %w", err)
	}
	return nil
}

// newServer wires the content, GitHub client and fetch pipeline behind the router.
func newServer(cfg *config.Config, logger *slog.Logger) (*http.Server, error) {
	site, err := content.Load(cfg.ContentFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load site content: %w", err)
	}

	ghClient, err := github.NewClient(cfg.GithubToken, cfg.GithubAPIURL, cfg.FetchTimeout, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create github client: %w", err)
	}
	loader := viewer.NewLoader(ghClient, logger, cfg.GithubUsername)
	if cfg.GithubToken != "" {
		loader = loader.WithCalendar(ghClient)
	}

	router, err := web.NewRouter(loader, site, logger, web.Options{ShowFetchErrors: cfg.ShowFetchErrors})
	if err != nil {
		return nil, fmt.Errorf("failed to create router: %w", err)
	}

	return &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: router,
	}, nil
}

func setLogLevel(level string, v *slog.LevelVar) {
	switch level {
	case "debug":
		v.Set(slog.LevelDebug)
	case "warn":
		v.Set(slog.LevelWarn)
	case "error":
		v.Set(slog.LevelError)
	default:
		v.Set(slog.LevelInfo)
	}
}
