package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/huddlewire/huddlewire/app/api"
	"github.com/huddlewire/huddlewire/app/cfg"
	"github.com/huddlewire/huddlewire/app/config"
	"github.com/huddlewire/huddlewire/app/news"
	"github.com/huddlewire/huddlewire/app/odds"
	"github.com/huddlewire/huddlewire/app/store"
	"github.com/huddlewire/huddlewire/app/tasks"
)

func main() {
	// Load configuration from environment variables and command-line flags
	appCfg, err := cfg.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	logLevel := slog.LevelInfo
	if appCfg.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))

	slog.Info("Starting Huddlewire server", "version", cfg.GetVersion())

	// Load team and feed sources
	loader := config.NewLoader(appCfg.SourcesFile)
	sources, err := loader.Load()
	if err != nil {
		slog.Error("Failed to load sources", "file", appCfg.SourcesFile, "error", err)
		os.Exit(1)
	}
	slog.Info("Sources loaded", "teams", len(sources.Teams), "feeds", sources.FeedCount())

	if appCfg.OddsAPIKey == "" {
		slog.Info("Odds API key not set, game odds will be unavailable")
	}

	// Initialize core components
	httpClient := &http.Client{
		Timeout: 30 * time.Second,
	}

	fetcher := news.NewFetcher(httpClient, sources.Teams)
	pipeline := news.NewPipeline(fetcher, sources)
	oddsClient := odds.NewClient(httpClient)
	snapshots := store.New()

	// Initialize and start the background refresh scheduler
	slog.Info("Starting background scheduler", "workers", appCfg.WorkerCount, "interval", appCfg.SchedulerInterval)
	scheduler := tasks.NewScheduler(pipeline, oddsClient, snapshots)
	scheduler.Start()
	defer scheduler.Stop()

	// Initialize HTTP server
	handler := api.NewHandler(snapshots, scheduler, sources)
	server := api.NewServer(handler, cfg.GetVersion())

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start HTTP server in a goroutine
	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "port", appCfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Wait for interrupt signal or server error
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	// Graceful shutdown
	slog.Info("Shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	// Scheduler is stopped via defer
	slog.Info("Shutdown complete")
}
