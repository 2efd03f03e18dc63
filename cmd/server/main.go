package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"askify/internal/config"
	"askify/internal/dubbing"
	"askify/internal/llm"
	"askify/internal/logger"
	"askify/internal/media"
	"askify/internal/notes"
	"askify/internal/server"
	"askify/internal/teach"
	"askify/internal/tts"
	"askify/pkg/executor"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Askify API Server")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Configuration loaded successfully")

	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	// Initialize dependencies
	exec := executor.New()
	mediaSvc := media.New(cfg.Paths, exec, log)
	provider := dubbing.NewClient(cfg.Murf, log)
	dubber := dubbing.New(provider, cfg.Dubbing, log)
	model := llm.New(cfg.Gemini, log)
	notesSvc := notes.New(model, log)
	synth := tts.New(cfg.Murf, log)
	teacher := teach.New(model, notesSvc, synth, log)

	srv := server.New(cfg, log, mediaSvc, dubber, notesSvc, teacher)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start(ctx)
	}()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Askify is ready!")
	log.Info(ctx, "Listening: %s", cfg.Server.Addr)
	log.Info(ctx, "Dub poll interval: %ds, timeout: %ds", cfg.Dubbing.PollIntervalSec, cfg.Dubbing.TimeoutSec)
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	// Wait for shutdown signal or error
	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
		log.Info(ctx, "Shutting down gracefully...")
		cancel()
		// Start returns once in-flight requests have drained.
		if err := <-errChan; err != nil {
			log.Error(ctx, "Server shutdown error: %v", err)
		}
	case err := <-errChan:
		if err != nil {
			log.Error(ctx, "Server error: %v", err)
		}
		cancel()
	}

	log.Info(ctx, "Askify stopped")
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Downloads,
		cfg.Paths.Uploads,
		cfg.Paths.Output,
		cfg.Paths.Temp,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
