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
	"askify/internal/notes"
	"askify/internal/processor"
	"askify/internal/watcher"
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
	log.Info(ctx, "Askify Dubbing Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Target locale: %s", cfg.Watcher.TargetLocale)
	log.Info(ctx, "Max concurrent dub jobs: %d", cfg.Watcher.MaxConcurrent)
	log.Info(ctx, "Configuration loaded successfully")

	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	// Initialize dependencies
	provider := dubbing.NewClient(cfg.Murf, log)
	dubber := dubbing.New(provider, cfg.Dubbing, log)
	model := llm.New(cfg.Gemini, log)
	notesSvc := notes.New(model, log)
	proc := processor.New(cfg, dubber, notesSvc, log)

	// Create watcher with processor as handler and concurrency control
	w, err := watcher.New(cfg.Watcher.Input, proc.Process, log, cfg.Watcher.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	// Create context with cancellation
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start watcher in goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Dubbing pipeline is ready!")
	log.Info(ctx, "Monitoring: %s", cfg.Watcher.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	// Wait for shutdown signal or error
	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	// Graceful shutdown
	log.Info(ctx, "Shutting down gracefully...")
	cancel()

	log.Info(ctx, "Dubbing pipeline stopped")
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Watcher.Input,
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
