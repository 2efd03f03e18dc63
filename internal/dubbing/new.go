package dubbing

import (
	"context"
	"net/http"
	"time"

	"askify/internal/config"
	"askify/internal/logger"
)

const (
	defaultPollInterval = 3 * time.Second
	defaultPollTimeout  = 1800 * time.Second
	maxPollDelay        = 15 * time.Second
	downloadTimeout     = 120 * time.Second
)

type implService struct {
	provider Provider
	fetcher  *http.Client
	interval time.Duration
	timeout  time.Duration
	priority string
	logger   logger.Logger

	// seams for tests
	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// Option customizes the service.
type Option func(*implService)

// WithClock overrides the wall-clock source (useful for tests).
func WithClock(now func() time.Time) Option {
	return func(s *implService) {
		if now != nil {
			s.now = now
		}
	}
}

// WithSleeper overrides how poll sleeps are performed (useful for tests).
func WithSleeper(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(s *implService) {
		if sleep != nil {
			s.sleep = sleep
		}
	}
}

// WithFetchClient overrides the HTTP client used to fetch artifacts.
func WithFetchClient(hc *http.Client) Option {
	return func(s *implService) {
		if hc != nil {
			s.fetcher = hc
		}
	}
}

// New creates a dubbing Service on top of the given provider.
func New(provider Provider, cfg config.DubbingConfig, log logger.Logger, opts ...Option) Service {
	s := &implService{
		provider: provider,
		fetcher:  &http.Client{Timeout: downloadTimeout},
		interval: defaultPollInterval,
		timeout:  defaultPollTimeout,
		priority: cfg.Priority,
		logger:   log,
		now:      time.Now,
		sleep:    sleepContext,
	}
	if cfg.PollIntervalSec > 0 {
		s.interval = time.Duration(cfg.PollIntervalSec) * time.Second
	}
	if cfg.TimeoutSec > 0 {
		s.timeout = time.Duration(cfg.TimeoutSec) * time.Second
	}
	if s.priority == "" {
		s.priority = "LOW"
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
