package media

import (
	"askify/internal/config"
	"askify/internal/logger"
	"askify/pkg/executor"
)

type implService struct {
	cfg      config.PathsConfig
	executor executor.Executor
	logger   logger.Logger
}

// New creates a media acquisition Service.
func New(cfg config.PathsConfig, exec executor.Executor, log logger.Logger) Service {
	return &implService{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
