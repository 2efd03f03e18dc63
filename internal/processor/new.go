package processor

import (
	"askify/internal/config"
	"askify/internal/dubbing"
	"askify/internal/logger"
	"askify/internal/notes"
)

type implProcessor struct {
	cfg    *config.Config
	dubber dubbing.Service
	notes  notes.Service
	logger logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, dubber dubbing.Service, notesSvc notes.Service, log logger.Logger) Processor {
	return &implProcessor{
		cfg:    cfg,
		dubber: dubber,
		notes:  notesSvc,
		logger: log,
	}
}
