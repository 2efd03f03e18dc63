package llm

import (
	"sync"

	"askify/internal/config"
	"askify/internal/logger"
)

type implModel struct {
	apiKeys []string
	model   string
	logger  logger.Logger

	mu         sync.Mutex
	currentKey int
}

// New creates a Gemini-backed Model that rotates through the supplied
// API keys on quota errors.
func New(cfg config.GeminiConfig, log logger.Logger) Model {
	return &implModel{
		apiKeys: cfg.APIKeys,
		model:   cfg.Model,
		logger:  log,
	}
}
