package notes

import (
	"askify/internal/llm"
	"askify/internal/logger"
)

type implService struct {
	model  llm.Model
	logger logger.Logger
}

// New creates a notes Service backed by the given language model.
func New(model llm.Model, log logger.Logger) Service {
	return &implService{
		model:  model,
		logger: log,
	}
}
