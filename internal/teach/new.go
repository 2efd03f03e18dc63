package teach

import (
	"askify/internal/llm"
	"askify/internal/logger"
	"askify/internal/notes"
	"askify/internal/tts"
)

type implService struct {
	model  llm.Model
	notes  notes.Service
	tts    tts.Synthesizer
	logger logger.Logger
}

// New creates the ask pipeline from its external collaborators.
func New(model llm.Model, notesSvc notes.Service, synth tts.Synthesizer, log logger.Logger) Service {
	return &implService{
		model:  model,
		notes:  notesSvc,
		tts:    synth,
		logger: log,
	}
}
