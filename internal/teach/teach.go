package teach

import (
	"context"
	"fmt"
	"strings"

	"askify/internal/notes"
)

const explainPrompt = `You are a patient teacher. Explain the following question to a student in clear, plain language. Keep the explanation focused and avoid unnecessary jargon.

Question:
%s

Explanation:
`

// Ask runs the explanation pipeline: generate an explanation, read it
// aloud, and derive compact notes. The stages run strictly sequentially
// within one request. A failed explanation stops the pipeline; speech and
// notes are best-effort enrichment and degrade instead of failing the
// interaction.
func (s *implService) Ask(ctx context.Context, query string) (Result, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Result{}, fmt.Errorf("empty query")
	}

	explanation, err := s.model.Generate(ctx, fmt.Sprintf(explainPrompt, query))
	if err != nil {
		return Result{}, fmt.Errorf("generate explanation: %w", err)
	}
	explanation = strings.TrimSpace(explanation)

	res := Result{
		Query:       query,
		Explanation: explanation,
	}

	audio, err := s.tts.Synthesize(ctx, explanation)
	if err != nil {
		s.logger.Warn(ctx, "Speech synthesis failed, continuing without audio: %v", err)
	} else {
		res.Audio = audio
	}

	summary, err := s.notes.Generate(ctx, explanation)
	if err != nil {
		s.logger.Warn(ctx, "Summary generation failed, returning placeholder: %v", err)
		res.Summary = notes.Fallback(err)
	} else {
		res.Summary = summary
	}

	return res, nil
}
