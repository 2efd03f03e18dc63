package notes

import (
	"context"
	"fmt"
	"strings"
)

const notesPrompt = `You are a helpful teacher. Create compact class notes in bullet points from the following transcript text.

Rules:
- 4–7 concise bullets.
- Keep each bullet <= 2 lines.
- No new facts not present in text.
- Use plain language.

Transcript:
%s

Notes:
`

// Generate sends the transcript to the model and returns the trimmed
// notes text. Failures are returned typed; callers that need a
// degraded-but-visible result use Fallback at the boundary.
func (s *implService) Generate(ctx context.Context, transcript string) (string, error) {
	prompt := fmt.Sprintf(notesPrompt, transcript)

	reply, err := s.model.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generate notes: %w", err)
	}
	return strings.TrimSpace(reply), nil
}

// Fallback renders a generation failure as a user-visible placeholder so
// the surrounding interaction still completes.
func Fallback(err error) string {
	return fmt.Sprintf("- (Error generating notes) %v", err)
}
