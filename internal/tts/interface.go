package tts

import "context"

// Synthesizer turns text into spoken audio bytes.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}
