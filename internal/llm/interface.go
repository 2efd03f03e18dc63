package llm

import "context"

// Model generates text from a prompt. External model clients are injected
// behind this interface so components can be tested with doubles.
type Model interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
