package notes

import "context"

// Service turns transcript text into compact bullet-point study notes.
type Service interface {
	Generate(ctx context.Context, transcript string) (string, error)
}
