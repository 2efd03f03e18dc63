package teach

import "context"

// Result is the outcome of one ask interaction. Audio is nil when speech
// synthesis failed; Summary may carry a degraded placeholder.
type Result struct {
	Query       string
	Explanation string
	Summary     string
	Audio       []byte
}

// Service answers a student's question with an explanation, a spoken
// reading and compact notes.
type Service interface {
	Ask(ctx context.Context, query string) (Result, error)
}
