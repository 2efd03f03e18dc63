package processor

import "context"

// Processor runs the full dubbing pipeline for one local video file.
type Processor interface {
	Process(ctx context.Context, videoPath string) error
}
