package dubbing

import "context"

// Provider is the external dubbing service boundary.
type Provider interface {
	CreateJob(ctx context.Context, req CreateJobRequest) (Job, error)
	JobStatus(ctx context.Context, jobID string) (Status, error)
}

// Service drives a dub job from submission through polling to resolved
// output artifacts.
type Service interface {
	// Submit validates the target locale and creates a job with the provider.
	Submit(ctx context.Context, filePath, targetLocale string) (Job, error)
	// Status performs a single status query.
	Status(ctx context.Context, jobID string) (Status, error)
	// Await polls until the job reaches a terminal status or the configured
	// timeout elapses. Cancelling ctx stops the loop between polls.
	Await(ctx context.Context, jobID string) (Status, error)
	// Resolve extracts artifact URLs from a terminal status and fetches
	// their bytes.
	Resolve(ctx context.Context, st Status) (Artifacts, error)
	// FetchArtifact fetches one artifact URL with the bounded download
	// timeout.
	FetchArtifact(ctx context.Context, url string) ([]byte, error)
}
