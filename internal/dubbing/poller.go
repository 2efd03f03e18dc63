package dubbing

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"askify/internal/locale"
)

// Submit validates the target locale against the registry and creates a
// dub job with the provider. Locale validation happens before any network
// call is made.
func (s *implService) Submit(ctx context.Context, filePath, targetLocale string) (Job, error) {
	if err := locale.Validate(targetLocale); err != nil {
		return Job{}, err
	}

	job, err := s.provider.CreateJob(ctx, CreateJobRequest{
		FilePath:     filePath,
		FileName:     filepath.Base(filePath),
		TargetLocale: targetLocale,
		Priority:     s.priority,
	})
	if err != nil {
		return Job{}, fmt.Errorf("create dub job: %w", err)
	}
	return job, nil
}

// Status performs a single status query against the provider.
func (s *implService) Status(ctx context.Context, jobID string) (Status, error) {
	st, err := s.provider.JobStatus(ctx, jobID)
	if err != nil {
		return Status{}, fmt.Errorf("job status: %w", err)
	}
	return st, nil
}

// Await polls the provider until the job reaches a terminal status.
//
// Each cycle queries once; a terminal status returns immediately. If the
// elapsed wall-clock time since the first query exceeds the timeout the
// loop fails with ErrPollTimeout, which is never retried here. Otherwise
// it sleeps and goes again. Dub jobs run for minutes, so the sleep grows
// with the attempt count in buckets of ten and flattens at maxPollDelay:
// fast detection while the job is likely short, fewer requests once it is
// clearly long.
func (s *implService) Await(ctx context.Context, jobID string) (Status, error) {
	start := s.now()
	attempt := 0

	for {
		st, err := s.provider.JobStatus(ctx, jobID)
		if err != nil {
			return Status{}, fmt.Errorf("job status: %w", err)
		}

		if st.Terminal() {
			s.logger.Info(ctx, "Dub job %s reached terminal status %s after %d polls", jobID, st.Status, attempt+1)
			return st, nil
		}

		if s.now().Sub(start) > s.timeout {
			return Status{}, ErrPollTimeout
		}

		delay := pollDelay(s.interval, attempt)
		s.logger.Debug(ctx, "Dub job %s status %s, next poll in %s", jobID, st.Status, delay)

		if err := s.sleep(ctx, delay); err != nil {
			return Status{}, err
		}
		attempt++
	}
}

// pollDelay returns min(interval * (1 + attempt/10), maxPollDelay).
func pollDelay(interval time.Duration, attempt int) time.Duration {
	d := interval * time.Duration(1+attempt/10)
	if d > maxPollDelay {
		return maxPollDelay
	}
	return d
}
