package dubbing

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedResponse means the provider reply carried no job id under
	// any of the accepted field names.
	ErrMalformedResponse = errors.New("dubbing: provider response has no job id")

	// ErrPollTimeout means the job did not reach a terminal status within
	// the poll timeout. The provider may still be working on it; this
	// process gives up waiting.
	ErrPollTimeout = errors.New("dubbing: polling timed out")

	// ErrNoDownloadDetails means a completed job carried no download details.
	ErrNoDownloadDetails = errors.New("dubbing: completed job has no download details")

	// ErrNoDubbedMedia means the first download detail lacks a dubbed media URL.
	ErrNoDubbedMedia = errors.New("dubbing: no dubbed media url in download details")
)

// DownloadError reports a failed artifact fetch.
type DownloadError struct {
	URL string
	Err error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("download %s: %v", e.URL, e.Err)
}

func (e *DownloadError) Unwrap() error {
	return e.Err
}
