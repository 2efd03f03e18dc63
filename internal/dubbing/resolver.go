package dubbing

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Resolve extracts artifact URLs from a terminal status and fetches their
// bytes. A missing subtitle URL is fine; a missing dubbed media URL is not.
// Only the first download detail is consulted.
func (s *implService) Resolve(ctx context.Context, st Status) (Artifacts, error) {
	if len(st.DownloadDetails) == 0 {
		return Artifacts{}, ErrNoDownloadDetails
	}

	first := st.DownloadDetails[0]
	if first.DownloadURL == "" {
		return Artifacts{}, ErrNoDubbedMedia
	}

	video, err := s.fetch(ctx, first.DownloadURL)
	if err != nil {
		return Artifacts{}, err
	}

	art := Artifacts{
		VideoURL:     first.DownloadURL,
		SubtitlesURL: first.DownloadSRTURL,
		Video:        video,
	}

	if first.DownloadSRTURL != "" {
		srt, err := s.fetch(ctx, first.DownloadSRTURL)
		if err != nil {
			return Artifacts{}, err
		}
		art.Subtitles = srt
	}

	return art, nil
}

// FetchArtifact fetches one artifact URL with the bounded download timeout.
func (s *implService) FetchArtifact(ctx context.Context, url string) ([]byte, error) {
	return s.fetch(ctx, url)
}

func (s *implService) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &DownloadError{URL: url, Err: err}
	}

	resp, err := s.fetcher.Do(req)
	if err != nil {
		return nil, &DownloadError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &DownloadError{URL: url, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &DownloadError{URL: url, Err: err}
	}
	return data, nil
}
