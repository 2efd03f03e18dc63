package dubbing

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Terminal statuses. The provider reports status in varying cases; every
// status is uppercased on receipt, and once one of these is observed the
// job is never queried again.
const (
	StatusPending   = "PENDING"
	StatusRunning   = "RUNNING"
	StatusCompleted = "COMPLETED"
	StatusFailed    = "FAILED"
	StatusError     = "ERROR"
)

// Job is a dub job created with the provider.
type Job struct {
	ID           string
	TargetLocale string
	Priority     string
}

// CreateJobRequest carries everything the provider needs to start a job.
// The provider's job model is multi-locale; this system always requests
// exactly one target locale.
type CreateJobRequest struct {
	FilePath     string
	FileName     string
	TargetLocale string
	Priority     string
}

// DownloadDetail pairs a completed job with its output artifact URLs.
// The subtitle URL is optional.
type DownloadDetail struct {
	Locale         string
	DownloadURL    string
	DownloadSRTURL string
}

// Status is the canonical form of a provider status reply.
type Status struct {
	JobID           string
	Status          string
	DownloadDetails []DownloadDetail
}

// Terminal reports whether no further polling is needed.
func (s Status) Terminal() bool {
	switch s.Status {
	case StatusCompleted, StatusFailed, StatusError:
		return true
	}
	return false
}

// Artifacts holds the fetched outputs of a completed job. Subtitles may be
// nil; the dubbed video is always present.
type Artifacts struct {
	VideoURL     string
	SubtitlesURL string
	Video        []byte
	Subtitles    []byte
}

// The provider is inconsistent about field naming: job ids arrive as "id"
// or "job_id", and detail fields as snake_case or camelCase depending on
// the endpoint. parseCreateResponse and parseStatus are the only places
// that deal with this; everything past them sees the canonical types above.

type rawDetail struct {
	Locale            string `json:"locale"`
	TargetLocale      string `json:"target_locale"`
	DownloadURL       string `json:"download_url"`
	DownloadURLCamel  string `json:"downloadUrl"`
	DownloadSRT       string `json:"download_srt_url"`
	DownloadSRTCamel  string `json:"downloadSrtUrl"`
	SubtitlesURL      string `json:"subtitles_url"`
}

func (d rawDetail) normalize() DownloadDetail {
	return DownloadDetail{
		Locale:         firstNonEmpty(d.Locale, d.TargetLocale),
		DownloadURL:    firstNonEmpty(d.DownloadURL, d.DownloadURLCamel),
		DownloadSRTURL: firstNonEmpty(d.DownloadSRT, d.DownloadSRTCamel, d.SubtitlesURL),
	}
}

// parseCreateResponse extracts the provider-assigned job id. Fallback
// order: "id", then "job_id". Neither present is a contract violation,
// reported as ErrMalformedResponse rather than defaulting.
func parseCreateResponse(data []byte) (string, error) {
	var raw struct {
		ID    string `json:"id"`
		JobID string `json:"job_id"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return "", fmt.Errorf("decode create response: %w", err)
	}

	id := firstNonEmpty(raw.ID, raw.JobID)
	if id == "" {
		return "", ErrMalformedResponse
	}
	return id, nil
}

// parseStatus normalizes any accepted status reply shape into a Status.
func parseStatus(data []byte) (Status, error) {
	var raw struct {
		ID                   string      `json:"id"`
		JobID                string      `json:"job_id"`
		Status               string      `json:"status"`
		DownloadDetails      []rawDetail `json:"download_details"`
		DownloadDetailsCamel []rawDetail `json:"downloadDetails"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Status{}, fmt.Errorf("decode status response: %w", err)
	}

	details := raw.DownloadDetails
	if len(details) == 0 {
		details = raw.DownloadDetailsCamel
	}

	st := Status{
		JobID:  firstNonEmpty(raw.ID, raw.JobID),
		Status: strings.ToUpper(strings.TrimSpace(raw.Status)),
	}
	for _, d := range details {
		st.DownloadDetails = append(st.DownloadDetails, d.normalize())
	}
	return st, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
