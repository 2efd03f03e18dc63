package dubbing

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"time"

	"askify/internal/config"
	"askify/internal/logger"
)

const defaultClientTimeout = 60 * time.Second

// Client talks to the Murf dubbing HTTP API. It implements Provider.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     logger.Logger
}

// ClientOption customizes the client.
type ClientOption func(*Client)

// WithHTTPClient overrides the default HTTP client (useful for tests).
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewClient creates a dubbing provider client from config.
func NewClient(cfg config.MurfConfig, log logger.Logger, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: defaultClientTimeout},
		logger:     log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CreateJob uploads the media file and starts an asynchronous dub job.
func (c *Client) CreateJob(ctx context.Context, req CreateJobRequest) (Job, error) {
	f, err := os.Open(req.FilePath)
	if err != nil {
		return Job{}, fmt.Errorf("open media file: %w", err)
	}
	defer f.Close()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	part, err := mw.CreateFormFile("file", req.FileName)
	if err != nil {
		return Job{}, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return Job{}, fmt.Errorf("copy media file: %w", err)
	}
	if err := mw.WriteField("file_name", req.FileName); err != nil {
		return Job{}, fmt.Errorf("write file_name field: %w", err)
	}
	if err := mw.WriteField("target_locales", req.TargetLocale); err != nil {
		return Job{}, fmt.Errorf("write target_locales field: %w", err)
	}
	if err := mw.WriteField("priority", req.Priority); err != nil {
		return Job{}, fmt.Errorf("write priority field: %w", err)
	}
	if err := mw.Close(); err != nil {
		return Job{}, fmt.Errorf("close multipart writer: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/murfdub/jobs/create", &body)
	if err != nil {
		return Job{}, fmt.Errorf("build create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())
	httpReq.Header.Set("api-key", c.apiKey)

	data, err := c.do(httpReq)
	if err != nil {
		return Job{}, err
	}

	id, err := parseCreateResponse(data)
	if err != nil {
		return Job{}, err
	}

	c.logger.Info(ctx, "Dub job created: %s (locale: %s, priority: %s)", id, req.TargetLocale, req.Priority)

	return Job{ID: id, TargetLocale: req.TargetLocale, Priority: req.Priority}, nil
}

// JobStatus fetches the current status of a job.
func (c *Client) JobStatus(ctx context.Context, jobID string) (Status, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/murfdub/jobs/"+jobID+"/status", nil)
	if err != nil {
		return Status{}, fmt.Errorf("build status request: %w", err)
	}
	httpReq.Header.Set("api-key", c.apiKey)

	data, err := c.do(httpReq)
	if err != nil {
		return Status{}, err
	}

	st, err := parseStatus(data)
	if err != nil {
		return Status{}, err
	}
	if st.JobID == "" {
		st.JobID = jobID
	}
	return st, nil
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("dubbing api request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read dubbing api response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("dubbing api %s %s: %s: %s", req.Method, req.URL.Path, resp.Status, truncate(data, 200))
	}
	return data, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
