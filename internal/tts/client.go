package tts

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"askify/internal/config"
	"askify/internal/logger"
)

const synthesizeTimeout = 60 * time.Second

type implClient struct {
	baseURL    string
	apiKey     string
	voiceID    string
	httpClient *http.Client
	logger     logger.Logger
}

// Option customizes the client.
type Option func(*implClient)

// WithHTTPClient overrides the default HTTP client (useful for tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *implClient) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// New creates a Murf speech synthesis client from config.
func New(cfg config.MurfConfig, log logger.Logger, opts ...Option) Synthesizer {
	c := &implClient{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		voiceID:    cfg.VoiceID,
		httpClient: &http.Client{Timeout: synthesizeTimeout},
		logger:     log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Synthesize sends text to the Murf speech endpoint and returns decoded
// audio bytes.
func (c *implClient) Synthesize(ctx context.Context, text string) ([]byte, error) {
	payload, err := json.Marshal(map[string]any{
		"text":           text,
		"voiceId":        c.voiceID,
		"encodeAsBase64": true,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal tts request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/speech/generate", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build tts request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tts request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read tts response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("tts api: %s", resp.Status)
	}

	var reply struct {
		EncodedAudio string `json:"encodedAudio"`
	}
	if err := json.Unmarshal(data, &reply); err != nil {
		return nil, fmt.Errorf("decode tts response: %w", err)
	}
	if reply.EncodedAudio == "" {
		return nil, fmt.Errorf("tts response carries no audio")
	}

	audio, err := base64.StdEncoding.DecodeString(reply.EncodedAudio)
	if err != nil {
		return nil, fmt.Errorf("decode tts audio: %w", err)
	}
	return audio, nil
}
