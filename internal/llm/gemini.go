package llm

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// Generate sends the prompt to Gemini and returns the reply text.
// Rotates API keys on 429 / quota errors. Safe for concurrent use; the
// same Model instance serves every in-flight request.
func (m *implModel) Generate(ctx context.Context, prompt string) (string, error) {
	if len(m.apiKeys) == 0 {
		return "", fmt.Errorf("no gemini api keys configured")
	}

	attempts := len(m.apiKeys)
	var lastErr error

	for range attempts {
		idx, key := m.activeKey()

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			m.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, m.model, genai.Text(prompt), nil)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				m.logger.Warn(ctx, "Key %d rate limited, rotating...", idx+1)
				m.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			return text, nil
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

// activeKey returns the current key index and value under the lock.
func (m *implModel) activeKey() (int, string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.currentKey, m.apiKeys[m.currentKey]
}

func (m *implModel) rotateKey() {
	m.mu.Lock()
	m.currentKey = (m.currentKey + 1) % len(m.apiKeys)
	m.mu.Unlock()
}
