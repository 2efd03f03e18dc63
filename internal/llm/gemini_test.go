package llm

import (
	"context"
	"sync"
	"testing"

	"askify/internal/config"
	"askify/internal/logger"
)

func TestRotateKeyWraps(t *testing.T) {
	m := &implModel{apiKeys: []string{"a", "b", "c"}, logger: logger.New("error")}

	want := []string{"a", "b", "c", "a", "b"}
	for i, w := range want {
		_, key := m.activeKey()
		if key != w {
			t.Errorf("rotation %d: key = %q, want %q", i, key, w)
		}
		m.rotateKey()
	}
}

func TestKeyRotationConcurrent(t *testing.T) {
	m := &implModel{apiKeys: []string{"a", "b", "c"}, logger: logger.New("error")}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				idx, key := m.activeKey()
				if key != m.apiKeys[idx%len(m.apiKeys)] {
					t.Errorf("index %d does not match key %q", idx, key)
				}
				m.rotateKey()
			}
		}()
	}
	wg.Wait()

	idx, _ := m.activeKey()
	if idx < 0 || idx >= len(m.apiKeys) {
		t.Errorf("currentKey = %d, out of range", idx)
	}
}

func TestGenerateNoKeys(t *testing.T) {
	m := New(config.GeminiConfig{Model: "gemini-2.5-flash"}, logger.New("error"))

	if _, err := m.Generate(context.Background(), "hello"); err == nil {
		t.Error("expected error when no API keys are configured")
	}
}
