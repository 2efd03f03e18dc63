package config

import (
	"os"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Murf: MurfConfig{
					APIKey: "test-key",
				},
				Gemini: GeminiConfig{
					APIKeys: []string{"g-key"},
				},
			},
			wantErr: false,
		},
		{
			name: "missing murf key",
			config: Config{
				Gemini: GeminiConfig{
					APIKeys: []string{"g-key"},
				},
			},
			wantErr: true,
		},
		{
			name: "missing gemini keys",
			config: Config{
				Murf: MurfConfig{
					APIKey: "test-key",
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{
		Murf:   MurfConfig{APIKey: "test-key"},
		Gemini: GeminiConfig{APIKeys: []string{"g-key"}},
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Dubbing.PollIntervalSec != 3 {
		t.Errorf("PollIntervalSec = %v, want 3", cfg.Dubbing.PollIntervalSec)
	}
	if cfg.Dubbing.TimeoutSec != 1800 {
		t.Errorf("TimeoutSec = %v, want 1800", cfg.Dubbing.TimeoutSec)
	}
	if cfg.Dubbing.Priority != "LOW" {
		t.Errorf("Priority = %v, want LOW", cfg.Dubbing.Priority)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Addr = %v, want :8080", cfg.Server.Addr)
	}
}

func TestLoad(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
server:
  addr: ":9090"

murf:
  api_key: "murf-test"
  voice_id: "en-US-ken"

gemini:
  model: "gemini-2.5-flash"
  api_keys:
    - "key-one"
    - "key-two"

dubbing:
  poll_interval_sec: 5
  timeout_sec: 600

logging:
  level: "info"
  format: "text"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Addr != ":9090" {
		t.Errorf("Addr = %v, want :9090", cfg.Server.Addr)
	}
	if cfg.Murf.APIKey != "murf-test" {
		t.Errorf("APIKey = %v, want murf-test", cfg.Murf.APIKey)
	}
	if len(cfg.Gemini.APIKeys) != 2 {
		t.Errorf("len(APIKeys) = %v, want 2", len(cfg.Gemini.APIKeys))
	}
	if cfg.Dubbing.PollIntervalSec != 5 {
		t.Errorf("PollIntervalSec = %v, want 5", cfg.Dubbing.PollIntervalSec)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
