package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Murf    MurfConfig    `yaml:"murf"`
	Gemini  GeminiConfig  `yaml:"gemini"`
	Dubbing DubbingConfig `yaml:"dubbing"`
	Paths   PathsConfig   `yaml:"paths"`
	Watcher WatcherConfig `yaml:"watcher"`
	Logging LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type MurfConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
	VoiceID string `yaml:"voice_id"`
}

type GeminiConfig struct {
	Model   string   `yaml:"model"`
	APIKeys []string `yaml:"api_keys"`
}

type DubbingConfig struct {
	PollIntervalSec int    `yaml:"poll_interval_sec"`
	TimeoutSec      int    `yaml:"timeout_sec"`
	Priority        string `yaml:"priority"`
}

type PathsConfig struct {
	Downloads string `yaml:"downloads"`
	Uploads   string `yaml:"uploads"`
	Output    string `yaml:"output"`
	Temp      string `yaml:"temp"`
}

type WatcherConfig struct {
	Input         string `yaml:"input"`
	TargetLocale  string `yaml:"target_locale"`
	MaxConcurrent int    `yaml:"max_concurrent"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads a YAML config file and applies defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Murf.APIKey == "" {
		return fmt.Errorf("murf.api_key is required")
	}
	if len(c.Gemini.APIKeys) == 0 {
		return fmt.Errorf("gemini.api_keys is required")
	}

	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Murf.BaseURL == "" {
		c.Murf.BaseURL = "https://api.murf.ai"
	}
	if c.Murf.VoiceID == "" {
		c.Murf.VoiceID = "en-US-natalie"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Dubbing.PollIntervalSec == 0 {
		c.Dubbing.PollIntervalSec = 3
	}
	if c.Dubbing.TimeoutSec == 0 {
		c.Dubbing.TimeoutSec = 1800
	}
	if c.Dubbing.Priority == "" {
		c.Dubbing.Priority = "LOW"
	}
	if c.Paths.Downloads == "" {
		c.Paths.Downloads = "data/downloads"
	}
	if c.Paths.Uploads == "" {
		c.Paths.Uploads = "data/uploads"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Watcher.Input == "" {
		c.Watcher.Input = "data/input"
	}
	if c.Watcher.TargetLocale == "" {
		c.Watcher.TargetLocale = "en_US"
	}
	if c.Watcher.MaxConcurrent == 0 {
		c.Watcher.MaxConcurrent = 2
	}

	return nil
}
