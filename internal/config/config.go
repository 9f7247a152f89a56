package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	BackendHuggingFace = "huggingface"
	BackendOpenAI      = "openai"
)

type Config struct {
	ListenAddr     string        `env:"LISTEN_ADDR"        envDefault:":7860"`
	Backend        string        `env:"SUMMARIZER_BACKEND" envDefault:"huggingface"`
	HFAPIToken     string        `env:"HF_API_TOKEN"`
	// Empty HF_ENDPOINT and HF_MODEL select the summarizer package defaults.
	HFEndpoint     string        `env:"HF_ENDPOINT"`
	HFModel        string        `env:"HF_MODEL"`
	OpenAIAPIKey   string        `env:"OPENAI_API_KEY"`
	OpenAIModel    string        `env:"OPENAI_MODEL"       envDefault:"gpt-4.1-mini"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"    envDefault:"120s"`
	LogLevel       string        `env:"LOG_LEVEL"          envDefault:"info"`
	MetricsEnabled bool          `env:"METRICS_ENABLED"    envDefault:"true"`
}

// LoadConfig reads the configuration from the environment and validates it.
func LoadConfig() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	cfg.Backend = strings.ToLower(strings.TrimSpace(cfg.Backend))
	cfg.HFAPIToken = strings.TrimSpace(cfg.HFAPIToken)
	cfg.OpenAIAPIKey = strings.TrimSpace(cfg.OpenAIAPIKey)

	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Backend {
	case BackendHuggingFace:
	case BackendOpenAI:
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required for backend %q", c.Backend)
		}
	default:
		return fmt.Errorf("unknown SUMMARIZER_BACKEND %q", c.Backend)
	}

	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive, got %s", c.RequestTimeout)
	}

	return nil
}

// SlogLevel maps LOG_LEVEL to a slog level, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
