package config

import (
	"log/slog"
	"os"
	"testing"
	"time"
)

var configEnvVars = []string{
	"LISTEN_ADDR",
	"SUMMARIZER_BACKEND",
	"HF_API_TOKEN",
	"HF_ENDPOINT",
	"HF_MODEL",
	"OPENAI_API_KEY",
	"OPENAI_MODEL",
	"REQUEST_TIMEOUT",
	"LOG_LEVEL",
	"METRICS_ENABLED",
}

// clearEnv unsets every config variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()

	for _, key := range configEnvVars {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("unset %s: %v", key, err)
		}
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.ListenAddr != ":7860" {
		t.Fatalf("unexpected listen addr: %q", cfg.ListenAddr)
	}

	if cfg.Backend != BackendHuggingFace {
		t.Fatalf("unexpected backend: %q", cfg.Backend)
	}

	if cfg.HFEndpoint != "" || cfg.HFModel != "" {
		t.Fatalf("expected endpoint and model to be left to the summarizer, got %q %q", cfg.HFEndpoint, cfg.HFModel)
	}

	if cfg.RequestTimeout != 120*time.Second {
		t.Fatalf("unexpected timeout: %s", cfg.RequestTimeout)
	}

	if !cfg.MetricsEnabled {
		t.Fatalf("expected metrics to be enabled by default")
	}
}

func TestLoadConfigOpenAIRequiresKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("SUMMARIZER_BACKEND", "OpenAI")
	t.Setenv("OPENAI_API_KEY", "   ")

	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected error when OPENAI_API_KEY is blank")
	}

	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Backend != BackendOpenAI {
		t.Fatalf("expected backend to be normalized, got %q", cfg.Backend)
	}
}

func TestLoadConfigRejectsUnknownBackend(t *testing.T) {
	clearEnv(t)
	t.Setenv("SUMMARIZER_BACKEND", "local")

	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}

func TestLoadConfigRejectsNonPositiveTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("REQUEST_TIMEOUT", "0s")

	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected error for zero timeout")
	}
}

func TestSlogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}

	for raw, want := range cases {
		if got := (Config{LogLevel: raw}).SlogLevel(); got != want {
			t.Fatalf("level %q: got %s want %s", raw, got, want)
		}
	}
}
