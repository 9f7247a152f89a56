package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"textsummarizer/internal/config"
	"textsummarizer/internal/handler"
	"textsummarizer/internal/logging"
	"textsummarizer/internal/metrics"
	"textsummarizer/internal/summarizer"
	"textsummarizer/internal/ui"
)

const shutdownTimeout = 10 * time.Second

func main() {
	log := slog.New(logging.NewContextHandler(slog.NewJSONHandler(os.Stdout, nil)))
	slog.SetDefault(log)

	start := time.Now()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.ErrorContext(ctx, "Failed to load config",
			"error", err)

		return
	}

	log = slog.New(logging.NewContextHandler(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}),
	))
	slog.SetDefault(log)

	if cfg.SlogLevel() > slog.LevelDebug {
		gin.SetMode(gin.ReleaseMode)
	}

	s, err := initSummarizer(cfg)
	if err != nil {
		log.ErrorContext(ctx, "Failed to create summarizer",
			"error", err,
			"backend", cfg.Backend)

		return
	}
	log.InfoContext(ctx, "Summarizer is initialized",
		"backend", cfg.Backend)

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New()
	}

	h := handler.New(s, m, log)

	server, err := ui.New(h, ui.Options{
		Addr:           cfg.ListenAddr,
		RequestTimeout: cfg.RequestTimeout,
		Metrics:        m,
	}, log)
	if err != nil {
		log.ErrorContext(ctx, "Failed to initialize server",
			"error", err)

		return
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()
	log.InfoContext(ctx, "Server is started",
		"listenAddr", cfg.ListenAddr,
		"metricsEnabled", cfg.MetricsEnabled)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-c:
		log.InfoContext(ctx, "Shutdown signal is received",
			"signal", sig.String())
	case err = <-errCh:
		if err != nil {
			log.ErrorContext(ctx, "Server is stopped unexpectedly",
				"error", err,
				"listenAddr", cfg.ListenAddr)
		}
	}
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err = server.Shutdown(shutdownCtx); err != nil {
		log.ErrorContext(shutdownCtx, "Failed to shut down server",
			"error", err)
	}

	log.InfoContext(shutdownCtx, "Exiting...",
		"uptimeSeconds", time.Since(start).Seconds())
}

func initSummarizer(cfg config.Config) (summarizer.Summarizer, error) {
	switch cfg.Backend {
	case config.BackendHuggingFace:
		return summarizer.NewHuggingFaceSummarizer(summarizer.HuggingFaceConfig{
			Endpoint:   cfg.HFEndpoint,
			Model:      cfg.HFModel,
			Token:      cfg.HFAPIToken,
			HTTPClient: &http.Client{Timeout: cfg.RequestTimeout},
		})
	case config.BackendOpenAI:
		return summarizer.NewOpenAISummarizer(summarizer.OpenAIConfig{
			APIKey: cfg.OpenAIAPIKey,
			Model:  cfg.OpenAIModel,
		})
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}
