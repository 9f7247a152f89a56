// Package handler binds UI control values to the summarization model.
package handler

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"textsummarizer/internal/metrics"
	"textsummarizer/internal/summarizer"
)

// EmptyInputMessage is returned instead of a summary for blank input.
const EmptyInputMessage = "Please supply some text to summarize."

// Handler is the click handler of the Summarize button. It keeps no state
// besides the shared model handle and is safe for concurrent use.
type Handler struct {
	summarizer summarizer.Summarizer
	metrics    *metrics.Metrics
	log        *slog.Logger
}

// New builds a handler around a model handle created once at startup.
// m may be nil.
func New(s summarizer.Summarizer, m *metrics.Metrics, log *slog.Logger) *Handler {
	return &Handler{
		summarizer: s,
		metrics:    m,
		log:        log,
	}
}

// Summarize returns EmptyInputMessage for blank text. Otherwise it truncates
// both bounds to integers, forwards them with the text to the model and
// returns the model's summary or error untouched.
func (h *Handler) Summarize(
	ctx context.Context,
	text string,
	maxLength float64,
	minLength float64,
) (string, error) {
	if strings.TrimSpace(text) == "" {
		h.observe(metrics.OutcomeEmpty, 0)

		return EmptyInputMessage, nil
	}

	input := summarizer.Input{
		Text:      text,
		MaxLength: int(maxLength),
		MinLength: int(minLength),
	}

	start := time.Now()
	summary, err := h.summarizer.Summarize(ctx, input)
	elapsed := time.Since(start)

	if err != nil {
		h.observe(metrics.OutcomeError, elapsed)
		h.log.ErrorContext(ctx, "Failed to summarize text",
			"error", err,
			"textLength", len(text),
			"maxLength", input.MaxLength,
			"minLength", input.MinLength,
			"durationSeconds", elapsed.Seconds())

		return "", err
	}

	h.observe(metrics.OutcomeSuccess, elapsed)
	h.log.InfoContext(ctx, "Text is summarized",
		"textLength", len(text),
		"summaryLength", len(summary),
		"maxLength", input.MaxLength,
		"minLength", input.MinLength,
		"durationSeconds", elapsed.Seconds())

	return summary, nil
}

func (h *Handler) observe(outcome string, elapsed time.Duration) {
	if h.metrics == nil {
		return
	}

	h.metrics.SummariesTotal.WithLabelValues(outcome).Inc()
	if outcome != metrics.OutcomeEmpty {
		h.metrics.SummaryDuration.Observe(elapsed.Seconds())
	}
}
