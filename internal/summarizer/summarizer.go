package summarizer

import (
	"context"
)

// Input describes the payload for a summary request.
type Input struct {
	// Text is forwarded to the model exactly as supplied.
	Text string
	// MaxLength is the upper bound on the summary length, in model tokens.
	MaxLength int
	// MinLength is the lower bound on the summary length, in model tokens.
	MinLength int
}

// Summarizer produces a single summary for a given input text.
type Summarizer interface {
	Summarize(ctx context.Context, input Input) (string, error)
}
