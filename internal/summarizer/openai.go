package summarizer

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const (
	temperature = 0.2
	// candidates is the number of completions requested per summary.
	candidates = 1

	systemPromptTemplate = `Summarize the text supplied by the user.

Rules:
- The summary must be between %d and %d tokens long.
- Keep the core idea and critical context (dates, numbers, names).
- Neutral tone, no preamble, no lists.
- Write in the same language as the input.`
)

// OpenAIConfig contains configuration for the OpenAI-backed summarizer.
type OpenAIConfig struct {
	APIKey string
	Model  string
	// Options are appended to the client options, e.g. a custom base URL.
	Options []option.RequestOption
}

// OpenAISummarizer calls OpenAI's Chat Completions API to produce summaries.
type OpenAISummarizer struct {
	client openai.Client
	model  openai.ChatModel
}

// NewOpenAISummarizer builds a new summarizer instance.
func NewOpenAISummarizer(cfg OpenAIConfig) (*OpenAISummarizer, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("api key is required")
	}

	model := openai.ChatModel(cfg.Model)
	if model == "" {
		model = openai.ChatModelGPT4_1Mini
	}

	opts := append([]option.RequestOption{option.WithAPIKey(cfg.APIKey)}, cfg.Options...)

	return &OpenAISummarizer{
		client: openai.NewClient(opts...),
		model:  model,
	}, nil
}

// Summarize requests exactly one completion and returns its content as-is.
func (s *OpenAISummarizer) Summarize(
	ctx context.Context,
	input Input,
) (string, error) {
	messages := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(fmt.Sprintf(systemPromptTemplate, input.MinLength, input.MaxLength)),
		openai.UserMessage(input.Text),
	}

	resp, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:               s.model,
		Messages:            messages,
		N:                   openai.Int(candidates),
		Temperature:         openai.Float(temperature),
		MaxCompletionTokens: openai.Int(int64(input.MaxLength)),
	})
	if err != nil {
		return "", fmt.Errorf("failed to do request: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion choices are missing")
	}

	summary := resp.Choices[0].Message.Content
	if summary == "" {
		return "", fmt.Errorf(
			"chat completion choice message content is missing (finishReason = %s)",
			resp.Choices[0].FinishReason,
		)
	}

	return summary, nil
}
