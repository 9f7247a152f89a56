package summarizer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
)

const (
	DefaultHuggingFaceEndpoint = "https://router.huggingface.co/hf-inference"
	DefaultHuggingFaceModel    = "sshleifer/distilbart-cnn-12-6"
)

// HuggingFaceConfig contains configuration for the Inference API summarizer.
// Empty Endpoint and Model fall back to the package defaults.
type HuggingFaceConfig struct {
	Endpoint   string
	Model      string
	Token      string
	HTTPClient *http.Client
}

// HuggingFaceSummarizer runs the "summarization" task on the Hugging Face
// Inference API.
type HuggingFaceSummarizer struct {
	client    *resty.Client
	modelPath string
}

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
	Options    hfOptions    `json:"options"`
}

type hfParameters struct {
	MaxLength int `json:"max_length"`
	MinLength int `json:"min_length"`
}

type hfOptions struct {
	WaitForModel bool `json:"wait_for_model"`
}

type hfSummary struct {
	SummaryText *string `json:"summary_text"`
}

type hfError struct {
	Error string `json:"error"`
}

// NewHuggingFaceSummarizer builds a new summarizer instance.
func NewHuggingFaceSummarizer(cfg HuggingFaceConfig) (*HuggingFaceSummarizer, error) {
	endpoint := strings.TrimRight(strings.TrimSpace(cfg.Endpoint), "/")
	if endpoint == "" {
		endpoint = DefaultHuggingFaceEndpoint
	}

	if _, err := url.ParseRequestURI(endpoint); err != nil {
		return nil, fmt.Errorf("parse endpoint: %w", err)
	}

	model := strings.Trim(strings.TrimSpace(cfg.Model), "/")
	if model == "" {
		model = DefaultHuggingFaceModel
	}

	client := resty.New()
	if cfg.HTTPClient != nil {
		client = resty.NewWithClient(cfg.HTTPClient)
	}

	client.
		SetBaseURL(endpoint).
		SetHeader("Accept", "application/json")
	if token := strings.TrimSpace(cfg.Token); token != "" {
		client.SetAuthToken(token)
	}

	return &HuggingFaceSummarizer{
		client:    client,
		modelPath: "/models/" + model,
	}, nil
}

// Summarize returns the first candidate's summary_text unchanged.
func (s *HuggingFaceSummarizer) Summarize(
	ctx context.Context,
	input Input,
) (string, error) {
	var summaries []hfSummary

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(hfRequest{
			Inputs: input.Text,
			Parameters: hfParameters{
				MaxLength: input.MaxLength,
				MinLength: input.MinLength,
			},
			Options: hfOptions{WaitForModel: true},
		}).
		SetResult(&summaries).
		ForceContentType("application/json").
		Post(s.modelPath)
	if err != nil {
		return "", fmt.Errorf("failed to do request: %w", err)
	}

	if !resp.IsSuccess() {
		return "", statusError(resp)
	}

	if len(summaries) == 0 {
		return "", errors.New("summarization response is empty")
	}

	if summaries[0].SummaryText == nil {
		return "", errors.New("summarization response summary_text is missing")
	}

	return *summaries[0].SummaryText, nil
}

func statusError(resp *resty.Response) error {
	var apiErr hfError
	if err := json.Unmarshal(resp.Body(), &apiErr); err == nil && apiErr.Error != "" {
		return fmt.Errorf("inference api returned %d: %s", resp.StatusCode(), apiErr.Error)
	}

	return fmt.Errorf("inference api returned %d: %s", resp.StatusCode(), strings.TrimSpace(resp.String()))
}
