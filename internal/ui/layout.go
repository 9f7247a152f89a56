package ui

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
)

const (
	titleMarkdown = "# Text Summarizer"

	InputLabel  = "Input text"
	OutputLabel = "Summary"
	ButtonLabel = "Summarize"

	inputRows  = 8
	outputRows = 4
)

// Slider describes one numeric range control on the page.
type Slider struct {
	Name  string
	Label string
	Min   int
	Max   int
	Step  int
	Value int
}

var (
	MaxLengthSlider = Slider{
		Name:  "max_length",
		Label: "Max length",
		Min:   30,
		Max:   512,
		Step:  1,
		Value: 120,
	}
	MinLengthSlider = Slider{
		Name:  "min_length",
		Label: "Min length",
		Min:   5,
		Max:   200,
		Step:  1,
		Value: 30,
	}
)

type sliderView struct {
	Slider
	Current string
}

type pageView struct {
	Title       template.HTML
	InputLabel  string
	OutputLabel string
	ButtonLabel string
	InputRows   int
	OutputRows  int
	Text        string
	Output      string
	Error       string
	MaxLength   sliderView
	MinLength   sliderView
}

// renderTitle converts the page heading from Markdown to HTML.
func renderTitle(md string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}

	// goldmark drops raw HTML unless html.WithUnsafe is set.
	return template.HTML(buf.String()), nil
}

func (s *Server) newPage(text string, maxLength, minLength float64) pageView {
	return pageView{
		Title:       s.title,
		InputLabel:  InputLabel,
		OutputLabel: OutputLabel,
		ButtonLabel: ButtonLabel,
		InputRows:   inputRows,
		OutputRows:  outputRows,
		Text:        text,
		MaxLength:   sliderView{Slider: MaxLengthSlider, Current: formatNumber(maxLength)},
		MinLength:   sliderView{Slider: MinLengthSlider, Current: formatNumber(minLength)},
	}
}

func (s *Server) defaultPage() pageView {
	return s.newPage("", float64(MaxLengthSlider.Value), float64(MinLengthSlider.Value))
}
