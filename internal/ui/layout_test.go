package ui

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestRenderTitle(t *testing.T) {
	got, err := renderTitle(titleMarkdown)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.TrimSpace(string(got)) != "<h1>Text Summarizer</h1>" {
		t.Fatalf("unexpected title html: %q", got)
	}
}

func TestRenderTitleDropsRawHTML(t *testing.T) {
	got, err := renderTitle("<script>alert(1)</script>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(string(got), "<script>") {
		t.Fatalf("expected raw html to be dropped, got %q", got)
	}
}

func TestParseSliderValue(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
	}{
		{raw: "", want: 120},
		{raw: "200", want: 200},
		{raw: "120.0", want: 120},
		{raw: "30.5", want: 30.5},
		{raw: "1000", want: 1000},
	}

	for _, tc := range cases {
		got, err := parseSliderValue(tc.raw, MaxLengthSlider)
		if err != nil {
			t.Fatalf("raw %q: unexpected error: %v", tc.raw, err)
		}

		if got != tc.want {
			t.Fatalf("raw %q: got %v want %v", tc.raw, got, tc.want)
		}
	}
}

func TestParseSliderValueRejectsNonFinite(t *testing.T) {
	for _, raw := range []string{"NaN", "Inf", "-Inf", "abc"} {
		if _, err := parseSliderValue(raw, MinLengthSlider); !errors.Is(err, ErrInvalidNumber) {
			t.Fatalf("raw %q: expected ErrInvalidNumber, got %v", raw, err)
		}
	}
}

func TestParseSliderValueRejectsOutOfIntRange(t *testing.T) {
	for _, raw := range []string{"1e300", "-1e300", "1e19", "-1e19", "1e400"} {
		if _, err := parseSliderValue(raw, MaxLengthSlider); !errors.Is(err, ErrInvalidNumber) {
			t.Fatalf("raw %q: expected ErrInvalidNumber, got %v", raw, err)
		}
	}
}

func TestValueOrDefault(t *testing.T) {
	got, err := valueOrDefault(nil, MinLengthSlider)
	if err != nil || got != 30 {
		t.Fatalf("nil value: got (%v, %v) want (30, nil)", got, err)
	}

	for _, v := range []float64{-5.5, 0, 1e15, math.MinInt64} {
		got, err := valueOrDefault(&v, MaxLengthSlider)
		if err != nil {
			t.Fatalf("value %g: unexpected error: %v", v, err)
		}

		if got != v {
			t.Fatalf("value %g: got %v", v, got)
		}
	}

	for _, v := range []float64{1e300, -1e300, math.MaxInt64, math.NaN(), math.Inf(1)} {
		_, err := valueOrDefault(&v, MaxLengthSlider)
		if !errors.Is(err, ErrInvalidNumber) {
			t.Fatalf("value %g: expected ErrInvalidNumber, got %v", v, err)
		}

		if !strings.Contains(err.Error(), MaxLengthSlider.Label) {
			t.Fatalf("value %g: expected error to name the slider, got %q", v, err)
		}
	}
}
