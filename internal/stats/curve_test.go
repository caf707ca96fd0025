package stats

import (
	"bytes"
	"strings"
	"testing"

	"github.com/verte-zerg/vocabrank/internal/freq"
)

func TestSparkline(t *testing.T) {
	if got := Sparkline(nil); got != "" {
		t.Fatalf("expected empty sparkline, got %q", got)
	}
	if got := Sparkline([]float64{2, 2, 2}); got != "+++" {
		t.Fatalf("expected flat sparkline, got %q", got)
	}
	if got := Sparkline([]float64{1, 10}); got != " @" {
		t.Fatalf("expected min and max chars, got %q", got)
	}
}

func TestDownsample(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	got := downsample(values, 5)
	expected := []float64{1.5, 3.5, 5.5, 7.5, 9.5}
	if len(got) != len(expected) {
		t.Fatalf("expected %d buckets, got %d", len(expected), len(got))
	}
	for i, want := range expected {
		if got[i] != want {
			t.Fatalf("expected %v at index %d, got %v", want, i, got[i])
		}
	}

	short := downsample([]float64{1, 2, 3}, 5)
	if len(short) != 3 || short[0] != 1 || short[2] != 3 {
		t.Fatalf("expected short series unchanged, got %v", short)
	}

	if got := downsample(values, 0); got != nil {
		t.Fatalf("expected nil for zero width, got %v", got)
	}
}

func TestRenderCurve(t *testing.T) {
	entries := []freq.Entry{
		{Token: "cat", Count: 9},
		{Token: "dog", Count: 5},
		{Token: "bird", Count: 1},
	}
	var buf bytes.Buffer
	if err := RenderCurve(&buf, entries, 12); err != nil {
		t.Fatalf("RenderCurve failed: %v", err)
	}
	expected := "Rank-Frequency Curve\n" +
		"Counts: max=9 min=1\n" +
		"@+ \n" +
		"\n"
	if buf.String() != expected {
		t.Fatalf("expected %q, got %q", expected, buf.String())
	}
}

func TestRenderCurveDownsamples(t *testing.T) {
	entries := make([]freq.Entry, 40)
	for i := range entries {
		entries[i] = freq.Entry{Token: strings.Repeat("x", i+1), Count: 40 - i}
	}
	var buf bytes.Buffer
	if err := RenderCurve(&buf, entries, 10); err != nil {
		t.Fatalf("RenderCurve failed: %v", err)
	}
	lines := strings.Split(buf.String(), "\n")
	if len(lines) < 3 {
		t.Fatalf("expected at least 3 lines, got %d", len(lines))
	}
	if len(lines[2]) != 10 {
		t.Fatalf("expected sparkline width 10, got %d (%q)", len(lines[2]), lines[2])
	}
}

func TestRenderCurveEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderCurve(&buf, nil, 10); err != nil {
		t.Fatalf("RenderCurve failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}
