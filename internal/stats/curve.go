// Package stats contains corpus statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/verte-zerg/vocabrank/internal/freq"
)

const (
	sparkChars          = " .:-=+*#%@"
	minCurveWidth       = 10
	terminalWidthBackup = 80
)

// RenderCurve prints a rank-frequency sparkline for a ranked listing.
// The line runs from the most frequent token on the left down to the
// rarest on the right. A width of zero sizes the line to the terminal.
func RenderCurve(w io.Writer, entries []freq.Entry, width int) error {
	if len(entries) == 0 {
		return nil
	}
	if width <= 0 {
		width = terminalWidth()
	}
	if width < minCurveWidth {
		width = minCurveWidth
	}
	values := make([]float64, len(entries))
	for i, e := range entries {
		values[i] = float64(e.Count)
	}
	values = downsample(values, width)

	if _, err := fmt.Fprintln(w, "Rank-Frequency Curve"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Counts: max=%d min=%d\n", entries[0].Count, entries[len(entries)-1].Count); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, Sparkline(values)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// downsample averages values into width buckets. Series that already
// fit are returned as a copy; a sparkline is never stretched.
func downsample(values []float64, width int) []float64 {
	if len(values) == 0 || width <= 0 {
		return nil
	}
	if len(values) <= width {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, width)
	for i := 0; i < width; i++ {
		start := int(float64(i) * float64(len(values)) / float64(width))
		end := int(float64(i+1) * float64(len(values)) / float64(width))
		if end <= start {
			end = start + 1
		}
		if end > len(values) {
			end = len(values)
		}
		var sum float64
		for _, v := range values[start:end] {
			sum += v
		}
		out[i] = sum / float64(end-start)
	}
	return out
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}
