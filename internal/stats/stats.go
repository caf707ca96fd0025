// Package stats contains corpus statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"

	"github.com/verte-zerg/vocabrank/internal/corpus"
	"github.com/verte-zerg/vocabrank/internal/freq"
)

// Hapax counts entries that occur exactly once.
func Hapax(entries []freq.Entry) int {
	n := 0
	for _, e := range entries {
		if e.Count == 1 {
			n++
		}
	}
	return n
}

// RenderOverview prints a summary block for a counted corpus.
func RenderOverview(w io.Writer, sum corpus.Summary, entries []freq.Entry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No tokens found.")
		return err
	}
	if _, err := fmt.Fprintln(w, "Summary"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Lines: %d\n", sum.Lines); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Blank: %d\n", sum.Blank); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Tokens: %d\n", sum.Tokens); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Distinct: %d\n", len(entries)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Hapax: %d\n", Hapax(entries)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Top token: %s (%d)\n", entries[0].Token, entries[0].Count); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}

// RenderTopTable prints the n highest-ranked tokens as a table.
func RenderTopTable(w io.Writer, entries []freq.Entry, n int) error {
	if len(entries) == 0 {
		return nil
	}
	top := freq.Top(entries, n)

	if _, err := fmt.Fprintln(w, "Top Tokens"); err != nil {
		return err
	}
	headers := []string{"Rank", "Count", "Token"}
	rows := make([][]string, 0, len(top))
	for i, e := range top {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", e.Count),
			e.Token,
		})
	}
	rightAlign := map[int]bool{0: true, 1: true}
	lines := formatTable(headers, rows, rightAlign)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}
