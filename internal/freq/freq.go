// Package freq ranks token counts into frequency listings.
package freq

import (
	"fmt"
	"io"
	"sort"
)

// Entry pairs a distinct corpus token with its occurrence count.
type Entry struct {
	Token string
	Count int
}

// Rank orders counts most-frequent-first. Entries with equal counts are
// ordered by ascending token, so listings are deterministic.
func Rank(counts map[string]int) []Entry {
	entries := make([]Entry, 0, len(counts))
	for token, count := range counts {
		entries = append(entries, Entry{Token: token, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count == entries[j].Count {
			return entries[i].Token < entries[j].Token
		}
		return entries[i].Count > entries[j].Count
	})
	return entries
}

// Top returns the n highest-ranked entries; n <= 0 keeps all.
func Top(entries []Entry, n int) []Entry {
	if n <= 0 || n >= len(entries) {
		return entries
	}
	return entries[:n]
}

// MinCount drops entries occurring fewer than minCount times; a
// minCount of 1 or less keeps all entries.
func MinCount(entries []Entry, minCount int) []Entry {
	if minCount <= 1 {
		return entries
	}
	kept := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Count >= minCount {
			kept = append(kept, e)
		}
	}
	return kept
}

// Render writes one "<count> <token>" line per entry to w.
func Render(w io.Writer, entries []Entry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%d %s\n", e.Count, e.Token); err != nil {
			return err
		}
	}
	return nil
}
