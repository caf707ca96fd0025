// Package vocab loads frequency listings back as indexed vocabularies.
package vocab

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/verte-zerg/vocabrank/internal/freq"
)

// maxLineSize matches the corpus line cap plus room for the count prefix.
const maxLineSize = 1<<20 + 32

// Vocabulary is a parsed frequency listing. Ranks are 1-based listing
// positions, so the most frequent token has rank 1.
type Vocabulary struct {
	entries []freq.Entry
	ranks   map[string]int
}

// Load reads a listing file produced by the report or build commands.
func Load(path string) (*Vocabulary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only listing.
			_ = cerr
		}
	}()
	return Parse(file)
}

// Parse reads a listing from r. Each non-blank line must be
// "<count> <token>" with a positive count; the token is the remainder of
// the line verbatim, so tokens containing spaces round-trip. Counts must
// not increase down the listing.
func Parse(r io.Reader) (*Vocabulary, error) {
	v := &Vocabulary{ranks: make(map[string]int)}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lineNo := 0
	prevCount := 0
	for scanner.Scan() {
		line := scanner.Text()
		lineNo++
		if strings.TrimSpace(line) == "" {
			continue
		}
		count, token, err := parseEntry(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if _, ok := v.ranks[token]; ok {
			return nil, fmt.Errorf("line %d: duplicate token %q", lineNo, token)
		}
		if prevCount != 0 && count > prevCount {
			return nil, fmt.Errorf("line %d: listing out of order: count %d after %d", lineNo, count, prevCount)
		}
		prevCount = count
		v.entries = append(v.entries, freq.Entry{Token: token, Count: count})
		v.ranks[token] = len(v.entries)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return v, nil
}

func parseEntry(line string) (int, string, error) {
	field, token, ok := strings.Cut(line, " ")
	if !ok || token == "" {
		return 0, "", fmt.Errorf("malformed entry %q", line)
	}
	count, err := strconv.Atoi(field)
	if err != nil {
		return 0, "", fmt.Errorf("malformed count %q", field)
	}
	if count <= 0 {
		return 0, "", fmt.Errorf("count must be positive, got %d", count)
	}
	return count, token, nil
}

// Size returns the number of tokens in the vocabulary.
func (v *Vocabulary) Size() int {
	return len(v.entries)
}

// Rank returns the 1-based rank of token.
func (v *Vocabulary) Rank(token string) (int, bool) {
	rank, ok := v.ranks[token]
	return rank, ok
}

// Count returns the occurrence count recorded for token.
func (v *Vocabulary) Count(token string) (int, bool) {
	rank, ok := v.ranks[token]
	if !ok {
		return 0, false
	}
	return v.entries[rank-1].Count, true
}

// Token returns the token at the given 1-based rank.
func (v *Vocabulary) Token(rank int) (string, bool) {
	if rank < 1 || rank > len(v.entries) {
		return "", false
	}
	return v.entries[rank-1].Token, true
}

// Entries returns the listing entries in rank order.
func (v *Vocabulary) Entries() []freq.Entry {
	out := make([]freq.Entry, len(v.entries))
	copy(out, v.entries)
	return out
}
