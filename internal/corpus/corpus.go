// Package corpus reads tokenized corpus files and counts line occurrences.
package corpus

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// maxLineSize caps a single corpus line at 1 MiB. Tokenized corpora keep
// one token per line, so anything larger is treated as a read failure.
const maxLineSize = 1 << 20

// Summary describes one counting pass over a corpus.
type Summary struct {
	Lines  int // lines scanned, blank or not
	Blank  int // empty or whitespace-only lines dropped
	Tokens int // non-blank lines counted
}

// Count tallies occurrences of each distinct non-blank line of r.
// Lines are compared byte for byte; nothing is trimmed, cased, or
// otherwise normalized before comparison.
func Count(r io.Reader) (map[string]int, Summary, error) {
	counts := make(map[string]int)
	var sum Summary

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := scanner.Text()
		sum.Lines++
		if strings.TrimSpace(line) == "" {
			sum.Blank++
			continue
		}
		counts[line]++
		sum.Tokens++
	}
	if err := scanner.Err(); err != nil {
		return nil, Summary{}, err
	}
	return counts, sum, nil
}

// CountFile opens the corpus at path and counts its lines.
func CountFile(path string) (map[string]int, Summary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Summary{}, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only corpus.
			_ = cerr
		}
	}()
	return Count(file)
}
