package corpus

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCountOccurrencesAndSummary(t *testing.T) {
	input := "cat\ndog\ncat\n\nbird\n   \ncat\ndog\n"
	counts, sum, err := Count(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if sum.Lines != 8 {
		t.Fatalf("expected 8 lines, got %d", sum.Lines)
	}
	if sum.Blank != 2 {
		t.Fatalf("expected 2 blank lines, got %d", sum.Blank)
	}
	if sum.Tokens != 6 {
		t.Fatalf("expected 6 tokens, got %d", sum.Tokens)
	}
	if len(counts) != 3 {
		t.Fatalf("expected 3 distinct tokens, got %d", len(counts))
	}
	if counts["cat"] != 3 || counts["dog"] != 2 || counts["bird"] != 1 {
		t.Fatalf("unexpected counts: %v", counts)
	}
}

func TestCountKeepsWhitespaceDistinct(t *testing.T) {
	input := "cat\n cat\ncat \ncat\n"
	counts, sum, err := Count(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if sum.Tokens != 4 {
		t.Fatalf("expected 4 tokens, got %d", sum.Tokens)
	}
	if len(counts) != 3 {
		t.Fatalf("expected 3 distinct tokens, got %d", len(counts))
	}
	if counts["cat"] != 2 || counts[" cat"] != 1 || counts["cat "] != 1 {
		t.Fatalf("unexpected counts: %v", counts)
	}
}

func TestCountEmptyInput(t *testing.T) {
	counts, sum, err := Count(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if sum.Lines != 0 || sum.Blank != 0 || sum.Tokens != 0 {
		t.Fatalf("expected zero summary, got %+v", sum)
	}
	if len(counts) != 0 {
		t.Fatalf("expected no counts, got %v", counts)
	}
}

func TestCountUnterminatedFinalLine(t *testing.T) {
	counts, sum, err := Count(strings.NewReader("cat\ndog"))
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if sum.Lines != 2 || sum.Tokens != 2 {
		t.Fatalf("unexpected summary: %+v", sum)
	}
	if counts["dog"] != 1 {
		t.Fatalf("expected final line to be counted, got %v", counts)
	}
}

func TestCountLongLine(t *testing.T) {
	token := strings.Repeat("a", 100_000)
	counts, _, err := Count(strings.NewReader(token + "\n"))
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if counts[token] != 1 {
		t.Fatalf("expected long line to be counted once, got %d", counts[token])
	}
}

func TestCountLineTooLong(t *testing.T) {
	line := strings.Repeat("a", maxLineSize+1)
	_, _, err := Count(strings.NewReader(line))
	if !errors.Is(err, bufio.ErrTooLong) {
		t.Fatalf("expected bufio.ErrTooLong, got %v", err)
	}
}

type failingReader struct {
	err error
}

func (r failingReader) Read([]byte) (int, error) {
	return 0, r.err
}

func TestCountReaderError(t *testing.T) {
	readErr := errors.New("read failed")
	_, _, err := Count(failingReader{err: readErr})
	if !errors.Is(err, readErr) {
		t.Fatalf("expected read error, got %v", err)
	}
}

func TestCountFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.txt")
	if err := os.WriteFile(path, []byte("cat\ncat\ndog\n"), 0o644); err != nil {
		t.Fatalf("failed to write corpus: %v", err)
	}

	counts, sum, err := CountFile(path)
	if err != nil {
		t.Fatalf("CountFile failed: %v", err)
	}
	if sum.Tokens != 3 {
		t.Fatalf("expected 3 tokens, got %d", sum.Tokens)
	}
	if counts["cat"] != 2 || counts["dog"] != 1 {
		t.Fatalf("unexpected counts: %v", counts)
	}
}

func TestCountFileMissing(t *testing.T) {
	_, _, err := CountFile(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
	if !os.IsNotExist(err) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
