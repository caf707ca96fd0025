// Package main provides the CLI entrypoint for vocabrank.
package main

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/vocabrank/internal/config"
	"github.com/verte-zerg/vocabrank/internal/corpus"
	"github.com/verte-zerg/vocabrank/internal/freq"
	"github.com/verte-zerg/vocabrank/internal/stats"
	"github.com/verte-zerg/vocabrank/internal/vocab"
)

const (
	defaultTop      = 0
	defaultMinCount = 1
	defaultStatsTop = 10
)

var (
	buildOut      string
	buildTop      int
	buildMinCount int

	statsTop   int
	statsWidth int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "vocabrank <file>",
		Short:         "Rank distinct lines of a text file by frequency",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runReportCmd,
	}

	rootCmd.AddCommand(newBuildCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newLookupCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runReportCmd(cmd *cobra.Command, args []string) error {
	counts, _, err := corpus.CountFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	entries := freq.Rank(counts)

	out := bufio.NewWriter(cmd.OutOrStdout())
	if err := freq.Render(out, entries); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build <file>",
		Short: "Write a vocabulary listing file",
		Args:  cobra.ExactArgs(1),
		RunE:  runBuildCmd,
	}
	cmd.Flags().StringVar(&buildOut, "out", "", "output path (default: <file>.vocab)")
	cmd.Flags().IntVar(&buildTop, "top", defaultTop, "keep only the N highest-ranked tokens (0 = all)")
	cmd.Flags().IntVar(&buildMinCount, "min-count", defaultMinCount, "drop tokens occurring fewer times")
	return cmd
}

func runBuildCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "top", &buildTop, fileCfg.Build.Top)
	applyIntConfig(cmd, "min-count", &buildMinCount, fileCfg.Build.MinCount)

	if buildTop < 0 {
		return fmt.Errorf("--top must be >= 0")
	}
	if buildMinCount < 1 {
		return fmt.Errorf("--min-count must be >= 1")
	}

	counts, _, err := corpus.CountFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	entries := freq.Rank(counts)
	entries = freq.MinCount(entries, buildMinCount)
	entries = freq.Top(entries, buildTop)

	outPath := buildOut
	if outPath == "" {
		outPath = args[0] + ".vocab"
	}
	if err := writeListing(outPath, entries); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	logErrf("Wrote %s (%d tokens)\n", outPath, len(entries))
	return nil
}

func writeListing(path string, entries []freq.Entry) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create listing dir: %w", err)
	}
	tmpFile, err := os.CreateTemp(filepath.Dir(path), "vocab-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp listing: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	writer := bufio.NewWriter(tmpFile)
	if err := freq.Render(writer, entries); err != nil {
		return fmt.Errorf("failed to write listing: %w", err)
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush listing: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close listing: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to write listing: %w", err)
	}
	return nil
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <file>",
		Short: "Show corpus statistics",
		Args:  cobra.ExactArgs(1),
		RunE:  runStatsCmd,
	}
	cmd.Flags().IntVar(&statsTop, "top", defaultStatsTop, "rows in the top-token table")
	cmd.Flags().IntVar(&statsWidth, "width", 0, "curve width in columns (0 = terminal width)")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "top", &statsTop, fileCfg.Stats.Top)

	if statsTop < 0 {
		return fmt.Errorf("--top must be >= 0")
	}

	counts, sum, err := corpus.CountFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	entries := freq.Rank(counts)

	out := cmd.OutOrStdout()
	if err := stats.RenderOverview(out, sum, entries); err != nil {
		return fmt.Errorf("failed to write stats: %w", err)
	}
	if err := stats.RenderTopTable(out, entries, statsTop); err != nil {
		return fmt.Errorf("failed to write stats: %w", err)
	}
	if err := stats.RenderCurve(out, entries, statsWidth); err != nil {
		return fmt.Errorf("failed to write stats: %w", err)
	}
	return nil
}

func newLookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <listing> <token>...",
		Short: "Look up token ranks in a listing file",
		Args:  cobra.MinimumNArgs(2),
		RunE:  runLookupCmd,
	}
}

func runLookupCmd(cmd *cobra.Command, args []string) error {
	voc, err := vocab.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load listing: %w", err)
	}
	out := cmd.OutOrStdout()
	for _, token := range args[1:] {
		rank, ok := voc.Rank(token)
		if !ok {
			return fmt.Errorf("token not in listing: %q", token)
		}
		count, _ := voc.Count(token)
		if _, err := fmt.Fprintf(out, "%d %d %s\n", rank, count, token); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# vocabrank configuration
# Uncomment a value to enable it. CLI flags override config values.

[build]
# top = %d              # Keep only the N highest-ranked tokens (0 = all)
# min-count = %d        # Drop tokens occurring fewer times

[stats]
# top = %d             # Rows in the top-token table
`,
		defaultTop,
		defaultMinCount,
		defaultStatsTop,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
