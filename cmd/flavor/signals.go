package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Veraticus/the-flavor-must-flow/internal/cli"
	"github.com/Veraticus/the-flavor-must-flow/internal/config"
	"github.com/Veraticus/the-flavor-must-flow/internal/model"
	"github.com/Veraticus/the-flavor-must-flow/internal/normalize"
	"github.com/Veraticus/the-flavor-must-flow/internal/signal"
)

func signalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "signals",
		Short: "Build and inspect the keyword signal table",
	}

	cmd.AddCommand(buildSignalsCmd())
	cmd.AddCommand(lookupSignalsCmd())
	cmd.AddCommand(signalStatsCmd())

	return cmd
}

func buildSignalsCmd() *cobra.Command {
	var (
		corpus string
		output string
		top    int
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a signal table artifact from a keyword corpus",
		Long: `Read a JSON array of keywords (strings or objects with a "name" field),
match every keyword against the signal rules and write the artifact.

Keywords no primary rule matches are offered to the coarse heuristic rules.`,
		Example: `  flavor signals build --corpus keywords.json --out keyword_signals.json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names, err := readCorpusFile(corpus)
			if err != nil {
				return err
			}

			builder, err := signal.NewDefaultBuilder()
			if err != nil {
				return err
			}
			table, stats := builder.Build(names)

			slog.Info("Built signal table",
				"names", stats.Names,
				"distinct", stats.Distinct,
				"stopped", stats.Stopped,
				"primary", stats.Primary,
				"heuristic", stats.Heuristic,
				"unmatched", stats.Unmatched)

			if err := writeArtifact(cmd.OutOrStdout(), output, table); err != nil {
				return err
			}

			if output != "-" {
				printBuildStats(cmd.OutOrStdout(), stats, top)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&corpus, "corpus", "", "keyword corpus JSON file")
	cmd.Flags().StringVarP(&output, "out", "o", "-", "artifact output path (- for stdout)")
	cmd.Flags().IntVar(&top, "top", 10, "signals to list in the report")
	_ = cmd.MarkFlagRequired("corpus")

	return cmd
}

func readCorpusFile(path string) ([]string, error) {
	f, err := os.Open(config.ExpandPath(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus: %w", err)
	}
	defer func() { _ = f.Close() }()
	return signal.ReadCorpus(f)
}

// writeArtifact writes to stdout for "-", otherwise through a temp file
// renamed into place.
func writeArtifact(stdout io.Writer, output string, table *signal.Table) error {
	if output == "-" {
		return signal.Write(stdout, table)
	}

	output = config.ExpandPath(output)
	tmp, err := os.CreateTemp(filepath.Dir(output), ".signals-*.json")
	if err != nil {
		return fmt.Errorf("failed to create artifact: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := signal.Write(tmp, table); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write artifact: %w", err)
	}
	if err := os.Rename(tmp.Name(), output); err != nil {
		return fmt.Errorf("failed to write artifact: %w", err)
	}
	return nil
}

func printBuildStats(w io.Writer, stats signal.BuildStats, top int) {
	summary := fmt.Sprintf("Keywords read:   %d\n", stats.Names) +
		fmt.Sprintf("Distinct:        %d\n", stats.Distinct) +
		fmt.Sprintf("Stoplisted:      %d\n", stats.Stopped) +
		fmt.Sprintf("Primary match:   %d\n", stats.Primary) +
		fmt.Sprintf("Heuristic match: %d\n", stats.Heuristic) +
		fmt.Sprintf("Unmatched:       %d\n", stats.Unmatched) +
		fmt.Sprintf("Coverage:        %.1f%%", stats.Coverage()*100)
	fmt.Fprintln(w, cli.RenderBox(cli.ChartIcon+" Signal table built", summary))

	type count struct {
		signal model.Signal
		n      int
	}
	counts := make([]count, 0, len(stats.PerSignal))
	for s, n := range stats.PerSignal {
		counts = append(counts, count{s, n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].n != counts[j].n {
			return counts[i].n > counts[j].n
		}
		return counts[i].signal < counts[j].signal
	})
	if top > 0 && len(counts) > top {
		counts = counts[:top]
	}
	rows := make([][]string, len(counts))
	for i, c := range counts {
		rows[i] = []string{string(c.signal), strconv.Itoa(c.n)}
	}
	if len(rows) > 0 {
		fmt.Fprintln(w, cli.RenderTable([]string{"SIGNAL", "KEYWORDS"}, rows))
	}
}

func lookupSignalsCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "lookup <keyword...>",
		Short:   "Show the canonical form and signals of keywords",
		Example: `  flavor signals lookup "Haunted Houses" "A.I."`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			table, err := loadSignalTable(cfg)
			if err != nil {
				return fmt.Errorf("failed to load signal table: %w", err)
			}

			results := lookupKeywords(table, args)
			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, results)
			}

			rows := make([][]string, len(results))
			for i, r := range results {
				stage := string(r.Stage)
				if stage == "" {
					stage = "-"
				}
				rows[i] = []string{r.Input, r.Canonical, join(r.Signals), stage}
			}
			fmt.Fprintln(out, cli.RenderTable([]string{"INPUT", "CANONICAL", "SIGNALS", "STAGE"}, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")

	return cmd
}

type lookupResult struct {
	Input     string         `json:"input"`
	Canonical string         `json:"canonical"`
	Stage     signal.Stage   `json:"stage,omitempty"`
	Signals   []model.Signal `json:"signals"`
}

func lookupKeywords(table *signal.Table, inputs []string) []lookupResult {
	out := make([]lookupResult, len(inputs))
	for i, in := range inputs {
		canonical := normalize.Keyword(in)
		stage, _ := table.Provenance(canonical)
		signals := append([]model.Signal{}, table.Lookup(canonical)...)
		out[i] = lookupResult{Input: in, Canonical: canonical, Stage: stage, Signals: signals}
	}
	return out
}

func signalStatsCmd() *cobra.Command {
	var corpus string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize the signal table",
		Long: `Print the table size, the signal vocabulary size and the primary/heuristic
split. With --corpus, also report which share of that corpus the table covers.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			table, err := loadSignalTable(cfg)
			if err != nil {
				return fmt.Errorf("failed to load signal table: %w", err)
			}

			summary := fmt.Sprintf("Keywords:   %d\n", table.Len()) +
				fmt.Sprintf("Primary:    %d\n", table.Len()-table.HeuristicLen()) +
				fmt.Sprintf("Heuristic:  %d\n", table.HeuristicLen()) +
				fmt.Sprintf("Signals:    %d", len(table.Vocabulary()))

			if corpus != "" {
				names, err := readCorpusFile(corpus)
				if err != nil {
					return err
				}
				covered, distinct := corpusCoverage(table, names)
				share := 0.0
				if distinct > 0 {
					share = float64(covered) / float64(distinct) * 100
				}
				summary += fmt.Sprintf("\nCoverage:   %d/%d (%.1f%%)", covered, distinct, share)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.RenderBox(cli.ChartIcon+" Signal table", summary))
			return nil
		},
	}

	cmd.Flags().StringVar(&corpus, "corpus", "", "keyword corpus JSON file to measure coverage against")

	return cmd
}

// corpusCoverage counts distinct canonical corpus keywords that carry signals.
func corpusCoverage(table *signal.Table, names []string) (covered, distinct int) {
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		k := normalize.Keyword(name)
		if k == "" {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		if len(table.Lookup(k)) > 0 {
			covered++
		}
	}
	return covered, len(seen)
}
