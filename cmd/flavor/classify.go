package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Veraticus/the-flavor-must-flow/internal/cli"
	"github.com/Veraticus/the-flavor-must-flow/internal/flavor"
	"github.com/Veraticus/the-flavor-must-flow/internal/model"
)

func classifyCmd() *cobra.Command {
	var (
		genres   []string
		keywords []string
		explain  bool
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify genres and keywords into flavors",
		Long: `Run the flavor engine over ad-hoc genres and keywords.

Inputs are normalized the same way imported movies are, so aliases such as
"sci-fi" or "a.i." resolve to their canonical forms. Unrecognized genres are
ignored.

Recognized genres: ` + join(model.AllGenres()),
		Example: `  flavor classify -g Horror -k "haunted house" -k ghost
  flavor classify -g "Science Fiction" -k spaceship --explain
  flavor classify -g Crime -k heist --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			eng, err := loadEngine(cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if explain {
				x := eng.Explain(genres, keywords)
				if asJSON {
					return writeJSON(out, x)
				}
				printExplanation(out, eng, x)
				return nil
			}

			flavors := eng.Classify(genres, keywords)
			if asJSON {
				return writeJSON(out, flavors)
			}
			fmt.Fprintln(out, cli.FlavorChips(flavors, familyOf(eng)))
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&genres, "genre", "g", nil, "genre name (repeatable)")
	cmd.Flags().StringArrayVarP(&keywords, "keyword", "k", nil, "keyword (repeatable)")
	cmd.Flags().BoolVar(&explain, "explain", false, "show signals, fired rules and guardrails")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")

	return cmd
}

func printExplanation(w io.Writer, eng *flavor.Engine, x flavor.Explanation) {
	fmt.Fprintln(w, cli.FormatTitle("Classification"))
	fmt.Fprintln(w, cli.KeyValue("Genres", join(x.Genres)))
	fmt.Fprintln(w, cli.KeyValue("Keywords", join(x.Keywords)))
	fmt.Fprintln(w, cli.KeyValue("Signals", join(x.Signals)))
	fmt.Fprintln(w, cli.KeyValue("Guardrails", join(x.Guardrails)))
	fmt.Fprintln(w)

	if len(x.Fired) == 0 {
		fmt.Fprintln(w, cli.SubtitleStyle.Render("No rules fired."))
	} else {
		rows := make([][]string, len(x.Fired))
		for i, fr := range x.Fired {
			contribution := strconv.Itoa(fr.Contribution)
			if fr.BonusPanicked {
				contribution += " (bonus failed)"
			}
			rows[i] = []string{strconv.Itoa(fr.Index), fr.Name, join(fr.Flavors), contribution}
		}
		fmt.Fprintln(w, cli.RenderTable([]string{"#", "RULE", "FLAVORS", "SCORE"}, rows))
	}

	if len(x.Ranked) > 0 {
		rows := make([][]string, len(x.Ranked))
		for i, r := range x.Ranked {
			family, _ := eng.Catalog().FamilyOf(r.Flavor)
			rows[i] = []string{strconv.Itoa(i + 1), string(r.Flavor), strconv.Itoa(r.Score), family}
		}
		fmt.Fprintln(w, cli.RenderTable([]string{"RANK", "FLAVOR", "SCORE", "FAMILY"}, rows))
	}
}
