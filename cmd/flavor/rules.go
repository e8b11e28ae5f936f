package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Veraticus/the-flavor-must-flow/internal/cli"
	"github.com/Veraticus/the-flavor-must-flow/internal/flavor"
	"github.com/Veraticus/the-flavor-must-flow/internal/model"
)

func rulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Inspect the flavor rule table",
	}

	cmd.AddCommand(listRulesCmd())
	cmd.AddCommand(lintRulesCmd())

	return cmd
}

func listRulesCmd() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List rules in evaluation order",
		Example: `  flavor rules list
  flavor rules list --flavor Heist`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rules := flavor.DefaultRules().Rules()

			var rows [][]string
			for i, r := range rules {
				if filter != "" && !ruleVotesFor(r, filter) {
					continue
				}
				rows = append(rows, []string{
					strconv.Itoa(i),
					r.Name,
					join(r.Flavors),
					strconv.Itoa(r.Weight()),
					predicates(r.When),
					predicates(r.Unless),
				})
			}

			out := cmd.OutOrStdout()
			if len(rows) == 0 {
				fmt.Fprintln(out, cli.SubtitleStyle.Render("No rules found."))
				return nil
			}
			fmt.Fprintln(out, cli.RenderTable([]string{"#", "NAME", "FLAVORS", "SCORE", "WHEN", "UNLESS"}, rows))
			fmt.Fprintln(out, cli.SubtitleStyle.Render(fmt.Sprintf("%d of %d rules", len(rows), len(rules))))
			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "flavor", "", "only rules voting for this flavor (case-insensitive)")

	return cmd
}

func ruleVotesFor(r flavor.Rule, name string) bool {
	for _, f := range r.Flavors {
		if strings.EqualFold(string(f), name) {
			return true
		}
	}
	return false
}

func predicates(ps []flavor.Predicate) string {
	if len(ps) == 0 {
		return "-"
	}
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = p.String()
	}
	return strings.Join(parts, "; ")
}

func lintRulesCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "lint",
		Short: "Validate rules against the flavor catalog and signal vocabulary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			table, err := loadSignalTable(cfg)
			if err != nil {
				return fmt.Errorf("failed to load signal table: %w", err)
			}

			issues := flavor.DefaultRules().Validate(flavor.DefaultCatalog(), table.Vocabulary())
			return reportIssues(cmd, issues, strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "treat warnings as failures")

	return cmd
}

func reportIssues(cmd *cobra.Command, issues []flavor.Issue, strict bool) error {
	out := cmd.OutOrStdout()
	if len(issues) == 0 {
		fmt.Fprintln(out, cli.FormatSuccess("No rule issues found"))
		return nil
	}

	failures := 0
	for _, i := range issues {
		if i.Severity == flavor.SeverityError {
			failures++
			fmt.Fprintln(out, cli.FormatError(i.String()))
			continue
		}
		if strict {
			failures++
		}
		fmt.Fprintln(out, cli.FormatWarning(i.String()))
	}

	if failures > 0 {
		return errors.New(plural(failures, "rule issue") + " found")
	}
	return nil
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func flavorsCmd() *cobra.Command {
	var (
		family string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "flavors",
		Short: "List known flavors by family",
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog := flavor.DefaultCatalog()

			var families []flavor.Family
			for _, f := range catalog.Families() {
				if family == "" || strings.EqualFold(f.Name, family) {
					families = append(families, f)
				}
			}
			if len(families) == 0 {
				return fmt.Errorf("unknown flavor family %q", family)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				grouped := make(map[string][]model.Flavor, len(families))
				for _, f := range families {
					grouped[f.Name] = f.Flavors
				}
				return writeJSON(out, grouped)
			}

			for _, f := range families {
				names := make([]string, len(f.Flavors))
				for i, fl := range f.Flavors {
					names[i] = string(fl)
				}
				fmt.Fprintln(out, cli.BoldStyle.Render(f.Name))
				fmt.Fprintln(out, cli.FlavorChips(names, func(string) string { return f.Name }))
				fmt.Fprintln(out)
			}
			fmt.Fprintln(out, cli.SubtitleStyle.Render(fmt.Sprintf("%d flavors", catalog.Len())))
			return nil
		},
	}

	cmd.Flags().StringVar(&family, "family", "", "only this family")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")

	return cmd
}
