package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Veraticus/the-flavor-must-flow/internal/cli"
	"github.com/Veraticus/the-flavor-must-flow/internal/common"
	"github.com/Veraticus/the-flavor-must-flow/internal/config"
	"github.com/Veraticus/the-flavor-must-flow/internal/engine"
	"github.com/Veraticus/the-flavor-must-flow/internal/library"
	"github.com/Veraticus/the-flavor-must-flow/internal/model"
	"github.com/Veraticus/the-flavor-must-flow/internal/storage"
	"github.com/Veraticus/the-flavor-must-flow/internal/tmdb"
)

func moviesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "movies",
		Short: "Manage the local movie library",
		Long: `Import movies from TMDB by IMDb id, browse the library and keep stored
flavors in step with the current rules.`,
		Example: `  # Import a few movies
  flavor movies import tt0133093 tt0081505

  # List horror movies by year, newest first
  flavor movies list --genre Horror --sort year --desc

  # Which flavors remain once a cast member is selected?
  flavor movies options flavor --cast "Harrison Ford"`,
	}

	cmd.AddCommand(importMoviesCmd())
	cmd.AddCommand(listMoviesCmd())
	cmd.AddCommand(showMovieCmd())
	cmd.AddCommand(reclassifyMoviesCmd())
	cmd.AddCommand(movieOptionsCmd())
	cmd.AddCommand(deleteMoviesCmd())

	return cmd
}

func importMoviesCmd() *cobra.Command {
	var (
		file    string
		refresh bool
	)

	cmd := &cobra.Command{
		Use:   "import [imdb-id...]",
		Short: "Fetch, classify and store movies",
		Long: `Fetch each movie from TMDB, classify it and save it to the library.

Movies fetched within cache.ttl are reused unless --refresh is given. Ids with
no TMDB match are stored as placeholders so they are not fetched again.`,
		Example: `  flavor movies import tt0133093 tt0082971
  flavor movies import --file watchlist.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := append([]string(nil), args...)
			if file != "" {
				fromFile, err := readIDFile(file)
				if err != nil {
					return err
				}
				ids = append(ids, fromFile...)
			}
			if len(ids) == 0 {
				return errors.New("no IMDb ids given")
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if err := cfg.RequireTMDB(); err != nil {
				return common.NewUserError("TMDB is not configured", err)
			}

			client, err := tmdb.NewClient(cfg.TMDB)
			if err != nil {
				return err
			}
			eng, err := loadEngine(cfg)
			if err != nil {
				return err
			}

			handler := cli.NewInterruptHandler(cmd.ErrOrStderr(), "Import")
			ctx, stop := handler.HandleInterrupts(cmd.Context(), true)
			defer stop()

			store, err := openStorage(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeStorage(store)

			ttl := cfg.Cache.TTL
			if refresh {
				ttl = 0
			}
			importer := engine.NewWithConfig(store, client, eng, engine.Config{
				CacheTTL:    ttl,
				Concurrency: cfg.Import.Concurrency,
			})
			progress := cli.NewProgressReporter(cmd.ErrOrStderr())
			importer.SetProgress(progress)

			result, err := importer.Import(ctx, ids)
			if err != nil {
				if handler.WasInterrupted() {
					return nil
				}
				return err
			}

			printImportResult(cmd.OutOrStdout(), result)
			if err := result.Err(); err != nil {
				return fmt.Errorf("%s failed: %w", plural(result.Count(engine.StatusFailed), "movie"), err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "read ids from a file (whitespace separated, # comments)")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "refetch even when the cached record is fresh")

	return cmd
}

// readIDFile reads whitespace separated ids, ignoring # comments.
func readIDFile(path string) ([]string, error) {
	f, err := os.Open(config.ExpandPath(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open id file: %w", err)
	}
	defer func() { _ = f.Close() }()
	return parseIDs(f)
}

func parseIDs(r io.Reader) ([]string, error) {
	var ids []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line, _, _ := strings.Cut(scanner.Text(), "#")
		ids = append(ids, strings.Fields(line)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ids: %w", err)
	}
	return ids, nil
}

func printImportResult(w io.Writer, result *engine.ImportResult) {
	summary := fmt.Sprintf("Fetched:      %d\n", result.Count(engine.StatusFetched)) +
		fmt.Sprintf("Cached:       %d\n", result.Count(engine.StatusCached)) +
		fmt.Sprintf("Placeholders: %d\n", result.Count(engine.StatusPlaceholder)) +
		fmt.Sprintf("Failed:       %d", result.Count(engine.StatusFailed))
	fmt.Fprintln(w, cli.RenderBox(cli.FilmIcon+" Import complete", summary))

	for _, o := range result.Outcomes {
		if o.Status == engine.StatusPlaceholder {
			fmt.Fprintln(w, cli.FormatWarning(o.IMDbID+" has no TMDB match; stored as a placeholder"))
		}
	}
}

// queryFlags binds the shared filter flags onto cmd.
func queryFlags(cmd *cobra.Command, q *library.Query) {
	cmd.Flags().StringSliceVar(&q.Genres, "genre", nil, "genres to include (any of)")
	cmd.Flags().StringSliceVar(&q.Flavors, "flavor", nil, "flavors to include (any of)")
	cmd.Flags().StringSliceVar(&q.Keywords, "keyword", nil, "keywords to include (any of)")
	cmd.Flags().StringSliceVar(&q.Cast, "cast", nil, "actors to include (any of)")
	cmd.Flags().StringSliceVar(&q.Crew, "crew", nil, "crew members to include (any of)")
	cmd.Flags().StringVarP(&q.Term, "search", "s", "", "case-insensitive text search")
}

func listMoviesCmd() *cobra.Command {
	var (
		q       library.Query
		sortKey string
		limit   int
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List library movies",
		Example: `  flavor movies list --flavor Heist,Caper
  flavor movies list --search kubrick --sort year`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, err := library.ParseSortKey(sortKey)
			if err != nil {
				return err
			}
			q.Sort = key

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := openStorage(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closeStorage(store)

			movies, err := store.ListMovies(cmd.Context())
			if err != nil {
				return err
			}
			total := len(movies)
			movies = library.Run(movies, q)
			if limit > 0 && len(movies) > limit {
				movies = movies[:limit]
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, movies)
			}
			if len(movies) == 0 {
				fmt.Fprintln(out, cli.SubtitleStyle.Render("No movies found."))
				return nil
			}

			rows := make([][]string, len(movies))
			for i, m := range movies {
				rows[i] = []string{m.IMDbID, m.Title, cli.FormatYear(m.Year), cli.FormatRuntime(m.Runtime), topFlavors(m.Flavors, 3)}
			}
			fmt.Fprintln(out, cli.RenderTable([]string{"IMDB", "TITLE", "YEAR", "RUNTIME", "FLAVORS"}, rows))
			fmt.Fprintln(out, cli.SubtitleStyle.Render(fmt.Sprintf("%d of %d movies", len(movies), total)))
			return nil
		},
	}

	queryFlags(cmd, &q)
	cmd.Flags().StringVar(&sortKey, "sort", "alpha", "sort by alpha, year, runtime or added")
	cmd.Flags().BoolVar(&q.Descending, "desc", false, "reverse the sort direction")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "show at most this many movies")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")

	return cmd
}

func topFlavors(flavors []string, n int) string {
	if len(flavors) > n {
		return strings.Join(flavors[:n], ", ") + fmt.Sprintf(" +%d", len(flavors)-n)
	}
	return join(flavors)
}

func showMovieCmd() *cobra.Command {
	var (
		explain bool
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "show <imdb-id>",
		Short: "Show one library movie",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := openStorage(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closeStorage(store)

			movie, err := store.GetMovie(cmd.Context(), args[0])
			if err != nil {
				if errors.Is(err, common.ErrNotFound) {
					return common.NewUserError(fmt.Sprintf("%s is not in the library", args[0]), err)
				}
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, movie)
			}

			eng, err := loadEngine(cfg)
			if err != nil {
				return err
			}
			printMovie(out, movie, familyOf(eng))
			if explain {
				fmt.Fprintln(out)
				printExplanation(out, eng, eng.Explain(movie.Genres, movie.Keywords))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&explain, "explain", false, "explain the movie's classification under the current rules")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")

	return cmd
}

func printMovie(w io.Writer, m *model.Movie, familyOf func(string) string) {
	lines := []string{
		cli.KeyValue("IMDb", m.IMDbID),
		cli.KeyValue("Year", cli.FormatYear(m.Year)),
		cli.KeyValue("Runtime", cli.FormatRuntime(m.Runtime)),
		cli.KeyValue("Genres", join(m.Genres)),
		cli.KeyValue("Keywords", join(m.Keywords)),
		cli.KeyValue("Cast", join(m.Actors)),
		cli.KeyValue("Crew", join(m.Crew)),
	}
	if m.Tagline != "" {
		lines = append(lines, cli.KeyValue("Tagline", m.Tagline))
	}
	if m.Plot != "" {
		lines = append(lines, cli.KeyValue("Plot", m.Plot))
	}
	if m.PosterURL != "" {
		lines = append(lines, cli.KeyValue("Poster", m.PosterURL))
	}
	lines = append(lines, "", cli.FlavorChips(m.Flavors, familyOf))
	if m.IsPlaceholder() {
		lines = append(lines, "", cli.FormatWarning("No TMDB metadata; this is a placeholder record"))
	}
	fmt.Fprintln(w, cli.RenderBox(cli.FilmIcon+" "+m.Title, strings.Join(lines, "\n")))
}

func reclassifyMoviesCmd() *cobra.Command {
	var noSnapshot bool

	cmd := &cobra.Command{
		Use:   "reclassify",
		Short: "Re-run the rules over every stored movie",
		Long: `Classify every stored movie again from its stored genres and keywords and
save the flavors that changed. An automatic snapshot is taken first.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			eng, err := loadEngine(cfg)
			if err != nil {
				return err
			}

			handler := cli.NewInterruptHandler(cmd.ErrOrStderr(), "Reclassify")
			ctx, stop := handler.HandleInterrupts(cmd.Context(), true)
			defer stop()

			store, err := openStorage(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeStorage(store)

			if !noSnapshot {
				autoSnapshot(ctx, store, "reclassify")
			}

			importer := engine.NewWithConfig(store, nil, eng, engine.Config{
				CacheTTL:    cfg.Cache.TTL,
				Concurrency: cfg.Import.Concurrency,
			})
			importer.SetProgress(cli.NewProgressReporter(cmd.ErrOrStderr()))

			result, err := importer.Reclassify(ctx)
			if err != nil {
				if handler.WasInterrupted() {
					return nil
				}
				return err
			}

			printChanges(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noSnapshot, "no-snapshot", false, "skip the automatic snapshot")

	return cmd
}

func printChanges(w io.Writer, result *engine.ReclassifyResult) {
	if len(result.Changes) == 0 {
		fmt.Fprintln(w, cli.FormatSuccess(fmt.Sprintf("All %s up to date", plural(result.Total, "movie"))))
		return
	}
	rows := make([][]string, len(result.Changes))
	for i, c := range result.Changes {
		rows[i] = []string{c.IMDbID, c.Title, join(c.Before), join(c.After)}
	}
	fmt.Fprintln(w, cli.RenderTable([]string{"IMDB", "TITLE", "BEFORE", "AFTER"}, rows))
	fmt.Fprintln(w, cli.FormatSuccess(fmt.Sprintf("Updated %s of %d", plural(len(result.Changes), "movie"), result.Total)))
}

// autoSnapshot logs and continues when a snapshot cannot be taken.
func autoSnapshot(ctx context.Context, store *storage.SQLiteStorage, operation string) {
	manager, err := store.NewSnapshotManager()
	if err != nil {
		slog.Warn("Skipping automatic snapshot", "error", err)
		return
	}
	info, err := manager.AutoSnapshot(ctx, operation)
	if err != nil {
		slog.Warn("Automatic snapshot failed", "error", err)
		return
	}
	slog.Info("Created automatic snapshot", "id", info.ID)
}

func movieOptionsCmd() *cobra.Command {
	var (
		q      library.Query
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "options <genre|flavor|keyword|cast|crew>",
		Short: "List the values of a facet still reachable under the filters",
		Long: `List the distinct values of one facet across the movies that match every
other filter. The facet's own filter is ignored, so selected values stay listed
next to their alternatives.`,
		Example: `  flavor movies options flavor --genre Horror
  flavor movies options cast --search wachowski`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			facet, err := library.ParseFacet(args[0])
			if err != nil {
				return err
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := openStorage(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closeStorage(store)

			movies, err := store.ListMovies(cmd.Context())
			if err != nil {
				return err
			}
			counts := library.Counts(movies, facet, q)

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, counts)
			}
			if len(counts) == 0 {
				fmt.Fprintln(out, cli.SubtitleStyle.Render("No values found."))
				return nil
			}

			selected := q.Selected(facet)
			rows := make([][]string, len(counts))
			for i, c := range counts {
				mark := ""
				for _, s := range selected {
					if s == c.Value {
						mark = cli.SuccessIcon
					}
				}
				rows[i] = []string{mark, c.Value, fmt.Sprintf("%d", c.Count)}
			}
			fmt.Fprintln(out, cli.RenderTable([]string{"", strings.ToUpper(string(facet)), "MOVIES"}, rows))
			return nil
		},
	}

	queryFlags(cmd, &q)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")

	return cmd
}

func deleteMoviesCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <imdb-id...>",
		Short: "Remove movies from the library",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force && !confirm(cmd.InOrStdin(), cmd.OutOrStdout(),
				fmt.Sprintf("%s Delete %s from the library?", cli.WarningIcon, plural(len(args), "movie"))) {
				fmt.Fprintln(cmd.OutOrStdout(), cli.SubtitleStyle.Render("Deletion cancelled."))
				return nil
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := openStorage(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closeStorage(store)

			var errs []error
			for _, id := range args {
				if err := store.DeleteMovie(cmd.Context(), id); err != nil {
					errs = append(errs, fmt.Errorf("%s: %w", id, err))
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Deleted "+id))
			}
			return errors.Join(errs...)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip the confirmation prompt")

	return cmd
}
