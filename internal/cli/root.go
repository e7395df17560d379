package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/alexanderramin/grapple/internal/cache"
	"github.com/alexanderramin/grapple/internal/catalog"
	"github.com/alexanderramin/grapple/internal/cli/formatter"
	"github.com/alexanderramin/grapple/internal/contract"
	"github.com/alexanderramin/grapple/internal/domain"
	"github.com/alexanderramin/grapple/internal/metrics"
	"github.com/alexanderramin/grapple/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Catalog  *catalog.Catalog
	Analysis service.AnalysisService
	Programs service.ProgramService
	Log      service.TrainingLogService
	Profiles service.ProfileService
	Metrics  *metrics.Metrics
	Defaults Defaults

	// IsInteractive reports whether stdin/stdout are a terminal. Nil means
	// never interactive, which keeps tests away from spinners and pickers.
	IsInteractive func() bool
}

// Defaults are the configured fallbacks for flags the user leaves unset.
type Defaults struct {
	Duration   int
	Difficulty domain.ProgramDifficulty
	Workers    int
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) defaultDuration() int {
	if a.Defaults.Duration > 0 {
		return a.Defaults.Duration
	}
	return contract.DefaultProgramMinutes
}

func (a *App) defaultDifficulty() domain.ProgramDifficulty {
	if a.Defaults.Difficulty.Valid() {
		return a.Defaults.Difficulty
	}
	return domain.ProgramNormal
}

func (a *App) workers() int {
	if a.Defaults.Workers > 0 {
		return a.Defaults.Workers
	}
	return 1
}

// NewRootCmd creates the top-level "grapple" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var showMetrics bool

	root := &cobra.Command{
		Use:   "grapple",
		Short: "BJJ training request analyzer and program builder",
		// main prints the returned error once.
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if !showMetrics {
				return nil
			}
			return printMetrics(cmd, app)
		},
	}
	root.PersistentFlags().BoolVar(&showMetrics, "metrics", false, "Print cache and pipeline metrics after the command")

	root.AddCommand(
		newAnalyzeCmd(app),
		newProgramCmd(app),
		newTechniquesCmd(app),
		newBrowseCmd(app),
		newProfileCmd(app),
		newHistoryCmd(app),
		newStatsCmd(app),
	)

	return root
}

func printMetrics(cmd *cobra.Command, app *App) error {
	var stats *cache.Stats
	if app.Analysis != nil {
		s := app.Analysis.CacheStats()
		stats = &s
	}
	var samples []metrics.Sample
	if app.Metrics != nil {
		var err error
		if samples, err = app.Metrics.Snapshot(); err != nil {
			return fmt.Errorf("gathering metrics: %w", err)
		}
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMetrics(stats, samples))
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
