package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/genricoloni/clickloop/internal/config"
	"github.com/genricoloni/clickloop/internal/engine"
	"github.com/genricoloni/clickloop/internal/journal"
	"github.com/genricoloni/clickloop/internal/layout"
	"github.com/genricoloni/clickloop/internal/picker"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// cli holds what the global flags produce for the subcommands
type cli struct {
	settings Settings
	stderr   io.Writer
	logger   *zap.Logger
	cleanup  func()
}

func (c *cli) closeLogger() {
	if c.cleanup != nil {
		c.cleanup()
		c.cleanup = nil
	}
}

// newApp builds the application graph and fills targets
func (c *cli) newApp(targets ...any) *fx.App {
	return fx.New(
		AppOptions(c.logger, &c.settings),
		fx.Populate(targets...),
	)
}

func (c *cli) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "clickloop",
		Short:         "Replay click sequences across multiple monitors",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, cleanup, err := newLogger(c.settings.LogLevel, c.settings.LogFile, c.stderr)
			if err != nil {
				return err
			}
			c.logger, c.cleanup = logger, cleanup
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.settings.LogLevel, "log-level", "info", "log level (debug, info, warn, error)")
	flags.StringVar(&c.settings.LogFile, "log-file", defaultLogFile, "log file path, empty to log to the console only")
	flags.StringVar(&c.settings.JournalPath, "journal", journal.DefaultPath, "run history database, empty to disable")

	root.AddCommand(
		c.runCommand(),
		c.pickCommand(),
		c.monitorsCommand(),
		c.historyCommand(),
	)
	return root
}

func (c *cli) runCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Click the configured coordinates in a loop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := config.NewLoader(c.logger)
			loader.BindFlag(config.KeyLoops, cmd.Flags().Lookup("loops"))
			loader.BindFlag(config.KeyWaitBetweenClicks, cmd.Flags().Lookup("wait-clicks"))
			loader.BindFlag(config.KeyWaitBetweenLoops, cmd.Flags().Lookup("wait-loops"))

			cfg, err := loader.Load(configPath)
			if err != nil {
				return err
			}

			d := runDeps{logger: c.logger, out: c.settings.Out}
			app := c.newApp(&d.engine, &d.resolver, &d.journal)
			return withApp(cmd.Context(), app, func() error {
				return runSequence(cmd.Context(), d, cfg, configPath)
			})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultPath, "configuration file")
	cmd.Flags().Int("loops", 0, "override the number of loops")
	cmd.Flags().Float64("wait-clicks", 0, "override the delay between clicks in seconds")
	cmd.Flags().Float64("wait-loops", 0, "override the delay between loops in seconds")
	return cmd
}

func (c *cli) pickCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Capture click coordinates interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := config.NewLoader(c.logger).LoadForUpdate(configPath)
			if err != nil {
				return err
			}

			d := pickDeps{logger: c.logger, out: c.settings.Out}
			app := c.newApp(&d.picker, &d.resolver, &d.journal)
			return withApp(cmd.Context(), app, func() error {
				return pickCoordinates(cmd.Context(), d, cfg, configPath)
			})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultPath, "configuration file to append to")
	return cmd
}

func (c *cli) monitorsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "monitors",
		Short: "Show the detected monitor layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var l *layout.Layout
			app := c.newApp(&l)
			return withApp(cmd.Context(), app, func() error {
				printLayout(c.settings.Out, l)
				return nil
			})
		},
	}
}

func (c *cli) historyCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var repo *journal.Repository
			app := c.newApp(&repo)
			return withApp(cmd.Context(), app, func() error {
				if repo == nil {
					return errors.New("journal is disabled or unavailable")
				}
				runs, err := repo.Recent(limit)
				if err != nil {
					return err
				}
				counts, err := repo.CountByOutcome()
				if err != nil {
					return err
				}
				printHistory(c.settings.Out, runs)
				printTotals(c.settings.Out, counts)
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of runs to show")
	return cmd
}

// runDeps is what a run needs from the graph
type runDeps struct {
	logger   *zap.Logger
	out      io.Writer
	engine   *engine.Engine
	resolver *layout.Resolver
	journal  *journal.Repository
}

// runSequence executes the loaded configuration and journals the outcome
func runSequence(ctx context.Context, d runDeps, cfg *config.Config, configPath string) error {
	started := time.Now()
	report, err := d.engine.Run(ctx, cfg.ToSequence(), d.resolver)

	record(d.logger, d.journal, &journal.Run{
		StartedAt:      started,
		Command:        "run",
		ConfigPath:     configPath,
		Displays:       d.resolver.Layout().Len(),
		Coordinates:    len(cfg.Coordinates),
		Loops:          cfg.Loops,
		LoopsCompleted: report.LoopsCompleted,
		Clicks:         report.Clicks,
		DurationMs:     report.Duration.Milliseconds(),
	}, err)

	if err == nil {
		fmt.Fprintf(d.out, "Completed %d loops (%d clicks) in %s\n",
			report.LoopsCompleted, report.Clicks, report.Duration.Round(time.Millisecond))
	}
	return err
}

// pickDeps is what a pick needs from the graph
type pickDeps struct {
	logger   *zap.Logger
	out      io.Writer
	picker   *picker.Picker
	resolver *layout.Resolver
	journal  *journal.Repository
}

// pickCoordinates runs a capture session and journals it. The journal row counts
// the coordinates the file held before the session, like a run row does.
func pickCoordinates(ctx context.Context, d pickDeps, cfg *config.Config, configPath string) error {
	started := time.Now()
	existing := len(cfg.Coordinates)

	captured, err := capture(ctx, d.picker, d.resolver, cfg, configPath, d.out)
	record(d.logger, d.journal, &journal.Run{
		StartedAt:   started,
		Command:     "pick",
		ConfigPath:  configPath,
		Displays:    d.resolver.Layout().Len(),
		Coordinates: existing,
		Captured:    captured,
		DurationMs:  time.Since(started).Milliseconds(),
	}, err)
	return err
}

// capture runs a picker session over the coordinates already in cfg and saves
// the merged list on finish. It returns how many coordinates were captured.
// A cancelled session or one without captures leaves the file untouched.
func capture(ctx context.Context, pk *picker.Picker, res *layout.Resolver, cfg *config.Config, path string, out io.Writer) (int, error) {
	s := picker.NewSession(cfg.Coordinates)
	if err := pk.Run(ctx, s, res); err != nil {
		if s.State() == picker.StateCancelled {
			fmt.Fprintln(out, "Cancelled, configuration left unchanged")
		}
		return 0, err
	}

	captured := len(s.Captured())
	if captured == 0 {
		fmt.Fprintln(out, "No coordinates to save")
		return 0, nil
	}

	cfg.Coordinates = s.Result()
	if err := config.Save(path, cfg); err != nil {
		return captured, err
	}
	fmt.Fprintf(out, "Saved %d coordinates (%d new) to %s\n", len(cfg.Coordinates), captured, path)
	return captured, nil
}

// record writes to the journal when there is one. Failures are logged only.
func record(logger *zap.Logger, repo *journal.Repository, run *journal.Run, runErr error) {
	if repo == nil {
		return
	}
	if err := repo.Record(run, runErr); err != nil {
		logger.Warn("Failed to journal run", zap.String("command", run.Command), zap.Error(err))
	}
}

func printLayout(out io.Writer, l *layout.Layout) {
	fmt.Fprintf(out, "Detected %d monitor(s):\n", l.Len())
	for _, d := range l.Displays() {
		line := fmt.Sprintf("  Monitor %d: %dx%d at (%d, %d)", d.Index, d.Width, d.Height, d.X, d.Y)
		if d.Primary {
			line += " [primary]"
		}
		if d.Name != "" {
			line += " " + d.Name
		}
		fmt.Fprintln(out, line)
	}
	left, top, right, bottom := l.VirtualBounds()
	fmt.Fprintf(out, "Virtual desktop: (%d, %d) to (%d, %d)\n", left, top, right, bottom)
}

func printHistory(out io.Writer, runs []journal.Run) {
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet")
		return
	}
	for _, r := range runs {
		detail := fmt.Sprintf("loops %d/%d, clicks %d", r.LoopsCompleted, r.Loops, r.Clicks)
		if r.Command == "pick" {
			detail = fmt.Sprintf("captured %d", r.Captured)
		}
		fmt.Fprintf(out, "%s  %-4s  %-11s  %-22s  %s\n",
			r.StartedAt.Local().Format(time.DateTime), r.Command, r.Outcome, detail, r.Duration())
	}
}

func printTotals(out io.Writer, counts map[journal.Outcome]int64) {
	fmt.Fprintf(out, "Totals: %d completed, %d interrupted, %d failed\n",
		counts[journal.OutcomeCompleted], counts[journal.OutcomeInterrupted], counts[journal.OutcomeFailed])
}
