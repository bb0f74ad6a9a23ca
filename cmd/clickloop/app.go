package main

import (
	"context"
	"io"

	"github.com/genricoloni/clickloop/internal/domain"
	"github.com/genricoloni/clickloop/internal/engine"
	"github.com/genricoloni/clickloop/internal/executor"
	"github.com/genricoloni/clickloop/internal/journal"
	"github.com/genricoloni/clickloop/internal/layout"
	"github.com/genricoloni/clickloop/internal/monitor"
	"github.com/genricoloni/clickloop/internal/picker"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Settings carries the global flags into the application graph
type Settings struct {
	LogLevel    string
	LogFile     string
	JournalPath string

	// Out receives user-facing output (status line, tables)
	Out io.Writer
}

// AppOptions is the full graph: core components plus the platform backends
func AppOptions(logger *zap.Logger, s *Settings) fx.Option {
	return fx.Options(
		coreOptions(logger, s),
		platformOptions,
	)
}

// platformOptions talk to the display server / OS and are replaced in tests
var platformOptions = fx.Options(
	fx.Provide(
		monitor.NewSource,
		newExecutor,
	),
)

func coreOptions(logger *zap.Logger, s *Settings) fx.Option {
	return fx.Options(
		// Logger configuration
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			l := &fxevent.ZapLogger{Logger: log}
			l.UseLogLevel(zapcore.DebugLevel)
			return l
		}),

		fx.Supply(logger, s),

		fx.Provide(
			// The executor serves as every input collaborator
			func(e domain.Executor) domain.InputSink { return e },
			func(e domain.Executor) domain.Pointer { return e },
			func(e domain.Executor) domain.KeyState { return e },

			newLayout,
			layout.NewResolver,
			engine.NewEngine,
			newPicker,
			newJournal,
		),
	)
}

func newExecutor(lc fx.Lifecycle, logger *zap.Logger) (domain.Executor, error) {
	e, err := executor.NewExecutor(logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return e.Close()
		},
	})
	return e, nil
}

// newLayout takes the one display snapshot used for the whole invocation
func newLayout(src domain.DisplaySource, logger *zap.Logger) (*layout.Layout, error) {
	return layout.Load(context.Background(), src, logger)
}

func newPicker(logger *zap.Logger, pointer domain.Pointer, keys domain.KeyState, s *Settings) *picker.Picker {
	return picker.NewPicker(logger, pointer, keys, s.Out)
}

// newJournal opens the run history. The journal is best effort: an empty path
// or an open failure yields a nil repository and the invocation carries on.
func newJournal(lc fx.Lifecycle, logger *zap.Logger, s *Settings) *journal.Repository {
	if s.JournalPath == "" {
		logger.Debug("Journal disabled")
		return nil
	}

	db, err := journal.Connect(s.JournalPath)
	if err == nil {
		err = db.Initialize()
		if err != nil {
			_ = db.Close()
		}
	}
	if err != nil {
		logger.Warn("Journal unavailable, history will not be recorded",
			zap.String("path", s.JournalPath),
			zap.Error(err))
		return nil
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return db.Close()
		},
	})
	return journal.NewRepository(db)
}

// withApp runs body between Start and Stop of an already constructed app
func withApp(ctx context.Context, app *fx.App, body func() error) error {
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to initialize")
	}
	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start")
	}

	runErr := body()

	// Stop with a fresh context: ctx is already done after an interrupt
	if err := app.Stop(context.Background()); err != nil {
		return multierr.Append(runErr, errors.Wrap(err, "failed to stop"))
	}
	return runErr
}
