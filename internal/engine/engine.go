package engine

import (
	"context"
	"time"

	"github.com/genricoloni/clickloop/internal/domain"
	"github.com/genricoloni/clickloop/internal/layout"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Report summarizes what a run actually did
type Report struct {
	// LoopsCompleted counts fully executed iterations
	LoopsCompleted int
	// Clicks counts injected button presses
	Clicks int
	// Duration is the wall time spent in Run
	Duration time.Duration
}

// waitFunc blocks for d or until ctx is done
type waitFunc func(ctx context.Context, d time.Duration) error

// Engine runs a click sequence through an input sink.
// All side effects are sequential; nothing runs in the background.
type Engine struct {
	logger *zap.Logger
	sink   domain.InputSink
	wait   waitFunc
}

// NewEngine creates a click sequence runner
func NewEngine(logger *zap.Logger, sink domain.InputSink) *Engine {
	return &Engine{
		logger: logger,
		sink:   sink,
		wait:   sleepContext,
	}
}

// Run executes seq against the layout snapshot held by res.
// Every coordinate is resolved before the first click, so an invalid entry
// aborts the run without any input being injected. Cancelling ctx stops the
// run before the next click (or mid-delay) and returns an error matching
// domain.ErrInterrupted together with the partial report.
func (e *Engine) Run(ctx context.Context, seq domain.ClickSequence, res *layout.Resolver) (report Report, err error) {
	started := time.Now()
	defer func() { report.Duration = time.Since(started) }()

	if len(seq.Coordinates) == 0 {
		return report, domain.ErrEmptyCoordinateList
	}
	if seq.Loops < 1 {
		return report, errors.Wrapf(domain.ErrInvalidLoops, "got %d", seq.Loops)
	}

	targets, err := res.ResolveAll(seq.Coordinates)
	if err != nil {
		return report, err
	}

	e.logger.Info("Starting click loop",
		zap.Int("loops", seq.Loops),
		zap.Int("coordinates", len(targets)),
		zap.Duration("waitBetweenClicks", seq.WaitBetweenClicks),
		zap.Duration("waitBetweenLoops", seq.WaitBetweenLoops))

	last := len(targets) - 1
	for loop := 1; loop <= seq.Loops; loop++ {
		e.logger.Info("Loop started", zap.Int("loop", loop), zap.Int("of", seq.Loops))

		for i, target := range targets {
			if ctx.Err() != nil {
				return report, e.interrupted(report, loop, i)
			}

			coord := seq.Coordinates[i]
			e.logger.Debug("Clicking",
				zap.Int("monitor", coord.Monitor),
				zap.Float64("x", coord.X),
				zap.Float64("y", coord.Y),
				zap.Int("virtualX", target.X),
				zap.Int("virtualY", target.Y))

			if err := e.click(ctx, target, coord.ButtonOrDefault()); err != nil {
				return report, errors.Wrapf(err, "loop %d, coordinate %d", loop, i)
			}
			report.Clicks++

			if i < last {
				if err := e.wait(ctx, seq.WaitBetweenClicks); err != nil {
					return report, e.interrupted(report, loop, i+1)
				}
			}
		}
		report.LoopsCompleted++

		if loop < seq.Loops {
			e.logger.Debug("Waiting before next loop", zap.Duration("wait", seq.WaitBetweenLoops))
			if err := e.wait(ctx, seq.WaitBetweenLoops); err != nil {
				return report, e.interrupted(report, loop+1, 0)
			}
		}
	}

	e.logger.Info("Click loop completed",
		zap.Int("loops", report.LoopsCompleted),
		zap.Int("clicks", report.Clicks))
	return report, nil
}

// click moves the pointer to target and presses button there
func (e *Engine) click(ctx context.Context, target domain.AbsoluteCoordinate, button domain.Button) error {
	if err := e.sink.MoveTo(ctx, target.X, target.Y); err != nil {
		return errors.Wrapf(err, "failed to move pointer to (%d, %d)", target.X, target.Y)
	}
	if err := e.sink.Press(ctx, button); err != nil {
		return errors.Wrapf(err, "failed to press %s button at (%d, %d)", button, target.X, target.Y)
	}
	return nil
}

func (e *Engine) interrupted(report Report, loop, next int) error {
	e.logger.Info("Click loop interrupted",
		zap.Int("loop", loop),
		zap.Int("nextCoordinate", next),
		zap.Int("clicks", report.Clicks))
	return errors.Wrapf(domain.ErrInterrupted, "stopped in loop %d before coordinate %d", loop, next)
}

// sleepContext waits for d unless ctx finishes first
func sleepContext(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
