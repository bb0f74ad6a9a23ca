package picker

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/genricoloni/clickloop/internal/domain"
	"github.com/genricoloni/clickloop/internal/layout"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// DefaultInterval keeps the status line current without spinning a core
const DefaultInterval = 10 * time.Millisecond

var commitKeys = []domain.Key{domain.KeySpace, domain.KeyEnter, domain.KeyMouseLeft}

// Picker drives a capture session from the live pointer and keyboard
type Picker struct {
	logger   *zap.Logger
	pointer  domain.Pointer
	keys     domain.KeyState
	out      io.Writer
	interval time.Duration
}

// NewPicker creates a picker that renders its status line to out
func NewPicker(logger *zap.Logger, pointer domain.Pointer, keys domain.KeyState, out io.Writer) *Picker {
	return &Picker{
		logger:   logger,
		pointer:  pointer,
		keys:     keys,
		out:      out,
		interval: DefaultInterval,
	}
}

// Run polls until the session finishes or ctx is cancelled.
// It returns nil when the session reached StateFinishing and an error matching
// domain.ErrInterrupted when it was cancelled; s is left in the matching terminal state.
func (p *Picker) Run(ctx context.Context, s *Session, res *layout.Resolver) error {
	if err := s.Start(); err != nil {
		return err
	}

	p.printInstructions(len(s.existing))
	p.logger.Info("Capture session started",
		zap.Int("existingCoordinates", len(s.existing)),
		zap.Duration("interval", p.interval))

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.Cancel()
			fmt.Fprintln(p.out)
			p.logger.Info("Capture session cancelled", zap.Int("discarded", len(s.captured)))
			return errors.Wrap(domain.ErrInterrupted, "capture session cancelled")
		case <-ticker.C:
		}

		if done := p.tick(ctx, s, res); done {
			fmt.Fprintln(p.out)
			p.logger.Info("Capture session finished",
				zap.Int("captured", len(s.captured)),
				zap.Int("total", len(s.existing)+len(s.captured)))
			return nil
		}
	}
}

// tick reads one sample, feeds it to the session and redraws the status line
func (p *Picker) tick(ctx context.Context, s *Session, res *layout.Resolver) bool {
	ev, err := s.Step(res, p.sample(ctx))
	if err != nil {
		p.logger.Warn("Nothing to capture yet", zap.Error(err))
		fmt.Fprintf(p.out, "\r%-70s", "No monitor under the cursor yet, move the mouse and try again")
	}

	switch ev {
	case EventCommitted:
		rel := s.captured[len(s.captured)-1]
		p.logger.Info("Coordinate captured",
			zap.Int("monitor", rel.Monitor),
			zap.Float64("x", rel.X),
			zap.Float64("y", rel.Y),
			zap.Int("captured", len(s.captured)))
		fmt.Fprintf(p.out, "\n✓ Saved Monitor %d: X=%d, Y=%d\n", rel.Monitor, int(rel.X), int(rel.Y))
	case EventFinished:
		return true
	}

	if err == nil {
		p.render(s)
	}
	return false
}

// sample reads the pointer and the trigger keys. Read failures degrade to
// "not pressed" / "no position" for this tick only.
func (p *Picker) sample(ctx context.Context) Sample {
	var in Sample

	x, y, err := p.pointer.Position(ctx)
	if err != nil {
		p.logger.Debug("Pointer query failed", zap.Error(err))
	} else {
		in.X, in.Y, in.PointerOK = x, y, true
	}

	for _, k := range commitKeys {
		if p.isDown(k) {
			in.Commit = true
			break
		}
	}
	in.Finish = p.isDown(domain.KeyEscape)

	return in
}

func (p *Picker) isDown(k domain.Key) bool {
	down, err := p.keys.IsDown(k)
	if err != nil {
		p.logger.Debug("Key state query failed", zap.Stringer("key", k), zap.Error(err))
		return false
	}
	return down
}

func (p *Picker) render(s *Session) {
	rel, ok := s.Current()
	if !ok {
		fmt.Fprintf(p.out, "\r%-70s", "Cursor is outside every monitor")
		return
	}
	line := fmt.Sprintf("Monitor %d: X: %4d, Y: %4d | captured: %d",
		rel.Monitor, int(rel.X), int(rel.Y), len(s.captured))
	fmt.Fprintf(p.out, "\r%-70s", line)
}

func (p *Picker) printInstructions(existing int) {
	fmt.Fprintln(p.out, "Coordinate picker")
	fmt.Fprintln(p.out, "  Space / Enter / Left click  save the current position")
	fmt.Fprintln(p.out, "  Esc                         finish and write the configuration")
	fmt.Fprintln(p.out, "  Ctrl+C                      cancel without saving")
	if existing > 0 {
		fmt.Fprintf(p.out, "New coordinates are appended to %d existing ones.\n", existing)
	}
	fmt.Fprintln(p.out)
}
