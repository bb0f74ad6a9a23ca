//go:build !linux && !windows
// +build !linux,!windows

package executor

import (
	"context"
	"fmt"

	"github.com/genricoloni/clickloop/internal/domain"
	"github.com/go-vgo/robotgo"
	hook "github.com/robotn/gohook"
	"go.uber.org/zap"
)

// uiohook virtual key codes
const (
	vcEscape = 0x0001
	vcEnter  = 0x001C
	vcSpace  = 0x0039
)

// RobotExecutor drives the pointer with robotgo and reads key state from a gohook event stream.
// Used on macOS and the BSDs.
type RobotExecutor struct {
	logger  *zap.Logger
	tracker *pressTracker
	events  chan hook.Event
}

// NewExecutor creates the platform input backend (robotgo implementation)
func NewExecutor(logger *zap.Logger) (*RobotExecutor, error) {
	e := &RobotExecutor{
		logger:  logger,
		tracker: newPressTracker(),
		events:  hook.Start(),
	}
	go e.consume()

	logger.Info("robotgo input backend initialized")
	return e, nil
}

// consume keeps the tracker in sync with the global hook until Close
func (e *RobotExecutor) consume() {
	for ev := range e.events {
		key, down, ok := translateHookEvent(ev)
		if ok {
			e.tracker.Update(key, down)
		}
	}
}

func translateHookEvent(ev hook.Event) (domain.Key, bool, bool) {
	switch ev.Kind {
	case hook.KeyDown, hook.KeyHold, hook.KeyUp:
		var key domain.Key
		switch ev.Keycode {
		case vcEscape:
			key = domain.KeyEscape
		case vcEnter:
			key = domain.KeyEnter
		case vcSpace:
			key = domain.KeySpace
		default:
			return 0, false, false
		}
		return key, ev.Kind != hook.KeyUp, true
	case hook.MouseHold, hook.MouseDown:
		if ev.Button != hook.MouseMap["left"] {
			return 0, false, false
		}
		// gohook names the press MouseHold and the release MouseDown
		return domain.KeyMouseLeft, ev.Kind == hook.MouseHold, true
	}
	return 0, false, false
}

// Position implements domain.Pointer
func (e *RobotExecutor) Position(ctx context.Context) (int, int, error) {
	x, y := robotgo.Location()
	return x, y, nil
}

// MoveTo implements domain.InputSink
func (e *RobotExecutor) MoveTo(ctx context.Context, x, y int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	robotgo.Move(x, y)
	return nil
}

// Press implements domain.InputSink
func (e *RobotExecutor) Press(ctx context.Context, button domain.Button) error {
	if !button.Valid() {
		return fmt.Errorf("unsupported button %q", button)
	}
	robotgo.Click(string(button), false)
	return nil
}

// IsDown implements domain.KeyState
func (e *RobotExecutor) IsDown(key domain.Key) (bool, error) {
	return e.tracker.IsDown(key)
}

// Close stops the global hook
func (e *RobotExecutor) Close() error {
	hook.End()
	e.tracker.Reset()
	return nil
}
