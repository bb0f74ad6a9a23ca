package domain

import (
	"fmt"

	"github.com/pkg/errors"
)

// Validation errors abort the invocation. They are never clamped or skipped.
var (
	// ErrNoDisplaysDetected means the display enumeration returned nothing
	ErrNoDisplaysDetected = errors.New("no displays detected")

	// ErrInvalidDisplay means an enumerated display had a duplicate index or no area
	ErrInvalidDisplay = errors.New("invalid display descriptor")

	// ErrUnknownMonitorIndex is returned by layout lookups for an absent index
	ErrUnknownMonitorIndex = errors.New("unknown monitor index")

	// ErrMonitorIndexOutOfRange is returned when a coordinate references a missing monitor
	ErrMonitorIndexOutOfRange = errors.New("monitor index out of range")

	// ErrCoordinateOutOfBounds is returned when a coordinate lies outside its monitor
	ErrCoordinateOutOfBounds = errors.New("coordinate out of bounds")

	// ErrEmptyCoordinateList is returned when a run has nothing to click
	ErrEmptyCoordinateList = errors.New("no coordinates specified")

	// ErrInvalidLoops is returned when the loop count is below one
	ErrInvalidLoops = errors.New("loops must be a positive integer")
)

// ErrConfiguration marks problems with the configuration file itself
var ErrConfiguration = errors.New("configuration error")

// ErrNoActiveDisplayAtCursor is recoverable: the picker logs it and keeps polling
var ErrNoActiveDisplayAtCursor = errors.New("no display has resolved under the cursor yet")

// ErrInterrupted reports user cancellation. It is not a failure.
var ErrInterrupted = errors.New("interrupted by user")

// IndexError reports a monitor index that has no matching display
type IndexError struct {
	Index int
	Count int
}

func (e *IndexError) Error() string {
	if e.Count == 0 {
		return fmt.Sprintf("monitor index %d out of range: no monitors available", e.Index)
	}
	return fmt.Sprintf("monitor index %d out of range (available monitors: 0-%d)", e.Index, e.Count-1)
}

// Unwrap lets errors.Is match ErrMonitorIndexOutOfRange
func (e *IndexError) Unwrap() error {
	return ErrMonitorIndexOutOfRange
}

// BoundsError reports a relative coordinate outside its monitor's half-open bounds
type BoundsError struct {
	// Axis is "x" or "y"
	Axis    string
	Value   float64
	Monitor int
	Width   int
	Height  int
}

func (e *BoundsError) Error() string {
	limitName, limit := "width", e.Width
	if e.Axis == "y" {
		limitName, limit = "height", e.Height
	}
	return fmt.Sprintf("%s coordinate %v out of range for monitor %d (%s: %d, size %dx%d)",
		e.Axis, e.Value, e.Monitor, limitName, limit, e.Width, e.Height)
}

// Unwrap lets errors.Is match ErrCoordinateOutOfBounds
func (e *BoundsError) Unwrap() error {
	return ErrCoordinateOutOfBounds
}

// ConfigError ties a configuration problem to the file it came from
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("invalid configuration: %v", e.Err)
	}
	return fmt.Sprintf("configuration %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is makes every ConfigError match ErrConfiguration
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfiguration
}

// IsValidation reports whether err belongs to the validation taxonomy
func IsValidation(err error) bool {
	for _, target := range []error{
		ErrNoDisplaysDetected,
		ErrInvalidDisplay,
		ErrUnknownMonitorIndex,
		ErrMonitorIndexOutOfRange,
		ErrCoordinateOutOfBounds,
		ErrEmptyCoordinateList,
		ErrInvalidLoops,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsCancellation reports whether err is a user cancellation rather than a failure
func IsCancellation(err error) bool {
	return errors.Is(err, ErrInterrupted)
}
