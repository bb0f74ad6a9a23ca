package domain

import "time"

// Button identifies which mouse button a click injects
type Button string

const (
	// ButtonLeft is the primary mouse button
	ButtonLeft Button = "left"
	// ButtonRight is the secondary mouse button
	ButtonRight Button = "right"
)

// Valid reports whether b names a supported button
func (b Button) Valid() bool {
	return b == ButtonLeft || b == ButtonRight
}

// Key identifies an input the picker watches for commit/finish triggers
type Key int

const (
	// KeySpace commits the current position
	KeySpace Key = iota
	// KeyEnter commits the current position
	KeyEnter
	// KeyEscape finishes the capture session
	KeyEscape
	// KeyMouseLeft commits the current position
	KeyMouseLeft
)

func (k Key) String() string {
	switch k {
	case KeySpace:
		return "space"
	case KeyEnter:
		return "enter"
	case KeyEscape:
		return "escape"
	case KeyMouseLeft:
		return "mouse-left"
	default:
		return "unknown"
	}
}

// Display describes one physical display as reported by a single enumeration.
// Index is only stable within that enumeration.
type Display struct {
	// Index is the 0-based position in enumeration order
	Index int
	// X and Y are the display origin in virtual-desktop coordinates (may be negative)
	X int
	Y int
	// Width and Height are the display size in pixels
	Width  int
	Height int
	// Primary marks the display the OS reports as primary
	Primary bool
	// Name is a backend-specific label (output name, device name); informational only
	Name string
}

// Right returns the exclusive right edge in virtual-desktop coordinates
func (d Display) Right() int {
	return d.X + d.Width
}

// Bottom returns the exclusive bottom edge in virtual-desktop coordinates
func (d Display) Bottom() int {
	return d.Y + d.Height
}

// RelativeCoordinate is a persisted click target relative to a monitor's top-left corner
type RelativeCoordinate struct {
	Monitor int     `json:"monitor" mapstructure:"monitor"`
	X       float64 `json:"x" mapstructure:"x"`
	Y       float64 `json:"y" mapstructure:"y"`
	// Button defaults to left when empty
	Button Button `json:"button,omitempty" mapstructure:"button"`
}

// ButtonOrDefault returns the configured button, falling back to ButtonLeft
func (c RelativeCoordinate) ButtonOrDefault() Button {
	if c.Button == "" {
		return ButtonLeft
	}
	return c.Button
}

// AbsoluteCoordinate is a resolved virtual-desktop position. Never persisted.
type AbsoluteCoordinate struct {
	X int
	Y int
}

// ClickSequence is the runtime form of the click configuration
type ClickSequence struct {
	// Coordinates in click order within one loop
	Coordinates []RelativeCoordinate
	// Loops is the number of iterations (>= 1)
	Loops int
	// WaitBetweenClicks is applied after every click except the last one of a loop
	WaitBetweenClicks time.Duration
	// WaitBetweenLoops is applied after every loop except the last one
	WaitBetweenLoops time.Duration
}
