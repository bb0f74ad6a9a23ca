package domain

import "context"

//go:generate mockgen -destination=mocks/mocks.go -package=mocks github.com/genricoloni/clickloop/internal/domain DisplaySource,Pointer,InputSink,KeyState,Executor

// DisplaySource enumerates the attached displays.
// Implementations wrap the OS enumeration call (RandR, EnumDisplayMonitors, ...)
type DisplaySource interface {
	// Displays returns the displays in enumeration order.
	// An empty result must be reported as ErrNoDisplaysDetected.
	Displays(ctx context.Context) ([]Display, error)
}

// Pointer reads the live pointer position
type Pointer interface {
	// Position returns the current absolute pointer position in virtual-desktop coordinates
	Position(ctx context.Context) (x, y int, err error)
}

// InputSink synthesizes pointer movement and button events
type InputSink interface {
	// MoveTo moves the pointer to an absolute virtual-desktop position
	MoveTo(ctx context.Context, x, y int) error

	// Press synthesizes a full press (down + up) of the given button at the current position
	Press(ctx context.Context, button Button) error
}

// KeyState reports whether a watched key or button is currently held down
type KeyState interface {
	IsDown(key Key) (bool, error)
}

// Executor bundles the platform input collaborators behind one handle
type Executor interface {
	Pointer
	InputSink
	KeyState

	// Close releases the platform connection (X11 socket, hooks, ...)
	Close() error
}
