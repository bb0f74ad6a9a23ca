package picker

import (
	"github.com/genricoloni/clickloop/internal/domain"
	"github.com/genricoloni/clickloop/internal/layout"
	"github.com/pkg/errors"
)

// State is the lifecycle position of a capture session
type State int

const (
	// StateIdle is the initial state, before the first polling tick
	StateIdle State = iota
	// StatePolling follows the pointer and accepts commits
	StatePolling
	// StateFinishing is terminal: the merged list should be persisted
	StateFinishing
	// StateCancelled is terminal: everything captured is discarded
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePolling:
		return "polling"
	case StateFinishing:
		return "finishing"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transition is possible
func (s State) Terminal() bool {
	return s == StateFinishing || s == StateCancelled
}

// Event describes what a single tick did
type Event int

const (
	EventNone Event = iota
	EventCommitted
	EventFinished
)

// Sample is one reading of the live input state
type Sample struct {
	X, Y int
	// PointerOK is false when the pointer query failed for this tick
	PointerOK bool
	// Commit is true while any commit trigger (space, enter, left button) is held
	Commit bool
	// Finish is true while the finish key is held
	Finish bool
}

// Session carries all picker state between ticks
type Session struct {
	state    State
	existing []domain.RelativeCoordinate
	captured []domain.RelativeCoordinate

	current  domain.RelativeCoordinate
	resolved bool

	// held flags make both triggers fire on the press edge only
	commitHeld bool
	finishHeld bool
}

// NewSession starts an idle session on top of an already loaded coordinate list
func NewSession(existing []domain.RelativeCoordinate) *Session {
	return &Session{
		state:    StateIdle,
		existing: append([]domain.RelativeCoordinate(nil), existing...),
	}
}

// State returns the current lifecycle state
func (s *Session) State() State {
	return s.state
}

// Existing returns the coordinates the session was started with
func (s *Session) Existing() []domain.RelativeCoordinate {
	return append([]domain.RelativeCoordinate(nil), s.existing...)
}

// Captured returns the coordinates committed during this session, in capture order
func (s *Session) Captured() []domain.RelativeCoordinate {
	return append([]domain.RelativeCoordinate(nil), s.captured...)
}

// Current returns the last valid resolution and whether there has been one
func (s *Session) Current() (domain.RelativeCoordinate, bool) {
	return s.current, s.resolved
}

// Result is the list to persist: existing coordinates followed by new captures.
// Duplicates are kept and nothing is reordered.
func (s *Session) Result() []domain.RelativeCoordinate {
	out := make([]domain.RelativeCoordinate, 0, len(s.existing)+len(s.captured))
	out = append(out, s.existing...)
	return append(out, s.captured...)
}

// Start moves an idle session into polling
func (s *Session) Start() error {
	if s.state != StateIdle {
		return errors.Errorf("cannot start session in state %s", s.state)
	}
	s.state = StatePolling
	return nil
}

// Cancel discards the session. It has no effect once a terminal state is reached.
func (s *Session) Cancel() {
	if s.state.Terminal() {
		return
	}
	s.state = StateCancelled
}

// Step applies one sample to the session.
// A commit before anything has resolved returns ErrNoActiveDisplayAtCursor and leaves the
// state unchanged; the caller is expected to report it and keep polling.
func (s *Session) Step(res *layout.Resolver, in Sample) (Event, error) {
	if s.state != StatePolling {
		return EventNone, nil
	}

	if in.PointerOK {
		if rel, ok := res.ToRelative(in.X, in.Y); ok {
			s.current = rel
			s.resolved = true
		}
	}

	commitEdge := in.Commit && !s.commitHeld
	finishEdge := in.Finish && !s.finishHeld
	s.commitHeld = in.Commit
	s.finishHeld = in.Finish

	event := EventNone
	var err error
	if commitEdge {
		if s.resolved {
			s.captured = append(s.captured, s.current)
			event = EventCommitted
		} else {
			err = domain.ErrNoActiveDisplayAtCursor
		}
	}

	if finishEdge {
		s.state = StateFinishing
		event = EventFinished
	}

	return event, err
}
