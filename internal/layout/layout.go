// Package layout holds the display geometry of one session and converts between
// monitor-relative and virtual-desktop coordinates.
package layout

import (
	"context"

	"github.com/genricoloni/clickloop/internal/domain"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Layout is an immutable snapshot of the displays found by one enumeration.
// Re-enumeration must build a new Layout; resolvers keep references to old ones.
type Layout struct {
	displays []domain.Display
	byIndex  map[int]int // display index -> position in displays
}

// FromEnumeration builds a layout from the raw descriptors of a display source.
// Indices must run 0..n-1 in enumeration order, which is also the tie-break for
// overlapping displays.
func FromEnumeration(raw []domain.Display) (*Layout, error) {
	if len(raw) == 0 {
		return nil, domain.ErrNoDisplaysDetected
	}

	l := &Layout{
		displays: make([]domain.Display, len(raw)),
		byIndex:  make(map[int]int, len(raw)),
	}
	for pos, d := range raw {
		if _, dup := l.byIndex[d.Index]; dup {
			return nil, errors.Wrapf(domain.ErrInvalidDisplay, "duplicate display index %d", d.Index)
		}
		if d.Index != pos {
			return nil, errors.Wrapf(domain.ErrInvalidDisplay,
				"display index %d at enumeration position %d", d.Index, pos)
		}
		if d.Width <= 0 || d.Height <= 0 {
			return nil, errors.Wrapf(domain.ErrInvalidDisplay,
				"display %d has no area (%dx%d)", d.Index, d.Width, d.Height)
		}
		l.displays[pos] = d
		l.byIndex[d.Index] = pos
	}
	return l, nil
}

// Load enumerates displays from src and builds a layout from them
func Load(ctx context.Context, src domain.DisplaySource, logger *zap.Logger) (*Layout, error) {
	raw, err := src.Displays(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to enumerate displays")
	}

	l, err := FromEnumeration(raw)
	if err != nil {
		return nil, err
	}

	for _, d := range l.displays {
		logger.Info("Display detected",
			zap.Int("index", d.Index),
			zap.Int("width", d.Width),
			zap.Int("height", d.Height),
			zap.Int("x", d.X),
			zap.Int("y", d.Y),
			zap.Bool("primary", d.Primary),
			zap.String("name", d.Name))
	}
	return l, nil
}

// Len returns the number of displays
func (l *Layout) Len() int {
	return len(l.displays)
}

// Displays returns a copy of the descriptors in enumeration order
func (l *Layout) Displays() []domain.Display {
	out := make([]domain.Display, len(l.displays))
	copy(out, l.displays)
	return out
}

// Get returns the display with the given index
func (l *Layout) Get(index int) (domain.Display, error) {
	pos, ok := l.byIndex[index]
	if !ok {
		return domain.Display{}, errors.Wrapf(domain.ErrUnknownMonitorIndex, "monitor %d", index)
	}
	return l.displays[pos], nil
}

// ContainsPoint checks a monitor-relative point against the half-open bounds of display index.
// An unknown index contains nothing.
func (l *Layout) ContainsPoint(index int, x, y float64) bool {
	d, err := l.Get(index)
	if err != nil {
		return false
	}
	return x >= 0 && x < float64(d.Width) && y >= 0 && y < float64(d.Height)
}

// FindContaining returns the first display, in enumeration order, whose
// virtual-desktop rectangle contains the absolute point.
func (l *Layout) FindContaining(ax, ay int) (domain.Display, bool) {
	for _, d := range l.displays {
		if ax >= d.X && ax < d.Right() && ay >= d.Y && ay < d.Bottom() {
			return d, true
		}
	}
	return domain.Display{}, false
}

// Primary returns the display flagged primary, or the first one when none is flagged
func (l *Layout) Primary() domain.Display {
	for _, d := range l.displays {
		if d.Primary {
			return d
		}
	}
	return l.displays[0]
}

// VirtualBounds returns the bounding box of all displays as left, top, right, bottom
func (l *Layout) VirtualBounds() (left, top, right, bottom int) {
	first := l.displays[0]
	left, top, right, bottom = first.X, first.Y, first.Right(), first.Bottom()
	for _, d := range l.displays[1:] {
		left = min(left, d.X)
		top = min(top, d.Y)
		right = max(right, d.Right())
		bottom = max(bottom, d.Bottom())
	}
	return left, top, right, bottom
}
