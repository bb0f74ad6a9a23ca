package layout

import (
	"github.com/genricoloni/clickloop/internal/domain"
	"github.com/pkg/errors"
)

// Resolver converts coordinates against a fixed layout snapshot
type Resolver struct {
	layout *Layout
}

// NewResolver creates a resolver bound to l. It never re-enumerates;
// the caller decides how fresh the snapshot is.
func NewResolver(l *Layout) *Resolver {
	return &Resolver{layout: l}
}

// Layout returns the snapshot this resolver works against
func (r *Resolver) Layout() *Layout {
	return r.layout
}

// Resolve converts a monitor-relative coordinate to its virtual-desktop position
func (r *Resolver) Resolve(rel domain.RelativeCoordinate) (domain.AbsoluteCoordinate, error) {
	d, err := r.layout.Get(rel.Monitor)
	if err != nil {
		return domain.AbsoluteCoordinate{}, &domain.IndexError{Index: rel.Monitor, Count: r.layout.Len()}
	}

	if !r.layout.ContainsPoint(rel.Monitor, rel.X, rel.Y) {
		axis, value := "x", rel.X
		if rel.X >= 0 && rel.X < float64(d.Width) {
			axis, value = "y", rel.Y
		}
		return domain.AbsoluteCoordinate{}, &domain.BoundsError{
			Axis:    axis,
			Value:   value,
			Monitor: rel.Monitor,
			Width:   d.Width,
			Height:  d.Height,
		}
	}

	// x and y are non-negative here, so int() truncation is a floor
	return domain.AbsoluteCoordinate{
		X: d.X + int(rel.X),
		Y: d.Y + int(rel.Y),
	}, nil
}

// ResolveAll resolves a whole sequence, stopping at the first invalid entry
func (r *Resolver) ResolveAll(coords []domain.RelativeCoordinate) ([]domain.AbsoluteCoordinate, error) {
	out := make([]domain.AbsoluteCoordinate, 0, len(coords))
	for i, c := range coords {
		abs, err := r.Resolve(c)
		if err != nil {
			return nil, errors.Wrapf(err, "coordinate %d", i)
		}
		out = append(out, abs)
	}
	return out, nil
}

// ToRelative maps an absolute point back to the display that contains it.
// ok is false when the point is outside every display, which happens briefly
// while the display configuration changes and is not an error.
func (r *Resolver) ToRelative(ax, ay int) (rel domain.RelativeCoordinate, ok bool) {
	d, found := r.layout.FindContaining(ax, ay)
	if !found {
		return domain.RelativeCoordinate{}, false
	}
	return domain.RelativeCoordinate{
		Monitor: d.Index,
		X:       float64(ax - d.X),
		Y:       float64(ay - d.Y),
	}, true
}
