package layout

import (
	"strings"
	"testing"

	"github.com/genricoloni/clickloop/internal/domain"
	"github.com/pkg/errors"
)

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver(dualLayout(t))

	tests := []struct {
		name          string
		rel           domain.RelativeCoordinate
		expected      domain.AbsoluteCoordinate
		expectedErr   error
		errorContains []string
	}{
		{
			name:     "Primary center",
			rel:      domain.RelativeCoordinate{Monitor: 0, X: 960, Y: 540},
			expected: domain.AbsoluteCoordinate{X: 960, Y: 540},
		},
		{
			name:     "Secondary center",
			rel:      domain.RelativeCoordinate{Monitor: 1, X: 1280, Y: 720},
			expected: domain.AbsoluteCoordinate{X: 3200, Y: 720},
		},
		{
			name:     "Fraction is truncated",
			rel:      domain.RelativeCoordinate{Monitor: 1, X: 10.9, Y: 0.2},
			expected: domain.AbsoluteCoordinate{X: 1930, Y: 0},
		},
		{
			name:          "Unknown monitor",
			rel:           domain.RelativeCoordinate{Monitor: 2, X: 0, Y: 0},
			expectedErr:   domain.ErrMonitorIndexOutOfRange,
			errorContains: []string{"monitor index 2", "0-1"},
		},
		{
			name:        "Negative monitor",
			rel:         domain.RelativeCoordinate{Monitor: -1, X: 0, Y: 0},
			expectedErr: domain.ErrMonitorIndexOutOfRange,
		},
		{
			name:          "X beyond width",
			rel:           domain.RelativeCoordinate{Monitor: 1, X: 3000, Y: 720},
			expectedErr:   domain.ErrCoordinateOutOfBounds,
			errorContains: []string{"3000", "monitor 1", "width: 2560"},
		},
		{
			name:        "X exactly at width",
			rel:         domain.RelativeCoordinate{Monitor: 0, X: 1920, Y: 0},
			expectedErr: domain.ErrCoordinateOutOfBounds,
		},
		{
			name:          "Y exactly at height",
			rel:           domain.RelativeCoordinate{Monitor: 0, X: 0, Y: 1080},
			expectedErr:   domain.ErrCoordinateOutOfBounds,
			errorContains: []string{"y coordinate 1080", "height: 1080"},
		},
		{
			name:        "Negative y",
			rel:         domain.RelativeCoordinate{Monitor: 0, X: 5, Y: -3},
			expectedErr: domain.ErrCoordinateOutOfBounds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			abs, err := r.Resolve(tt.rel)
			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Fatalf("expected %v, got %v", tt.expectedErr, err)
				}
				for _, s := range tt.errorContains {
					if !strings.Contains(err.Error(), s) {
						t.Errorf("expected error %q to contain %q", err.Error(), s)
					}
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if abs != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, abs)
			}
		})
	}
}

func TestResolver_UnknownIndexNeverReportsBounds(t *testing.T) {
	r := NewResolver(dualLayout(t))

	for _, idx := range []int{-10, -1, 2, 3, 100} {
		_, err := r.Resolve(domain.RelativeCoordinate{Monitor: idx, X: 99999, Y: -5})
		if !errors.Is(err, domain.ErrMonitorIndexOutOfRange) {
			t.Errorf("index %d: expected ErrMonitorIndexOutOfRange, got %v", idx, err)
		}
		if errors.Is(err, domain.ErrCoordinateOutOfBounds) {
			t.Errorf("index %d: must not report out-of-bounds", idx)
		}
	}
}

func TestResolver_RoundTrip(t *testing.T) {
	l, err := FromEnumeration([]domain.Display{
		{Index: 0, X: 0, Y: 0, Width: 1920, Height: 1080, Primary: true},
		{Index: 1, X: 1920, Y: -360, Width: 2560, Height: 1440},
		{Index: 2, X: -1080, Y: -200, Width: 1080, Height: 1920},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r := NewResolver(l)

	for _, d := range l.Displays() {
		points := [][2]int{
			{0, 0},
			{d.Width - 1, 0},
			{0, d.Height - 1},
			{d.Width - 1, d.Height - 1},
			{d.Width / 2, d.Height / 3},
		}
		for _, p := range points {
			ax, ay := d.X+p[0], d.Y+p[1]

			rel, ok := r.ToRelative(ax, ay)
			if !ok {
				t.Fatalf("display %d: point (%d,%d) not found", d.Index, ax, ay)
			}
			abs, err := r.Resolve(rel)
			if err != nil {
				t.Fatalf("display %d: resolve failed: %v", d.Index, err)
			}
			if abs.X != ax || abs.Y != ay {
				t.Errorf("display %d: round trip (%d,%d) -> %+v -> (%d,%d)", d.Index, ax, ay, rel, abs.X, abs.Y)
			}
		}
	}
}

func TestResolver_ToRelative(t *testing.T) {
	r := NewResolver(dualLayout(t))

	rel, ok := r.ToRelative(3200, 720)
	if !ok {
		t.Fatal("expected point to resolve")
	}
	if rel.Monitor != 1 || rel.X != 1280 || rel.Y != 720 {
		t.Errorf("unexpected relative coordinate: %+v", rel)
	}

	if _, ok := r.ToRelative(500, 1300); ok {
		t.Error("point in the gap below the primary display must not resolve")
	}
}

func TestResolver_ResolveAll(t *testing.T) {
	r := NewResolver(dualLayout(t))

	abs, err := r.ResolveAll([]domain.RelativeCoordinate{
		{Monitor: 0, X: 960, Y: 540},
		{Monitor: 1, X: 1280, Y: 720},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(abs) != 2 || abs[1].X != 3200 {
		t.Errorf("unexpected result: %+v", abs)
	}

	_, err = r.ResolveAll([]domain.RelativeCoordinate{
		{Monitor: 0, X: 960, Y: 540},
		{Monitor: 1, X: 3000, Y: 720},
	})
	if !errors.Is(err, domain.ErrCoordinateOutOfBounds) {
		t.Fatalf("expected ErrCoordinateOutOfBounds, got %v", err)
	}
	if !strings.Contains(err.Error(), "coordinate 1") {
		t.Errorf("expected error to name the failing position, got %q", err.Error())
	}
}
