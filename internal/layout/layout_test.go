package layout

import (
	"context"
	"fmt"
	"testing"

	"github.com/genricoloni/clickloop/internal/domain"
	"github.com/genricoloni/clickloop/internal/domain/mocks"
	"github.com/pkg/errors"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

// dualLayout is the reference arrangement: 1080p primary with a 1440p display to its right
func dualLayout(t *testing.T) *Layout {
	t.Helper()
	l, err := FromEnumeration([]domain.Display{
		{Index: 0, X: 0, Y: 0, Width: 1920, Height: 1080, Primary: true},
		{Index: 1, X: 1920, Y: 0, Width: 2560, Height: 1440},
	})
	if err != nil {
		t.Fatalf("failed to build layout: %v", err)
	}
	return l
}

func TestFromEnumeration(t *testing.T) {
	tests := []struct {
		name        string
		raw         []domain.Display
		expectedErr error
		expectedLen int
	}{
		{
			name:        "Empty list",
			raw:         nil,
			expectedErr: domain.ErrNoDisplaysDetected,
		},
		{
			name: "Single display",
			raw: []domain.Display{
				{Index: 0, Width: 1920, Height: 1080, Primary: true},
			},
			expectedLen: 1,
		},
		{
			name: "Duplicate index",
			raw: []domain.Display{
				{Index: 0, Width: 1920, Height: 1080},
				{Index: 0, X: 1920, Width: 1920, Height: 1080},
			},
			expectedErr: domain.ErrInvalidDisplay,
		},
		{
			name: "Index gap",
			raw: []domain.Display{
				{Index: 0, Width: 1920, Height: 1080},
				{Index: 2, X: 1920, Width: 1920, Height: 1080},
			},
			expectedErr: domain.ErrInvalidDisplay,
		},
		{
			name: "Index out of enumeration order",
			raw: []domain.Display{
				{Index: 1, Width: 1920, Height: 1080},
				{Index: 0, X: 1920, Width: 1920, Height: 1080},
			},
			expectedErr: domain.ErrInvalidDisplay,
		},
		{
			name: "Zero sized display",
			raw: []domain.Display{
				{Index: 0, Width: 0, Height: 1080},
			},
			expectedErr: domain.ErrInvalidDisplay,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := FromEnumeration(tt.raw)
			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Fatalf("expected %v, got %v", tt.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if l.Len() != tt.expectedLen {
				t.Errorf("expected %d displays, got %d", tt.expectedLen, l.Len())
			}
		})
	}
}

func TestLayout_Get(t *testing.T) {
	l := dualLayout(t)

	d, err := l.Get(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.X != 1920 || d.Width != 2560 {
		t.Errorf("wrong display returned: %+v", d)
	}

	if _, err := l.Get(2); !errors.Is(err, domain.ErrUnknownMonitorIndex) {
		t.Errorf("expected ErrUnknownMonitorIndex, got %v", err)
	}
	if _, err := l.Get(-1); !errors.Is(err, domain.ErrUnknownMonitorIndex) {
		t.Errorf("expected ErrUnknownMonitorIndex for negative index, got %v", err)
	}
}

func TestLayout_ContainsPoint(t *testing.T) {
	l := dualLayout(t)

	tests := []struct {
		name     string
		index    int
		x, y     float64
		expected bool
	}{
		{"Origin", 0, 0, 0, true},
		{"Last pixel", 0, 1919, 1079, true},
		{"Right edge is exclusive", 0, 1920, 500, false},
		{"Bottom edge is exclusive", 0, 500, 1080, false},
		{"Negative x", 0, -1, 10, false},
		{"Fractional inside", 1, 2559.5, 1439.5, true},
		{"Unknown monitor", 5, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.ContainsPoint(tt.index, tt.x, tt.y); got != tt.expected {
				t.Errorf("ContainsPoint(%d, %v, %v) = %v, want %v", tt.index, tt.x, tt.y, got, tt.expected)
			}
		})
	}
}

func TestLayout_FindContaining(t *testing.T) {
	l := dualLayout(t)

	tests := []struct {
		name          string
		ax, ay        int
		expectFound   bool
		expectedIndex int
	}{
		{"Primary center", 960, 540, true, 0},
		{"Boundary belongs to the right display", 1920, 0, true, 1},
		{"Secondary below primary height", 3000, 1200, true, 1},
		{"Gap under primary", 100, 1200, false, 0},
		{"Left of everything", -5, 10, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, found := l.FindContaining(tt.ax, tt.ay)
			if found != tt.expectFound {
				t.Fatalf("found = %v, want %v", found, tt.expectFound)
			}
			if found && d.Index != tt.expectedIndex {
				t.Errorf("expected display %d, got %d", tt.expectedIndex, d.Index)
			}
		})
	}
}

func TestLayout_FindContaining_OverlapFirstMatchWins(t *testing.T) {
	l, err := FromEnumeration([]domain.Display{
		{Index: 0, X: 0, Y: 0, Width: 1920, Height: 1080},
		{Index: 1, X: 1000, Y: 0, Width: 1920, Height: 1080}, // mirrored/overlapping region
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	d, found := l.FindContaining(1500, 500)
	if !found || d.Index != 0 {
		t.Errorf("expected display 0 to win the overlap, got %+v (found=%v)", d, found)
	}
}

func TestLayout_PrimaryAndBounds(t *testing.T) {
	l, err := FromEnumeration([]domain.Display{
		{Index: 0, X: -1280, Y: 200, Width: 1280, Height: 1024},
		{Index: 1, X: 0, Y: 0, Width: 1920, Height: 1080, Primary: true},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p := l.Primary(); p.Index != 1 {
		t.Errorf("expected primary display 1, got %d", p.Index)
	}

	left, top, right, bottom := l.VirtualBounds()
	if left != -1280 || top != 0 || right != 1920 || bottom != 1224 {
		t.Errorf("unexpected virtual bounds: %d,%d,%d,%d", left, top, right, bottom)
	}
}

func TestLayout_DisplaysReturnsCopy(t *testing.T) {
	l := dualLayout(t)
	ds := l.Displays()
	ds[0].Width = 1

	d, _ := l.Get(0)
	if d.Width != 1920 {
		t.Error("mutating Displays() result changed the snapshot")
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		setupMock   func(*mocks.MockDisplaySource)
		expectedErr error
		expectedLen int
	}{
		{
			name: "Success",
			setupMock: func(m *mocks.MockDisplaySource) {
				m.EXPECT().Displays(gomock.Any()).Return([]domain.Display{
					{Index: 0, Width: 1920, Height: 1080, Primary: true},
					{Index: 1, X: 1920, Width: 2560, Height: 1440},
				}, nil)
			},
			expectedLen: 2,
		},
		{
			name: "Source returns nothing",
			setupMock: func(m *mocks.MockDisplaySource) {
				m.EXPECT().Displays(gomock.Any()).Return([]domain.Display{}, nil)
			},
			expectedErr: domain.ErrNoDisplaysDetected,
		},
		{
			name: "Source fails",
			setupMock: func(m *mocks.MockDisplaySource) {
				m.EXPECT().Displays(gomock.Any()).Return(nil, fmt.Errorf("cannot open display"))
			},
			expectedErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			src := mocks.NewMockDisplaySource(ctrl)
			tt.setupMock(src)

			l, err := Load(context.Background(), src, zap.NewNop())
			if tt.expectedLen == 0 {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.expectedErr != nil && !errors.Is(err, tt.expectedErr) {
					t.Errorf("expected %v, got %v", tt.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if l.Len() != tt.expectedLen {
				t.Errorf("expected %d displays, got %d", tt.expectedLen, l.Len())
			}
		})
	}
}
