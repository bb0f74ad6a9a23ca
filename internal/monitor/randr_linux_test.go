//go:build linux

package monitor

import (
	"context"
	"fmt"
	"testing"

	"github.com/genricoloni/clickloop/internal/domain"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// noopCrtcClient returns canned CRTCs and records Close
type noopCrtcClient struct {
	crtcs  []crtc
	err    error
	closed bool
}

func (c *noopCrtcClient) ActiveCrtcs() ([]crtc, error) {
	return c.crtcs, c.err
}

func (c *noopCrtcClient) Close() {
	c.closed = true
}

func newTestRandr(client *noopCrtcClient, dialErr error) *RandrSource {
	return &RandrSource{
		logger: zap.NewNop(),
		dial: func() (crtcClient, error) {
			if dialErr != nil {
				return nil, dialErr
			}
			return client, nil
		},
	}
}

func TestRandrSource_Displays(t *testing.T) {
	client := &noopCrtcClient{crtcs: []crtc{
		{X: 0, Y: 0, Width: 1920, Height: 1080, Outputs: []string{"eDP-1"}},
		{X: 1920, Y: 0, Width: 2560, Height: 1440, Outputs: []string{"DP-2"}, Primary: true},
	}}

	displays, err := newTestRandr(client, nil).Displays(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !client.closed {
		t.Error("connection was not closed")
	}

	if len(displays) != 2 {
		t.Fatalf("expected 2 displays, got %d", len(displays))
	}
	if displays[1].Name != "DP-2" || !displays[1].Primary || displays[1].X != 1920 {
		t.Errorf("unexpected second display: %+v", displays[1])
	}
	if displays[0].Primary {
		t.Error("only the RandR primary output should be primary")
	}
}

func TestRandrSource_Errors(t *testing.T) {
	tests := []struct {
		name        string
		client      *noopCrtcClient
		dialErr     error
		expectedErr error
	}{
		{
			name:    "No X server",
			dialErr: fmt.Errorf("failed to connect to X server"),
		},
		{
			name:   "Query fails",
			client: &noopCrtcClient{err: fmt.Errorf("BadWindow")},
		},
		{
			name:        "All CRTCs disabled",
			client:      &noopCrtcClient{},
			expectedErr: domain.ErrNoDisplaysDetected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestRandr(tt.client, tt.dialErr).Displays(context.Background())
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if tt.expectedErr != nil && !errors.Is(err, tt.expectedErr) {
				t.Errorf("expected %v, got %v", tt.expectedErr, err)
			}
			if tt.client != nil && !tt.client.closed {
				t.Error("connection was not closed")
			}
		})
	}
}

func TestRandrSource_UnnamedCrtc(t *testing.T) {
	client := &noopCrtcClient{crtcs: []crtc{{Width: 800, Height: 600}}}

	displays, err := newTestRandr(client, nil).Displays(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if displays[0].Name != "crtc-0" {
		t.Errorf("expected fallback name, got %q", displays[0].Name)
	}
	if !displays[0].Primary {
		t.Error("single display should be primary")
	}
}
