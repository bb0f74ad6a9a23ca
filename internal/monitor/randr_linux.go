//go:build linux

package monitor

import (
	"context"
	"fmt"

	"github.com/genricoloni/clickloop/internal/domain"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/randr"
	"github.com/jezek/xgb/xproto"
	"go.uber.org/zap"
)

// crtc is the geometry of one active RandR CRTC
type crtc struct {
	X, Y          int
	Width, Height int
	Outputs       []string
	Primary       bool
}

// crtcClient abstracts the RandR queries so the conversion can be tested without an X server
type crtcClient interface {
	ActiveCrtcs() ([]crtc, error)
	Close()
}

// RandrSource enumerates displays through the X11 RandR extension.
// Each active CRTC becomes one display, which matches what the pointer can reach.
type RandrSource struct {
	logger *zap.Logger
	dial   func() (crtcClient, error)
}

// NewRandrSource creates a display source that talks to $DISPLAY
func NewRandrSource(logger *zap.Logger) *RandrSource {
	return &RandrSource{
		logger: logger,
		dial:   dialRandr,
	}
}

// Displays implements domain.DisplaySource
func (s *RandrSource) Displays(ctx context.Context) ([]domain.Display, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	client, err := s.dial()
	if err != nil {
		return nil, err
	}
	defer client.Close()

	crtcs, err := client.ActiveCrtcs()
	if err != nil {
		return nil, err
	}
	if len(crtcs) == 0 {
		return nil, domain.ErrNoDisplaysDetected
	}

	displays := make([]domain.Display, 0, len(crtcs))
	for i, c := range crtcs {
		name := fmt.Sprintf("crtc-%d", i)
		if len(c.Outputs) > 0 {
			name = c.Outputs[0]
		}
		displays = append(displays, domain.Display{
			Index:   i,
			X:       c.X,
			Y:       c.Y,
			Width:   c.Width,
			Height:  c.Height,
			Primary: c.Primary,
			Name:    name,
		})
	}
	markPrimary(displays)

	s.logger.Debug("Displays enumerated via RandR", zap.Int("count", len(displays)))
	return displays, nil
}

// xRandr is the live crtcClient
type xRandr struct {
	conn *xgb.Conn
	root xproto.Window
}

func dialRandr() (crtcClient, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X server: %w", err)
	}
	if err := randr.Init(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("RandR extension unavailable: %w", err)
	}
	root := xproto.Setup(conn).DefaultScreen(conn).Root
	return &xRandr{conn: conn, root: root}, nil
}

func (x *xRandr) ActiveCrtcs() ([]crtc, error) {
	res, err := randr.GetScreenResourcesCurrent(x.conn, x.root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	var primary randr.Output
	if reply, err := randr.GetOutputPrimary(x.conn, x.root).Reply(); err == nil {
		primary = reply.Output
	}

	var out []crtc
	for _, id := range res.Crtcs {
		info, err := randr.GetCrtcInfo(x.conn, id, res.ConfigTimestamp).Reply()
		if err != nil {
			return nil, fmt.Errorf("failed to get CRTC %d info: %w", id, err)
		}
		// Disabled CRTCs have no mode and no outputs
		if info.Mode == 0 || len(info.Outputs) == 0 {
			continue
		}

		c := crtc{
			X:      int(info.X),
			Y:      int(info.Y),
			Width:  int(info.Width),
			Height: int(info.Height),
		}
		for _, o := range info.Outputs {
			if o == primary && primary != 0 {
				c.Primary = true
			}
			if oi, err := randr.GetOutputInfo(x.conn, o, res.ConfigTimestamp).Reply(); err == nil {
				c.Outputs = append(c.Outputs, string(oi.Name))
			}
		}
		out = append(out, c)
	}
	return out, nil
}

func (x *xRandr) Close() {
	x.conn.Close()
}
