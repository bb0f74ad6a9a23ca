//go:build linux
// +build linux

package executor

import (
	"context"
	"fmt"
	"math"
	"os"

	"github.com/genricoloni/clickloop/internal/domain"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgb/xtest"
	"go.uber.org/zap"
)

// X keysyms watched by the picker
const (
	xkSpace  xproto.Keysym = 0x0020
	xkReturn xproto.Keysym = 0xff0d
	xkEscape xproto.Keysym = 0xff1b
)

var watchedKeysyms = map[domain.Key]xproto.Keysym{
	domain.KeySpace:  xkSpace,
	domain.KeyEnter:  xkReturn,
	domain.KeyEscape: xkEscape,
}

// X11Executor moves the pointer and injects clicks through XTEST.
// Under Wayland it works for XWayland clients only.
type X11Executor struct {
	logger   *zap.Logger
	conn     *xgb.Conn
	root     xproto.Window
	keycodes map[domain.Key][]xproto.Keycode
}

// NewExecutor creates the platform input backend (Linux implementation)
func NewExecutor(logger *zap.Logger) (*X11Executor, error) {
	logSession(logger)

	if os.Getenv("DISPLAY") == "" {
		return nil, fmt.Errorf("no X11 display available (DISPLAY is not set)")
	}

	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X server: %w", err)
	}
	if err := xtest.Init(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("XTEST extension unavailable: %w", err)
	}

	setup := xproto.Setup(conn)
	count := byte(setup.MaxKeycode - setup.MinKeycode + 1)
	mapping, err := xproto.GetKeyboardMapping(conn, setup.MinKeycode, count).Reply()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to read keyboard mapping: %w", err)
	}

	keycodes := make(map[domain.Key][]xproto.Keycode, len(watchedKeysyms))
	for key, sym := range watchedKeysyms {
		codes := keycodesFor(mapping.Keysyms, mapping.KeysymsPerKeycode, setup.MinKeycode, sym)
		if len(codes) == 0 {
			logger.Warn("Key is not mapped on this keyboard", zap.Stringer("key", key))
		}
		keycodes[key] = codes
	}

	logger.Info("X11 input backend initialized",
		zap.String("display", os.Getenv("DISPLAY")),
		zap.Int("keycodes", int(count)))

	return &X11Executor{
		logger:   logger,
		conn:     conn,
		root:     setup.DefaultScreen(conn).Root,
		keycodes: keycodes,
	}, nil
}

// logSession records which desktop session the backend is running under
func logSession(logger *zap.Logger) {
	session := os.Getenv("XDG_SESSION_TYPE")
	wayland := os.Getenv("WAYLAND_DISPLAY")

	logger.Debug("Detecting session",
		zap.String("desktop", os.Getenv("XDG_CURRENT_DESKTOP")),
		zap.String("session", session),
		zap.String("wayland", wayland))

	if wayland != "" || session == "wayland" {
		logger.Warn("Wayland session detected, clicks only reach XWayland windows")
	}
}

// Position implements domain.Pointer
func (e *X11Executor) Position(ctx context.Context) (int, int, error) {
	reply, err := xproto.QueryPointer(e.conn, e.root).Reply()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to query pointer: %w", err)
	}
	return int(reply.RootX), int(reply.RootY), nil
}

// MoveTo implements domain.InputSink
func (e *X11Executor) MoveTo(ctx context.Context, x, y int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !fitsInt16(x) || !fitsInt16(y) {
		return fmt.Errorf("position (%d, %d) outside the X11 coordinate range", x, y)
	}

	err := xproto.WarpPointerChecked(e.conn, xproto.WindowNone, e.root,
		0, 0, 0, 0, int16(x), int16(y)).Check()
	if err != nil {
		return fmt.Errorf("failed to warp pointer: %w", err)
	}
	return nil
}

// Press implements domain.InputSink
func (e *X11Executor) Press(ctx context.Context, button domain.Button) error {
	detail, err := buttonDetail(button)
	if err != nil {
		return err
	}

	for _, kind := range []byte{xproto.ButtonPress, xproto.ButtonRelease} {
		err := xtest.FakeInputChecked(e.conn, kind, detail, 0, e.root, 0, 0, 0).Check()
		if err != nil {
			return fmt.Errorf("failed to inject %s button event: %w", button, err)
		}
	}
	return nil
}

// IsDown implements domain.KeyState
func (e *X11Executor) IsDown(key domain.Key) (bool, error) {
	if key == domain.KeyMouseLeft {
		reply, err := xproto.QueryPointer(e.conn, e.root).Reply()
		if err != nil {
			return false, fmt.Errorf("failed to query pointer: %w", err)
		}
		return reply.Mask&xproto.KeyButMaskButton1 != 0, nil
	}

	codes, ok := e.keycodes[key]
	if !ok {
		return false, fmt.Errorf("unsupported key %s", key)
	}

	reply, err := xproto.QueryKeymap(e.conn).Reply()
	if err != nil {
		return false, fmt.Errorf("failed to query keymap: %w", err)
	}
	for _, code := range codes {
		if keyDown(reply.Keys, code) {
			return true, nil
		}
	}
	return false, nil
}

// Close implements domain.Executor
func (e *X11Executor) Close() error {
	e.conn.Close()
	return nil
}

// keycodesFor returns every keycode whose mapping contains sym
func keycodesFor(keysyms []xproto.Keysym, perKeycode byte, minKeycode xproto.Keycode, sym xproto.Keysym) []xproto.Keycode {
	if perKeycode == 0 {
		return nil
	}
	var codes []xproto.Keycode
	per := int(perKeycode)
	for i := 0; i+per <= len(keysyms); i += per {
		for _, s := range keysyms[i : i+per] {
			if s == sym {
				codes = append(codes, minKeycode+xproto.Keycode(i/per))
				break
			}
		}
	}
	return codes
}

// keyDown tests the keycode bit in a QueryKeymap vector
func keyDown(keys []byte, code xproto.Keycode) bool {
	idx := int(code) / 8
	if idx >= len(keys) {
		return false
	}
	return keys[idx]&(1<<(uint(code)%8)) != 0
}

// buttonDetail maps a button to its X core pointer button number
func buttonDetail(button domain.Button) (byte, error) {
	switch button {
	case domain.ButtonLeft:
		return 1, nil
	case domain.ButtonRight:
		return 3, nil
	default:
		return 0, fmt.Errorf("unsupported button %q", button)
	}
}

func fitsInt16(v int) bool {
	return v >= math.MinInt16 && v <= math.MaxInt16
}
