//go:build windows
// +build windows

package executor

import (
	"context"
	"fmt"
	"unsafe"

	"github.com/genricoloni/clickloop/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sys/windows"
)

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	procSetCursorPos     = user32.NewProc("SetCursorPos")
	procGetCursorPos     = user32.NewProc("GetCursorPos")
	procSendInput        = user32.NewProc("SendInput")
	procGetAsyncKeyState = user32.NewProc("GetAsyncKeyState")
)

const (
	inputMouse = 0

	mouseEventLeftDown  = 0x0002
	mouseEventLeftUp    = 0x0004
	mouseEventRightDown = 0x0008
	mouseEventRightUp   = 0x0010

	vkLButton = 0x01
	vkReturn  = 0x0D
	vkEscape  = 0x1B
	vkSpace   = 0x20
)

type point struct {
	X, Y int32
}

type mouseInput struct {
	Dx        int32
	Dy        int32
	MouseData uint32
	Flags     uint32
	Time      uint32
	ExtraInfo uintptr
}

type input struct {
	Type uint32
	Mi   mouseInput
}

// WindowsExecutor moves the pointer with SetCursorPos and clicks with SendInput
type WindowsExecutor struct {
	logger *zap.Logger
}

// NewExecutor creates the platform input backend (Windows implementation)
func NewExecutor(logger *zap.Logger) (*WindowsExecutor, error) {
	for _, p := range []*windows.LazyProc{procSetCursorPos, procGetCursorPos, procSendInput, procGetAsyncKeyState} {
		if err := p.Find(); err != nil {
			return nil, fmt.Errorf("user32 is missing %s: %w", p.Name, err)
		}
	}
	logger.Info("Windows input backend initialized")
	return &WindowsExecutor{logger: logger}, nil
}

// Position implements domain.Pointer
func (e *WindowsExecutor) Position(ctx context.Context) (int, int, error) {
	var pt point
	ret, _, err := procGetCursorPos.Call(uintptr(unsafe.Pointer(&pt)))
	if ret == 0 {
		return 0, 0, fmt.Errorf("GetCursorPos failed: %w", err)
	}
	return int(pt.X), int(pt.Y), nil
}

// MoveTo implements domain.InputSink
func (e *WindowsExecutor) MoveTo(ctx context.Context, x, y int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	ret, _, err := procSetCursorPos.Call(uintptr(int32(x)), uintptr(int32(y)))
	if ret == 0 {
		return fmt.Errorf("SetCursorPos(%d, %d) failed: %w", x, y, err)
	}
	return nil
}

// Press implements domain.InputSink
func (e *WindowsExecutor) Press(ctx context.Context, button domain.Button) error {
	down, up, err := buttonFlags(button)
	if err != nil {
		return err
	}

	inputs := [2]input{
		{Type: inputMouse, Mi: mouseInput{Flags: down}},
		{Type: inputMouse, Mi: mouseInput{Flags: up}},
	}
	sent, _, callErr := procSendInput.Call(
		uintptr(len(inputs)),
		uintptr(unsafe.Pointer(&inputs[0])),
		unsafe.Sizeof(inputs[0]),
	)
	if int(sent) != len(inputs) {
		return fmt.Errorf("SendInput injected %d of %d events: %w", sent, len(inputs), callErr)
	}
	return nil
}

// IsDown implements domain.KeyState
func (e *WindowsExecutor) IsDown(key domain.Key) (bool, error) {
	vk, err := virtualKey(key)
	if err != nil {
		return false, err
	}
	state, _, _ := procGetAsyncKeyState.Call(uintptr(vk))
	return state&0x8000 != 0, nil
}

// Close implements domain.Executor
func (e *WindowsExecutor) Close() error {
	return nil
}

func buttonFlags(button domain.Button) (down, up uint32, err error) {
	switch button {
	case domain.ButtonLeft:
		return mouseEventLeftDown, mouseEventLeftUp, nil
	case domain.ButtonRight:
		return mouseEventRightDown, mouseEventRightUp, nil
	default:
		return 0, 0, fmt.Errorf("unsupported button %q", button)
	}
}

func virtualKey(key domain.Key) (int, error) {
	switch key {
	case domain.KeySpace:
		return vkSpace, nil
	case domain.KeyEnter:
		return vkReturn, nil
	case domain.KeyEscape:
		return vkEscape, nil
	case domain.KeyMouseLeft:
		return vkLButton, nil
	default:
		return 0, fmt.Errorf("unsupported key %s", key)
	}
}
