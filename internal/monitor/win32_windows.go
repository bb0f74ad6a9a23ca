//go:build windows

package monitor

import (
	"context"
	"fmt"
	"sync"
	"syscall"
	"unsafe"

	"github.com/genricoloni/clickloop/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sys/windows"
)

var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	procEnumDisplayMonitors = user32.NewProc("EnumDisplayMonitors")
	procGetMonitorInfo      = user32.NewProc("GetMonitorInfoW")
)

const monitorInfoPrimary = 0x00000001

type rect struct {
	Left, Top, Right, Bottom int32
}

type monitorInfoEx struct {
	CbSize    uint32
	RcMonitor rect
	RcWork    rect
	DwFlags   uint32
	SzDevice  [32]uint16
}

// Win32Source enumerates displays with EnumDisplayMonitors / GetMonitorInfoW
type Win32Source struct {
	logger *zap.Logger
}

// NewWin32Source creates the native Windows display source
func NewWin32Source(logger *zap.Logger) *Win32Source {
	return &Win32Source{logger: logger}
}

var (
	enumMu       sync.Mutex
	enumResults  []domain.Display
	enumCallback = syscall.NewCallback(enumMonitorProc)
)

func enumMonitorProc(hMonitor, hdc, lprect, lparam uintptr) uintptr {
	var info monitorInfoEx
	info.CbSize = uint32(unsafe.Sizeof(info))
	ret, _, _ := procGetMonitorInfo.Call(hMonitor, uintptr(unsafe.Pointer(&info)))
	if ret == 0 {
		// Skip this monitor, keep enumerating
		return 1
	}

	enumResults = append(enumResults, domain.Display{
		Index:   len(enumResults),
		X:       int(info.RcMonitor.Left),
		Y:       int(info.RcMonitor.Top),
		Width:   int(info.RcMonitor.Right - info.RcMonitor.Left),
		Height:  int(info.RcMonitor.Bottom - info.RcMonitor.Top),
		Primary: info.DwFlags&monitorInfoPrimary != 0,
		Name:    windows.UTF16ToString(info.SzDevice[:]),
	})
	return 1
}

// Displays implements domain.DisplaySource
func (s *Win32Source) Displays(ctx context.Context) ([]domain.Display, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	enumMu.Lock()
	defer enumMu.Unlock()

	enumResults = nil
	ret, _, callErr := procEnumDisplayMonitors.Call(0, 0, enumCallback, 0)
	if ret == 0 {
		return nil, fmt.Errorf("EnumDisplayMonitors failed: %v", callErr)
	}
	if len(enumResults) == 0 {
		return nil, domain.ErrNoDisplaysDetected
	}

	displays := append([]domain.Display(nil), enumResults...)
	s.logger.Debug("Displays enumerated via Win32", zap.Int("count", len(displays)))
	return displays, nil
}
