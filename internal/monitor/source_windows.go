//go:build windows

package monitor

import (
	"github.com/genricoloni/clickloop/internal/domain"
	"go.uber.org/zap"
)

// NewSource returns the display source for this platform. Zero-sized monitors from
// GetMonitorInfoW switch enumeration over to the screenshot library.
func NewSource(logger *zap.Logger) domain.DisplaySource {
	return NewFallbackSource(logger, NewWin32Source(logger), NewScreenshotSource(logger))
}
