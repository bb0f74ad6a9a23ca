//go:build !linux && !windows
// +build !linux,!windows

package monitor

import (
	"github.com/genricoloni/clickloop/internal/domain"
	"go.uber.org/zap"
)

// NewSource returns the display source for this platform.
// Only the screenshot backend is available here.
func NewSource(logger *zap.Logger) domain.DisplaySource {
	return NewScreenshotSource(logger)
}
