//go:build linux

package monitor

import (
	"github.com/genricoloni/clickloop/internal/domain"
	"go.uber.org/zap"
)

// NewSource returns the display source for this platform: RandR, with the
// screenshot library (Xinerama) as fallback.
func NewSource(logger *zap.Logger) domain.DisplaySource {
	return NewFallbackSource(logger, NewRandrSource(logger), NewScreenshotSource(logger))
}
