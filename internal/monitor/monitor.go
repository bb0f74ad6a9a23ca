// Package monitor enumerates the attached displays for the layout snapshot.
package monitor

import (
	"context"
	"fmt"

	"github.com/genricoloni/clickloop/internal/domain"
	"go.uber.org/zap"
)

// FallbackSource asks the preferred backend first and switches to the fallback when
// that fails or reports a display without area (seen with some drivers on Windows and
// with disconnected-but-enabled outputs on X11).
type FallbackSource struct {
	logger    *zap.Logger
	preferred domain.DisplaySource
	fallback  domain.DisplaySource
}

// NewFallbackSource chains two display sources
func NewFallbackSource(logger *zap.Logger, preferred, fallback domain.DisplaySource) *FallbackSource {
	return &FallbackSource{
		logger:    logger,
		preferred: preferred,
		fallback:  fallback,
	}
}

// Displays implements domain.DisplaySource
func (s *FallbackSource) Displays(ctx context.Context) ([]domain.Display, error) {
	displays, err := s.preferred.Displays(ctx)
	if err == nil && len(displays) > 0 && allHaveArea(displays) {
		return displays, nil
	}

	if err != nil {
		s.logger.Warn("Display enumeration failed, using fallback", zap.Error(err))
	} else {
		s.logger.Warn("Display enumeration returned unusable geometry, using fallback",
			zap.Int("displays", len(displays)))
	}

	displays, err = s.fallback.Displays(ctx)
	if err != nil {
		return nil, fmt.Errorf("fallback enumeration failed: %w", err)
	}
	return displays, nil
}

func allHaveArea(displays []domain.Display) bool {
	for _, d := range displays {
		if d.Width <= 0 || d.Height <= 0 {
			return false
		}
	}
	return true
}

// markPrimary flags the display at the virtual-desktop origin when the backend
// cannot report a primary itself, or the first display if none sits there.
func markPrimary(displays []domain.Display) {
	for _, d := range displays {
		if d.Primary {
			return
		}
	}
	for i, d := range displays {
		if d.X <= 0 && d.Right() > 0 && d.Y <= 0 && d.Bottom() > 0 {
			displays[i].Primary = true
			return
		}
	}
	if len(displays) > 0 {
		displays[0].Primary = true
	}
}
