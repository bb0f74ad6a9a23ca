package monitor

import (
	"context"
	"fmt"
	"image"

	"github.com/genricoloni/clickloop/internal/domain"
	"github.com/kbinani/screenshot"
	"go.uber.org/zap"
)

// ScreenshotSource enumerates displays through kbinani/screenshot.
// It works on every platform the library supports but cannot tell which display is primary.
type ScreenshotSource struct {
	logger      *zap.Logger
	numDisplays func() int
	bounds      func(int) image.Rectangle
}

// NewScreenshotSource creates a display source backed by the screenshot library
func NewScreenshotSource(logger *zap.Logger) *ScreenshotSource {
	return &ScreenshotSource{
		logger:      logger,
		numDisplays: screenshot.NumActiveDisplays,
		bounds:      screenshot.GetDisplayBounds,
	}
}

// Displays implements domain.DisplaySource
func (s *ScreenshotSource) Displays(ctx context.Context) ([]domain.Display, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	n := s.numDisplays()
	if n <= 0 {
		return nil, domain.ErrNoDisplaysDetected
	}

	displays := make([]domain.Display, 0, n)
	for i := 0; i < n; i++ {
		b := s.bounds(i)
		displays = append(displays, domain.Display{
			Index:  i,
			X:      b.Min.X,
			Y:      b.Min.Y,
			Width:  b.Dx(),
			Height: b.Dy(),
			Name:   fmt.Sprintf("display-%d", i),
		})
	}
	markPrimary(displays)

	s.logger.Debug("Displays enumerated via screenshot", zap.Int("count", len(displays)))
	return displays, nil
}
