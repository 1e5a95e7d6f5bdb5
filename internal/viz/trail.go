package viz

import (
	"fmt"
	"image/color"

	"github.com/san-kum/orbitplot/internal/dynamo"
)

// Surface is a drawing target addressed in physical coordinates.
type Surface interface {
	FillCircle(x, y, r float64, c color.Color) error
	Save(path string) error
}

const (
	AttractorRadius = 8
	TrailRadius     = 1
)

var (
	AttractorColor = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	TrailColor     = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

type point struct{ x, y float64 }

// RenderStats counts what RenderTrail drew.
type RenderStats struct {
	Flushes uint64
	Markers uint64
	Last    dynamo.State
}

// RenderTrail draws the attractor at the origin, then records each state at
// index step%bufLen of a zeroed buffer. Whenever that index is 0 the whole
// buffer is drawn, including slots not yet refreshed. The first state past
// limit ends the loop without being recorded. States past limit are never
// drawn, so a limit below bufLen leaves the trail empty.
func RenderTrail(stepper dynamo.Stepper, limit uint64, bufLen int, surface Surface, observers ...dynamo.Observer) (RenderStats, error) {
	var stats RenderStats

	if bufLen <= 0 {
		return stats, fmt.Errorf("%w: got %d", dynamo.ErrInvalidBuffer, bufLen)
	}

	if err := surface.FillCircle(0, 0, AttractorRadius, AttractorColor); err != nil {
		return stats, fmt.Errorf("draw attractor: %w", err)
	}

	buf := make([]point, bufLen)
	n := uint64(bufLen)

	for {
		s := stepper.Next()
		if s.Step > limit {
			return stats, nil
		}

		for _, obs := range observers {
			obs.OnState(s)
		}
		stats.Last = s

		idx := s.Step % n
		buf[idx] = point{s.X, s.Y}
		if idx != 0 {
			continue
		}

		for _, p := range buf {
			if err := surface.FillCircle(p.x, p.y, TrailRadius, TrailColor); err != nil {
				return stats, &dynamo.StepError{Step: s.Step, Wrapped: err}
			}
			stats.Markers++
		}
		stats.Flushes++
	}
}
