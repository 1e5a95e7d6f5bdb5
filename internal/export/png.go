package export

import (
	"fmt"
	"image/color"

	"github.com/gogpu/gg"

	"github.com/san-kum/orbitplot/internal/dynamo"
	"github.com/san-kum/orbitplot/internal/viz"
)

// PNGSurface draws onto a gg raster context. Positions are physical and are
// mapped through the layout; radii are in pixels.
type PNGSurface struct {
	dc     *gg.Context
	layout viz.Layout
}

// NewPNGSurface allocates a white canvas of the layout's size.
func NewPNGSurface(layout viz.Layout) (*PNGSurface, error) {
	if layout.Width == 0 || layout.Height == 0 {
		return nil, fmt.Errorf("%w: canvas %dx%d", dynamo.ErrSurface, layout.Width, layout.Height)
	}

	dc := gg.NewContext(int(layout.Width), int(layout.Height))
	dc.ClearWithColor(gg.White)
	return &PNGSurface{dc: dc, layout: layout}, nil
}

func (s *PNGSurface) FillCircle(x, y, r float64, c color.Color) error {
	px, py := s.layout.ToPixel(x, y)
	s.dc.SetColor(c)
	s.dc.DrawCircle(px, py, r)
	if err := s.dc.Fill(); err != nil {
		return fmt.Errorf("%w: fill circle at (%g, %g): %v", dynamo.ErrSurface, x, y, err)
	}
	return nil
}

func (s *PNGSurface) Save(path string) error {
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("%w: save %s: %v", dynamo.ErrSurface, path, err)
	}
	return nil
}

func (s *PNGSurface) Close() error {
	return s.dc.Close()
}
