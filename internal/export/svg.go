package export

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/san-kum/orbitplot/internal/dynamo"
	"github.com/san-kum/orbitplot/internal/viz"
)

// SVGSurface collects circles as SVG elements and writes them on Save.
type SVGSurface struct {
	layout viz.Layout
	sb     strings.Builder
	count  int
}

func NewSVGSurface(layout viz.Layout) (*SVGSurface, error) {
	if layout.Width == 0 || layout.Height == 0 {
		return nil, fmt.Errorf("%w: canvas %dx%d", dynamo.ErrSurface, layout.Width, layout.Height)
	}
	return &SVGSurface{layout: layout}, nil
}

func (s *SVGSurface) FillCircle(x, y, r float64, c color.Color) error {
	px, py := s.layout.ToPixel(x, y)
	fmt.Fprintf(&s.sb, `<circle cx="%.2f" cy="%.2f" r="%.1f" fill="%s"/>
`, px, py, r, hexColor(c))
	s.count++
	return nil
}

// Circles returns the number of circles drawn so far.
func (s *SVGSurface) Circles() int { return s.count }

func (s *SVGSurface) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
`, s.layout.Width, s.layout.Height, s.layout.Width, s.layout.Height)
	sb.WriteString(s.sb.String())
	sb.WriteString("</svg>\n")
	return sb.String()
}

func (s *SVGSurface) Save(path string) error {
	if err := os.WriteFile(path, []byte(s.String()), 0644); err != nil {
		return fmt.Errorf("%w: save %s: %v", dynamo.ErrSurface, path, err)
	}
	return nil
}

func hexColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
