package viz

import (
	"math"

	"github.com/san-kum/orbitplot/internal/dynamo"
)

// Layout is the pixel size of the canvas and the physical ranges mapped onto it.
type Layout struct {
	Width, Height uint32
	XRange        [2]float64 // [min, max]
	YRange        [2]float64 // [min, max]
}

// Size maps the larger side of e onto target pixels and scales the other
// side proportionally, rounding up. An extent of zero on both axes gives an
// undefined scale; check e.Degenerate first.
func Size(e dynamo.Extent, target uint32) Layout {
	dx, dy := e.Dx(), e.Dy()
	scale := max(dx, dy)

	return Layout{
		Width:  uint32(math.Ceil(float64(target) * (dx / scale))),
		Height: uint32(math.Ceil(float64(target) * (dy / scale))),
		XRange: [2]float64{e.MinX, e.MaxX},
		YRange: [2]float64{e.MinY, e.MaxY},
	}
}

// ToPixel maps a physical point onto the canvas with y pointing up.
func (l Layout) ToPixel(x, y float64) (float64, float64) {
	px := (x - l.XRange[0]) / (l.XRange[1] - l.XRange[0]) * float64(l.Width)
	py := (l.YRange[1] - y) / (l.YRange[1] - l.YRange[0]) * float64(l.Height)
	return px, py
}
