package viz

import (
	"math"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/orbitplot/internal/dynamo"
)

// RadiusSeries records the distance from the attractor of every observed
// state. Non-finite radii are skipped.
type RadiusSeries struct {
	values []float64
}

func NewRadiusSeries() *RadiusSeries {
	return &RadiusSeries{values: make([]float64, 0, 1024)}
}

func (r *RadiusSeries) OnState(s dynamo.State) {
	v := s.Radius()
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return
	}
	r.values = append(r.values, v)
}

func (r *RadiusSeries) Len() int { return len(r.values) }

// Sample returns at most width evenly spaced values. A width of 1 keeps only
// the most recent value.
func (r *RadiusSeries) Sample(width int) []float64 {
	if width <= 0 || len(r.values) <= width {
		return append([]float64(nil), r.values...)
	}
	if width == 1 {
		return []float64{r.values[len(r.values)-1]}
	}
	out := make([]float64, width)
	stride := float64(len(r.values)-1) / float64(width-1)
	for i := range out {
		out[i] = r.values[int(math.Round(float64(i)*stride))]
	}
	return out
}

// Plot renders the series as an ASCII chart. An empty series renders as "".
func (r *RadiusSeries) Plot(width, height int) string {
	data := r.Sample(width)
	if len(data) == 0 {
		return ""
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("orbital radius vs step"),
	)
}
