package physics

import (
	"math"

	"github.com/san-kum/orbitplot/internal/dynamo"
)

// CentralForce is an inverse-square attraction toward the origin.
// r = 0 is not guarded and yields non-finite accelerations.
type CentralForce struct {
	GM float64 // Strength of the attractor
}

// NewCentralForce returns a unit-strength field unless scaleGM is set, in
// which case the strength is c.G*c.M.
func NewCentralForce(c dynamo.Constants, scaleGM bool) *CentralForce {
	if scaleGM {
		return &CentralForce{GM: c.G * c.M}
	}
	return &CentralForce{GM: 1.0}
}

func (f *CentralForce) Accel(x, y float64) (float64, float64) {
	r := math.Sqrt(x*x + y*y)
	r3 := r * r * r
	return -f.GM * x / r3, -f.GM * y / r3
}

// Energy returns the specific orbital energy v²/2 - GM/r.
func (f *CentralForce) Energy(s dynamo.State) float64 {
	v2 := s.VX*s.VX + s.VY*s.VY
	return 0.5*v2 - f.GM/s.Radius()
}
