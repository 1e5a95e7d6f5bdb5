package dynamo

import (
	"fmt"
	"math"
)

// State is one instant of the trajectory. Step 0 is the initial condition;
// every produced state carries the predecessor's step plus one.
type State struct {
	X, Y   float64
	VX, VY float64
	Step   uint64
}

func (s State) String() string {
	return fmt.Sprintf("step:%d (%g, %g)", s.Step, s.X, s.Y)
}

func (s State) IsValid() bool {
	for _, v := range [...]float64{s.X, s.Y, s.VX, s.VY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Radius is the distance from the attractor at the origin.
func (s State) Radius() float64 {
	return math.Hypot(s.X, s.Y)
}

// Constants are fixed at construction and never mutated.
type Constants struct {
	G  float64
	M  float64
	Dt float64
}

// Extent is an axis-aligned bounding box. Bounds only widen.
type Extent struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Include widens the box to cover (x, y). NaN coordinates leave it unchanged.
func (e *Extent) Include(x, y float64) {
	if x > e.MaxX {
		e.MaxX = x
	}
	if x < e.MinX {
		e.MinX = x
	}
	if y > e.MaxY {
		e.MaxY = y
	}
	if y < e.MinY {
		e.MinY = y
	}
}

func (e Extent) Dx() float64 { return e.MaxX - e.MinX }
func (e Extent) Dy() float64 { return e.MaxY - e.MinY }

// Degenerate reports whether the box has no size along either axis.
func (e Extent) Degenerate() bool {
	return e.Dx() == 0 && e.Dy() == 0
}

// Stepper yields successive states. The sequence has no end; callers stop it.
type Stepper interface {
	Next() State
}

type Observer interface {
	OnState(s State)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(s State)

func (f ObserverFunc) OnState(s State) { f(s) }

// Field gives the acceleration acting on a body at (x, y).
type Field interface {
	Accel(x, y float64) (ax, ay float64)
}
