package metrics

import (
	"math"

	"github.com/san-kum/orbitplot/internal/dynamo"
)

// EnergyFunc gives the conserved energy of a state.
type EnergyFunc func(s dynamo.State) float64

// EnergyDrift tracks the relative change of energy between the first and the
// most recent observed state. Euler stepping does not conserve energy, so the
// drift is a measure of integration error.
type EnergyDrift struct {
	energy  EnergyFunc
	initial float64
	last    float64
	samples int
	invalid int
}

func NewEnergyDrift(energy EnergyFunc) *EnergyDrift {
	return &EnergyDrift{energy: energy}
}

func (e *EnergyDrift) OnState(s dynamo.State) {
	if !s.IsValid() {
		e.invalid++
		return
	}
	v := e.energy(s)
	if e.samples == 0 {
		e.initial = v
	}
	e.last = v
	e.samples++
}

// Value is |E_last - E_first| / |E_first|, or 0 before two samples.
func (e *EnergyDrift) Value() float64 {
	if e.samples < 2 || e.initial == 0 {
		return 0
	}
	return math.Abs(e.last-e.initial) / math.Abs(e.initial)
}

func (e *EnergyDrift) Initial() float64 { return e.initial }
func (e *EnergyDrift) Final() float64   { return e.last }

// Invalid counts observed states holding NaN or Inf.
func (e *EnergyDrift) Invalid() int { return e.invalid }
