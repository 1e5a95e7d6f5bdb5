package integrators

import "github.com/san-kum/orbitplot/internal/dynamo"

// Euler is an explicit Euler cursor over an unbounded trajectory. It cannot
// be rewound; a second traversal needs a second instance.
type Euler struct {
	c     dynamo.Constants
	field dynamo.Field
	prev  dynamo.State
}

// NewEuler starts a trajectory at init. The step counter of init is reset to
// zero so the first produced state is step 1.
func NewEuler(c dynamo.Constants, field dynamo.Field, init dynamo.State) *Euler {
	init.Step = 0
	return &Euler{c: c, field: field, prev: init}
}

func (e *Euler) Next() dynamo.State {
	e.prev = Advance(e.c, e.field, e.prev)
	return e.prev
}

// Advance produces the successor of prev. Position moves with the previous
// velocity; the acceleration is then evaluated at the new position.
func Advance(c dynamo.Constants, field dynamo.Field, prev dynamo.State) dynamo.State {
	dt := c.Dt

	x := prev.X + prev.VX*dt
	y := prev.Y + prev.VY*dt

	ax, ay := field.Accel(x, y)

	return dynamo.State{
		X:    x,
		Y:    y,
		VX:   prev.VX + ax*dt,
		VY:   prev.VY + ay*dt,
		Step: prev.Step + 1,
	}
}
