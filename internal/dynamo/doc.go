// Package dynamo provides the core value types shared by the integrator,
// the trajectory scanner and the trail renderer.
//
//   - [State]: position, velocity and step index of the orbiting body
//   - [Constants]: gravitational parameter, mass and time step
//   - [Extent]: running bounding box of scanned positions
//   - [Stepper]: pull-based source of successive states
//   - [Observer]: receives every state a pass produces
//
// # Example
//
//	c := dynamo.Constants{G: 1, M: 1, Dt: 0.01}
//	e := integrators.NewEuler(c, physics.NewCentralForce(c, false), dynamo.State{X: 1, VY: 1})
//	s := e.Next() // s.Step == 1
//
// # Thread Safety
//
// A Stepper owns its state and is NOT thread-safe. Two passes over the same
// trajectory use two independently constructed steppers.
package dynamo
