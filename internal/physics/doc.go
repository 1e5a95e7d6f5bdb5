// Package physics provides the force law acting on the orbiting body.
//
// [CentralForce] implements [dynamo.Field] as an inverse-square attraction
// toward a fixed body at the origin. By default it runs with unit strength
// (a = -pos/r³) and ignores the configured G and M; [NewCentralForce] with
// scaleGM set uses a = -(G·M)·pos/r³ instead.
//
// # Energy
//
// [CentralForce.Energy] gives the specific orbital energy of a state, which
// stays constant along an exact Kepler orbit and drifts under Euler stepping:
//
//	f := physics.NewCentralForce(c, false)
//	e0 := f.Energy(s)
package physics
