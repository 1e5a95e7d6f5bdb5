// Package viz turns a trajectory into pixels.
//
//   - [Size]: aspect-preserving canvas layout from a physical [dynamo.Extent]
//   - [RenderTrail]: circular trail buffer flushed onto a [Surface] on wrap
//   - [RadiusSeries]: orbital radius samples for the terminal preview
//   - [Summary]: styled run report for the terminal
package viz
