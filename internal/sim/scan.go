package sim

import "github.com/san-kum/orbitplot/internal/dynamo"

// Scan pulls states from stepper until it has processed the state whose step
// equals limit, and returns the bounding box of the positions seen. The box
// starts at the origin, so it always contains (0, 0). Observers receive each
// scanned state in order.
func Scan(stepper dynamo.Stepper, limit uint64, observers ...dynamo.Observer) dynamo.Extent {
	var ext dynamo.Extent

	for {
		s := stepper.Next()
		ext.Include(s.X, s.Y)

		for _, obs := range observers {
			obs.OnState(s)
		}

		if s.Step >= limit {
			return ext
		}
	}
}
