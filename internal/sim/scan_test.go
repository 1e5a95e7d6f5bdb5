package sim_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/orbitplot/internal/dynamo"
	"github.com/san-kum/orbitplot/internal/integrators"
	"github.com/san-kum/orbitplot/internal/physics"
	"github.com/san-kum/orbitplot/internal/sim"
)

// scripted replays a fixed list of positions as steps 1..n.
type scripted struct {
	points [][2]float64
	i      int
}

func (s *scripted) Next() dynamo.State {
	p := s.points[s.i]
	s.i++
	return dynamo.State{X: p[0], Y: p[1], Step: uint64(s.i)}
}

func newEuler() *integrators.Euler {
	c := dynamo.Constants{G: 1, M: 1, Dt: 0.01}
	return integrators.NewEuler(c, physics.NewCentralForce(c, false), dynamo.State{X: 1, VY: 1.1})
}

var _ = Describe("Scan", func() {
	It("includes the origin even when the trajectory never visits it", func() {
		s := &scripted{points: [][2]float64{{5, 6}, {7, 8}}}

		ext := sim.Scan(s, 2)

		Expect(ext).To(Equal(dynamo.Extent{MinX: 0, MaxX: 7, MinY: 0, MaxY: 8}))
	})

	It("stops after the limit step inclusive", func() {
		s := &scripted{points: [][2]float64{{1, 1}, {-2, 3}, {100, 100}}}

		ext := sim.Scan(s, 2)

		Expect(s.i).To(Equal(2))
		Expect(ext.MinX).To(Equal(-2.0))
		Expect(ext.MaxY).To(Equal(3.0))
		Expect(ext.MaxX).To(Equal(1.0))
	})

	It("keeps min below max on both axes", func() {
		ext := sim.Scan(newEuler(), 2000)

		Expect(ext.MinX).To(BeNumerically("<=", ext.MaxX))
		Expect(ext.MinY).To(BeNumerically("<=", ext.MaxY))
		Expect(ext.MinX).To(BeNumerically("<=", 0))
		Expect(ext.MaxX).To(BeNumerically(">=", 0))
		Expect(ext.MinY).To(BeNumerically("<=", 0))
		Expect(ext.MaxY).To(BeNumerically(">=", 0))
	})

	It("gives identical extents for two independent passes", func() {
		Expect(sim.Scan(newEuler(), 3000)).To(Equal(sim.Scan(newEuler(), 3000)))
	})

	It("notifies observers of every scanned state", func() {
		var steps []uint64
		obs := dynamo.ObserverFunc(func(s dynamo.State) { steps = append(steps, s.Step) })

		sim.Scan(newEuler(), 5, obs)

		Expect(steps).To(Equal([]uint64{1, 2, 3, 4, 5}))
	})
})
