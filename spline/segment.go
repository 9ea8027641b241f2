package spline

import (
	routine "github.com/motaterry/routine-data-visualization"
)

// Segment is a single cubic Bézier piece of a fitted curve. P0 and P3
// are on-curve endpoints, P1 and P2 are off-curve tangent handles.
// Segments are value types and never mutated after construction.
type Segment struct {
	P0, P1, P2, P3 routine.Pair
}

// At evaluates the segment at parameter t in [0,1], using the explicit
// Bernstein blend. The blend is reproducible bit-for-bit for identical
// inputs, which the time-mapping tables rely on.
func (seg Segment) At(t float64) routine.Pair {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return seg.P0.Scaled(a) + seg.P1.Scaled(b) + seg.P2.Scaled(c) + seg.P3.Scaled(d)
}

// Velocity is the first derivative of the segment at t.
func (seg Segment) Velocity(t float64) routine.Pair {
	mt := 1 - t
	a := 3 * mt * mt
	b := 6 * mt * t
	c := 3 * t * t
	return (seg.P1 - seg.P0).Scaled(a) +
		(seg.P2 - seg.P1).Scaled(b) +
		(seg.P3 - seg.P2).Scaled(c)
}

// Accel is the second derivative of the segment at t.
func (seg Segment) Accel(t float64) routine.Pair {
	mt := 1 - t
	return (seg.P2 - seg.P1.Scaled(2) + seg.P0).Scaled(6 * mt) +
		(seg.P3 - seg.P2.Scaled(2) + seg.P1).Scaled(6 * t)
}

// Chord is the straight-line distance between the segment's endpoints.
func (seg Segment) Chord() float64 {
	return routine.Dist(seg.P0, seg.P3)
}
