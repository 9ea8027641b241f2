package timemap

import (
	"math"

	routine "github.com/motaterry/routine-data-visualization"
	"github.com/motaterry/routine-data-visualization/spline"
	"gonum.org/v1/gonum/floats"
)

// defaultCoarseSteps is the number of uniform samples seeding the
// Newton refinement.
const defaultCoarseSteps = 16

// newtonIterations is fixed; Project never iterates unboundedly.
const newtonIterations = 2

// Projection is the nearest-point result on a single segment.
type Projection struct {
	T      float64      // local parameter in [0,1]
	Pt     routine.Pair // position at T
	DistSq float64      // squared distance to the query point
}

// Project finds the point on seg nearest to pt: a coarse scan at
// uniform parameters picks the starting guess, then two Newton steps
// minimize f(t) = |seg(t)-pt|². The result parameter is always within
// [0,1] and deterministic for identical inputs. A numerically
// degenerate second derivative stops refinement early instead of
// dividing by a near-zero value.
func Project(seg spline.Segment, pt routine.Pair, coarseSteps int) Projection {
	if coarseSteps < 2 {
		coarseSteps = defaultCoarseSteps
	}
	params := floats.Span(make([]float64, coarseSteps), 0, 1)
	best := Projection{T: 0, Pt: seg.At(0), DistSq: math.Inf(1)}
	for _, t := range params {
		q := seg.At(t)
		if d := routine.DistSq(pt, q); d < best.DistSq {
			best = Projection{T: t, Pt: q, DistSq: d}
		}
	}
	t := best.T
	for i := 0; i < newtonIterations; i++ {
		q := seg.At(t)
		diff := q - pt
		v := seg.Velocity(t)
		a := seg.Accel(t)
		f1 := 2 * routine.Dot(v, diff)
		f2 := 2 * (routine.Dot(a, diff) + routine.Dot(v, v))
		if math.Abs(f2) < 1e-6 {
			break
		}
		t = routine.Clamp(t-f1/f2, 0, 1)
	}
	if q := seg.At(t); routine.DistSq(pt, q) < best.DistSq {
		best = Projection{T: t, Pt: q, DistSq: routine.DistSq(pt, q)}
	}
	return best
}
