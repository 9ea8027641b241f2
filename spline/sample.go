package spline

import (
	routine "github.com/motaterry/routine-data-visualization"
)

// maxDepth bounds the recursive subdivision. Together with the
// point-count cap it keeps worst-case sampling cost finite for any
// segment geometry.
const maxDepth = 12

// Tolerance bundles the sampling caps.
type Tolerance struct {
	MaxError  float64 // flatness threshold, in anchor coordinate units
	MaxPoints int     // hard cap on emitted samples per segment
}

// DefaultTolerance is suitable for interactive editing at screen
// resolution.
var DefaultTolerance = Tolerance{MaxError: 0.25, MaxPoints: 512}

// flatness is the perpendicular distance from pm to the chord p0-p1.
// A collapsed chord degrades to the plain distance pm-p0.
func flatness(p0, p1, pm routine.Pair) float64 {
	chord := p1 - p0
	n := routine.Norm(chord)
	if routine.Is0(n) {
		return routine.Dist(pm, p0)
	}
	cross := routine.Cross(chord, pm-p0)
	if cross < 0 {
		cross = -cross
	}
	return cross / n
}

// Flatten samples the segment into a polyline whose flatness error
// stays below tol.MaxError, by recursive midpoint subdivision. The
// returned parameter sequence increases strictly, starts at 0 with the
// segment's first control point and ends at 1 with its last. When the
// point cap is hit, further refinement is silently truncated.
func Flatten(seg Segment, tol Tolerance) ([]float64, []routine.Pair) {
	if tol.MaxPoints < 2 {
		tol.MaxPoints = 2
	}
	if tol.MaxError <= 0 {
		tol.MaxError = DefaultTolerance.MaxError
	}
	ts := make([]float64, 1, 32)
	pts := make([]routine.Pair, 1, 32)
	ts[0] = 0
	pts[0] = seg.P0
	var subdivide func(t0, t1 float64, p0, p1 routine.Pair, depth int)
	subdivide = func(t0, t1 float64, p0, p1 routine.Pair, depth int) {
		if len(ts) >= tol.MaxPoints-1 {
			return
		}
		tm := 0.5 * (t0 + t1)
		pm := seg.At(tm)
		if depth < maxDepth && flatness(p0, p1, pm) > tol.MaxError {
			subdivide(t0, tm, p0, pm, depth+1)
			subdivide(tm, t1, pm, p1, depth+1)
			return
		}
		ts = append(ts, t1)
		pts = append(pts, p1)
	}
	subdivide(0, 1, seg.P0, seg.P3, 0)
	if ts[len(ts)-1] < 1 {
		ts = append(ts, 1)
		pts = append(pts, seg.P3)
	}
	tracer().Debugf("flattened segment into %d samples", len(ts))
	return ts, pts
}
