package timemap

import (
	routine "github.com/motaterry/routine-data-visualization"
	"github.com/motaterry/routine-data-visualization/spline"
	"gonum.org/v1/gonum/floats"
)

// Table is the arc-length lookup table for a fitted curve. The four
// columns are index-aligned: T holds the global curve parameter in
// [0,1], S the cumulative chord length, Seg the owning segment index
// and Pts the sampled position. T and S are non-decreasing by
// construction; T[0]=0, T[N-1]=1, S[0]=0.
//
// A Table is read-only after Build and safe for concurrent queries.
type Table struct {
	T   []float64
	S   []float64
	Seg []int
	Pts []routine.Pair

	Length   float64
	Segments []spline.Segment

	// Fallback is returned by queries against an empty table, e.g. the
	// single anchor of a one-point curve spec.
	Fallback routine.Pair
}

// Build assembles the lookup table for the given segments. Per segment
// the flattened local parameters tl map to the global parameter
// (i+tl)/segCount; the duplicate first sample of every segment after
// the first is skipped, since each segment starts where the previous
// one ends. Zero segments yield an empty table with Length 0.
func Build(segments []spline.Segment, tol spline.Tolerance) *Table {
	tab := &Table{Segments: segments}
	n := len(segments)
	if n == 0 {
		return tab
	}
	for i, seg := range segments {
		ts, pts := spline.Flatten(seg, tol)
		first := 0
		if i > 0 {
			first = 1
		}
		for j := first; j < len(ts); j++ {
			tab.T = append(tab.T, (float64(i)+ts[j])/float64(n))
			tab.Seg = append(tab.Seg, i)
			tab.Pts = append(tab.Pts, pts[j])
		}
	}
	steps := make([]float64, len(tab.Pts))
	for j := 1; j < len(tab.Pts); j++ {
		steps[j] = routine.Dist(tab.Pts[j-1], tab.Pts[j])
	}
	tab.S = floats.CumSum(make([]float64, len(steps)), steps)
	tab.Length = tab.S[len(tab.S)-1]
	tracer().Debugf("built table with %d samples, length %.4g", len(tab.T), tab.Length)
	return tab
}

// N is the number of samples in the table.
func (tab *Table) N() int {
	return len(tab.T)
}

// evalGlobal re-evaluates the exact cubic at the global parameter g,
// avoiding the flattening bias of the sampled polyline.
func (tab *Table) evalGlobal(g float64) routine.Pair {
	n := len(tab.Segments)
	scaled := routine.Clamp(g, 0, 1) * float64(n)
	i := int(scaled)
	if i >= n {
		i = n - 1
	}
	return tab.Segments[i].At(scaled - float64(i))
}
