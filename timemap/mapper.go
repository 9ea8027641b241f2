package timemap

import (
	"sort"

	routine "github.com/motaterry/routine-data-visualization"
)

// DaySeconds is the domain of a time value: seconds in one day. Time
// arguments outside [0, DaySeconds] are clamped, never rejected.
const DaySeconds = 86400.0

// PointAtTime maps a time-of-day to the position that far along the
// curve, measured by arc length. Queries against an empty table return
// the fallback point.
func (tab *Table) PointAtTime(time float64) routine.Pair {
	if tab.N() == 0 {
		return tab.Fallback
	}
	if tab.Length <= 0 {
		return tab.Pts[0]
	}
	tt := routine.Clamp(time, 0, DaySeconds) / DaySeconds
	target := tt * tab.Length
	if target <= 0 {
		return tab.Pts[0]
	}
	if target >= tab.Length {
		return tab.Pts[len(tab.Pts)-1]
	}
	hi := sort.SearchFloat64s(tab.S, target)
	if hi <= 0 {
		return tab.Pts[0]
	}
	if hi >= tab.N() {
		return tab.Pts[len(tab.Pts)-1]
	}
	lo := hi - 1
	span := tab.S[hi] - tab.S[lo]
	frac := 0.0
	if !routine.Is0(span) {
		frac = (target - tab.S[lo]) / span
	}
	g := routine.Lerp(tab.T[lo], tab.T[hi], frac)
	return tab.evalGlobal(g)
}

// TimeAtPoint maps a query point to the time of the nearest curve
// position. A coarse scan over all table samples picks the owning
// segment first; a purely local solve could lock onto the wrong branch
// where the curve approaches itself. The winning segment is then
// refined by Newton projection, and the refined global parameter is
// converted to arc length against the T/S columns, keeping forward and
// inverse mapping consistent with each other.
func (tab *Table) TimeAtPoint(pt routine.Pair) float64 {
	if tab.N() == 0 || tab.Length <= 0 {
		return 0
	}
	best := 0
	bestD := routine.DistSq(pt, tab.Pts[0])
	for j := 1; j < len(tab.Pts); j++ {
		if d := routine.DistSq(pt, tab.Pts[j]); d < bestD {
			best, bestD = j, d
		}
	}
	seg := tab.Seg[best]
	prj := Project(tab.Segments[seg], pt, defaultCoarseSteps)
	g := (float64(seg) + prj.T) / float64(len(tab.Segments))
	s := tab.arcAt(g)
	tracer().Debugf("inverse query %v: segment %d, t=%.4g, s=%.4g", pt, seg, prj.T, s)
	return routine.Clamp(s/tab.Length, 0, 1) * DaySeconds
}

// arcAt interpolates the arc length for a global parameter against the
// T/S columns.
func (tab *Table) arcAt(g float64) float64 {
	hi := sort.SearchFloat64s(tab.T, g)
	if hi <= 0 {
		return 0
	}
	if hi >= tab.N() {
		return tab.Length
	}
	lo := hi - 1
	span := tab.T[hi] - tab.T[lo]
	if routine.Is0(span) {
		return tab.S[hi]
	}
	frac := (g - tab.T[lo]) / span
	return routine.Lerp(tab.S[lo], tab.S[hi], frac)
}
