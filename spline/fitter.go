package spline

import (
	"math"

	routine "github.com/motaterry/routine-data-visualization"
)

// Strategy selects how anchor points are turned into Bézier control
// points. The strategies share one contract but produce different
// handle placements; see the package documentation.
type Strategy int

const (
	// StrategyCatmullRom is the canonical fit: phantom boundary points
	// and uniform Catmull-Rom tangent handles.
	StrategyCatmullRom Strategy = iota
	// StrategyAdaptive shortens handles near sharp corners.
	StrategyAdaptive
	// StrategySymmetric mirrors the two handles of each interior anchor
	// around a shared tangent, giving C1 continuity at every anchor.
	StrategySymmetric
)

func (s Strategy) String() string {
	switch s {
	case StrategyCatmullRom:
		return "catmull-rom"
	case StrategyAdaptive:
		return "adaptive"
	case StrategySymmetric:
		return "symmetric"
	}
	return "unknown"
}

// Tension values are confined to this sub-range of [0,1] before use.
// Values outside of it produce self-intersecting loops or collapse the
// handles entirely.
const (
	minTension = 0.15
	maxTension = 0.85
)

func clampTension(tension float64) float64 {
	if math.IsNaN(tension) {
		return minTension
	}
	return routine.Clamp(tension, minTension, maxTension)
}

// FitCurve fits cubic segments through the anchors with the canonical
// strategy. Fewer than 2 anchors yield an empty segment list.
func FitCurve(anchors []routine.Pair, tension float64) []Segment {
	return Fit(anchors, tension, StrategyCatmullRom)
}

// Fit fits cubic segments through the anchors with the given strategy.
// The segment count is max(0, len(anchors)-1); larger tension means
// shorter tangent handles and a tighter curve. Fit is a pure function
// of its inputs and never fails: insufficient anchors yield an empty
// segment list.
func Fit(anchors []routine.Pair, tension float64, strategy Strategy) []Segment {
	if len(anchors) < 2 {
		return nil
	}
	tension = clampTension(tension)
	tracer().Debugf("fit %d anchors, tension %.3g, strategy %s",
		len(anchors), tension, strategy)
	switch strategy {
	case StrategyAdaptive:
		return fitAdaptive(anchors, tension)
	case StrategySymmetric:
		return fitSymmetric(anchors, tension)
	}
	return fitCatmullRom(anchors, tension)
}

// extend duplicates the first and last anchor, synthesizing phantom
// boundary points for the Catmull-Rom quadruples.
func extend(anchors []routine.Pair) []routine.Pair {
	ext := make([]routine.Pair, 0, len(anchors)+2)
	ext = append(ext, anchors[0])
	ext = append(ext, anchors...)
	ext = append(ext, anchors[len(anchors)-1])
	return ext
}

func fitCatmullRom(anchors []routine.Pair, tension float64) []Segment {
	k := (1 - tension) / 6
	ext := extend(anchors)
	segments := make([]Segment, 0, len(anchors)-1)
	for i := 0; i < len(anchors)-1; i++ {
		p0, p1, p2, p3 := ext[i], ext[i+1], ext[i+2], ext[i+3]
		segments = append(segments, Segment{
			P0: p1,
			P1: p1 + (p2 - p0).Scaled(k),
			P2: p2 - (p3 - p1).Scaled(k),
			P3: p2,
		})
	}
	return segments
}

// sharpness measures the corner at interior anchor i: 0 where the
// neighbor chords run colinear, 1 at a right-angle corner. Boundary
// anchors have no corner and report 0.
func sharpness(anchors []routine.Pair, i int) float64 {
	if i <= 0 || i >= len(anchors)-1 {
		return 0
	}
	u1 := routine.Unit(anchors[i] - anchors[i-1])
	u2 := routine.Unit(anchors[i+1] - anchors[i])
	if u1.IsOrigin() || u2.IsOrigin() {
		return 0
	}
	return 1 - math.Abs(routine.Dot(u1, u2))
}

func fitAdaptive(anchors []routine.Pair, tension float64) []Segment {
	k := (1 - tension) / 6
	ext := extend(anchors)
	segments := make([]Segment, 0, len(anchors)-1)
	for i := 0; i < len(anchors)-1; i++ {
		p0, p1, p2, p3 := ext[i], ext[i+1], ext[i+2], ext[i+3]
		// Each handle scales with the sharpness at its own anchor,
		// which differs at the two ends of a segment.
		s1 := 0.4 + 0.6*(1-sharpness(anchors, i))
		s2 := 0.4 + 0.6*(1-sharpness(anchors, i+1))
		segments = append(segments, Segment{
			P0: p1,
			P1: p1 + (p2 - p0).Scaled(k * s1),
			P2: p2 - (p3 - p1).Scaled(k * s2),
			P3: p2,
		})
	}
	return segments
}

// tangent is the unit tangent direction at anchor i, derived from the
// anchor's immediate neighbors. Boundary anchors have no tangent and
// report origin, which degenerates the corresponding handle to the
// anchor itself (a clamped end condition).
func tangent(anchors []routine.Pair, i int) routine.Pair {
	if i <= 0 || i >= len(anchors)-1 {
		return routine.Origin
	}
	return routine.Unit(anchors[i+1] - anchors[i-1])
}

func fitSymmetric(anchors []routine.Pair, tension float64) []Segment {
	softness := (1 - tension) / 3
	segments := make([]Segment, 0, len(anchors)-1)
	for i := 0; i < len(anchors)-1; i++ {
		a, b := anchors[i], anchors[i+1]
		chord := routine.Dist(a, b)
		// Outgoing and incoming handle lie on opposite sides of the
		// shared anchor tangents, each scaled by its own chord.
		segments = append(segments, Segment{
			P0: a,
			P1: a + tangent(anchors, i).Scaled(chord*softness),
			P2: b - tangent(anchors, i+1).Scaled(chord*softness),
			P3: b,
		})
	}
	return segments
}
