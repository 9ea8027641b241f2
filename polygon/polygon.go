// Package polygon implements closed polygons over routine pairs, with
// boolean clipping backed by polyclip-go. Polygons arise in this
// repository as flattened routine curves closed against a baseline,
// e.g. the filled area under a daily routine path, clipped to a
// viewport box.
package polygon

import (
	"errors"
	"fmt"
	"math"

	routine "github.com/motaterry/routine-data-visualization"
	"github.com/motaterry/routine-data-visualization/timemap"
	"github.com/npillmayer/schuko/tracing"
)

// L traces to trace with key 'polygon'
func L() tracing.Trace {
	return tracing.Select("polygon")
}

// ErrOpenPolygon indicates an operation which needs a closed polygon.
var ErrOpenPolygon = errors.New("polygon is not closed")

// Polygon is a sequence of knots, optionally closed into a cycle.
// Build one starting from NullPolygon().
type Polygon struct {
	knots []routine.Pair
	cycle bool
}

// NullPolygon creates an empty polygon, to be extended by subsequent
// builder calls.
func NullPolygon() *Polygon {
	return &Polygon{}
}

// Knot appends a corner point. Part of builder functionality.
func (pg *Polygon) Knot(pr routine.Pair) *Polygon {
	pg.knots = append(pg.knots, pr)
	return pg
}

// Cycle closes the polygon. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	pg.cycle = true
	return pg
}

// Box creates a closed axis-aligned rectangle from a north-west and a
// south-east corner.
func Box(nw, se routine.Pair) *Polygon {
	return NullPolygon().
		Knot(nw).
		Knot(routine.P(se.X(), nw.Y())).
		Knot(se).
		Knot(routine.P(nw.X(), se.Y())).
		Cycle()
}

// FromCurve closes the sampled positions of a lookup table against a
// horizontal baseline, forming the area under the curve. An empty
// table yields an empty open polygon.
func FromCurve(tab *timemap.Table, baseY float64) *Polygon {
	pg := NullPolygon()
	if tab.N() == 0 {
		return pg
	}
	for _, pt := range tab.Pts {
		pg.Knot(pt)
	}
	last := tab.Pts[len(tab.Pts)-1]
	pg.Knot(routine.P(last.X(), baseY))
	pg.Knot(routine.P(tab.Pts[0].X(), baseY))
	return pg.Cycle()
}

// IsCycle is a predicate: is this polygon closed?
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// N returns the knot count.
func (pg *Polygon) N() int {
	return len(pg.knots)
}

// Pt returns the knot at position (i mod N).
func (pg *Polygon) Pt(i int) routine.Pair {
	if i < 0 || i >= pg.N() {
		i = ((i % pg.N()) + pg.N()) % pg.N()
	}
	return pg.knots[i]
}

// Transformed returns a new polygon with every knot subjected to an
// affine transform. Used for mapping outlines into viewport
// coordinates.
func (pg *Polygon) Transformed(m routine.AT) *Polygon {
	out := &Polygon{
		knots: make([]routine.Pair, pg.N()),
		cycle: pg.cycle,
	}
	for i, pr := range pg.knots {
		out.knots[i] = m.Transform(pr)
	}
	return out
}

// Area returns the unsigned shoelace area of a closed polygon.
func (pg *Polygon) Area() (float64, error) {
	if !pg.cycle {
		return 0, ErrOpenPolygon
	}
	var a float64
	for i := 0; i < pg.N(); i++ {
		a += routine.Cross(pg.Pt(i), pg.Pt(i+1))
	}
	return math.Abs(a / 2), nil
}

// BoundingBox returns the north-west and south-east corner of the
// polygon's bounding box. An empty polygon reports origin twice.
func (pg *Polygon) BoundingBox() (routine.Pair, routine.Pair) {
	if pg.N() == 0 {
		return routine.Origin, routine.Origin
	}
	minX, minY := pg.knots[0].F()
	maxX, maxY := minX, minY
	for _, pr := range pg.knots[1:] {
		minX = math.Min(minX, pr.X())
		maxX = math.Max(maxX, pr.X())
		minY = math.Min(minY, pr.Y())
		maxY = math.Max(maxY, pr.Y())
	}
	return routine.P(minX, minY), routine.P(maxX, maxY)
}

// AsString returns a polygon as a (debugging) string.
func AsString(pg *Polygon) string {
	var s string
	for i, pr := range pg.knots {
		if i > 0 {
			s += " -- "
		}
		s += fmt.Sprintf("%s", pr)
	}
	if pg.cycle {
		s += " -- cycle"
	}
	return s
}
