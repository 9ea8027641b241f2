package polygon

import (
	polyclip "github.com/akavel/polyclip-go"
	routine "github.com/motaterry/routine-data-visualization"
)

// Op selects the boolean operation for Clipped.
type Op int

const (
	Intersect Op = iota
	Union
	Difference
	Xor
)

func (op Op) polyclipOp() polyclip.Op {
	switch op {
	case Union:
		return polyclip.UNION
	case Difference:
		return polyclip.DIFFERENCE
	case Xor:
		return polyclip.XOR
	}
	return polyclip.INTERSECTION
}

func (pg *Polygon) contour() polyclip.Contour {
	c := make(polyclip.Contour, pg.N())
	for i, pr := range pg.knots {
		c[i] = polyclip.Point{X: pr.X(), Y: pr.Y()}
	}
	return c
}

func fromContour(c polyclip.Contour) *Polygon {
	pg := &Polygon{
		knots: make([]routine.Pair, len(c)),
		cycle: true,
	}
	for i, pt := range c {
		pg.knots[i] = routine.P(pt.X, pt.Y)
	}
	return pg
}

// Clipped combines two closed polygons with a boolean operation. The
// result may consist of several disjoint polygons; clipping a shape
// completely away yields an empty slice.
func (pg *Polygon) Clipped(other *Polygon, op Op) ([]*Polygon, error) {
	if !pg.cycle || !other.cycle {
		return nil, ErrOpenPolygon
	}
	subject := polyclip.Polygon{pg.contour()}
	clip := polyclip.Polygon{other.contour()}
	result := subject.Construct(op.polyclipOp(), clip)
	L().Debugf("clip op %d: %d contour(s)", op, len(result))
	out := make([]*Polygon, 0, len(result))
	for _, c := range result {
		if len(c) > 0 {
			out = append(out, fromContour(c))
		}
	}
	return out, nil
}
