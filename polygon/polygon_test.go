package polygon

import (
	"testing"

	routine "github.com/motaterry/routine-data-visualization"
	"github.com/motaterry/routine-data-visualization/spline"
	"github.com/motaterry/routine-data-visualization/timemap"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pg := NullPolygon().Knot(routine.P(0, 0)).Knot(routine.P(1, 3)).Knot(routine.P(3, 0)).Cycle()
	L().Infof("pg = %s", AsString(pg))
	if pg.N() != 3 {
		t.Fail()
	}
}

func TestBox(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	box := Box(routine.P(0, 5), routine.P(4, 1))
	L().Infof("box = %s", AsString(box))
	if box.N() != 4 {
		t.Fail()
	}
	a, err := box.Area()
	if err != nil {
		t.Fatalf("Area failed: %v", err)
	}
	if !routine.Is0(a - 16) {
		t.Errorf("Expected box area 16, got %g", a)
	}
}

func TestAreaNeedsCycle(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	open := NullPolygon().Knot(routine.P(0, 0)).Knot(routine.P(1, 0))
	if _, err := open.Area(); err == nil {
		t.Errorf("Expected area of open polygon to fail")
	}
}

func TestClipBoxes(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := Box(routine.P(0, 4), routine.P(4, 0))
	b := Box(routine.P(2, 6), routine.P(6, 2))
	out, err := a.Clipped(b, Intersect)
	if err != nil {
		t.Fatalf("Clipped failed: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("Expected one intersection contour, got %d", len(out))
	}
	area, err := out[0].Area()
	if err != nil {
		t.Fatalf("Area failed: %v", err)
	}
	if !routine.Is0(area - 4) {
		t.Errorf("Expected intersection area 4, got %g", area)
	}
	if none, _ := a.Clipped(Box(routine.P(10, 12), routine.P(12, 10)), Intersect); len(none) != 0 {
		t.Errorf("Expected disjoint boxes to clip away completely")
	}
}

func TestTransformed(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	box := Box(routine.P(0, 2), routine.P(2, 0))
	moved := box.Transformed(routine.Translation(routine.P(10, 10)))
	if !moved.Pt(0).Equal(routine.P(10, 12)) {
		t.Errorf("Expected translated corner (10,12), got %v", moved.Pt(0))
	}
	nw, se := moved.BoundingBox()
	if !nw.Equal(routine.P(10, 10)) || !se.Equal(routine.P(12, 12)) {
		t.Errorf("unexpected bounding box %v / %v", nw, se)
	}
}

func TestFromCurve(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	anchors := []routine.Pair{routine.P(0, 10), routine.P(50, 40), routine.P(100, 10)}
	tab := timemap.Build(spline.FitCurve(anchors, 0.5), spline.DefaultTolerance)
	pg := FromCurve(tab, 0)
	if !pg.IsCycle() {
		t.Fatalf("Expected curve outline to be closed")
	}
	if pg.N() != tab.N()+2 {
		t.Errorf("Expected %d knots, got %d", tab.N()+2, pg.N())
	}
	area, err := pg.Area()
	if err != nil {
		t.Fatalf("Area failed: %v", err)
	}
	// The arch spans 100 x up to ~40 over the baseline; its area lies
	// between the triangle and the enclosing box.
	if area < 1000 || area > 4000 {
		t.Errorf("implausible area under curve: %g", area)
	}
	if empty := FromCurve(timemap.Build(nil, spline.DefaultTolerance), 0); empty.N() != 0 {
		t.Errorf("Expected empty outline for empty table")
	}
}
