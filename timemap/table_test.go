package timemap

import (
	"testing"

	routine "github.com/motaterry/routine-data-visualization"
	"github.com/motaterry/routine-data-visualization/spline"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func fixtureAnchors() []routine.Pair {
	return []routine.Pair{
		routine.P(12, 220), routine.P(200, 60),
		routine.P(420, 260), routine.P(780, 140),
	}
}

func fixtureTable() *Table {
	segs := spline.FitCurve(fixtureAnchors(), 0.42)
	return Build(segs, spline.DefaultTolerance)
}

func TestBuildColumnsAligned(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tab := fixtureTable()
	n := tab.N()
	if len(tab.S) != n || len(tab.Seg) != n || len(tab.Pts) != n {
		t.Fatalf("columns not index-aligned: %d/%d/%d/%d", n, len(tab.S), len(tab.Seg), len(tab.Pts))
	}
	if tab.T[0] != 0 || tab.T[n-1] != 1 {
		t.Errorf("Expected T to span [0,1], got [%g,%g]", tab.T[0], tab.T[n-1])
	}
	if tab.S[0] != 0 {
		t.Errorf("Expected S[0]=0, got %g", tab.S[0])
	}
	for i := 1; i < n; i++ {
		if tab.T[i] < tab.T[i-1] {
			t.Fatalf("T not monotonic at %d", i)
		}
		if tab.S[i] < tab.S[i-1] {
			t.Fatalf("S not monotonic at %d", i)
		}
	}
	if tab.Length != tab.S[n-1] {
		t.Errorf("Length %g disagrees with last S %g", tab.Length, tab.S[n-1])
	}
}

func TestBuildSkipsDuplicateJoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tab := fixtureTable()
	for i := 1; i < tab.N(); i++ {
		if tab.Pts[i] == tab.Pts[i-1] && tab.T[i] == tab.T[i-1] {
			t.Errorf("duplicate joint sample at %d", i)
		}
	}
}

func TestBuildEmpty(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tab := Build(nil, spline.DefaultTolerance)
	if tab.N() != 0 || tab.Length != 0 {
		t.Fatalf("Expected empty table, got %d samples, length %g", tab.N(), tab.Length)
	}
	if !tab.PointAtTime(4567).IsOrigin() {
		t.Errorf("Expected empty-table query to fall back to origin")
	}
	if tab.TimeAtPoint(routine.P(10, 10)) != 0 {
		t.Errorf("Expected empty-table inverse query to return time 0")
	}
	tab.Fallback = routine.P(5, 7)
	if !tab.PointAtTime(0).Equal(routine.P(5, 7)) {
		t.Errorf("Expected empty-table query to return the fallback anchor")
	}
}

func TestBuildDuplicateAnchors(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// Two identical anchors give one zero-length segment; queries must
	// still resolve deterministically.
	segs := spline.FitCurve([]routine.Pair{routine.P(3, 3), routine.P(3, 3)}, 0.5)
	tab := Build(segs, spline.DefaultTolerance)
	if tab.Length != 0 {
		t.Fatalf("Expected zero length for collapsed curve, got %g", tab.Length)
	}
	if !tab.PointAtTime(43200).Equal(routine.P(3, 3)) {
		t.Errorf("Expected collapsed-curve query to return the anchor")
	}
	if tab.TimeAtPoint(routine.P(0, 0)) != 0 {
		t.Errorf("Expected collapsed-curve inverse query to return time 0")
	}
}
