package routine

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNumericBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := 0.000000008
	if !Is0(a) {
		t.Errorf("Expected a to be zero, is not")
	}
	if Clamp(2, 0, 1) != 1 || Clamp(-2, 0, 1) != 0 || Clamp(0.5, 0, 1) != 0.5 {
		t.Errorf("Clamp does not confine values to [0,1]")
	}
}

func TestPairBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := P(3, 2)
	q := P(-3, -2)
	r := p + q
	if !r.IsOrigin() {
		t.Errorf("Expected p + q to be (0,0), is %v", r)
	}
}

func TestTranslation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if !P(1, 1).Shifted(P(-1, -1)).IsOrigin() {
		t.Errorf("Expected (1,1) shifted (-1,-1) to be origin, is not")
	}
	if !P(1, 0).Rotated(180 * Deg2Rad).Shifted(P(1, 0)).IsOrigin() {
		t.Errorf("Expected result to be origin, is not")
	}
}

func TestVectorOps(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if !Is0(Dot(P(1, 0), P(0, 1))) {
		t.Errorf("Expected orthogonal vectors to have dot product 0")
	}
	if !Is1(Cross(P(1, 0), P(0, 1))) {
		t.Errorf("Expected cross product of unit axes to be 1")
	}
	if !Is1(Norm(Unit(P(3, 4)))) {
		t.Errorf("Expected unit vector to have magnitude 1")
	}
	if !Unit(Origin).IsOrigin() {
		t.Errorf("Expected unit of zero vector to degrade to origin")
	}
	if math.Abs(Dist(P(0, 0), P(3, 4))-5) > Epsilon {
		t.Errorf("Expected distance (0,0)-(3,4) to be 5")
	}
}

func TestScaling(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := Scaling(2, 3).Transform(P(1, 1))
	if !p.Equal(P(2, 3)) {
		t.Errorf("Expected (1,1) scaled (2,3) to be (2,3), is %v", p)
	}
}
