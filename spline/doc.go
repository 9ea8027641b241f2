// Package spline fits cubic Bézier segments through a sequence of
// anchor points and flattens them into polylines.
/*

Anchors are user-placed points the curve has to pass through. The fitter
derives the off-curve control points from the anchors and a single
tension scalar; three interpolation strategies are available:

   (1) A Catmull-Rom construction with phantom boundary points, as
       described in
         Interpolating Splines -- E. Catmull, R. Rom
         Computer Aided Geometric Design, 1974
       This is the canonical strategy.

   (2) An adaptive variant which shortens tangent handles near sharp
       corners, trading flow for reduced overshoot.

   (3) A symmetric-arm variant which guarantees first-derivative
       continuity at every anchor by mirroring the two handles of each
       interior anchor around a shared tangent.

The strategies are not equivalent; they share one contract and are
selected by a Strategy value.

Flattening uses recursive midpoint subdivision bounded by a flatness
threshold, a recursion depth cap and a point-count cap, so the cost of
sampling is bounded independent of input pathology.

# BSD License

Please refer to the license file for more information.
*/
package spline

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'spline'
func tracer() tracing.Trace {
	return tracing.Select("spline")
}
