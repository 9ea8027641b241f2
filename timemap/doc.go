// Package timemap maps a normalized time-of-day scalar to a position
// on a fitted routine curve, and back.
/*

The forward direction distributes time uniformly over arc length, so a
constant time step moves a marker at constant speed along the curve,
independent of how the anchors are spaced. The inverse direction
projects an arbitrary point onto the curve and reports the time of the
nearest curve position.

Both directions work against a precomputed lookup table: per segment
the curve is flattened within a bounded error (package spline) and the
samples are assembled into global, monotonic parameter / arc-length /
position columns. The table is a pure derived artifact of the fitted
segments and the sampling tolerance; it is rebuilt wholesale on every
anchor edit and held read-only by all queries.

Every operation in this package resolves to a deterministic, in-range
value. There is no error surface: degenerate tables fall back to a
fixed point and time 0.

# BSD License

Please refer to the license file for more information.
*/
package timemap

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'timemap'
func tracer() tracing.Trace {
	return tracing.Select("timemap")
}
