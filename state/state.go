// Package state holds the persisted plain-data form of a routine
// curve: the editable curve spec (anchors plus tension) and the node
// records placed on it. The UI layer serializes this state to local
// storage; the contract here is that a round-tripped document rebuilds
// a lookup table whose forward mapping agrees with the pre-persistence
// one within 1 coordinate unit.
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	routine "github.com/motaterry/routine-data-visualization"
	"github.com/motaterry/routine-data-visualization/spline"
	"github.com/motaterry/routine-data-visualization/timemap"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'state'
func tracer() tracing.Trace {
	return tracing.Select("state")
}

var (
	// ErrInvalidKnot indicates a control coordinate is NaN/Inf.
	ErrInvalidKnot = errors.New("curve has invalid control coordinate")
	// ErrMalformedDocument indicates undecodable persisted data.
	ErrMalformedDocument = errors.New("malformed document")
)

// Knot is one anchor of the persisted curve spec.
type Knot struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// CurveSpec is the editable part of a routine curve: ordered anchors
// and a tension scalar in [0,1].
type CurveSpec struct {
	Controls []Knot  `json:"controls"`
	Tension  float64 `json:"tension"`
}

// Node is a record pinned to a time of day on the curve.
type Node struct {
	ID    string  `json:"id"`
	Time  float64 `json:"time"`
	Label string  `json:"label"`
	Icon  string  `json:"icon"`
	Color string  `json:"color"`
}

// Document is the complete persisted state.
type Document struct {
	Curve CurveSpec `json:"curve"`
	Nodes []Node    `json:"nodes"`
}

// Decode parses a persisted document and normalizes it: tension and
// node times are clamped into range. Non-finite control coordinates
// are rejected, everything else is repaired rather than refused.
func Decode(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if err := doc.Normalize(); err != nil {
		return nil, err
	}
	tracer().Debugf("decoded document with %d anchors, %d nodes",
		len(doc.Curve.Controls), len(doc.Nodes))
	return &doc, nil
}

// Encode serializes the document to its plain-data form.
func (doc *Document) Encode() ([]byte, error) {
	return json.Marshal(doc)
}

// Normalize repairs out-of-range values in place: tension and node
// times are clamped, NaN times reset to 0. Non-finite control
// coordinates cannot be repaired and are rejected.
func (doc *Document) Normalize() error {
	for i, k := range doc.Curve.Controls {
		if !routine.P(k.X, k.Y).IsValid() {
			return fmt.Errorf("%w at index %d", ErrInvalidKnot, i)
		}
	}
	doc.Curve.Tension = routine.Clamp(doc.Curve.Tension, 0, 1)
	for i := range doc.Nodes {
		if math.IsNaN(doc.Nodes[i].Time) {
			doc.Nodes[i].Time = 0
		}
		doc.Nodes[i].Time = routine.Clamp(doc.Nodes[i].Time, 0, timemap.DaySeconds)
	}
	return nil
}

// Anchors converts the persisted knots to pairs.
func (doc *Document) Anchors() []routine.Pair {
	anchors := make([]routine.Pair, len(doc.Curve.Controls))
	for i, k := range doc.Curve.Controls {
		anchors[i] = routine.P(k.X, k.Y)
	}
	return anchors
}

// Table fits the persisted curve spec and builds its lookup table.
// Single-anchor documents produce an empty table falling back to that
// anchor.
func (doc *Document) Table(strategy spline.Strategy, tol spline.Tolerance) *timemap.Table {
	anchors := doc.Anchors()
	tab := timemap.Build(spline.Fit(anchors, doc.Curve.Tension, strategy), tol)
	if len(anchors) > 0 {
		tab.Fallback = anchors[0]
	}
	return tab
}
