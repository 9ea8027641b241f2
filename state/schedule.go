package state

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	routine "github.com/motaterry/routine-data-visualization"
	"github.com/motaterry/routine-data-visualization/timemap"
)

// Schedule is a time-ordered view of a document's nodes. Nodes sharing
// the same time collapse to the last one.
type Schedule struct {
	byTime *treemap.Map // time (float64) -> Node
}

// NewSchedule orders the given nodes by time.
func NewSchedule(nodes []Node) *Schedule {
	s := &Schedule{byTime: treemap.NewWith(utils.Float64Comparator)}
	for _, n := range nodes {
		s.byTime.Put(n.Time, n)
	}
	return s
}

// Len is the number of distinct node times.
func (s *Schedule) Len() int {
	return s.byTime.Size()
}

// At returns the node at exactly the given time.
func (s *Schedule) At(time float64) (Node, bool) {
	v, found := s.byTime.Get(time)
	if !found {
		return Node{}, false
	}
	return v.(Node), true
}

// Floor returns the latest node at or before the given time.
func (s *Schedule) Floor(time float64) (Node, bool) {
	k, v := s.byTime.Floor(time)
	if k == nil {
		return Node{}, false
	}
	return v.(Node), true
}

// Ceiling returns the earliest node at or after the given time.
func (s *Schedule) Ceiling(time float64) (Node, bool) {
	k, v := s.byTime.Ceiling(time)
	if k == nil {
		return Node{}, false
	}
	return v.(Node), true
}

// Each visits the nodes in time order.
func (s *Schedule) Each(visit func(Node)) {
	s.byTime.Each(func(_ interface{}, value interface{}) {
		visit(value.(Node))
	})
}

// NodePosition pairs a node with its position on the curve.
type NodePosition struct {
	Node Node
	Pt   routine.Pair
}

// Positions maps every node time onto the curve, in time order.
func (s *Schedule) Positions(tab *timemap.Table) []NodePosition {
	out := make([]NodePosition, 0, s.Len())
	s.Each(func(n Node) {
		out = append(out, NodePosition{Node: n, Pt: tab.PointAtTime(n.Time)})
	})
	return out
}
