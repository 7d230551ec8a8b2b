package routing

import (
	"github.com/aryaseta/costroute/pkg/datastructure"
)

type RouteStatus int

const (
	// StatusNoQuery marks the "not yet specified" state: source or
	// destination was unset. Not an error.
	StatusNoQuery RouteStatus = iota
	// StatusFound carries a simple path and its total cost. A
	// same-node query yields StatusFound with zero edges, zero cost.
	StatusFound
	// StatusUnreachable is the no-path sentinel, distinguishable from
	// the zero-cost same-node case.
	StatusUnreachable
)

func (s RouteStatus) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusUnreachable:
		return "unreachable"
	default:
		return "no_query"
	}
}

// RouteResult is the output of one query: the edges of the minimum
// cost path in source→destination order plus the accumulated cost.
// The result is produced once per query and owned by the caller.
type RouteResult struct {
	edges  []datastructure.Edge
	cost   float64
	status RouteStatus
}

func NewRouteResult(edges []datastructure.Edge, cost float64) RouteResult {
	return RouteResult{edges: edges, cost: cost, status: StatusFound}
}

func NewUnreachableResult() RouteResult {
	return RouteResult{status: StatusUnreachable}
}

func NewNoQueryResult() RouteResult {
	return RouteResult{status: StatusNoQuery}
}

func (r RouteResult) GetEdges() []datastructure.Edge {
	return r.edges
}

// GetCost returns the total path cost. Only meaningful when Found().
func (r RouteResult) GetCost() float64 {
	return r.cost
}

func (r RouteResult) GetStatus() RouteStatus {
	return r.status
}

func (r RouteResult) Found() bool {
	return r.status == StatusFound
}

func (r RouteResult) Unreachable() bool {
	return r.status == StatusUnreachable
}
