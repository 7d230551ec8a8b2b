package routing

import (
	"github.com/aryaseta/costroute/pkg/datastructure"
)

// Filter is the edge-admissibility predicate of a query. Both clauses
// are independently toggleable and combine as a logical AND; an edge
// failing either clause is excluded from the traversal graph entirely,
// not penalized. Admissibility is direction-independent, so the
// filtered adjacency stays symmetric.
type Filter struct {
	terrainCeiling    int
	terrainEnabled    bool
	maxEdgeCost       float64
	maxEdgeCostActive bool
}

// NewFilter returns the permissive filter: every well-formed edge is
// admissible.
func NewFilter() Filter {
	return Filter{}
}

// WithTerrainCeiling restricts traversal to edges whose terrain class
// is at most ceiling.
func (f Filter) WithTerrainCeiling(ceiling int) Filter {
	f.terrainCeiling = ceiling
	f.terrainEnabled = true
	return f
}

// WithMaxEdgeCost restricts traversal to edges whose derived cost is
// at most maxCost.
func (f Filter) WithMaxEdgeCost(maxCost float64) Filter {
	f.maxEdgeCost = maxCost
	f.maxEdgeCostActive = true
	return f
}

func (f Filter) TerrainCeiling() (int, bool) {
	return f.terrainCeiling, f.terrainEnabled
}

func (f Filter) MaxEdgeCost() (float64, bool) {
	return f.maxEdgeCost, f.maxEdgeCostActive
}

// Admits reports whether the edge may participate in the query. The
// edge cost is passed in rather than recomputed so the engine decides
// it with its own cost function, never a cached stale value.
func (f Filter) Admits(e datastructure.Edge, edgeCost float64) bool {
	if f.terrainEnabled && e.GetTerrain() > f.terrainCeiling {
		return false
	}
	if f.maxEdgeCostActive && edgeCost > f.maxEdgeCost {
		return false
	}
	return true
}
