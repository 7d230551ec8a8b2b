package routing

import (
	"context"

	da "github.com/aryaseta/costroute/pkg/datastructure"
)

// parentLink records how a node was first reached with its current
// best tentative cost: the predecessor node and the edge taken.
type parentLink struct {
	node string
	edge da.Edge
}

// dijkstra is the working set of one query: tentative-cost table,
// predecessor table, visited set, and the priority queue. It is owned
// by a single FindMinCostPath call and discarded afterwards.
type dijkstra struct {
	adjacency map[string][]arc

	dist    map[string]float64
	parent  map[string]parentLink
	settled map[string]bool

	heapNodes map[string]*da.PriorityQueueNode[string]
	pq        *da.MinHeap[string]

	numSettledNodes int
}

func newDijkstra(adjacency map[string][]arc) *dijkstra {
	us := &dijkstra{
		adjacency: adjacency,
		dist:      make(map[string]float64, len(adjacency)),
		parent:    make(map[string]parentLink, len(adjacency)),
		settled:   make(map[string]bool, len(adjacency)),
		heapNodes: make(map[string]*da.PriorityQueueNode[string], len(adjacency)),
		pq:        da.NewFourAryHeap[string](),
	}
	us.pq.Preallocate(len(adjacency))
	return us
}

// run executes the single-source search from s until t is settled or
// no unvisited node has finite cost. Returns whether t was reached.
// ctx is checked once per settlement.
func (us *dijkstra) run(ctx context.Context, s, t string) (bool, error) {
	sNode := da.NewPriorityQueueNode(0, s)
	us.pq.Insert(sNode)
	us.heapNodes[s] = sNode
	us.dist[s] = 0

	for !us.pq.IsEmpty() {
		if err := ctx.Err(); err != nil {
			return false, err
		}

		minNode, err := us.pq.ExtractMin()
		if err != nil {
			return false, err
		}
		u := minNode.GetItem()
		us.settled[u] = true
		us.numSettledNodes++

		if u == t {
			return true, nil
		}

		us.relaxNeighbors(u)
	}

	return false, nil
}

// relaxNeighbors scans the admissible arcs out of u and improves the
// tentative cost of each unsettled head. decrease-key when the head is
// already queued, insert otherwise.
func (us *dijkstra) relaxNeighbors(u string) {
	for _, a := range us.adjacency[u] {
		v := a.head
		if us.settled[v] {
			continue
		}

		newDist := us.dist[u] + a.weight

		vDist, labelled := us.dist[v]
		if labelled && newDist >= vDist {
			continue
		}

		us.dist[v] = newDist
		us.parent[v] = parentLink{node: u, edge: a.edge}

		if labelled {
			us.pq.DecreaseKey(us.heapNodes[v], newDist)
		} else {
			vNode := da.NewPriorityQueueNode(newDist, v)
			us.heapNodes[v] = vNode
			us.pq.Insert(vNode)
		}
	}
}

// reconstructPath walks predecessor links from t back to s and
// reverses, producing the path in source→destination order. Only
// valid after run returned true.
func (us *dijkstra) reconstructPath(s, t string) []da.Edge {
	path := make([]da.Edge, 0)
	for cur := t; cur != s; {
		link := us.parent[cur]
		path = append(path, link.edge)
		cur = link.node
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
