package search

import "github.com/railplan/railplan/internal/planner"

// node is one entry on the frontier: a reached PlannerState and the
// total cost accumulated to reach it.
type node struct {
	state planner.PlannerState
	cost  int
}

// frontier is a priority queue ordered by cost, lowest first, with the
// state's Key used as a deterministic tie-breaker so equal-cost nodes
// pop in a stable order.
//
// Ordering: cost -> state key
type frontier struct {
	nodes []node
}

func (f *frontier) Len() int { return len(f.nodes) }

func (f *frontier) Less(i, j int) bool {
	ni, nj := f.nodes[i], f.nodes[j]
	if ni.cost != nj.cost {
		return ni.cost < nj.cost
	}
	return ni.state.Key() < nj.state.Key()
}

func (f *frontier) Swap(i, j int) {
	f.nodes[i], f.nodes[j] = f.nodes[j], f.nodes[i]
}

func (f *frontier) Push(x any) {
	f.nodes = append(f.nodes, x.(node))
}

func (f *frontier) Pop() any {
	old := f.nodes
	n := len(old)
	item := old[n-1]
	f.nodes = old[0 : n-1]
	return item
}
