package search

import (
	"container/heap"

	"github.com/sirupsen/logrus"

	"github.com/railplan/railplan/internal/planner"
)

// Plan runs uniform-cost search from initial to the first goal state,
// returning the optimal (minimum-makespan) goal state reached. It
// returns ErrInfeasible if the frontier empties before a goal is found.
//
// Visited states are deduplicated by planner.PlannerState.Key, keeping
// only the lowest cost at which each distinct fleet snapshot was
// reached; a state popped again at a higher cost than its recorded
// best is stale and skipped.
func Plan(initial planner.PlannerState, log *logrus.Logger) (planner.PlannerState, error) {
	if log == nil {
		log = logrus.New()
	}
	log.Infof("search: starting uniform-cost search from initial cost %d", initial.Cost())

	f := &frontier{}
	heap.Init(f)
	heap.Push(f, node{state: initial, cost: initial.Cost()})

	best := map[string]int{initial.Key(): initial.Cost()}
	expanded := 0

	for f.Len() > 0 {
		cur := heap.Pop(f).(node)
		expanded++

		if recorded, ok := best[cur.state.Key()]; ok && cur.cost > recorded {
			continue // stale frontier entry, a cheaper path already won
		}

		if cur.state.IsGoal() {
			log.Infof("search: goal state reached after %d expansions, cost=%d", expanded, cur.cost)
			return cur.state, nil
		}

		for _, succ := range cur.state.Successors() {
			nextCost := cur.cost + succ.CostDelta
			key := succ.State.Key()
			if recorded, ok := best[key]; ok && recorded <= nextCost {
				continue
			}
			best[key] = nextCost
			heap.Push(f, node{state: succ.State, cost: nextCost})
		}
	}

	log.Warnf("search: frontier exhausted after %d expansions", expanded)
	return planner.PlannerState{}, ErrInfeasible
}
