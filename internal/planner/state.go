package planner

import (
	"strings"

	"github.com/railplan/railplan/internal/railnet"
	"github.com/railplan/railplan/internal/routing"
)

// Successor is one accepted transition out of a PlannerState: the
// resulting state and the nonnegative makespan delta it costs.
type Successor struct {
	State     PlannerState
	CostDelta int
}

// PlannerState is a snapshot of the whole fleet's committed action
// sequences: one TrainState per train, plus a shared handle to the
// RouteMap and the immutable required-action list. Hash and equality
// (Key) consider only the TrainState vector — RouteMap and
// RequiredActions never participate, so two states with matching fleet
// histories are equal regardless of how they were reached.
type PlannerState struct {
	Trains          []TrainState
	RequiredActions []railnet.Action
	RouteMap        *routing.RouteMap
}

// NewInitialState builds the starting PlannerState for a network: every
// train idle at its initial station, no actions taken.
func NewInitialState(net *railnet.Network, routeMap *routing.RouteMap) PlannerState {
	trains := make([]TrainState, len(net.Trains))
	for i, t := range net.Trains {
		trains[i] = NewTrainState(t, routeMap)
	}
	return PlannerState{
		Trains:          trains,
		RequiredActions: railnet.RequiredActions(net.Packages),
		RouteMap:        routeMap,
	}
}

// Key is a deterministic encoding of the fleet snapshot, used by the
// search driver's open/closed sets for equality and hashing.
func (s PlannerState) Key() string {
	var b strings.Builder
	for i, ts := range s.Trains {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(ts.Key())
	}
	return b.String()
}

// Cost is the makespan: the maximum accumulated travel time across the
// fleet.
func (s PlannerState) Cost() int {
	max := 0
	for _, ts := range s.Trains {
		if t := ts.TravelTime(); t > max {
			max = t
		}
	}
	return max
}

// TakenActions is the union, across trains, of every action any train
// has committed to.
func (s PlannerState) TakenActions() []railnet.Action {
	var taken []railnet.Action
	for _, ts := range s.Trains {
		taken = append(taken, ts.TakenActions...)
	}
	return taken
}

// UntakenActions is RequiredActions minus TakenActions.
func (s PlannerState) UntakenActions() []railnet.Action {
	taken := s.TakenActions()
	untaken := make([]railnet.Action, 0, len(s.RequiredActions))
	for _, a := range s.RequiredActions {
		isTaken := false
		for _, t := range taken {
			if t == a {
				isTaken = true
				break
			}
		}
		if !isTaken {
			untaken = append(untaken, a)
		}
	}
	return untaken
}

// IsGoal reports whether every required action has been taken by some
// train. A state in which untaken actions remain but no train can take
// any of them is a dead end, not a goal.
func (s PlannerState) IsGoal() bool {
	return len(s.UntakenActions()) == 0
}

// Successors enumerates, for each train and each untaken action that
// train may legally take next, the resulting PlannerState and the
// nonnegative cost delta of committing that one action. Iteration order
// over trains and untaken actions is the fixed order of s.Trains and
// s.RequiredActions, making enumeration deterministic.
func (s PlannerState) Successors() []Successor {
	untaken := s.UntakenActions()
	currentCost := s.Cost()

	var successors []Successor
	for i, ts := range s.Trains {
		for _, a := range untaken {
			if !ts.CanTake(a) {
				continue
			}
			nextTrains := make([]TrainState, len(s.Trains))
			copy(nextTrains, s.Trains)
			nextTrains[i] = ts.Take(a)

			next := PlannerState{
				Trains:          nextTrains,
				RequiredActions: s.RequiredActions,
				RouteMap:        s.RouteMap,
			}
			successors = append(successors, Successor{
				State:     next,
				CostDelta: next.Cost() - currentCost,
			})
		}
	}
	return successors
}
