package planner

import (
	"strconv"
	"strings"

	"github.com/railplan/railplan/internal/railnet"
	"github.com/railplan/railplan/internal/routing"
)

// TrainState is one train's ordered action history plus everything
// derived from it: current cargo, current position, the route-path
// chain from the initial station through every action station, and the
// accumulated travel-time cost. TrainState is an immutable value; Take
// returns a new TrainState rather than mutating the receiver.
type TrainState struct {
	Train        railnet.Train
	RouteMap     *routing.RouteMap
	TakenActions []railnet.Action
}

// NewTrainState builds the idle starting state for train: no actions
// taken, position at its initial station.
func NewTrainState(train railnet.Train, routeMap *routing.RouteMap) TrainState {
	return TrainState{Train: train, RouteMap: routeMap}
}

// Position returns the train's current station: its initial station if
// no actions are taken, otherwise the station of the last taken action.
func (ts TrainState) Position() railnet.Station {
	if len(ts.TakenActions) == 0 {
		return ts.Train.Initial
	}
	return ts.TakenActions[len(ts.TakenActions)-1].Station
}

// Cargo returns the packages currently aboard: picked but not yet
// dropped, in pick order.
func (ts TrainState) Cargo() []railnet.Package {
	var cargo []railnet.Package
	for _, a := range ts.TakenActions {
		switch a.Kind {
		case railnet.Pick:
			cargo = append(cargo, a.Package)
		case railnet.Drop:
			for i, p := range cargo {
				if p.Name == a.Package.Name {
					cargo = append(cargo[:i], cargo[i+1:]...)
					break
				}
			}
		}
	}
	return cargo
}

// CargoWeight sums the weight of the currently carried packages.
func (ts TrainState) CargoWeight() int {
	total := 0
	for _, p := range ts.Cargo() {
		total += p.Weight
	}
	return total
}

// PathChain returns the RoutePath for each consecutive station pair from
// the initial station through every action's station, in action order.
// can_take's feasibility gates (reachability of a Pick's station from
// the train's *initial* station, and for Drop same-train matching plus
// reachability of the drop station from the current position) are
// what make every consecutive pair resolvable in RouteMap for any state
// the planner actually reaches; a missing entry here means a caller
// called Take on an action that should have been rejected by CanTake.
func (ts TrainState) PathChain() []routing.RoutePath {
	if len(ts.TakenActions) == 0 {
		return nil
	}
	chain := make([]routing.RoutePath, 0, len(ts.TakenActions))
	from := ts.Train.Initial
	for _, a := range ts.TakenActions {
		to := a.Station
		rp, ok := ts.RouteMap.Get(from, to)
		if !ok {
			panic("planner: no route path for " + from.Name + " -> " + to.Name)
		}
		chain = append(chain, rp)
		from = to
	}
	return chain
}

// TravelTime sums the travel time of every segment in the path chain.
func (ts TrainState) TravelTime() int {
	total := 0
	for _, rp := range ts.PathChain() {
		total += rp.TravelTime()
	}
	return total
}

// CanTake reports whether action a is legal for this train given its
// current history.
func (ts TrainState) CanTake(a railnet.Action) bool {
	switch a.Kind {
	case railnet.Pick:
		return ts.canPick(a.Package)
	case railnet.Drop:
		return ts.canDrop(a.Package)
	default:
		return false
	}
}

// canPick requires a route-path from the train's initial station (not
// its current position) to the package's pickup station, and that
// adding the package does not exceed capacity. Matches spec.md §4.E.
func (ts TrainState) canPick(p railnet.Package) bool {
	if !ts.RouteMap.Contains(ts.Train.Initial, p.From) {
		return false
	}
	return p.Weight+ts.CargoWeight() <= ts.Train.Capacity
}

// canDrop requires a prior Pick(p) by this same train with no
// intervening Drop(p) — i.e. p is currently aboard — and a route-path
// from the train's current position to the package's destination.
func (ts TrainState) canDrop(p railnet.Package) bool {
	if !ts.RouteMap.Contains(ts.Position(), p.To) {
		return false
	}
	for _, c := range ts.Cargo() {
		if c.Name == p.Name {
			return true
		}
	}
	return false
}

// Take returns a new TrainState with a appended to the action history.
// Callers only ever invoke Take on actions that passed CanTake.
func (ts TrainState) Take(a railnet.Action) TrainState {
	next := make([]railnet.Action, len(ts.TakenActions)+1)
	copy(next, ts.TakenActions)
	next[len(ts.TakenActions)] = a
	ts.TakenActions = next
	return ts
}

// Key is a deterministic string encoding of this TrainState's identity
// for the purposes of PlannerState equality/hashing: the train's name
// plus its ordered action history. Two TrainStates with the same Key are
// equal as spec.md §9 requires ("Planner state equality ... depend only
// on the fleet vector").
func (ts TrainState) Key() string {
	var b strings.Builder
	b.WriteString(ts.Train.Name)
	b.WriteByte('|')
	for _, a := range ts.TakenActions {
		b.WriteString(strconv.Itoa(int(a.Kind)))
		b.WriteByte(':')
		b.WriteString(a.Package.Name)
		b.WriteByte(';')
	}
	return b.String()
}
