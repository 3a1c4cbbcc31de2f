package search

import "errors"

// ErrInfeasible is returned when the frontier is exhausted without
// reaching a goal state: some required action can never be taken by
// any train, under any reachable combination of prior actions.
var ErrInfeasible = errors.New("infeasible: no plan satisfies every required pickup and delivery")
