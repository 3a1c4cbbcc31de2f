// Package planner holds the search-space state: TrainState (one train's
// committed action history and everything derived from it) and
// PlannerState (a fleet snapshot: one TrainState per train, plus the
// shared required-action list and RouteMap needed to generate
// successors).
//
// Both types are immutable values. Take and the state produced by
// Successors always allocate fresh slices rather than mutating in
// place, so that a PlannerState reached via one path through the search
// never aliases the slices of a sibling reached via another path.
package planner
