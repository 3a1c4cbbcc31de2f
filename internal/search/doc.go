// Package search finds the minimum-makespan sequence of planner states
// that takes every required action, via a uniform-cost (Dijkstra-style)
// search over planner.PlannerState. Edge weights are the nonnegative
// fleet makespan deltas planner.PlannerState.Successors reports, so the
// first goal state popped off the frontier is optimal.
package search
