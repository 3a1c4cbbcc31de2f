// Package itinerary turns a terminal planner.PlannerState into the
// chronological, per-train instruction stream a caller prints: one
// Instruction per traversed edge, annotated with whatever packages were
// picked or dropped at that edge's destination, with adjacent
// single-edge instructions folded together when they share a train and
// an edge.
package itinerary
