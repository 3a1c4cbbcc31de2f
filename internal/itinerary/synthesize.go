package itinerary

import (
	"github.com/railplan/railplan/internal/planner"
	"github.com/railplan/railplan/internal/railnet"
	"github.com/railplan/railplan/internal/routing"
)

// Synthesize walks a terminal planner.PlannerState's per-train path
// chains into the full chronological instruction stream, trains in
// fleet order, each train's own instructions coalesced independently.
func Synthesize(goal planner.PlannerState) []Instruction {
	return SynthesizeWithOptions(goal, true)
}

// SynthesizeWithOptions is Synthesize with the coalescing post-pass
// made optional, for callers that want the raw per-edge instruction
// stream (the CLI passes the coalesce_itinerary setting here).
func SynthesizeWithOptions(goal planner.PlannerState, coalesceInstructions bool) []Instruction {
	var all []Instruction
	for _, ts := range goal.Trains {
		all = append(all, trainInstructions(ts, coalesceInstructions)...)
	}
	return all
}

func trainInstructions(ts planner.TrainState, coalesceInstructions bool) []Instruction {
	chain := ts.PathChain()
	if len(chain) == 0 {
		return nil
	}

	var raw []Instruction
	beginAt := 0
	for i, routePath := range chain {
		action := ts.TakenActions[i]
		raw = append(raw, subInstructions(ts.Train, routePath, action, beginAt)...)
		beginAt += routePath.TravelTime()
	}
	if !coalesceInstructions {
		return raw
	}
	return coalesce(raw)
}

func subInstructions(train railnet.Train, routePath routing.RoutePath, action railnet.Action, beginAt int) []Instruction {
	edges := routePath.Edges
	lastIdx := len(edges) - 1

	instructions := make([]Instruction, 0, len(edges)+1)
	at := beginAt
	for i, edge := range edges {
		inst := Instruction{Begin: at, Train: train, Route: edge}
		if i == lastIdx && action.Kind == railnet.Drop {
			inst.Dropped = []railnet.Package{action.Package}
		}
		instructions = append(instructions, inst)
		at += edge.TravelTime
	}

	if action.Kind == railnet.Pick {
		instructions = append(instructions, Instruction{
			Begin:  at,
			Train:  train,
			Route:  railnet.IdentityRoute(action.Station),
			Picked: []railnet.Package{action.Package},
		})
	}

	return instructions
}
