package itinerary

import "github.com/railplan/railplan/internal/railnet"

// Instruction is one scheduled movement of one train along one directed
// route, optionally picking up packages at its origin and dropping
// packages at its destination.
type Instruction struct {
	Begin   int
	Train   railnet.Train
	Route   railnet.Route
	Picked  []railnet.Package
	Dropped []railnet.Package
}

// combine merges i and next into a single instruction when they name
// the same train, the same route, and the same begin time — the case
// produced when a route's own zero-length identity edge and an
// explicit pick event land on top of each other. Otherwise it returns
// both instructions unchanged, in order.
func (i Instruction) combine(next Instruction) []Instruction {
	if i.Train.Name != next.Train.Name || i.Route.Name != next.Route.Name || i.Begin != next.Begin {
		return []Instruction{i, next}
	}
	return []Instruction{{
		Begin:   i.Begin,
		Train:   i.Train,
		Route:   i.Route,
		Picked:  unionPackages(i.Picked, next.Picked),
		Dropped: unionPackages(i.Dropped, next.Dropped),
	}}
}

func unionPackages(a, b []railnet.Package) []railnet.Package {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make([]railnet.Package, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

// coalesce folds a chronological instruction list with the combine
// rule applied pairwise against the most recently accumulated entry.
func coalesce(instructions []Instruction) []Instruction {
	var acc []Instruction
	for _, next := range instructions {
		if len(acc) == 0 {
			acc = append(acc, next)
			continue
		}
		last := acc[len(acc)-1]
		combined := last.combine(next)
		acc = acc[:len(acc)-1]
		acc = append(acc, combined...)
	}
	return acc
}
