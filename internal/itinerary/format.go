package itinerary

import (
	"fmt"
	"strings"

	"github.com/railplan/railplan/internal/railnet"
)

// Line renders one instruction as the CLI's comma-separated KEY=VALUE
// output line: W (begin time), T (train), N1 (origin), P1 (picked
// packages), N2 (destination), P2 (dropped packages).
func (i Instruction) Line() string {
	return fmt.Sprintf("W = %d, T = %s, N1 = %s, P1 = %s, N2 = %s, P2 = %s",
		i.Begin, i.Train.Name, i.Route.From.Name, bracketNames(i.Picked), i.Route.To.Name, bracketNames(i.Dropped))
}

func bracketNames(packages []railnet.Package) string {
	names := make([]string, len(packages))
	for i, p := range packages {
		names[i] = p.Name
	}
	return "[" + strings.Join(names, ",") + "]"
}
