package cmd

import (
	"fmt"
	"io"

	"github.com/railplan/railplan/internal/itinerary"
	"github.com/railplan/railplan/internal/planner"
)

// printPlan writes one Line per instruction followed by the total
// travel-time used, matching the CLI output contract.
func printPlan(w io.Writer, goal planner.PlannerState, coalesce bool) {
	instructions := itinerary.SynthesizeWithOptions(goal, coalesce)
	for _, in := range instructions {
		fmt.Fprintln(w, in.Line())
	}
	fmt.Fprintf(w, "Total time used: %d\n", goal.Cost())
}
