// Package railnet defines the immutable domain model for a delivery
// network: stations, directed routes, packages, trains, and the
// Pick/Drop action alphabet derived from the package set.
//
// # Reading Guide
//
//   - station.go, route.go: the graph vertices and directed edges.
//   - package.go, train.go: cargo and fleet records.
//   - action.go: the Pick/Drop alphabet and its tie-break ordering.
//   - network.go: NewNetwork, which validates referential integrity
//     (every station name used by a route/package/train must resolve)
//     and synthesizes the reverse of every input route. The zero-time
//     identity route per station is synthesized later, by routing.
//
// Everything here is a value built once from input and never mutated;
// downstream packages (routing, planner, search, itinerary) receive the
// Network by pointer and hold copies of its small value types (Station,
// Route, Package, Train, Action).
package railnet
