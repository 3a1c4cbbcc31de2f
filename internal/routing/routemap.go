package routing

import (
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/railplan/railplan/internal/railnet"
)

// RouteMap is the precomputed all-pairs-shortest-path table: every
// (from, to) station pair for which to is reachable from from maps to a
// concrete RoutePath, including the trivial from == to case. Built once
// per network and read-only thereafter; callers share a single instance
// across every derived planner state.
type RouteMap struct {
	paths map[stationPair]RoutePath
}

// Get returns the RoutePath from from to to, if to is reachable from from.
func (m *RouteMap) Get(from, to railnet.Station) (RoutePath, bool) {
	p, ok := m.paths[stationPair{from: from.Name, to: to.Name}]
	return p, ok
}

// Contains reports whether to is reachable from from.
func (m *RouteMap) Contains(from, to railnet.Station) bool {
	_, ok := m.Get(from, to)
	return ok
}

// edgeKey identifies a directed edge between two gonum node IDs.
type edgeKey struct {
	from int64
	to   int64
}

// BuildRouteMap computes the all-pairs RouteMap for net by running one
// single-source Dijkstra search per station over the directed route
// graph, reconstructing a concrete RoutePath for every reachable target,
// and inserting the zero-weight identity path for every station.
func BuildRouteMap(net *railnet.Network) *RouteMap {
	stationByID := make([]railnet.Station, len(net.Stations))
	idByName := make(map[string]int64, len(net.Stations))
	for i, s := range net.Stations {
		stationByID[i] = s
		idByName[s.Name] = int64(i)
	}

	// Collapse parallel routes between the same ordered station pair to
	// their minimum travel time before handing edges to gonum: a simple
	// weighted graph holds at most one edge per ordered node pair.
	minWeight := make(map[edgeKey]int)
	for _, r := range net.Routes {
		k := edgeKey{from: idByName[r.From.Name], to: idByName[r.To.Name]}
		if w, ok := minWeight[k]; !ok || r.TravelTime < w {
			minWeight[k] = r.TravelTime
		}
	}

	g := simple.NewWeightedDirectedGraph(0, 0)
	for _, s := range net.Stations {
		g.AddNode(simple.Node(idByName[s.Name]))
	}
	for k, w := range minWeight {
		g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(k.from), T: simple.Node(k.to), W: float64(w)})
	}

	paths := make(map[stationPair]RoutePath, len(net.Stations)*len(net.Stations))

	for _, s := range net.Stations {
		paths[stationPair{from: s.Name, to: s.Name}] = RoutePath{
			From:  s,
			To:    s,
			Edges: []railnet.Route{railnet.IdentityRoute(s)},
		}
	}

	for _, from := range net.Stations {
		shortest := path.DijkstraFrom(simple.Node(idByName[from.Name]), g)
		for _, to := range net.Stations {
			if to.Name == from.Name {
				continue
			}
			nodes, _ := shortest.To(idByName[to.Name])
			if len(nodes) < 2 {
				continue // unreachable
			}
			edges := make([]railnet.Route, 0, len(nodes)-1)
			for i := 0; i+1 < len(nodes); i++ {
				a := stationByID[nodes[i].ID()]
				b := stationByID[nodes[i+1].ID()]
				edges = append(edges, minRoute(net.Routes, a, b))
			}
			paths[stationPair{from: from.Name, to: to.Name}] = RoutePath{From: from, To: to, Edges: edges}
		}
	}

	return &RouteMap{paths: paths}
}

// minRoute returns the minimum-travel-time route among net's routes
// directed from a to b. Panics if none exists: callers only invoke this
// for consecutive pairs on a path gonum has already confirmed is an edge.
func minRoute(routes []railnet.Route, a, b railnet.Station) railnet.Route {
	var best railnet.Route
	found := false
	for _, r := range routes {
		if r.IsFrom(a) && r.IsTo(b) {
			if !found || r.TravelTime < best.TravelTime {
				best = r
				found = true
			}
		}
	}
	if !found {
		panic("routing: no route found for edge reported by shortest-path search")
	}
	return best
}
