package routing

import "github.com/railplan/railplan/internal/railnet"

// RoutePath is a concrete, ordered sequence of directed edges realizing a
// minimum-weight path between two stations. A path from a station to
// itself holds a single identity edge.
type RoutePath struct {
	From  railnet.Station
	To    railnet.Station
	Edges []railnet.Route
}

// TravelTime sums the travel time of every edge in the path.
func (p RoutePath) TravelTime() int {
	total := 0
	for _, e := range p.Edges {
		total += e.TravelTime
	}
	return total
}

// stationPair is the RouteMap key: (from, to) identified by station name.
type stationPair struct {
	from string
	to   string
}
