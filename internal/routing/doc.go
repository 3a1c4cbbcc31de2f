// Package routing builds the all-pairs shortest-path table (RouteMap)
// over a railnet.Network's directed route graph.
//
// BuildRouteMap runs one single-source Dijkstra search per station using
// gonum.org/v1/gonum/graph/path, then reconstructs each reachable pair's
// concrete RoutePath by walking the returned node sequence and, for every
// consecutive station pair, selecting the minimum-travel-time railnet
// Route connecting them. A zero-weight identity RoutePath is inserted for
// every station's self pair.
package routing
