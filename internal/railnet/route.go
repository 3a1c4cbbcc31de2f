package railnet

// reverseSuffix and identitySuffix generate synthetic route names. Both
// are stable: rebuilding the same network twice yields the same
// synthetic names. Operator-supplied route names are any comma-free
// tokens (see cmd's input parser), and nothing rejects an input name
// that already ends in one of these suffixes, so such a name can equal
// a synthetic one.
const (
	reverseSuffix  = "#reverse"
	identitySuffix = "#identity"
)

// Route is a directed edge of the route graph. Identity is Name alone:
// a route and its synthesized reverse share endpoints and travel time
// but are distinct routes, so that RouteMap path reconstruction can tell
// them apart.
type Route struct {
	Name       string
	From       Station
	To         Station
	TravelTime int
	isIdentity bool
}

// IsFrom reports whether s is this route's origin station.
func (r Route) IsFrom(s Station) bool { return r.From.Name == s.Name }

// IsTo reports whether s is this route's destination station.
func (r Route) IsTo(s Station) bool { return r.To.Name == s.Name }

// IsIdentity reports whether this is the synthesized zero-time
// self-to-self route used for a RoutePath from a station to itself.
func (r Route) IsIdentity() bool { return r.isIdentity }

// reverseRoute builds the synthetic reverse of an input route: same
// travel time, swapped endpoints, a stable distinct name.
func reverseRoute(r Route) Route {
	return Route{
		Name:       r.Name + reverseSuffix,
		From:       r.To,
		To:         r.From,
		TravelTime: r.TravelTime,
	}
}

// IdentityRoute builds the zero-time self-to-self route for s, used as
// the sole edge of the RoutePath from s to itself. Exported for the
// routing package, which inserts one identity RoutePath per station when
// it builds the RouteMap.
func IdentityRoute(s Station) Route {
	return Route{
		Name:       s.Name + identitySuffix,
		From:       s,
		To:         s,
		TravelTime: 0,
		isIdentity: true,
	}
}
