package railnet

// RouteInput, PackageInput, and TrainInput are the name-based records
// NewNetwork resolves against the station set. They mirror the CLI's
// comma-separated record shapes one-for-one and exist so the cmd package
// never has to poke at Network internals while resolving names.
type RouteInput struct {
	Name       string
	From       string
	To         string
	TravelTime int
}

type PackageInput struct {
	Name   string
	Weight int
	From   string
	To     string
}

type TrainInput struct {
	Name     string
	Capacity int
	Initial  string
}

// Network is the fully resolved, immutable domain graph: stations, the
// directed route set (each input route plus its synthesized reverse),
// packages, and trains. Built once by NewNetwork and never mutated.
type Network struct {
	Stations []Station
	Routes   []Route
	Packages []Package
	Trains   []Train
}

// NewNetwork resolves every name-based input record against the station
// set and builds the immutable Network. Every route, package, and train
// station name must resolve against stationNames; the first name that
// does not resolve is reported via UnknownStationError.
//
// Each RouteInput induces two directed Routes (the original and its
// reverse, same travel time, distinct synthetic name) per spec.md §3.
func NewNetwork(stationNames []string, routes []RouteInput, packages []PackageInput, trains []TrainInput) (*Network, error) {
	stations := make([]Station, len(stationNames))
	byName := make(map[string]Station, len(stationNames))
	for i, name := range stationNames {
		s := Station{Name: name}
		stations[i] = s
		byName[name] = s
	}

	resolve := func(name string) (Station, error) {
		s, ok := byName[name]
		if !ok {
			return Station{}, &UnknownStationError{Name: name}
		}
		return s, nil
	}

	resolvedRoutes := make([]Route, 0, len(routes)*2)
	for _, ri := range routes {
		from, err := resolve(ri.From)
		if err != nil {
			return nil, err
		}
		to, err := resolve(ri.To)
		if err != nil {
			return nil, err
		}
		fwd := Route{Name: ri.Name, From: from, To: to, TravelTime: ri.TravelTime}
		resolvedRoutes = append(resolvedRoutes, fwd, reverseRoute(fwd))
	}

	resolvedPackages := make([]Package, 0, len(packages))
	for _, pi := range packages {
		from, err := resolve(pi.From)
		if err != nil {
			return nil, err
		}
		to, err := resolve(pi.To)
		if err != nil {
			return nil, err
		}
		resolvedPackages = append(resolvedPackages, Package{Name: pi.Name, Weight: pi.Weight, From: from, To: to})
	}

	resolvedTrains := make([]Train, 0, len(trains))
	for _, ti := range trains {
		initial, err := resolve(ti.Initial)
		if err != nil {
			return nil, err
		}
		resolvedTrains = append(resolvedTrains, Train{Name: ti.Name, Capacity: ti.Capacity, Initial: initial})
	}

	return &Network{
		Stations: stations,
		Routes:   resolvedRoutes,
		Packages: resolvedPackages,
		Trains:   resolvedTrains,
	}, nil
}
