package railnet

// Station is a vertex in the route graph. Identity is Name; two Stations
// with the same Name are the same station.
type Station struct {
	Name string
}
