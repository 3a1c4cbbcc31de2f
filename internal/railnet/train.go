package railnet

// Train is a fleet member with a fixed integer capacity and a starting
// station. Identity is Name.
type Train struct {
	Name     string
	Capacity int
	Initial  Station
}
