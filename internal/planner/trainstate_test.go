package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/railplan/railplan/internal/railnet"
	"github.com/railplan/railplan/internal/routing"
)

func buildSimpleNet(t *testing.T) (*railnet.Network, *routing.RouteMap) {
	t.Helper()
	net, err := railnet.NewNetwork(
		[]string{"A", "B", "C"},
		[]railnet.RouteInput{
			{Name: "AB", From: "A", To: "B", TravelTime: 10},
			{Name: "BC", From: "B", To: "C", TravelTime: 15},
		},
		nil, nil,
	)
	require.NoError(t, err)
	return net, routing.BuildRouteMap(net)
}

func TestTrainState_IdlePositionIsInitial(t *testing.T) {
	net, rm := buildSimpleNet(t)
	train := railnet.Train{Name: "Q1", Capacity: 10, Initial: net.Stations[0]}
	ts := NewTrainState(train, rm)

	assert.Equal(t, net.Stations[0], ts.Position())
	assert.Empty(t, ts.Cargo())
	assert.Equal(t, 0, ts.TravelTime())
}

func TestTrainState_PickAdvancesCargoNotPosition(t *testing.T) {
	net, rm := buildSimpleNet(t)
	a, c := net.Stations[0], net.Stations[2]
	train := railnet.Train{Name: "Q1", Capacity: 10, Initial: a}
	ts := NewTrainState(train, rm)

	pkg := railnet.Package{Name: "K1", Weight: 4, From: a, To: c}
	next := ts.Take(railnet.NewPick(pkg))

	require.Len(t, next.Cargo(), 1)
	assert.Equal(t, pkg, next.Cargo()[0])
	assert.Equal(t, a, next.Position(), "Pick's station equals From, so position does not change")
}

func TestTrainState_CanPickChecksInitialStationNotCurrentPosition(t *testing.T) {
	net, rm := buildSimpleNet(t)
	a, b, c := net.Stations[0], net.Stations[1], net.Stations[2]
	train := railnet.Train{Name: "Q1", Capacity: 100, Initial: a}
	ts := NewTrainState(train, rm)

	moved := ts.Take(railnet.NewPick(railnet.Package{Name: "K0", Weight: 1, From: a, To: b})).
		Take(railnet.NewDrop(railnet.Package{Name: "K0", Weight: 1, From: a, To: b}))
	assert.Equal(t, b, moved.Position())

	pkgFromA := railnet.Package{Name: "K1", Weight: 1, From: a, To: c}
	assert.True(t, moved.CanTake(railnet.NewPick(pkgFromA)), "reachability is judged from the train's initial station")
}

func TestTrainState_CanPickRejectsOverCapacity(t *testing.T) {
	net, rm := buildSimpleNet(t)
	a, c := net.Stations[0], net.Stations[2]
	train := railnet.Train{Name: "Q1", Capacity: 5, Initial: a}
	ts := NewTrainState(train, rm)

	heavy := railnet.Package{Name: "K1", Weight: 6, From: a, To: c}
	assert.False(t, ts.CanTake(railnet.NewPick(heavy)))
}

func TestTrainState_CanDropRequiresPriorPickSameTrain(t *testing.T) {
	net, rm := buildSimpleNet(t)
	a, c := net.Stations[0], net.Stations[2]
	train := railnet.Train{Name: "Q1", Capacity: 10, Initial: a}
	ts := NewTrainState(train, rm)

	pkg := railnet.Package{Name: "K1", Weight: 4, From: a, To: c}
	assert.False(t, ts.CanTake(railnet.NewDrop(pkg)), "cannot drop before picking")

	afterPick := ts.Take(railnet.NewPick(pkg))
	assert.True(t, afterPick.CanTake(railnet.NewDrop(pkg)))

	afterDrop := afterPick.Take(railnet.NewDrop(pkg))
	assert.False(t, afterDrop.CanTake(railnet.NewDrop(pkg)), "cannot drop twice")
}

func TestTrainState_TakeDoesNotAliasSiblingBranches(t *testing.T) {
	net, rm := buildSimpleNet(t)
	a, b, c := net.Stations[0], net.Stations[1], net.Stations[2]
	train := railnet.Train{Name: "Q1", Capacity: 10, Initial: a}
	base := NewTrainState(train, rm)

	p1 := railnet.Package{Name: "K1", Weight: 1, From: a, To: b}
	p2 := railnet.Package{Name: "K2", Weight: 1, From: a, To: c}

	branch1 := base.Take(railnet.NewPick(p1))
	branch2 := base.Take(railnet.NewPick(p2))

	require.Len(t, branch1.TakenActions, 1)
	require.Len(t, branch2.TakenActions, 1)
	assert.Equal(t, "K1", branch1.TakenActions[0].Package.Name)
	assert.Equal(t, "K2", branch2.TakenActions[0].Package.Name)
}

func TestTrainState_TravelTimeSumsPathChain(t *testing.T) {
	net, rm := buildSimpleNet(t)
	a, b, c := net.Stations[0], net.Stations[1], net.Stations[2]
	train := railnet.Train{Name: "Q1", Capacity: 10, Initial: a}
	ts := NewTrainState(train, rm)

	pkg := railnet.Package{Name: "K1", Weight: 1, From: b, To: c}
	moved := ts.Take(railnet.NewPick(pkg)).Take(railnet.NewDrop(pkg))

	assert.Equal(t, 25, moved.TravelTime())
}

func TestTrainState_KeyDistinguishesHistories(t *testing.T) {
	net, rm := buildSimpleNet(t)
	a, b := net.Stations[0], net.Stations[1]
	train := railnet.Train{Name: "Q1", Capacity: 10, Initial: a}
	ts := NewTrainState(train, rm)

	pkg := railnet.Package{Name: "K1", Weight: 1, From: a, To: b}
	idle := ts.Key()
	afterPick := ts.Take(railnet.NewPick(pkg)).Key()

	assert.NotEqual(t, idle, afterPick)
}
