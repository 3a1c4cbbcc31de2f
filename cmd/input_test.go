package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/railplan/railplan/internal/railnet"
)

func TestParseRoutes_WellFormed(t *testing.T) {
	routes, err := parseRoutes([]string{"AB,A,B,10"})
	require.NoError(t, err)
	assert.Equal(t, []railnet.RouteInput{{Name: "AB", From: "A", To: "B", TravelTime: 10}}, routes)
}

func TestParseRoutes_WrongFieldCount(t *testing.T) {
	_, err := parseRoutes([]string{"AB,A,B"})
	require.Error(t, err)
	var fmtErr *railnet.InputFormatError
	require.ErrorAs(t, err, &fmtErr)
	assert.Equal(t, "[NAME],[STATION1],[STATION2],[TIME]", fmtErr.Template)
}

func TestParseRoutes_NonIntegerTime(t *testing.T) {
	_, err := parseRoutes([]string{"AB,A,B,ten"})
	require.Error(t, err)
	var fmtErr *railnet.InputFormatError
	require.ErrorAs(t, err, &fmtErr)
	assert.Error(t, fmtErr.Cause)
}

func TestParsePackages_WellFormed(t *testing.T) {
	packages, err := parsePackages([]string{"P,5,A,C"})
	require.NoError(t, err)
	assert.Equal(t, []railnet.PackageInput{{Name: "P", Weight: 5, From: "A", To: "C"}}, packages)
}

func TestParsePackages_WrongFieldCount(t *testing.T) {
	_, err := parsePackages([]string{"P,5,A"})
	require.Error(t, err)
	var fmtErr *railnet.InputFormatError
	require.ErrorAs(t, err, &fmtErr)
	assert.Equal(t, "[NAME],[WEIGHT],[SRC],[DST]", fmtErr.Template)
}

func TestParseTrains_WellFormed(t *testing.T) {
	trains, err := parseTrains([]string{"T,5,A"})
	require.NoError(t, err)
	assert.Equal(t, []railnet.TrainInput{{Name: "T", Capacity: 5, Initial: "A"}}, trains)
}

func TestParseTrains_NonIntegerCapacity(t *testing.T) {
	_, err := parseTrains([]string{"T,five,A"})
	require.Error(t, err)
	var fmtErr *railnet.InputFormatError
	require.ErrorAs(t, err, &fmtErr)
}
