package cmd

import (
	"strconv"
	"strings"

	"github.com/railplan/railplan/internal/railnet"
)

func parseStations(raw []string) []string {
	stations := make([]string, len(raw))
	copy(stations, raw)
	return stations
}

// parseRoutes parses --route NAME,STATION1,STATION2,TIME records.
func parseRoutes(raw []string) ([]railnet.RouteInput, error) {
	routes := make([]railnet.RouteInput, 0, len(raw))
	for _, rec := range raw {
		fields := strings.Split(rec, ",")
		if len(fields) != 4 {
			return nil, &railnet.InputFormatError{Template: "[NAME],[STATION1],[STATION2],[TIME]"}
		}
		travelTime, err := strconv.Atoi(fields[3])
		if err != nil {
			return nil, &railnet.InputFormatError{Template: "[NAME],[STATION1],[STATION2],[TIME]", Cause: err}
		}
		routes = append(routes, railnet.RouteInput{
			Name:       fields[0],
			From:       fields[1],
			To:         fields[2],
			TravelTime: travelTime,
		})
	}
	return routes, nil
}

// parsePackages parses --package NAME,WEIGHT,SRC,DST records.
func parsePackages(raw []string) ([]railnet.PackageInput, error) {
	packages := make([]railnet.PackageInput, 0, len(raw))
	for _, rec := range raw {
		fields := strings.Split(rec, ",")
		if len(fields) != 4 {
			return nil, &railnet.InputFormatError{Template: "[NAME],[WEIGHT],[SRC],[DST]"}
		}
		weight, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, &railnet.InputFormatError{Template: "[NAME],[WEIGHT],[SRC],[DST]", Cause: err}
		}
		packages = append(packages, railnet.PackageInput{
			Name:   fields[0],
			Weight: weight,
			From:   fields[2],
			To:     fields[3],
		})
	}
	return packages, nil
}

// parseTrains parses --train NAME,CAPACITY,INITIAL_STATION records.
func parseTrains(raw []string) ([]railnet.TrainInput, error) {
	trains := make([]railnet.TrainInput, 0, len(raw))
	for _, rec := range raw {
		fields := strings.Split(rec, ",")
		if len(fields) != 3 {
			return nil, &railnet.InputFormatError{Template: "[NAME],[CAPACITY],[INITIAL_STATION]"}
		}
		capacity, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, &railnet.InputFormatError{Template: "[NAME],[CAPACITY],[INITIAL_STATION]", Cause: err}
		}
		trains = append(trains, railnet.TrainInput{
			Name:     fields[0],
			Capacity: capacity,
			Initial:  fields[2],
		})
	}
	return trains, nil
}
