// Package testutil provides the end-to-end scenario fixtures
// (testdata/scenarios.json) and their loader. Its own test re-checks
// each scenario's expected makespan through the full solver.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/railplan/railplan/internal/railnet"
)

// Scenario is a single named end-to-end network fixture, with its
// expected makespan.
type Scenario struct {
	Name             string                 `json:"name"`
	Stations         []string               `json:"stations"`
	Routes           []railnet.RouteInput   `json:"routes"`
	Packages         []railnet.PackageInput `json:"packages"`
	Trains           []railnet.TrainInput   `json:"trains"`
	ExpectedMakespan int                    `json:"expected_makespan"`
}

// ScenarioSet is the structure of testdata/scenarios.json.
type ScenarioSet struct {
	Scenarios []Scenario `json:"scenarios"`
}

// LoadScenarios loads the end-to-end scenario fixtures from the
// testdata directory. The path is resolved relative to this source
// file: internal/testutil/ -> testdata/.
func LoadScenarios(t *testing.T) []Scenario {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("failed to get current file path")
	}
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "testdata", "scenarios.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read scenario fixtures: %v", err)
	}

	var set ScenarioSet
	if err := json.Unmarshal(data, &set); err != nil {
		t.Fatalf("failed to parse scenario fixtures: %v", err)
	}
	return set.Scenarios
}
