package main

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/statekit/pkg/statemachine"
)

//go:embed scenario.yaml
var defaultScenario []byte

// Scenario describes which states a demo run registers and which kinds it
// changes to, in order.
type Scenario struct {
	Name    string              `yaml:"name"`
	Initial statemachine.Kind   `yaml:"initial"`
	States  []statemachine.Kind `yaml:"states"`
	Steps   []statemachine.Kind `yaml:"steps"`
}

var errEmptyScenario = errors.New("scenario has no steps")

// ParseScenario decodes and validates a YAML scenario.
func ParseScenario(data []byte) (Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return Scenario{}, fmt.Errorf("decode scenario: %w", err)
	}
	if sc.Initial == "" {
		sc.Initial = Idle
	}
	if len(sc.Steps) == 0 {
		return Scenario{}, errEmptyScenario
	}
	for _, k := range append([]statemachine.Kind{sc.Initial}, sc.States...) {
		if _, ok := catalog[k]; !ok {
			return Scenario{}, fmt.Errorf("scenario references unknown state %q", k)
		}
	}
	return sc, nil
}

// LoadScenario reads the scenario at path, or the embedded default when path is empty.
func LoadScenario(path string) (Scenario, error) {
	if path == "" {
		return ParseScenario(defaultScenario)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("read scenario: %w", err)
	}
	return ParseScenario(data)
}
