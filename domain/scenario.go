package domain

import (
	"errors"
	"fmt"
)

// ErrUnknownScenario is returned when a scenario name cannot be parsed.
var ErrUnknownScenario = errors.New("unknown scenario")

// Scenario selects a fixed adjustment of volume and costs.
// The zero value is ScenarioRealistic.
type Scenario int

const (
	ScenarioRealistic Scenario = iota
	ScenarioPessimistic
	ScenarioOptimistic
)

// Scenarios lists every scenario in display order.
var Scenarios = []Scenario{ScenarioPessimistic, ScenarioRealistic, ScenarioOptimistic}

// ScenarioAdjustment holds the multipliers applied before computing results.
// Selling price is never adjusted.
type ScenarioAdjustment struct {
	Volume       float64
	FixedCost    float64
	VariableCost float64
}

// Adjustment returns the multipliers for the scenario.
func (s Scenario) Adjustment() ScenarioAdjustment {
	switch s {
	case ScenarioPessimistic:
		return ScenarioAdjustment{Volume: 0.8, FixedCost: 1.1, VariableCost: 1.1}
	case ScenarioOptimistic:
		return ScenarioAdjustment{Volume: 1.2, FixedCost: 0.9, VariableCost: 0.9}
	case ScenarioRealistic:
		return ScenarioAdjustment{Volume: 1, FixedCost: 1, VariableCost: 1}
	}
	panic(fmt.Sprintf("domain: invalid scenario %d", int(s)))
}

func (s Scenario) String() string {
	switch s {
	case ScenarioPessimistic:
		return "pessimistic"
	case ScenarioRealistic:
		return "realistic"
	case ScenarioOptimistic:
		return "optimistic"
	}
	return fmt.Sprintf("Scenario(%d)", int(s))
}

// Valid reports whether s is one of the declared scenarios.
func (s Scenario) Valid() bool {
	switch s {
	case ScenarioPessimistic, ScenarioRealistic, ScenarioOptimistic:
		return true
	}
	return false
}

// ParseScenario maps a name to a Scenario. The empty string is realistic.
func ParseScenario(name string) (Scenario, error) {
	switch name {
	case "pessimistic":
		return ScenarioPessimistic, nil
	case "realistic", "":
		return ScenarioRealistic, nil
	case "optimistic":
		return ScenarioOptimistic, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownScenario, name)
}

func (s Scenario) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownScenario, int(s))
	}
	return []byte(s.String()), nil
}

func (s *Scenario) UnmarshalText(text []byte) error {
	parsed, err := ParseScenario(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
