package domain

// MaxProjectionMonths bounds every cash-flow projection horizon.
const MaxProjectionMonths = 120

// CashFlowPoint is the cumulative cash position at the end of a month.
type CashFlowPoint struct {
	Month      int     `json:"month"`
	Cumulative float64 `json:"cumulative"`
}

// CashFlowProjection is a linear projection of net profit against the
// initial investment. PaybackMonth is the first month whose cumulative
// value is non-negative, or zero when it is not reached within Months.
type CashFlowProjection struct {
	Scenario     Scenario        `json:"scenario"`
	Months       int             `json:"months"`
	Points       []CashFlowPoint `json:"points"`
	PaybackMonth int             `json:"paybackMonth,omitempty"`
}

type ScenarioOutcome struct {
	Scenario   Scenario           `json:"scenario"`
	Results    CalculatedResults  `json:"results"`
	Projection CashFlowProjection `json:"projection"`
}

type ScenarioComparison struct {
	Inputs   BusinessInputs    `json:"inputs"`
	Outcomes []ScenarioOutcome `json:"outcomes"`
	Best     Scenario          `json:"best"`
	Worst    Scenario          `json:"worst"`
	ViableIn []Scenario        `json:"viableIn"`
}

// Verdict is the executive summary of a simulation.
type Verdict struct {
	Viable   bool   `json:"viable"`
	Headline string `json:"headline"`
	Summary  string `json:"summary"`
}

// Analysis carries the improvement steps only when the business is not viable.
type Analysis struct {
	Simulation
	Verdict         Verdict            `json:"verdict"`
	Health          KPIHealth          `json:"health"`
	Projection      CashFlowProjection `json:"projection"`
	Recommendations []string           `json:"recommendations,omitempty"`
}
