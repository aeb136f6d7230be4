package domain

// BusinessInputs are the seller's own assumptions about the business.
// All fields are expected to be strictly positive; callers validate.
type BusinessInputs struct {
	InitialInvestment   float64 `json:"initialInvestment" validate:"gt=0"`
	MonthlyFixedCost    float64 `json:"monthlyFixedCost" validate:"gt=0"`
	VariableCostPerUnit float64 `json:"variableCostPerUnit" validate:"gt=0"`
	SellingPricePerUnit float64 `json:"sellingPricePerUnit" validate:"gt=0"`
	MonthlySalesVolume  float64 `json:"monthlySalesVolume" validate:"gt=0"`
	TaxRate             float64 `json:"taxRate" validate:"gte=0,lte=100"` // percentage
}

// CalculatedResults is fully determined by the inputs and the scenario.
type CalculatedResults struct {
	MonthlyRevenue   float64    `json:"monthlyRevenue"`
	TotalMonthlyCost float64    `json:"totalMonthlyCost"`
	OperatingProfit  float64    `json:"operatingProfit"`
	NetProfit        float64    `json:"netProfit"`
	MarginPercent    float64    `json:"marginPercent"`
	PaybackMonths    Attainable `json:"paybackMonths"`
	BreakEvenUnits   Attainable `json:"breakEvenUnits"`
	IsViable         bool       `json:"isViable"`
}

// SimulationRequest is the payload accepted by every simulation endpoint.
type SimulationRequest struct {
	Inputs   BusinessInputs `json:"inputs"`
	Scenario Scenario       `json:"scenario"`
}

// Simulation bundles the engine output with the risks derived from it.
type Simulation struct {
	Scenario Scenario          `json:"scenario"`
	Inputs   BusinessInputs    `json:"inputs"`
	Results  CalculatedResults `json:"results"`
	Risks    []RiskFinding     `json:"risks"`
}
