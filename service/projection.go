package service

import "business-simulator/domain"

// ProjectCashFlow projects the cumulative cash position month by month,
// starting from the initial investment and adding a constant net profit.
func ProjectCashFlow(
	inputs domain.BusinessInputs,
	scenario domain.Scenario,
	results domain.CalculatedResults,
	months int,
) domain.CashFlowProjection {

	if months <= 0 {
		months = DefaultProjectionMonths
	}

	projection := domain.CashFlowProjection{
		Scenario: scenario,
		Months:   months,
		Points:   make([]domain.CashFlowPoint, 0, months),
	}

	for month := 1; month <= months; month++ {
		cumulative := -inputs.InitialInvestment + results.NetProfit*float64(month)
		projection.Points = append(projection.Points, domain.CashFlowPoint{
			Month:      month,
			Cumulative: cumulative,
		})
		if projection.PaybackMonth == 0 && cumulative >= 0 {
			projection.PaybackMonth = month
		}
	}

	return projection
}

// CompareScenarios computes every scenario for the same inputs.
// Best and Worst are ranked by net profit.
func CompareScenarios(
	inputs domain.BusinessInputs,
	months int,
) domain.ScenarioComparison {

	comparison := domain.ScenarioComparison{
		Inputs:   inputs,
		Outcomes: make([]domain.ScenarioOutcome, 0, len(domain.Scenarios)),
		ViableIn: []domain.Scenario{},
	}

	var best, worst *domain.ScenarioOutcome
	for _, scenario := range domain.Scenarios {
		results := Compute(inputs, scenario)
		comparison.Outcomes = append(comparison.Outcomes, domain.ScenarioOutcome{
			Scenario:   scenario,
			Results:    results,
			Projection: ProjectCashFlow(inputs, scenario, results, months),
		})
		if results.IsViable {
			comparison.ViableIn = append(comparison.ViableIn, scenario)
		}
	}

	for i := range comparison.Outcomes {
		outcome := &comparison.Outcomes[i]
		if best == nil || outcome.Results.NetProfit > best.Results.NetProfit {
			best = outcome
		}
		if worst == nil || outcome.Results.NetProfit < worst.Results.NetProfit {
			worst = outcome
		}
	}
	comparison.Best = best.Scenario
	comparison.Worst = worst.Scenario

	return comparison
}
