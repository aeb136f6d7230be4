package service

import "business-simulator/domain"

// Compute turns business inputs into financial results under a scenario.
// It is pure and performs no validation: inputs must be positive and finite.
func Compute(
	inputs domain.BusinessInputs,
	scenario domain.Scenario,
) domain.CalculatedResults {

	adj := scenario.Adjustment()
	volume := inputs.MonthlySalesVolume * adj.Volume
	fixedCost := inputs.MonthlyFixedCost * adj.FixedCost
	variableCost := inputs.VariableCostPerUnit * adj.VariableCost

	revenue := inputs.SellingPricePerUnit * volume
	totalCost := fixedCost + variableCost*volume
	operatingProfit := revenue - totalCost

	// Tax only applies to positive operating profit; losses pass through.
	netProfit := operatingProfit
	if operatingProfit > 0 {
		netProfit = operatingProfit * (1 - inputs.TaxRate/100)
	}

	var margin float64
	if revenue > 0 {
		margin = netProfit / revenue * 100
	}

	payback := domain.Never()
	if netProfit > 0 {
		payback = domain.AttainableAt(inputs.InitialInvestment / netProfit)
	}

	// Unadjusted selling price against the adjusted variable cost.
	contributionMargin := inputs.SellingPricePerUnit - variableCost
	breakEven := domain.Never()
	if contributionMargin > 0 {
		breakEven = domain.AttainableAt(fixedCost / contributionMargin)
	}

	return domain.CalculatedResults{
		MonthlyRevenue:   revenue,
		TotalMonthlyCost: totalCost,
		OperatingProfit:  operatingProfit,
		NetProfit:        netProfit,
		MarginPercent:    margin,
		PaybackMonths:    payback,
		BreakEvenUnits:   breakEven,
		IsViable:         netProfit > 0,
	}
}
