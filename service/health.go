package service

import "business-simulator/domain"

// Recommendations are offered whenever a business is not viable.
var Recommendations = []string{
	"Raise your selling price to improve margins.",
	"Cut fixed costs by renegotiating contracts or finding cheaper alternatives.",
	"Lower variable costs per unit through bulk purchasing or process improvements.",
	"Grow sales volume through marketing or by expanding your market.",
}

// ClassifyHealth bands the headline figures of a result.
func ClassifyHealth(
	results domain.CalculatedResults,
	inputs domain.BusinessInputs,
) domain.KPIHealth {

	var health domain.KPIHealth

	switch {
	case results.MarginPercent > moderateMarginPercent:
		health.Margin = domain.BandMarginHealthy
	case results.MarginPercent > 0:
		health.Margin = domain.BandMarginLow
	default:
		health.Margin = domain.BandMarginNegative
	}

	months, ok := results.PaybackMonths.Value()
	switch {
	case !ok || results.NetProfit <= 0:
		health.Payback = domain.BandPaybackNotRecoverable
	case months <= moderatePaybackMonths:
		health.Payback = domain.BandPaybackQuick
	case months <= longPaybackMonths:
		health.Payback = domain.BandPaybackModerate
	default:
		health.Payback = domain.BandPaybackLong
	}

	health.BreakEven = domain.BandBelowBreakEven
	if units, ok := results.BreakEvenUnits.Value(); ok && units <= inputs.MonthlySalesVolume {
		health.BreakEven = domain.BandAboveBreakEven
	}

	return health
}

// RecommendationsFor returns the improvement steps for a non-viable result.
func RecommendationsFor(results domain.CalculatedResults) []string {
	if results.IsViable {
		return nil
	}
	out := make([]string, len(Recommendations))
	copy(out, Recommendations)
	return out
}
