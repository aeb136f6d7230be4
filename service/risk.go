package service

import (
	"fmt"
	"math"

	"business-simulator/domain"
)

const (
	lowMarginPercent      = 10.0
	moderateMarginPercent = 20.0

	longPaybackMonths     = 24.0
	moderatePaybackMonths = 12.0

	highFixedCostRatio        = 50.0
	significantFixedCostRatio = 30.0

	nearBreakEvenShare = 0.9
)

// IdentifyRisks evaluates the risk rules in a fixed order. Rules are not
// exclusive, so one result can produce several findings. A viable business
// that triggers no rule gets a single low-severity finding.
func IdentifyRisks(
	results domain.CalculatedResults,
	inputs domain.BusinessInputs,
) []domain.RiskFinding {

	risks := []domain.RiskFinding{}

	margin := results.MarginPercent
	if margin > 0 && margin < lowMarginPercent {
		risks = append(risks, domain.RiskFinding{
			Code:     domain.RiskLowMargin,
			Title:    "Low Profit Margin",
			Severity: domain.SeverityHigh,
			Description: fmt.Sprintf("Your profit margin of %s%% is below the recommended 10%%. "+
				"Small cost increases or price cuts could make the business unprofitable.",
				FormatNumber(margin)),
		})
	} else if margin >= lowMarginPercent && margin < moderateMarginPercent {
		risks = append(risks, domain.RiskFinding{
			Code:     domain.RiskModerateMargin,
			Title:    "Moderate Profit Margin",
			Severity: domain.SeverityMedium,
			Description: fmt.Sprintf("Your margin of %s%% is acceptable but could be improved for more resilience.",
				FormatNumber(margin)),
		})
	}

	if months, ok := results.PaybackMonths.Value(); ok {
		if months > longPaybackMonths {
			risks = append(risks, domain.RiskFinding{
				Code:     domain.RiskLongPayback,
				Title:    "Long Payback Period",
				Severity: domain.SeverityHigh,
				Description: fmt.Sprintf("Recovering your investment will take %s months. "+
					"Consider whether you can sustain operations for that long.",
					FormatNumber(months)),
			})
		} else if months > moderatePaybackMonths {
			risks = append(risks, domain.RiskFinding{
				Code:     domain.RiskModeratePayback,
				Title:    "Moderate Payback Period",
				Severity: domain.SeverityMedium,
				Description: fmt.Sprintf("Your payback period of %s months is reasonable but requires sustained performance.",
					FormatNumber(months)),
			})
		}
	}

	ratio := fixedCostRatio(inputs.MonthlyFixedCost, results.MonthlyRevenue)
	if ratio > highFixedCostRatio {
		description := fmt.Sprintf("Fixed costs represent %s%% of revenue. This reduces flexibility during slow periods.",
			FormatNumber(ratio))
		if math.IsInf(ratio, 1) {
			description = "Fixed costs are incurred with no revenue to cover them. Every month adds to the loss."
		}
		risks = append(risks, domain.RiskFinding{
			Code:        domain.RiskHighFixedCosts,
			Title:       "High Fixed Cost Burden",
			Severity:    domain.SeverityHigh,
			Description: description,
		})
	} else if ratio > significantFixedCostRatio {
		risks = append(risks, domain.RiskFinding{
			Code:     domain.RiskSignificantFixed,
			Title:    "Significant Fixed Costs",
			Severity: domain.SeverityMedium,
			Description: fmt.Sprintf("Fixed costs are at %s%% of revenue. Monitor them closely to stay profitable.",
				FormatNumber(ratio)),
		})
	}

	if units, ok := results.BreakEvenUnits.Value(); ok &&
		units > inputs.MonthlySalesVolume*nearBreakEvenShare &&
		units <= inputs.MonthlySalesVolume {
		risks = append(risks, domain.RiskFinding{
			Code:     domain.RiskNearBreakEven,
			Title:    "Operating Near Break-Even",
			Severity: domain.SeverityMedium,
			Description: "Projected sales are only slightly above the break-even point. " +
				"A small drop in sales could result in losses.",
		})
	}

	if margin <= 0 {
		risks = append(risks, domain.RiskFinding{
			Code:     domain.RiskNegativeMargin,
			Title:    "Negative Profit Margin",
			Severity: domain.SeverityHigh,
			Description: "Your costs exceed your revenue. " +
				"The business model must be restructured to become viable.",
		})
	}

	if results.NetProfit <= 0 {
		risks = append(risks, domain.RiskFinding{
			Code:     domain.RiskUnrecoverable,
			Title:    "Investment Not Recoverable",
			Severity: domain.SeverityHigh,
			Description: fmt.Sprintf("With a net profit of %s, the initial investment of %s will never be recovered. "+
				"The business model must be restructured.",
				FormatCurrency(results.NetProfit), FormatCurrency(inputs.InitialInvestment)),
		})
	}

	if len(risks) == 0 && results.IsViable {
		risks = append(risks, domain.RiskFinding{
			Code:     domain.RiskSolidPosition,
			Title:    "Solid Financial Position",
			Severity: domain.SeverityLow,
			Description: "Your business shows healthy margins, reasonable payback and manageable costs. " +
				"Keep monitoring performance.",
		})
	}

	return risks
}

// fixedCostRatio is the share of revenue consumed by fixed costs, in percent.
// Zero revenue exceeds every band.
func fixedCostRatio(fixedCost, revenue float64) float64 {
	if revenue <= 0 {
		return math.Inf(1)
	}
	return fixedCost / revenue * 100
}
