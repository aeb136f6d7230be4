package http

import (
	"business-simulator/domain"
	"business-simulator/service"
)

// DisplayResults are the results formatted for direct rendering.
type DisplayResults struct {
	MonthlyRevenue   string `json:"monthlyRevenue"`
	TotalMonthlyCost string `json:"totalMonthlyCost"`
	OperatingProfit  string `json:"operatingProfit"`
	NetProfit        string `json:"netProfit"`
	MarginPercent    string `json:"marginPercent"`
	PaybackMonths    string `json:"paybackMonths"`
	BreakEvenUnits   string `json:"breakEvenUnits"`
	Status           string `json:"status"`

	Health domain.KPIHealth `json:"health"`
}

func NewDisplayResults(r domain.CalculatedResults, inputs domain.BusinessInputs) DisplayResults {
	status := "Not viable"
	if r.IsViable {
		status = "Viable"
	}
	return DisplayResults{
		MonthlyRevenue:   service.FormatCurrency(r.MonthlyRevenue),
		TotalMonthlyCost: service.FormatCurrency(r.TotalMonthlyCost),
		OperatingProfit:  service.FormatCurrency(r.OperatingProfit),
		NetProfit:        service.FormatCurrency(r.NetProfit),
		MarginPercent:    service.FormatNumber(r.MarginPercent) + "%",
		PaybackMonths:    service.FormatAttainable(r.PaybackMonths, "months", "Not recoverable"),
		BreakEvenUnits:   service.FormatAttainable(r.BreakEvenUnits, "units", "N/A"),
		Status:           status,
		Health:           service.ClassifyHealth(r, inputs),
	}
}
