package service

import "business-simulator/domain"

const (
	MaxInvestment       = 1_000_000_000.0 // 1 billion
	MaxMonthlyCost      = 100_000_000.0
	MaxUnitAmount       = 10_000_000.0 // price or cost per unit
	MaxMonthlyVolume    = 1_000_000_000.0
	MaxProjectionMonths = domain.MaxProjectionMonths

	// DefaultProjectionMonths is the horizon of the cash-flow charts.
	DefaultProjectionMonths = 24
)
