package domain

import "fmt"

type Severity int

const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
)

func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	}
	return fmt.Sprintf("Severity(%d)", int(s))
}

func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Severity) UnmarshalText(text []byte) error {
	switch string(text) {
	case "low":
		*s = SeverityLow
	case "medium":
		*s = SeverityMedium
	case "high":
		*s = SeverityHigh
	default:
		return fmt.Errorf("unknown severity %q", text)
	}
	return nil
}

// RiskCode identifies the rule that produced a finding.
type RiskCode string

const (
	RiskLowMargin        RiskCode = "low_margin"
	RiskModerateMargin   RiskCode = "moderate_margin"
	RiskLongPayback      RiskCode = "long_payback"
	RiskModeratePayback  RiskCode = "moderate_payback"
	RiskHighFixedCosts   RiskCode = "high_fixed_costs"
	RiskSignificantFixed RiskCode = "significant_fixed_costs"
	RiskNearBreakEven    RiskCode = "near_break_even"
	RiskNegativeMargin   RiskCode = "negative_margin"
	RiskUnrecoverable    RiskCode = "unrecoverable_investment"
	RiskSolidPosition    RiskCode = "solid_position"
)

type RiskFinding struct {
	Code        RiskCode `json:"code"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
}
