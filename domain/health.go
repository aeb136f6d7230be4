package domain

// Band is the health classification of one headline figure.
type Band string

const (
	BandMarginHealthy  Band = "healthy"
	BandMarginLow      Band = "low"
	BandMarginNegative Band = "negative"

	BandPaybackQuick          Band = "quick"
	BandPaybackModerate       Band = "moderate"
	BandPaybackLong           Band = "long"
	BandPaybackNotRecoverable Band = "not_recoverable"

	BandAboveBreakEven Band = "above_break_even"
	BandBelowBreakEven Band = "below_break_even"
)

// KPIHealth classifies margin, payback and break-even for display.
type KPIHealth struct {
	Margin    Band `json:"margin"`
	Payback   Band `json:"payback"`
	BreakEven Band `json:"breakEven"`
}
