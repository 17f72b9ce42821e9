package reward

import "github.com/shopspring/decimal"

// EvaluationContext is the payroll-side input to reward and allowance
// evaluation for one employee and cutoff.
type EvaluationContext struct {
	EmployeeType       string
	BasicSalary        decimal.Decimal
	TotalRenderedHours float64
	DaysCredited       float64
	Cadence            string // "semi_monthly" or "monthly"
	DailyMinimumMet    bool   // the reconciler's minimum-hours gate
}

type EvaluationDetail struct {
	Source string          `json:"source"` // "journal", "rule", "allowance"
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

type EvaluationResult struct {
	TotalRewards    decimal.Decimal    `json:"total_rewards"`
	TotalAllowances decimal.Decimal    `json:"total_allowances"`
	FromJournal     bool               `json:"from_journal"`
	Detail          []EvaluationDetail `json:"detail,omitempty"`
}
