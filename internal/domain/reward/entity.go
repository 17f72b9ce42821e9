package reward

import (
	"time"

	"github.com/shopspring/decimal"
)

type PayoutType string

const (
	PayoutTypeFixed      PayoutType = "fixed"
	PayoutTypePerHour    PayoutType = "per_hour"
	PayoutTypePercentage PayoutType = "percentage"
)

type RewardRule struct {
	ID                      int64
	Name                    string
	Priority                int
	MinTotalHours           float64
	MinDaysCredited         float64
	PayoutType              PayoutType
	PayoutValue             decimal.Decimal
	ApplicableEmployeeTypes []string // empty = no allow-list
	IsActive                bool
}

// AppliesTo checks the rule's employee-type allow-list.
func (r RewardRule) AppliesTo(employeeType string) bool {
	if len(r.ApplicableEmployeeTypes) == 0 {
		return true
	}
	for _, t := range r.ApplicableEmployeeTypes {
		if t == employeeType {
			return true
		}
	}
	return false
}

// JournalEntry is an authoritative pre-computed payout. When any journal
// entry exists for an employee in a period, rule evaluation is skipped.
type JournalEntry struct {
	ID         int64
	EmployeeID string
	Amount     decimal.Decimal
	EntryDate  time.Time
	Note       *string
}

type AmountType string

const (
	AmountTypeFixed   AmountType = "fixed"
	AmountTypePercent AmountType = "percent"
)

type Frequency string

const (
	FrequencyMonthly     Frequency = "monthly"
	FrequencySemiMonthly Frequency = "semi_monthly"
)

type AllowanceConfig struct {
	ID         int64
	Name       string
	AmountType AmountType
	Amount     decimal.Decimal
	Frequency  Frequency
	IsActive   bool
}
