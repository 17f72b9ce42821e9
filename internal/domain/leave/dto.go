package leave

// AttributionDetail carries the balance snapshot for one consumed request,
// kept on the payroll record for audit.
type AttributionDetail struct {
	RequestID        int64   `json:"request_id"`
	LeaveTypeName    string  `json:"leave_type_name"`
	IsPaid           bool    `json:"is_paid"`
	OverlapDays      float64 `json:"overlap_days"`
	UsableDays       float64 `json:"usable_days"`
	BalanceRemaining float64 `json:"balance_remaining"`
}

type AttributionResult struct {
	PaidDays   float64             `json:"paid_days"`
	UnpaidDays float64             `json:"unpaid_days"`
	Detail     []AttributionDetail `json:"detail"`
}
