package reward

import (
	"context"
	"time"
)

// RewardRepository reads the reward/allowance reference tables and the
// authoritative journals. All read-only.
type RewardRepository interface {
	ListActiveRules(ctx context.Context) ([]RewardRule, error)
	ListRewardJournal(ctx context.Context, employeeID string, from, until time.Time) ([]JournalEntry, error)
	ListAllowanceJournal(ctx context.Context, employeeID string, from, until time.Time) ([]JournalEntry, error)
	ListActiveAllowances(ctx context.Context) ([]AllowanceConfig, error)
}
