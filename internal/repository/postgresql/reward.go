package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/centraljuan/payroll-backend-go/internal/domain/reward"
	"github.com/centraljuan/payroll-backend-go/internal/pkg/database"
)

type rewardRepository struct {
	db *database.DB
}

func NewRewardRepository(db *database.DB) reward.RewardRepository {
	return &rewardRepository{db: db}
}

func (r *rewardRepository) ListActiveRules(ctx context.Context) ([]reward.RewardRule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, priority, min_total_hours, min_days_credited,
			payout_type, payout_value, applicable_employee_types, is_active
		FROM reward_rules
		WHERE is_active = true
		ORDER BY priority DESC, id ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list reward rules: %w", err)
	}
	defer rows.Close()

	var rules []reward.RewardRule
	for rows.Next() {
		var rule reward.RewardRule
		if err := rows.Scan(
			&rule.ID, &rule.Name, &rule.Priority, &rule.MinTotalHours, &rule.MinDaysCredited,
			&rule.PayoutType, &rule.PayoutValue, &rule.ApplicableEmployeeTypes, &rule.IsActive,
		); err != nil {
			return nil, fmt.Errorf("failed to scan reward rule: %w", err)
		}
		rules = append(rules, rule)
	}
	return rules, rows.Err()
}

func (r *rewardRepository) ListRewardJournal(ctx context.Context, employeeID string, from, until time.Time) ([]reward.JournalEntry, error) {
	return r.listJournal(ctx, "reward_journal_entries", employeeID, from, until)
}

func (r *rewardRepository) ListAllowanceJournal(ctx context.Context, employeeID string, from, until time.Time) ([]reward.JournalEntry, error) {
	return r.listJournal(ctx, "allowance_journal_entries", employeeID, from, until)
}

func (r *rewardRepository) listJournal(ctx context.Context, table, employeeID string, from, until time.Time) ([]reward.JournalEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT id, employee_id, amount, entry_date, note
		FROM %s
		WHERE employee_id = $1 AND entry_date BETWEEN $2 AND $3
		ORDER BY entry_date ASC`, table)

	rows, err := q.Query(ctx, query, employeeID, from, until)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", table, err)
	}
	defer rows.Close()

	var entries []reward.JournalEntry
	for rows.Next() {
		var e reward.JournalEntry
		if err := rows.Scan(&e.ID, &e.EmployeeID, &e.Amount, &e.EntryDate, &e.Note); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *rewardRepository) ListActiveAllowances(ctx context.Context) ([]reward.AllowanceConfig, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, amount_type, amount, frequency, is_active
		FROM allowance_configs
		WHERE is_active = true
		ORDER BY id ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list allowance configs: %w", err)
	}
	defer rows.Close()

	var configs []reward.AllowanceConfig
	for rows.Next() {
		var c reward.AllowanceConfig
		if err := rows.Scan(&c.ID, &c.Name, &c.AmountType, &c.Amount, &c.Frequency, &c.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan allowance config: %w", err)
		}
		configs = append(configs, c)
	}
	return configs, rows.Err()
}
