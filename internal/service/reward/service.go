package reward

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/centraljuan/payroll-backend-go/internal/domain/employee"
	"github.com/centraljuan/payroll-backend-go/internal/domain/reward"
	"github.com/shopspring/decimal"
)

var two = decimal.NewFromInt(2)

type RewardServiceImpl struct {
	rewardRepo reward.RewardRepository
}

func NewRewardService(rewardRepo reward.RewardRepository) reward.RewardService {
	return &RewardServiceImpl{rewardRepo: rewardRepo}
}

// Evaluate resolves rewards and allowances for one cutoff. Any journal
// entry (reward or allowance) in the period makes the journals
// authoritative and skips rule evaluation entirely.
func (s *RewardServiceImpl) Evaluate(ctx context.Context, employeeID string, from, until time.Time, evalCtx reward.EvaluationContext) (reward.EvaluationResult, error) {
	rewardJournal, err := s.rewardRepo.ListRewardJournal(ctx, employeeID, from, until)
	if err != nil {
		return reward.EvaluationResult{}, fmt.Errorf("failed to list reward journal for employee %s: %w", employeeID, err)
	}
	allowanceJournal, err := s.rewardRepo.ListAllowanceJournal(ctx, employeeID, from, until)
	if err != nil {
		return reward.EvaluationResult{}, fmt.Errorf("failed to list allowance journal for employee %s: %w", employeeID, err)
	}

	if len(rewardJournal) > 0 || len(allowanceJournal) > 0 {
		return journalResult(rewardJournal, allowanceJournal), nil
	}

	result := reward.EvaluationResult{
		TotalRewards:    decimal.Zero,
		TotalAllowances: decimal.Zero,
	}

	rewards, detail, err := s.evaluateRules(ctx, evalCtx)
	if err != nil {
		return reward.EvaluationResult{}, err
	}
	result.TotalRewards = rewards
	result.Detail = append(result.Detail, detail...)

	allowances, detail, err := s.evaluateAllowances(ctx, evalCtx)
	if err != nil {
		return reward.EvaluationResult{}, err
	}
	result.TotalAllowances = allowances
	result.Detail = append(result.Detail, detail...)

	return result, nil
}

func journalResult(rewardJournal, allowanceJournal []reward.JournalEntry) reward.EvaluationResult {
	result := reward.EvaluationResult{
		TotalRewards:    decimal.Zero,
		TotalAllowances: decimal.Zero,
		FromJournal:     true,
	}
	for _, e := range rewardJournal {
		result.TotalRewards = result.TotalRewards.Add(e.Amount)
		result.Detail = append(result.Detail, reward.EvaluationDetail{Source: "journal", Name: entryName(e, "reward"), Amount: e.Amount})
	}
	for _, e := range allowanceJournal {
		result.TotalAllowances = result.TotalAllowances.Add(e.Amount)
		result.Detail = append(result.Detail, reward.EvaluationDetail{Source: "journal", Name: entryName(e, "allowance"), Amount: e.Amount})
	}
	return result
}

// evaluateRules walks active rules in priority order. Base eligibility is a
// regular employee who met the daily minimum-hours gate; every matching
// rule accumulates.
func (s *RewardServiceImpl) evaluateRules(ctx context.Context, evalCtx reward.EvaluationContext) (decimal.Decimal, []reward.EvaluationDetail, error) {
	total := decimal.Zero

	if evalCtx.EmployeeType != string(employee.EmployeeTypeRegular) || !evalCtx.DailyMinimumMet {
		return total, nil, nil
	}

	rules, err := s.rewardRepo.ListActiveRules(ctx)
	if err != nil {
		return decimal.Zero, nil, fmt.Errorf("failed to list reward rules: %w", err)
	}
	sort.SliceStable(rules, func(i, j int) bool { return rules[i].Priority > rules[j].Priority })

	var detail []reward.EvaluationDetail
	for _, rule := range rules {
		if evalCtx.TotalRenderedHours < rule.MinTotalHours {
			continue
		}
		if evalCtx.DaysCredited < rule.MinDaysCredited {
			continue
		}
		if !rule.AppliesTo(evalCtx.EmployeeType) {
			continue
		}

		payout := rulePayout(rule, evalCtx)
		total = total.Add(payout)
		detail = append(detail, reward.EvaluationDetail{Source: "rule", Name: rule.Name, Amount: payout})
	}

	return total, detail, nil
}

func rulePayout(rule reward.RewardRule, evalCtx reward.EvaluationContext) decimal.Decimal {
	switch rule.PayoutType {
	case reward.PayoutTypePerHour:
		return rule.PayoutValue.Mul(decimal.NewFromFloat(evalCtx.TotalRenderedHours)).Round(2)
	case reward.PayoutTypePercentage:
		return rule.PayoutValue.Div(decimal.NewFromInt(100)).Mul(evalCtx.BasicSalary).Round(2)
	default:
		return rule.PayoutValue.Round(2)
	}
}

func (s *RewardServiceImpl) evaluateAllowances(ctx context.Context, evalCtx reward.EvaluationContext) (decimal.Decimal, []reward.EvaluationDetail, error) {
	configs, err := s.rewardRepo.ListActiveAllowances(ctx)
	if err != nil {
		return decimal.Zero, nil, fmt.Errorf("failed to list allowance configs: %w", err)
	}

	total := decimal.Zero
	var detail []reward.EvaluationDetail
	for _, cfg := range configs {
		amount := cfg.Amount
		if cfg.AmountType == reward.AmountTypePercent {
			amount = cfg.Amount.Div(decimal.NewFromInt(100)).Mul(evalCtx.BasicSalary)
		}
		// A monthly allowance pays half per cutoff on a semi-monthly run.
		if cfg.Frequency == reward.FrequencyMonthly && evalCtx.Cadence == string(reward.FrequencySemiMonthly) {
			amount = amount.Div(two)
		}
		amount = amount.Round(2)
		total = total.Add(amount)
		detail = append(detail, reward.EvaluationDetail{Source: "allowance", Name: cfg.Name, Amount: amount})
	}

	return total, detail, nil
}

func entryName(e reward.JournalEntry, fallback string) string {
	if e.Note != nil && *e.Note != "" {
		return *e.Note
	}
	return fallback
}
