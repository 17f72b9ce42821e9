package reward

import (
	"context"
	"testing"
	"time"

	"github.com/centraljuan/payroll-backend-go/internal/domain/reward"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRewardRepo struct {
	rules            []reward.RewardRule
	rewardJournal    []reward.JournalEntry
	allowanceJournal []reward.JournalEntry
	allowances       []reward.AllowanceConfig

	rulesListed bool
}

func (f *fakeRewardRepo) ListActiveRules(_ context.Context) ([]reward.RewardRule, error) {
	f.rulesListed = true
	return f.rules, nil
}

func (f *fakeRewardRepo) ListRewardJournal(_ context.Context, _ string, _, _ time.Time) ([]reward.JournalEntry, error) {
	return f.rewardJournal, nil
}

func (f *fakeRewardRepo) ListAllowanceJournal(_ context.Context, _ string, _, _ time.Time) ([]reward.JournalEntry, error) {
	return f.allowanceJournal, nil
}

func (f *fakeRewardRepo) ListActiveAllowances(_ context.Context) ([]reward.AllowanceConfig, error) {
	return f.allowances, nil
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

var (
	from  = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	until = time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
)

func eligibleContext() reward.EvaluationContext {
	return reward.EvaluationContext{
		EmployeeType:       "regular",
		BasicSalary:        dec("800.00"),
		TotalRenderedHours: 88,
		DaysCredited:       11,
		Cadence:            "semi_monthly",
		DailyMinimumMet:    true,
	}
}

func TestEvaluateJournalIsAuthoritative(t *testing.T) {
	repo := &fakeRewardRepo{
		rewardJournal: []reward.JournalEntry{
			{ID: 1, EmployeeID: "emp-1", Amount: dec("1000.00"), EntryDate: from},
		},
		rules: []reward.RewardRule{
			{ID: 1, Name: "Perfect Attendance", PayoutType: reward.PayoutTypeFixed, PayoutValue: dec("500.00"), IsActive: true},
		},
		allowances: []reward.AllowanceConfig{
			{ID: 1, Name: "Meal", AmountType: reward.AmountTypeFixed, Amount: dec("100.00"), Frequency: reward.FrequencySemiMonthly, IsActive: true},
		},
	}
	svc := NewRewardService(repo)

	result, err := svc.Evaluate(context.Background(), "emp-1", from, until, eligibleContext())
	require.NoError(t, err)

	assert.True(t, result.FromJournal)
	assert.True(t, result.TotalRewards.Equal(dec("1000.00")))
	assert.True(t, result.TotalAllowances.IsZero(), "allowance rules are skipped too")
	assert.False(t, repo.rulesListed, "rule evaluation never runs when journals exist")
}

func TestEvaluateAllowanceJournalAloneAlsoWins(t *testing.T) {
	repo := &fakeRewardRepo{
		allowanceJournal: []reward.JournalEntry{
			{ID: 1, EmployeeID: "emp-1", Amount: dec("250.00"), EntryDate: from},
		},
		rules: []reward.RewardRule{
			{ID: 1, Name: "Perfect Attendance", PayoutType: reward.PayoutTypeFixed, PayoutValue: dec("500.00"), IsActive: true},
		},
	}
	svc := NewRewardService(repo)

	result, err := svc.Evaluate(context.Background(), "emp-1", from, until, eligibleContext())
	require.NoError(t, err)

	assert.True(t, result.FromJournal)
	assert.True(t, result.TotalAllowances.Equal(dec("250.00")))
	assert.True(t, result.TotalRewards.IsZero())
	assert.False(t, repo.rulesListed)
}

func TestEvaluateRulePayouts(t *testing.T) {
	repo := &fakeRewardRepo{
		rules: []reward.RewardRule{
			{ID: 1, Name: "Fixed Bonus", Priority: 3, PayoutType: reward.PayoutTypeFixed, PayoutValue: dec("300.00"), IsActive: true},
			{ID: 2, Name: "Hourly Incentive", Priority: 2, MinTotalHours: 80, PayoutType: reward.PayoutTypePerHour, PayoutValue: dec("1.50"), IsActive: true},
			{ID: 3, Name: "Salary Cut Bonus", Priority: 1, PayoutType: reward.PayoutTypePercentage, PayoutValue: dec("10"), IsActive: true},
			{ID: 4, Name: "Too Many Hours Needed", Priority: 5, MinTotalHours: 120, PayoutType: reward.PayoutTypeFixed, PayoutValue: dec("9999"), IsActive: true},
		},
	}
	svc := NewRewardService(repo)

	result, err := svc.Evaluate(context.Background(), "emp-1", from, until, eligibleContext())
	require.NoError(t, err)

	// 300.00 + 1.50*88 + 10% of 800.00 = 300 + 132 + 80
	assert.True(t, result.TotalRewards.Equal(dec("512.00")), result.TotalRewards.String())
	assert.False(t, result.FromJournal)
}

func TestEvaluateGatesNonRegularAndIneligible(t *testing.T) {
	repo := &fakeRewardRepo{
		rules: []reward.RewardRule{
			{ID: 1, Name: "Fixed Bonus", PayoutType: reward.PayoutTypeFixed, PayoutValue: dec("300.00"), IsActive: true},
		},
	}
	svc := NewRewardService(repo)

	ojt := eligibleContext()
	ojt.EmployeeType = "ojt"
	result, err := svc.Evaluate(context.Background(), "emp-1", from, until, ojt)
	require.NoError(t, err)
	assert.True(t, result.TotalRewards.IsZero())

	short := eligibleContext()
	short.DailyMinimumMet = false
	result, err = svc.Evaluate(context.Background(), "emp-1", from, until, short)
	require.NoError(t, err)
	assert.True(t, result.TotalRewards.IsZero())
}

func TestEvaluateRuleAllowList(t *testing.T) {
	repo := &fakeRewardRepo{
		rules: []reward.RewardRule{
			{ID: 1, Name: "Tenure Bonus", PayoutType: reward.PayoutTypeFixed, PayoutValue: dec("300.00"), ApplicableEmployeeTypes: []string{"contractual"}, IsActive: true},
		},
	}
	svc := NewRewardService(repo)

	result, err := svc.Evaluate(context.Background(), "emp-1", from, until, eligibleContext())
	require.NoError(t, err)
	assert.True(t, result.TotalRewards.IsZero(), "regular not in the allow-list")
}

func TestEvaluateAllowances(t *testing.T) {
	repo := &fakeRewardRepo{
		allowances: []reward.AllowanceConfig{
			{ID: 1, Name: "Transport", AmountType: reward.AmountTypeFixed, Amount: dec("400.00"), Frequency: reward.FrequencyMonthly, IsActive: true},
			{ID: 2, Name: "Meal", AmountType: reward.AmountTypeFixed, Amount: dec("150.00"), Frequency: reward.FrequencySemiMonthly, IsActive: true},
			{ID: 3, Name: "Seniority", AmountType: reward.AmountTypePercent, Amount: dec("5"), Frequency: reward.FrequencySemiMonthly, IsActive: true},
		},
	}
	svc := NewRewardService(repo)

	result, err := svc.Evaluate(context.Background(), "emp-1", from, until, eligibleContext())
	require.NoError(t, err)

	// 400/2 + 150 + 5% of 800.00 = 200 + 150 + 40
	assert.True(t, result.TotalAllowances.Equal(dec("390.00")), result.TotalAllowances.String())
}

func TestEvaluateAllowancesOnMonthlyCadenceNotHalved(t *testing.T) {
	repo := &fakeRewardRepo{
		allowances: []reward.AllowanceConfig{
			{ID: 1, Name: "Transport", AmountType: reward.AmountTypeFixed, Amount: dec("400.00"), Frequency: reward.FrequencyMonthly, IsActive: true},
		},
	}
	svc := NewRewardService(repo)

	evalCtx := eligibleContext()
	evalCtx.Cadence = "monthly"
	result, err := svc.Evaluate(context.Background(), "emp-1", from, until, evalCtx)
	require.NoError(t, err)
	assert.True(t, result.TotalAllowances.Equal(dec("400.00")))
}
