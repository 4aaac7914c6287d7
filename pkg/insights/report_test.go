package insights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSummary(t *testing.T) {
	asOf := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)
	snap := &Snapshot{
		Transactions: []*Transaction{
			tx("t1", 3000, 2025, time.March, 1, "Salary"),
			tx("t2", -1200, 2025, time.March, 5, "Rent"),
			tx("t3", -800, 2025, time.February, 10, "Rent"),
		},
		Accounts: []*Account{
			{ID: "a1", Name: "Checking", Balance: 2500},
			{ID: "a2", Name: "Savings", Balance: 7500},
		},
		Goals: []*Goal{
			{ID: "g1", Name: "Vacation", TargetAmount: 2000, CurrentAmount: 500},
			{ID: "g2", Name: "Done", TargetAmount: 100, CurrentAmount: 100, IsCompleted: true},
		},
		Bills: []*Bill{
			{ID: "b1", Name: "Rent", IsActive: true},
			{ID: "b2", Name: "Old gym", IsActive: false},
		},
	}

	ranges := resolveDateRanges(asOf)
	stats := aggregate(snap, ranges)
	summary := buildSummary(snap, stats, predictExpenses(ranges, stats))

	assert.Equal(t, 10000.0, summary.CurrentBalance)
	assert.Equal(t, 3000.0, summary.MonthlyIncome)
	assert.Equal(t, 1200.0, summary.MonthlyExpenses)
	assert.Equal(t, 60.0, summary.SavingsRate)
	assert.Equal(t, 3, summary.TransactionCount)
	assert.Equal(t, 1, summary.ActiveGoalCount)
	assert.Equal(t, 1, summary.ActiveBillCount)

	// Projected 1200/20*31 = 1860 vs 800 last month, well past the dead band
	assert.Equal(t, TrendUp, summary.SpendingTrend)
}

func TestBuildSummary_NoForecast(t *testing.T) {
	summary := buildSummary(&Snapshot{}, &CategoryStats{}, nil)
	assert.Equal(t, TrendStable, summary.SpendingTrend)
}

func TestApplyRounding(t *testing.T) {
	report := &InsightsReport{
		HealthScore: &HealthScore{
			Components: HealthComponents{BudgetAdherence: 12.3456},
		},
		Anomalies: []*Anomaly{{Amount: 99.999, ZScore: 3.14159}},
		ExpenseForecast: &ExpenseForecast{
			MonthToDate:           450.006,
			DailyAverage:          22.5001,
			ProjectedMonthlyTotal: 675.0075,
			Categories:            []*CategoryForecast{{SpentSoFar: 10.111, ProjectedTotal: 15.166}},
		},
		GoalPredictions: []*GoalPrediction{{ProgressPercent: 33.333, RequiredMonthly: 571.42857}},
		BillImpact:      &BillImpact{PercentOfIncome: 47.44, UpcomingTotal: 1200.0049},
		Summary:         &ReportSummary{SavingsRate: 12.6, MonthlyExpenses: 1234.567},
	}

	report.applyRounding()

	assert.Equal(t, 12.35, report.HealthScore.Components.BudgetAdherence)
	assert.Equal(t, 100.0, report.Anomalies[0].Amount)
	assert.Equal(t, 3.14, report.Anomalies[0].ZScore)
	assert.Equal(t, 450.01, report.ExpenseForecast.MonthToDate)
	assert.Equal(t, 22.5, report.ExpenseForecast.DailyAverage)
	assert.Equal(t, 675.01, report.ExpenseForecast.ProjectedMonthlyTotal)
	assert.Equal(t, 15.17, report.ExpenseForecast.Categories[0].ProjectedTotal)
	assert.Equal(t, 33.0, report.GoalPredictions[0].ProgressPercent)
	assert.Equal(t, 571.43, report.GoalPredictions[0].RequiredMonthly)
	assert.Equal(t, 47.0, report.BillImpact.PercentOfIncome)
	assert.Equal(t, 1200.0, report.BillImpact.UpcomingTotal)
	assert.Equal(t, 13.0, report.Summary.SavingsRate)
	assert.Equal(t, 1234.57, report.Summary.MonthlyExpenses)
}

func TestApplyRounding_EmptyReport(t *testing.T) {
	report := &InsightsReport{}
	require.NotPanics(t, func() { report.applyRounding() })
}
