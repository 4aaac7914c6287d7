package insights

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

const maxProactiveInsights = 6

const (
	lowHealthScore  = 40
	highHealthScore = 80

	nearLimitRatio = 0.9
	lowSavingsRate = 10
)

// rankInsights merges the analyzer outputs into a priority-sorted list of
// human-readable takeaways, capped at six. Sorting is stable within a
// priority so candidate order is preserved.
func rankInsights(report *InsightsReport, snap *Snapshot, stats *CategoryStats) []*ProactiveInsight {
	var candidates []*ProactiveInsight

	add := func(priority, title, message string) {
		candidates = append(candidates, &ProactiveInsight{
			ID:       uuid.New().String(),
			Priority: priority,
			Title:    title,
			Message:  message,
		})
	}

	// Health commentary
	if report.HealthScore != nil {
		switch {
		case report.HealthScore.Score < lowHealthScore:
			add(PriorityHigh, "Financial health needs attention",
				fmt.Sprintf("Your health score is %d (%s); start with the factors listed in the score breakdown",
					report.HealthScore.Score, report.HealthScore.Grade))
		case report.HealthScore.Score >= highHealthScore:
			add(PriorityLow, "Well done",
				fmt.Sprintf("Your health score is %d (%s); keep it up", report.HealthScore.Score, report.HealthScore.Grade))
		}
	}

	// Budget positions
	var overBudget, nearLimit []string
	for _, b := range snap.Budgets {
		if b.Limit <= 0 {
			continue
		}
		cat := snap.BudgetCategoryName(b)
		spent := stats.MTDByCategory[cat]
		switch {
		case spent > b.Limit:
			overBudget = append(overBudget, cat)
		case spent >= b.Limit*nearLimitRatio:
			nearLimit = append(nearLimit, cat)
		}
	}
	if len(overBudget) > 0 {
		add(PriorityHigh, "Over budget",
			fmt.Sprintf("%d categor(ies) over budget this month: %s", len(overBudget), strings.Join(overBudget, ", ")))
	}
	if len(nearLimit) > 0 {
		add(PriorityMedium, "Approaching budget limits",
			fmt.Sprintf("Close to the limit in: %s", strings.Join(nearLimit, ", ")))
	}

	// Spending trend
	if report.Summary != nil && report.Summary.SpendingTrend == TrendUp && report.ExpenseForecast != nil {
		add(PriorityMedium, "Spending is trending up",
			fmt.Sprintf("Projected $%.2f this month versus $%.2f last month",
				report.ExpenseForecast.ProjectedMonthlyTotal, stats.PrevMonthExpense))
	}

	// Savings rate
	if stats.MonthIncome > 0 && stats.SavingsRate() < lowSavingsRate {
		add(PriorityMedium, "Low savings rate",
			fmt.Sprintf("You are saving %.0f%% of income this month; 10%% or more is a good floor", stats.SavingsRate()))
	}

	// Anomalies
	if n := len(report.Anomalies); n > 0 {
		add(PriorityMedium, "Unusual transactions",
			fmt.Sprintf("%d unusually large expense(s) detected this month", n))
	}

	// Upcoming bills
	if report.BillImpact != nil && report.BillImpact.UpcomingTotal > 0 {
		add(PriorityLow, "Bills due soon",
			fmt.Sprintf("$%.2f in bills due within the next 7 days", report.BillImpact.UpcomingTotal))
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return priorityRank(candidates[i].Priority) < priorityRank(candidates[j].Priority)
	})
	if len(candidates) > maxProactiveInsights {
		candidates = candidates[:maxProactiveInsights]
	}
	return candidates
}

func priorityRank(priority string) int {
	switch priority {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}
