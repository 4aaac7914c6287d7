package insights

import (
	"fmt"
	"math"
	"strings"
)

// calculateHealthScore combines budget adherence, savings rate, bill
// punctuality and goal progress into a single 0-100 score with explanatory
// factors. Each component is capped at 25; missing data earns a neutral
// default instead of a zero.
func calculateHealthScore(snap *Snapshot, ranges *DateRanges, stats *CategoryStats) *HealthScore {
	var components HealthComponents
	var factors []string

	// Budget adherence
	var budgets []*Budget
	for _, b := range snap.Budgets {
		if b.Limit > 0 {
			budgets = append(budgets, b)
		}
	}
	if len(budgets) == 0 {
		components.BudgetAdherence = 15
		factors = append(factors, "No budgets set")
	} else {
		exceeded := 0
		for _, b := range budgets {
			if stats.MTDByCategory[snap.BudgetCategoryName(b)] > b.Limit {
				exceeded++
			}
		}
		notOver := len(budgets) - exceeded
		components.BudgetAdherence = 25 * float64(notOver) / float64(len(budgets))
		if exceeded > 0 {
			factors = append(factors, fmt.Sprintf("%d budget(s) exceeded", exceeded))
		} else {
			factors = append(factors, "All budgets on track")
		}
	}

	// Savings rate
	rate := stats.SavingsRate()
	switch {
	case rate >= 20:
		components.SavingsRate = 25
	case rate >= 10:
		components.SavingsRate = 20
	case rate > 0:
		components.SavingsRate = rate * 2
	default:
		components.SavingsRate = 0
	}
	factors = append(factors, fmt.Sprintf("Savings rate: %.0f%%", rate))

	// Bill punctuality; "on time" means the next due date has not slipped
	// past today
	var activeBills []*Bill
	for _, b := range snap.Bills {
		if b.IsActive {
			activeBills = append(activeBills, b)
		}
	}
	if len(activeBills) == 0 {
		components.BillPunctuality = 20
		factors = append(factors, "No bills tracked")
	} else {
		onTime := 0
		for _, b := range activeBills {
			if !b.NextDue.IsZero() && !b.NextDue.Time.Before(startOfDay(ranges.AsOf)) {
				onTime++
			}
		}
		components.BillPunctuality = 25 * float64(onTime) / float64(len(activeBills))
		factors = append(factors, fmt.Sprintf("%d of %d bills paid on time", onTime, len(activeBills)))
	}

	// Goal progress, with a small bonus for a funded emergency fund
	var activeGoals []*Goal
	for _, g := range snap.Goals {
		if !g.IsCompleted {
			activeGoals = append(activeGoals, g)
		}
	}
	if len(activeGoals) == 0 {
		components.GoalProgress = 15
		factors = append(factors, "No active goals")
	} else {
		var totalProgress float64
		emergencyFunded := false
		for _, g := range activeGoals {
			progress := goalProgressPercent(g)
			totalProgress += progress
			if strings.Contains(strings.ToLower(g.Name), "emergency") && progress >= 50 {
				emergencyFunded = true
			}
		}
		avgProgress := totalProgress / float64(len(activeGoals))
		components.GoalProgress = math.Min(math.Round(avgProgress/4), 25)
		if emergencyFunded {
			components.GoalProgress = math.Min(components.GoalProgress+5, 25)
			factors = append(factors, "Emergency fund at least half funded")
		}
		factors = append(factors, fmt.Sprintf("Average goal progress: %.0f%%", avgProgress))
	}

	total := components.BudgetAdherence + components.SavingsRate +
		components.BillPunctuality + components.GoalProgress
	score := int(math.Min(math.Round(total), 100))
	if score < 0 {
		score = 0
	}

	return &HealthScore{
		Score:      score,
		Grade:      healthGrade(score),
		Components: components,
		Factors:    factors,
	}
}

// goalProgressPercent returns the goal's completion percentage. Over-saved
// goals report more than 100.
func goalProgressPercent(g *Goal) float64 {
	if g.TargetAmount <= 0 {
		return 0
	}
	return g.CurrentAmount / g.TargetAmount * 100
}

func healthGrade(score int) string {
	switch {
	case score >= 80:
		return "A"
	case score >= 60:
		return "B"
	case score >= 40:
		return "C"
	default:
		return "D"
	}
}
