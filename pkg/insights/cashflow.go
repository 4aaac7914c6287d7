package insights

import (
	"fmt"
	"sort"
)

const (
	cashFlowWindowDays   = 30
	maxCriticalDates     = 5
	cashFlowCautionRatio = 0.20
)

// forecastCashFlow projects the balance 30 days out from known recurring
// income, bills due in the window, and an estimate of discretionary burn
// derived from last month's spending.
func forecastCashFlow(snap *Snapshot, ranges *DateRanges, stats *CategoryStats) *CashFlowForecast {
	forecast := &CashFlowForecast{CurrentBalance: snap.TotalBalance()}
	windowEnd := ranges.AsOf.AddDate(0, 0, cashFlowWindowDays)

	var criticalDates []*CriticalDate

	// Declared recurring income, normalized into the 30-day window
	for _, rt := range snap.RecurringTransactions {
		if !rt.IsActive || rt.Amount <= 0 {
			continue
		}
		forecast.ExpectedIncome += monthlyEquivalent(rt.Amount, rt.Frequency)
		criticalDates = append(criticalDates, &CriticalDate{
			Date:   "Monthly",
			Name:   rt.Description,
			Amount: rt.Amount,
			Type:   "income",
		})
	}

	// Fixed-amount bills due within the window
	for _, b := range snap.Bills {
		if !b.IsActive || b.Amount == nil || b.NextDue.IsZero() {
			continue
		}
		due := b.NextDue.Time
		if due.Before(startOfDay(ranges.AsOf)) || due.After(windowEnd) {
			continue
		}
		forecast.ExpectedBills += *b.Amount
		criticalDates = append(criticalDates, &CriticalDate{
			Date:   b.NextDue.String(),
			Name:   b.Name,
			Amount: *b.Amount,
			Type:   "bill",
		})
	}

	// Discretionary burn estimated from last month's run rate
	forecast.EstimatedDiscretionary = stats.PrevMonthExpense / 30 * float64(ranges.DaysRemaining)

	forecast.ProjectedBalance = forecast.CurrentBalance + forecast.ExpectedIncome -
		forecast.ExpectedBills - forecast.EstimatedDiscretionary

	switch {
	case forecast.ProjectedBalance < 0:
		forecast.Status = CashFlowWarning
		forecast.Insight = fmt.Sprintf("Projected balance goes negative ($%.2f) within 30 days", forecast.ProjectedBalance)
	case forecast.ProjectedBalance < forecast.CurrentBalance*cashFlowCautionRatio:
		forecast.Status = CashFlowCaution
		forecast.Insight = fmt.Sprintf("Projected balance drops to $%.2f, under 20%% of today's balance", forecast.ProjectedBalance)
	default:
		forecast.Status = CashFlowHealthy
		forecast.Insight = fmt.Sprintf("Cash flow looks healthy; projected balance is $%.2f in 30 days", forecast.ProjectedBalance)
	}

	sort.SliceStable(criticalDates, func(i, j int) bool {
		return criticalDates[i].Date < criticalDates[j].Date
	})
	if len(criticalDates) > maxCriticalDates {
		criticalDates = criticalDates[:maxCriticalDates]
	}
	forecast.CriticalDates = criticalDates

	return forecast
}
