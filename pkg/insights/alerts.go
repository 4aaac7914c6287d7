package insights

import (
	"fmt"
	"math"
	"sort"
)

// generatePredictiveAlerts finds budgets that are still under their limit
// but whose linear projection would exceed it before month end, estimating
// how many days remain until that happens. Alerts are ordered soonest first,
// with unknown timing last.
func generatePredictiveAlerts(snap *Snapshot, ranges *DateRanges, stats *CategoryStats) []*PredictiveAlert {
	var alerts []*PredictiveAlert

	for _, b := range snap.Budgets {
		if b.Limit <= 0 {
			continue
		}
		cat := snap.BudgetCategoryName(b)
		spent := stats.MTDByCategory[cat]
		if spent >= b.Limit {
			// Already exceeded; the insight ranker reports these
			continue
		}

		var dailyAvg float64
		if ranges.DayOfMonth > 0 {
			dailyAvg = spent / float64(ranges.DayOfMonth)
		}
		projected := spent + dailyAvg*float64(ranges.DaysRemaining)
		if projected <= b.Limit {
			continue
		}

		alert := &PredictiveAlert{
			Category:       cat,
			BudgetLimit:    b.Limit,
			SpentSoFar:     spent,
			ProjectedTotal: projected,
		}
		if dailyAvg > 0 {
			days := int(math.Ceil((b.Limit - spent) / dailyAvg))
			alert.DaysUntilExceed = &days
			alert.Message = fmt.Sprintf("%s is on pace to reach $%.2f against a $%.2f budget in about %d day(s)",
				cat, projected, b.Limit, days)
		} else {
			alert.Message = fmt.Sprintf("%s is projected to reach $%.2f against a $%.2f budget",
				cat, projected, b.Limit)
		}
		alerts = append(alerts, alert)
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		a, b := alerts[i].DaysUntilExceed, alerts[j].DaysUntilExceed
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a < *b
		}
	})

	return alerts
}
