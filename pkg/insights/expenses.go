package insights

import "sort"

const maxCategoryForecasts = 5

// Dead band around the prior month total inside which a category's trend is
// considered stable.
const trendDeadBand = 0.10

// predictExpenses linearly extrapolates month-end spend, in total and per
// category, from spend-to-date.
func predictExpenses(ranges *DateRanges, stats *CategoryStats) *ExpenseForecast {
	forecast := &ExpenseForecast{MonthToDate: stats.MonthExpenses}

	if ranges.DayOfMonth > 0 {
		forecast.DailyAverage = stats.MonthExpenses / float64(ranges.DayOfMonth)
	}
	forecast.ProjectedMonthlyTotal = stats.MonthExpenses + forecast.DailyAverage*float64(ranges.DaysRemaining)
	forecast.WeeklyPrediction = forecast.DailyAverage * 7

	for cat, spent := range stats.MTDByCategory {
		var dailyAvg float64
		if ranges.DayOfMonth > 0 {
			dailyAvg = spent / float64(ranges.DayOfMonth)
		}
		projected := spent + dailyAvg*float64(ranges.DaysRemaining)

		forecast.Categories = append(forecast.Categories, &CategoryForecast{
			Category:       cat,
			SpentSoFar:     spent,
			ProjectedTotal: projected,
			Trend:          classifyTrend(projected, stats.PrevMonthByCategory[cat]),
		})
	}

	sort.Slice(forecast.Categories, func(i, j int) bool {
		a, b := forecast.Categories[i], forecast.Categories[j]
		if a.ProjectedTotal != b.ProjectedTotal {
			return a.ProjectedTotal > b.ProjectedTotal
		}
		return a.Category < b.Category
	})
	if len(forecast.Categories) > maxCategoryForecasts {
		forecast.Categories = forecast.Categories[:maxCategoryForecasts]
	}

	return forecast
}

// classifyTrend compares a projected total against the prior month's total
// with a +/-10% dead band.
func classifyTrend(projected, previous float64) string {
	if previous == 0 {
		if projected > 0 {
			return TrendUp
		}
		return TrendStable
	}
	switch {
	case projected > previous*(1+trendDeadBand):
		return TrendUp
	case projected < previous*(1-trendDeadBand):
		return TrendDown
	default:
		return TrendStable
	}
}
