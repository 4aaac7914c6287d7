package insights

import (
	"math"
	"time"
)

// DistStats holds the mean and population standard deviation of a set of
// expense magnitudes.
type DistStats struct {
	Mean   float64
	StdDev float64
	Count  int
}

// CategoryStats is the shared aggregation every analyzer consumes: totals
// and per-category sums for the current and previous month, plus trailing
// per-category distribution statistics for anomaly scoring. It is computed
// once per report.
type CategoryStats struct {
	MonthIncome      float64
	MonthExpenses    float64
	PrevMonthIncome  float64
	PrevMonthExpense float64

	// Month-to-date expense magnitude per category name
	MTDByCategory map[string]float64

	// Full previous month expense magnitude per category name
	PrevMonthByCategory map[string]float64

	// Per-category mean/stddev of expense magnitudes over the three full
	// months preceding the current one. The current month is excluded so a
	// fresh outlier does not dilute its own baseline.
	Trailing map[string]*DistStats
}

// aggregate builds CategoryStats from the snapshot and resolved anchors.
func aggregate(snap *Snapshot, ranges *DateRanges) *CategoryStats {
	stats := &CategoryStats{
		MTDByCategory:       make(map[string]float64),
		PrevMonthByCategory: make(map[string]float64),
		Trailing:            make(map[string]*DistStats),
	}

	trailingStart := ranges.MonthStart.AddDate(0, -3, 0)
	trailingAmounts := make(map[string][]float64)

	for _, t := range snap.Transactions {
		if t.IsTransfer {
			continue
		}

		date := t.Date.Time
		cat := snap.CategoryNameFor(t)

		if ranges.inCurrentMonth(date) {
			if t.Amount > 0 {
				stats.MonthIncome += t.Amount
			} else if t.Amount < 0 {
				stats.MonthExpenses += t.Magnitude()
				stats.MTDByCategory[cat] += t.Magnitude()
			}
		} else if ranges.inPrevMonth(date) {
			if t.Amount > 0 {
				stats.PrevMonthIncome += t.Amount
			} else if t.Amount < 0 {
				stats.PrevMonthExpense += t.Magnitude()
				stats.PrevMonthByCategory[cat] += t.Magnitude()
			}
		}

		if t.Amount < 0 && !date.Before(trailingStart) && date.Before(ranges.MonthStart) {
			trailingAmounts[cat] = append(trailingAmounts[cat], t.Magnitude())
		}
	}

	for cat, amounts := range trailingAmounts {
		stats.Trailing[cat] = distStats(amounts)
	}

	return stats
}

// SavingsRate returns the current month savings rate as a percentage, 0 when
// there is no income.
func (s *CategoryStats) SavingsRate() float64 {
	if s.MonthIncome <= 0 {
		return 0
	}
	return (s.MonthIncome - s.MonthExpenses) / s.MonthIncome * 100
}

// distStats computes mean and population standard deviation.
func distStats(values []float64) *DistStats {
	n := len(values)
	if n == 0 {
		return &DistStats{}
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(n)

	var sqDiff float64
	for _, v := range values {
		sqDiff += (v - mean) * (v - mean)
	}

	return &DistStats{
		Mean:   mean,
		StdDev: math.Sqrt(sqDiff / float64(n)),
		Count:  n,
	}
}

// windowExpenses returns the non-transfer expense transactions dated within
// [asOf - months, asOf].
func windowExpenses(snap *Snapshot, asOf time.Time, months int) []*Transaction {
	start := asOf.AddDate(0, -months, 0)

	var out []*Transaction
	for _, t := range snap.Transactions {
		if !t.IsExpense() {
			continue
		}
		if t.Date.Before(start) || t.Date.After(asOf) {
			continue
		}
		out = append(out, t)
	}
	return out
}
