package insights

import (
	"fmt"
	"time"
)

// Month phase buckets
const (
	PhaseEarly = "early"
	PhaseMid   = "mid"
	PhaseLate  = "late"
)

var phaseDescriptions = map[string]string{
	PhaseEarly: "early in the month",
	PhaseMid:   "mid-month",
	PhaseLate:  "late in the month",
}

// analyzeSpendingPatterns aggregates expense magnitudes over the trailing
// three months by weekday and by early/mid/late phase of the month, then
// names the peak of each.
func analyzeSpendingPatterns(snap *Snapshot, ranges *DateRanges) *SpendingPatterns {
	patterns := &SpendingPatterns{
		ByWeekday:    make(map[string]float64),
		ByMonthPhase: make(map[string]float64),
	}

	for _, t := range windowExpenses(snap, ranges.AsOf, 3) {
		patterns.ByWeekday[t.Date.Weekday().String()] += t.Magnitude()
		patterns.ByMonthPhase[monthPhase(t.Date.Day())] += t.Magnitude()
	}

	// Walk weekdays in calendar order so ties resolve deterministically
	var peakDayTotal float64
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := d.String()
		if total := patterns.ByWeekday[name]; total > peakDayTotal {
			peakDayTotal = total
			patterns.PeakDay = name
		}
	}

	var peakPhaseTotal float64
	for _, phase := range []string{PhaseEarly, PhaseMid, PhaseLate} {
		if total := patterns.ByMonthPhase[phase]; total > peakPhaseTotal {
			peakPhaseTotal = total
			patterns.PeakPhase = phase
		}
	}

	if patterns.PeakDay != "" && patterns.PeakPhase != "" {
		patterns.Insight = fmt.Sprintf("You spend the most on %ss, typically %s.",
			patterns.PeakDay, phaseDescriptions[patterns.PeakPhase])
	}

	return patterns
}

// monthPhase buckets a day of month into early (1-10), mid (11-20) or late
// (21+).
func monthPhase(day int) string {
	switch {
	case day <= 10:
		return PhaseEarly
	case day <= 20:
		return PhaseMid
	default:
		return PhaseLate
	}
}
