package insights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeSpendingPatterns(t *testing.T) {
	asOf := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	snap := &Snapshot{Transactions: []*Transaction{
		// 2025-03-07 is a Friday, day 7 -> early
		tx("t1", -200, 2025, time.March, 7, "Dining"),
		// 2025-02-28 is a Friday, day 28 -> late
		tx("t2", -150, 2025, time.February, 28, "Dining"),
		// 2025-02-24 is a Monday, day 24 -> late
		tx("t3", -50, 2025, time.February, 24, "Groceries"),
		// outside the 3-month window, ignored
		tx("t4", -900, 2024, time.November, 7, "Travel"),
		// income, ignored
		tx("t5", 3000, 2025, time.March, 1, "Salary"),
	}}

	patterns := analyzeSpendingPatterns(snap, resolveDateRanges(asOf))

	assert.Equal(t, 350.0, patterns.ByWeekday["Friday"])
	assert.Equal(t, 50.0, patterns.ByWeekday["Monday"])
	assert.Equal(t, 200.0, patterns.ByMonthPhase[PhaseEarly])
	assert.Equal(t, 200.0, patterns.ByMonthPhase[PhaseLate])

	assert.Equal(t, "Friday", patterns.PeakDay)
	// early and late tie at 200; calendar walk order makes early win
	assert.Equal(t, PhaseEarly, patterns.PeakPhase)
	assert.Contains(t, patterns.Insight, "Friday")
	assert.Contains(t, patterns.Insight, "early in the month")
}

func TestMonthPhase(t *testing.T) {
	assert.Equal(t, PhaseEarly, monthPhase(1))
	assert.Equal(t, PhaseEarly, monthPhase(10))
	assert.Equal(t, PhaseMid, monthPhase(11))
	assert.Equal(t, PhaseMid, monthPhase(20))
	assert.Equal(t, PhaseLate, monthPhase(21))
	assert.Equal(t, PhaseLate, monthPhase(31))
}

func TestAnalyzeSpendingPatterns_Empty(t *testing.T) {
	asOf := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	patterns := analyzeSpendingPatterns(&Snapshot{}, resolveDateRanges(asOf))

	assert.Empty(t, patterns.PeakDay)
	assert.Empty(t, patterns.Insight)
	assert.Empty(t, patterns.ByWeekday)
}
