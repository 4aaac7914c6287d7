package insights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func goalFixture(goals []*Goal, asOf time.Time) []*GoalPrediction {
	return predictGoals(&Snapshot{Goals: goals}, resolveDateRanges(asOf))
}

func TestPredictGoals_RequiredMonthlyPace(t *testing.T) {
	// Target $10,000, saved $6,000, target date 200 days out:
	// months remaining = ceil(200/30) = 7, required = 4000/7 ~ 571.43
	asOf := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	target := NewDate(2025, time.October, 1) // exactly 200 days after asOf

	predictions := goalFixture([]*Goal{{
		ID: "g1", Name: "Emergency Fund",
		TargetAmount: 10000, CurrentAmount: 6000,
		TargetDate: &target,
		CreatedAt:  NewDate(2024, time.September, 15),
	}}, asOf)

	require.Len(t, predictions, 1)
	p := predictions[0]
	assert.InDelta(t, 571.43, p.RequiredMonthly, 0.01)
	assert.InDelta(t, 4000.0, p.Remaining, 0.001)

	// Average pace is measured from the goal's creation date (the simpler,
	// clearly-correct definition; the upstream age formula was ambiguous).
	// ~181 days old -> ~6.03 months -> ~995/month, comfortably on track.
	assert.Greater(t, p.AverageMonthly, 0.9*p.RequiredMonthly)
	assert.True(t, p.OnTrack)
	assert.NotEmpty(t, p.PredictedCompletion)
}

func TestPredictGoals_BehindPace(t *testing.T) {
	asOf := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	target := NewDate(2025, time.June, 15)

	predictions := goalFixture([]*Goal{{
		ID: "g1", Name: "Vacation",
		TargetAmount: 5000, CurrentAmount: 500,
		TargetDate: &target,
		CreatedAt:  NewDate(2024, time.March, 15), // 12 months old, ~41.7/month
	}}, asOf)

	require.Len(t, predictions, 1)
	p := predictions[0]
	assert.False(t, p.OnTrack)
	assert.Equal(t, p.RequiredMonthly, p.SuggestedMonthly)
	assert.Contains(t, p.Insight, "Vacation")
}

func TestPredictGoals_TargetDatePassed(t *testing.T) {
	asOf := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	target := NewDate(2025, time.January, 1)

	predictions := goalFixture([]*Goal{{
		ID: "g1", Name: "Laptop",
		TargetAmount: 2000, CurrentAmount: 1500,
		TargetDate: &target,
		CreatedAt:  NewDate(2024, time.June, 1),
	}}, asOf)

	require.Len(t, predictions, 1)
	p := predictions[0]
	assert.False(t, p.OnTrack)
	assert.Contains(t, p.Insight, "missed its target date")
	assert.Contains(t, p.Insight, "500.00")
}

func TestPredictGoals_NoTargetDate(t *testing.T) {
	asOf := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	predictions := goalFixture([]*Goal{{
		ID: "g1", Name: "Someday Fund",
		TargetAmount: 2400, CurrentAmount: 0,
		CreatedAt: NewDate(2025, time.January, 1),
	}}, asOf)

	require.Len(t, predictions, 1)
	p := predictions[0]
	// Generic 12-month default pace
	assert.InDelta(t, 200.0, p.SuggestedMonthly, 0.001)
	assert.Zero(t, p.RequiredMonthly)
	assert.Empty(t, p.PredictedCompletion)
}

func TestPredictGoals_UnparsableTargetDateFallsBack(t *testing.T) {
	// A malformed target date decodes to a zero Date and takes the
	// no-target-date path
	asOf := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	var bad Date
	require.NoError(t, bad.UnmarshalJSON([]byte(`"not-a-date"`)))

	predictions := goalFixture([]*Goal{{
		ID: "g1", Name: "Fuzzy", TargetAmount: 1200, CurrentAmount: 0,
		TargetDate: &bad,
		CreatedAt:  NewDate(2025, time.January, 1),
	}}, asOf)

	require.Len(t, predictions, 1)
	assert.InDelta(t, 100.0, predictions[0].SuggestedMonthly, 0.001)
}

func TestPredictGoals_OverSaved(t *testing.T) {
	asOf := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	predictions := goalFixture([]*Goal{{
		ID: "g1", Name: "Bike",
		TargetAmount: 800, CurrentAmount: 950,
		CreatedAt: NewDate(2024, time.June, 1),
	}}, asOf)

	require.Len(t, predictions, 1)
	p := predictions[0]
	assert.True(t, p.OnTrack)
	assert.Zero(t, p.Remaining)
	assert.Contains(t, p.Insight, "reached its target")
}

func TestPredictGoals_SkipsCompleted(t *testing.T) {
	asOf := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	predictions := goalFixture([]*Goal{
		{ID: "g1", Name: "Done", TargetAmount: 100, CurrentAmount: 100, IsCompleted: true,
			CreatedAt: NewDate(2024, time.June, 1)},
		{ID: "g2", Name: "Active", TargetAmount: 100, CurrentAmount: 10,
			CreatedAt: NewDate(2024, time.June, 1)},
	}, asOf)

	require.Len(t, predictions, 1)
	assert.Equal(t, "g2", predictions[0].GoalID)
}
