package insights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func billFixture(snap *Snapshot, asOf time.Time) *BillImpact {
	ranges := resolveDateRanges(asOf)
	return analyzeBillImpact(snap, ranges, aggregate(snap, ranges))
}

func amt(v float64) *float64 { return &v }

func TestAnalyzeBillImpact_MonthlyNormalization(t *testing.T) {
	asOf := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	snap := &Snapshot{
		Transactions: []*Transaction{tx("t1", 4000, 2025, time.March, 1, "Salary")},
		Bills: []*Bill{
			{ID: "b1", Name: "Rent", Amount: amt(1200), Frequency: FrequencyMonthly,
				NextDue: NewDate(2025, time.April, 1), IsActive: true},
			{ID: "b2", Name: "Insurance", Amount: amt(600), Frequency: FrequencyYearly,
				NextDue: NewDate(2025, time.December, 1), IsActive: true},
			{ID: "b3", Name: "Cleaner", Amount: amt(40), Frequency: FrequencyWeekly,
				NextDue: NewDate(2025, time.June, 18), IsActive: true},
			{ID: "b4", Name: "Cancelled", Amount: amt(999), Frequency: FrequencyMonthly,
				NextDue: NewDate(2025, time.April, 1), IsActive: false},
		},
	}

	impact := billFixture(snap, asOf)

	// 1200 + 600/12 + 40*4.33 = 1423.2
	assert.InDelta(t, 1423.2, impact.TotalMonthlyBills, 0.001)
	// 1423.2 / 4000 * 100 ~ 35.58%
	assert.InDelta(t, 35.58, impact.PercentOfIncome, 0.01)
}

func TestAnalyzeBillImpact_NoIncome(t *testing.T) {
	asOf := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	snap := &Snapshot{Bills: []*Bill{
		{ID: "b1", Name: "Rent", Amount: amt(1200), Frequency: FrequencyMonthly,
			NextDue: NewDate(2025, time.April, 1), IsActive: true},
	}}

	impact := billFixture(snap, asOf)
	assert.Zero(t, impact.PercentOfIncome, "no income must not divide by zero")
}

func TestAnalyzeBillImpact_UpcomingBills(t *testing.T) {
	asOf := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	snap := &Snapshot{
		Accounts: []*Account{{ID: "a1", Balance: 1000}},
		Bills: []*Bill{
			{ID: "b1", Name: "Rent", Amount: amt(300), Frequency: FrequencyMonthly,
				NextDue: NewDate(2025, time.March, 18), IsActive: true},
			{ID: "b2", Name: "Later", Amount: amt(100), Frequency: FrequencyMonthly,
				NextDue: NewDate(2025, time.March, 30), IsActive: true}, // beyond 7 days
		},
	}

	impact := billFixture(snap, asOf)

	require.Len(t, impact.UpcomingBills, 1)
	u := impact.UpcomingBills[0]
	assert.Equal(t, "Rent", u.Name)
	assert.InDelta(t, 30.0, u.PercentOfBalance, 0.001)
	assert.Equal(t, 300.0, impact.UpcomingTotal)

	// 300 is 30% of balance, above the 20% bar
	require.NotEmpty(t, impact.Recommendations)
	assert.Contains(t, impact.Recommendations[0], "Rent")
}

func TestAnalyzeBillImpact_Recommendations(t *testing.T) {
	asOf := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	snap := &Snapshot{
		Transactions: []*Transaction{tx("t1", 2000, 2025, time.March, 1, "Salary")},
		Accounts:     []*Account{{ID: "a1", Balance: 500}},
		Bills: []*Bill{
			{ID: "b1", Name: "Rent", Amount: amt(1500), Frequency: FrequencyMonthly,
				NextDue: NewDate(2025, time.March, 16), IsActive: true},
		},
	}

	impact := billFixture(snap, asOf)

	// All three rules fire: 75% of income, single bill 300% of balance,
	// 7-day total over half the balance
	assert.Len(t, impact.Recommendations, 3)
}

func TestAnalyzeBillImpact_Empty(t *testing.T) {
	asOf := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	impact := billFixture(&Snapshot{}, asOf)

	assert.Zero(t, impact.TotalMonthlyBills)
	assert.Zero(t, impact.PercentOfIncome)
	assert.Empty(t, impact.UpcomingBills)
	assert.Empty(t, impact.Recommendations)
}
