package insights

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectDuplicates_BasicGroup(t *testing.T) {
	snap := &Snapshot{Transactions: []*Transaction{
		{ID: "t1", Amount: -45.00, Date: NewDate(2025, time.March, 1), Description: "Coffee Shop"},
		{ID: "t2", Amount: -45.00, Date: NewDate(2025, time.March, 1), Description: "  coffee shop "},
		{ID: "t3", Amount: -45.00, Date: NewDate(2025, time.March, 2), Description: "Coffee Shop"}, // different day
	}}

	groups := detectDuplicates(snap)

	require.Len(t, groups, 1)
	assert.Equal(t, 2, groups[0].Count)
	assert.Equal(t, -45.00, groups[0].Amount)
	assert.Equal(t, "2025-03-01", groups[0].Date)
	assert.Equal(t, "coffee shop", groups[0].Description)
	assert.ElementsMatch(t, []string{"t1", "t2"}, groups[0].TransactionIDs)
}

func TestDetectDuplicates_OrderIndependent(t *testing.T) {
	base := []*Transaction{
		{ID: "a1", Amount: -10, Date: NewDate(2025, time.March, 1), Description: "Lunch"},
		{ID: "a2", Amount: -10, Date: NewDate(2025, time.March, 1), Description: "Lunch"},
		{ID: "b1", Amount: -25, Date: NewDate(2025, time.March, 3), Description: "Taxi"},
		{ID: "b2", Amount: -25, Date: NewDate(2025, time.March, 3), Description: "Taxi"},
		{ID: "c1", Amount: -99, Date: NewDate(2025, time.March, 4), Description: "Unique"},
	}

	reference := detectDuplicates(&Snapshot{Transactions: base})
	require.Len(t, reference, 2)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 5; i++ {
		shuffled := append([]*Transaction{}, base...)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		groups := detectDuplicates(&Snapshot{Transactions: shuffled})
		require.Len(t, groups, len(reference))
		for j, g := range groups {
			assert.Equal(t, reference[j].Amount, g.Amount)
			assert.Equal(t, reference[j].Date, g.Date)
			assert.Equal(t, reference[j].Description, g.Description)
			assert.ElementsMatch(t, reference[j].TransactionIDs, g.TransactionIDs)
		}
	}
}

func TestDetectDuplicates_Cap(t *testing.T) {
	snap := &Snapshot{}
	for i := 0; i < 8; i++ {
		for j := 0; j < 2; j++ {
			snap.Transactions = append(snap.Transactions, &Transaction{
				ID:          fmt.Sprintf("t%d-%d", i, j),
				Amount:      -float64(10 + i),
				Date:        NewDate(2025, time.March, 1),
				Description: fmt.Sprintf("Merchant %d", i),
			})
		}
	}

	groups := detectDuplicates(snap)
	assert.Len(t, groups, 5)
}

func TestDetectDuplicates_Empty(t *testing.T) {
	assert.Empty(t, detectDuplicates(&Snapshot{}))
}
