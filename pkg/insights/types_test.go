package insights

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_CategoryNameFor(t *testing.T) {
	snap := &Snapshot{
		Categories: []*Category{
			{ID: "c1", Name: "Groceries"},
			{ID: "c2", Name: "Dining"},
		},
	}

	assert.Equal(t, "Travel", snap.CategoryNameFor(&Transaction{CategoryName: "Travel"}))
	assert.Equal(t, "Groceries", snap.CategoryNameFor(&Transaction{CategoryID: "c1"}))
	assert.Equal(t, UnknownCategory, snap.CategoryNameFor(&Transaction{CategoryID: "missing"}))
	assert.Equal(t, UnknownCategory, snap.CategoryNameFor(&Transaction{}))
}

func TestSnapshot_CategoryLookupConcurrent(t *testing.T) {
	categories := make([]*Category, 50)
	for i := range categories {
		categories[i] = &Category{ID: string(rune('a' + i%26)), Name: "Category"}
	}
	snap := &Snapshot{Categories: categories}
	txn := &Transaction{CategoryID: "a"}

	// Concurrent first use must not race on the lazily built lookup map
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.Equal(t, "Category", snap.CategoryNameFor(txn))
			}
		}()
	}
	wg.Wait()
}

func TestComputeInsights_SharedSnapshotConcurrent(t *testing.T) {
	engine, err := NewEngine(nil)
	require.NoError(t, err)

	asOf := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)
	snap := &Snapshot{
		Transactions: []*Transaction{
			{ID: "t1", Amount: 2000, Date: NewDate(2025, time.March, 1), CategoryID: "c1"},
			{ID: "t2", Amount: -300, Date: NewDate(2025, time.March, 5), CategoryID: "c2"},
		},
		Categories: []*Category{
			{ID: "c1", Name: "Salary"},
			{ID: "c2", Name: "Groceries"},
		},
	}

	var wg sync.WaitGroup
	reports := make([]*InsightsReport, 8)
	for i := range reports {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			reports[i] = engine.ComputeInsights(snap, asOf)
		}(i)
	}
	wg.Wait()

	for _, report := range reports {
		require.NotNil(t, report)
		assert.Equal(t, 2000.0, report.Summary.MonthlyIncome)
		assert.Equal(t, 300.0, report.Summary.MonthlyExpenses)
	}
}
