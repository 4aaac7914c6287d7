package insights

import (
	"strings"
	"sync"
)

// Recurrence frequencies shared by bills, recurring transactions and
// subscriptions.
const (
	FrequencyWeekly    = "weekly"
	FrequencyBiweekly  = "biweekly"
	FrequencyMonthly   = "monthly"
	FrequencyQuarterly = "quarterly"
	FrequencyYearly    = "yearly"
)

// UnknownCategory is substituted when a transaction has no resolvable category.
const UnknownCategory = "Uncategorized"

// UnknownAccount is substituted when an account has no name.
const UnknownAccount = "Unknown"

// Transaction represents a single financial transaction. Amount is signed:
// negative values are expenses, positive values are income.
type Transaction struct {
	ID           string  `json:"id"`
	Amount       float64 `json:"amount"`
	Date         Date    `json:"date"`
	Description  string  `json:"description,omitempty"`
	CategoryID   string  `json:"categoryId,omitempty"`
	CategoryName string  `json:"categoryName,omitempty"`
	CategoryType string  `json:"categoryType,omitempty"`
	AccountID    string  `json:"accountId"`
	IsTransfer   bool    `json:"isTransfer"`
}

// IsExpense reports whether the transaction counts toward expense aggregates.
// Transfers are excluded from all expense/income math.
func (t *Transaction) IsExpense() bool {
	return t.Amount < 0 && !t.IsTransfer
}

// IsIncome reports whether the transaction counts toward income aggregates.
func (t *Transaction) IsIncome() bool {
	return t.Amount > 0 && !t.IsTransfer
}

// Magnitude returns the absolute amount of the transaction.
func (t *Transaction) Magnitude() float64 {
	if t.Amount < 0 {
		return -t.Amount
	}
	return t.Amount
}

// Budget represents a per-category spending limit
type Budget struct {
	ID           string  `json:"id"`
	CategoryID   string  `json:"categoryId"`
	CategoryName string  `json:"categoryName,omitempty"`
	Limit        float64 `json:"limit"`
	Period       string  `json:"period,omitempty"`
}

// Goal represents a savings goal
type Goal struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	TargetAmount  float64 `json:"targetAmount"`
	CurrentAmount float64 `json:"currentAmount"`
	TargetDate    *Date   `json:"targetDate,omitempty"`
	IsCompleted   bool    `json:"isCompleted"`
	CreatedAt     Date    `json:"createdAt"`
}

// Bill represents a recurring obligation with a due date. Amount is nil when
// the bill is variable.
type Bill struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Amount    *float64 `json:"amount,omitempty"`
	Frequency string   `json:"frequency"`
	NextDue   Date     `json:"nextDue"`
	IsActive  bool     `json:"isActive"`
}

// RecurringTransaction represents declared periodic cash flow, distinct from
// a bill. Amount is signed like Transaction.Amount.
type RecurringTransaction struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Frequency   string  `json:"frequency"`
	IsActive    bool    `json:"isActive"`
}

// Account represents a financial account
type Account struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Type    string  `json:"type,omitempty"`
	Balance float64 `json:"balance"`
}

// Category represents a transaction category
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

// Snapshot is the immutable set of records an insights computation runs
// against. It is fetched (or constructed) once per report and never mutated
// by the engine.
type Snapshot struct {
	Transactions          []*Transaction          `json:"transactions"`
	Budgets               []*Budget               `json:"budgets"`
	Goals                 []*Goal                 `json:"goals"`
	Bills                 []*Bill                 `json:"bills"`
	Accounts              []*Account              `json:"accounts"`
	RecurringTransactions []*RecurringTransaction `json:"recurringTransactions"`
	Categories            []*Category             `json:"categories,omitempty"`

	categoryOnce  sync.Once
	categoryNames map[string]string
}

// CategoryNameFor resolves the display category for a transaction. The
// denormalized name wins; otherwise the snapshot's category list is consulted
// via a lookup map built on first use. Unresolvable categories map to
// UnknownCategory.
func (s *Snapshot) CategoryNameFor(t *Transaction) string {
	if t.CategoryName != "" {
		return t.CategoryName
	}
	if t.CategoryID != "" {
		if name, ok := s.categoryLookup()[t.CategoryID]; ok && name != "" {
			return name
		}
	}
	return UnknownCategory
}

// BudgetCategoryName resolves the display category for a budget.
func (s *Snapshot) BudgetCategoryName(b *Budget) string {
	if b.CategoryName != "" {
		return b.CategoryName
	}
	if b.CategoryID != "" {
		if name, ok := s.categoryLookup()[b.CategoryID]; ok && name != "" {
			return name
		}
	}
	return UnknownCategory
}

// TotalBalance sums all account balances.
func (s *Snapshot) TotalBalance() float64 {
	var total float64
	for _, a := range s.Accounts {
		total += a.Balance
	}
	return total
}

// categoryLookup returns the id-to-name map, built once. sync.Once keeps the
// build safe when one snapshot feeds concurrent report computations.
func (s *Snapshot) categoryLookup() map[string]string {
	s.categoryOnce.Do(func() {
		s.categoryNames = make(map[string]string, len(s.Categories))
		for _, c := range s.Categories {
			s.categoryNames[c.ID] = c.Name
		}
	})
	return s.categoryNames
}

// normalizeFrequency lower-cases and trims a recurrence frequency string.
func normalizeFrequency(freq string) string {
	return strings.ToLower(strings.TrimSpace(freq))
}

// monthlyEquivalent normalizes an amount at the given frequency to a
// monthly-equivalent figure: yearly/12, weekly*4.33, biweekly*2.17,
// everything else as-is.
func monthlyEquivalent(amount float64, freq string) float64 {
	switch normalizeFrequency(freq) {
	case FrequencyYearly:
		return amount / 12
	case FrequencyWeekly:
		return amount * 4.33
	case FrequencyBiweekly:
		return amount * 2.17
	default:
		return amount
	}
}
