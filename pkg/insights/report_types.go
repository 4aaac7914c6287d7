package insights

import "time"

// Insight priorities
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Anomaly severities
const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
)

// Trend directions
const (
	TrendUp     = "up"
	TrendDown   = "down"
	TrendStable = "stable"
)

// Cash flow forecast statuses
const (
	CashFlowHealthy = "healthy"
	CashFlowCaution = "caution"
	CashFlowWarning = "warning"
)

// HealthScore is the multi-factor 0-100 financial health assessment
type HealthScore struct {
	Score      int              `json:"score"`
	Grade      string           `json:"grade"`
	Components HealthComponents `json:"components"`
	Factors    []string         `json:"factors"`
}

// HealthComponents breaks the health score into its weighted parts, each
// capped at 25.
type HealthComponents struct {
	BudgetAdherence float64 `json:"budgetAdherence"`
	SavingsRate     float64 `json:"savingsRate"`
	BillPunctuality float64 `json:"billPunctuality"`
	GoalProgress    float64 `json:"goalProgress"`
}

// Anomaly flags an unusually large expense transaction
type Anomaly struct {
	TransactionID string  `json:"transactionId"`
	Description   string  `json:"description,omitempty"`
	Category      string  `json:"category"`
	Amount        float64 `json:"amount"`
	Date          Date    `json:"date"`
	ZScore        float64 `json:"zScore"`
	Severity      string  `json:"severity"`
	Reason        string  `json:"reason"`
}

// DuplicateGroup reports transactions sharing amount, date and description
type DuplicateGroup struct {
	Amount         float64  `json:"amount"`
	Date           string   `json:"date"`
	Description    string   `json:"description"`
	Count          int      `json:"count"`
	TransactionIDs []string `json:"transactionIds"`
	Reason         string   `json:"reason"`
}

// SpendingPatterns summarizes behavioral spending habits over a trailing
// three month window
type SpendingPatterns struct {
	ByWeekday    map[string]float64 `json:"byWeekday"`
	ByMonthPhase map[string]float64 `json:"byMonthPhase"`
	PeakDay      string             `json:"peakDay,omitempty"`
	PeakPhase    string             `json:"peakPhase,omitempty"`
	Insight      string             `json:"insight,omitempty"`
}

// Subscription is one recurring or subscription-like expense
type Subscription struct {
	Name              string  `json:"name"`
	Amount            float64 `json:"amount"`
	Frequency         string  `json:"frequency"`
	AnnualCost        float64 `json:"annualCost"`
	MonthlyEquivalent float64 `json:"monthlyEquivalent"`
	Source            string  `json:"source"`
}

// SubscriptionAudit is the result of subscription detection
type SubscriptionAudit struct {
	Subscriptions    []*Subscription `json:"subscriptions"`
	Count            int             `json:"count"`
	TotalMonthlyCost float64         `json:"totalMonthlyCost"`
	TotalAnnualCost  float64         `json:"totalAnnualCost"`
	Suggestions      []string        `json:"suggestions,omitempty"`
}

// CategoryForecast projects one category's month-end spend
type CategoryForecast struct {
	Category       string  `json:"category"`
	SpentSoFar     float64 `json:"spentSoFar"`
	ProjectedTotal float64 `json:"projectedTotal"`
	Trend          string  `json:"trend"`
}

// ExpenseForecast extrapolates month-end spending from spend-to-date
type ExpenseForecast struct {
	MonthToDate           float64             `json:"monthToDate"`
	DailyAverage          float64             `json:"dailyAverage"`
	ProjectedMonthlyTotal float64             `json:"projectedMonthlyTotal"`
	WeeklyPrediction      float64             `json:"weeklyPrediction"`
	Categories            []*CategoryForecast `json:"categories"`
}

// CriticalDate is a near-term cash flow event worth watching
type CriticalDate struct {
	Date   string  `json:"date"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Type   string  `json:"type"`
}

// CashFlowForecast projects the 30-day balance
type CashFlowForecast struct {
	CurrentBalance         float64         `json:"currentBalance"`
	ExpectedIncome         float64         `json:"expectedIncome"`
	ExpectedBills          float64         `json:"expectedBills"`
	EstimatedDiscretionary float64         `json:"estimatedDiscretionary"`
	ProjectedBalance       float64         `json:"projectedBalance"`
	Status                 string          `json:"status"`
	Insight                string          `json:"insight,omitempty"`
	CriticalDates          []*CriticalDate `json:"criticalDates"`
}

// GoalPrediction estimates a goal's completion outlook
type GoalPrediction struct {
	GoalID              string  `json:"goalId"`
	Name                string  `json:"name"`
	TargetAmount        float64 `json:"targetAmount"`
	CurrentAmount       float64 `json:"currentAmount"`
	Remaining           float64 `json:"remaining"`
	ProgressPercent     float64 `json:"progressPercent"`
	OnTrack             bool    `json:"onTrack"`
	RequiredMonthly     float64 `json:"requiredMonthly,omitempty"`
	AverageMonthly      float64 `json:"averageMonthly,omitempty"`
	SuggestedMonthly    float64 `json:"suggestedMonthly,omitempty"`
	PredictedCompletion string  `json:"predictedCompletion,omitempty"`
	Insight             string  `json:"insight,omitempty"`
}

// UpcomingBill is a bill due within the next seven days
type UpcomingBill struct {
	Name             string  `json:"name"`
	Amount           float64 `json:"amount"`
	DueDate          string  `json:"dueDate"`
	PercentOfBalance float64 `json:"percentOfBalance"`
}

// BillImpact expresses the recurring bill burden relative to income and
// balance
type BillImpact struct {
	TotalMonthlyBills float64         `json:"totalMonthlyBills"`
	PercentOfIncome   float64         `json:"percentOfIncome"`
	UpcomingBills     []*UpcomingBill `json:"upcomingBills"`
	UpcomingTotal     float64         `json:"upcomingTotal"`
	Recommendations   []string        `json:"recommendations,omitempty"`
}

// PredictiveAlert warns that a budget is projected to be exceeded before
// month end
type PredictiveAlert struct {
	Category        string  `json:"category"`
	BudgetLimit     float64 `json:"budgetLimit"`
	SpentSoFar      float64 `json:"spentSoFar"`
	ProjectedTotal  float64 `json:"projectedTotal"`
	DaysUntilExceed *int    `json:"daysUntilExceed,omitempty"`
	Message         string  `json:"message"`
}

// ProactiveInsight is one ranked, human-readable takeaway
type ProactiveInsight struct {
	ID       string `json:"id"`
	Priority string `json:"priority"`
	Title    string `json:"title"`
	Message  string `json:"message"`
}

// ReportSummary is the top-line numbers block of a report
type ReportSummary struct {
	CurrentBalance   float64 `json:"currentBalance"`
	MonthlyIncome    float64 `json:"monthlyIncome"`
	MonthlyExpenses  float64 `json:"monthlyExpenses"`
	SavingsRate      float64 `json:"savingsRate"`
	SpendingTrend    string  `json:"spendingTrend"`
	TransactionCount int     `json:"transactionCount"`
	ActiveGoalCount  int     `json:"activeGoalCount"`
	ActiveBillCount  int     `json:"activeBillCount"`
}

// InsightsReport is the composite output of one engine invocation
type InsightsReport struct {
	ID                string              `json:"id"`
	GeneratedAt       time.Time           `json:"generatedAt"`
	HealthScore       *HealthScore        `json:"healthScore"`
	ProactiveInsights []*ProactiveInsight `json:"proactiveInsights"`
	PredictiveAlerts  []*PredictiveAlert  `json:"predictiveAlerts"`
	Anomalies         []*Anomaly          `json:"anomalies"`
	Duplicates        []*DuplicateGroup   `json:"duplicates"`
	SpendingPatterns  *SpendingPatterns   `json:"spendingPatterns"`
	Subscriptions     *SubscriptionAudit  `json:"subscriptions"`
	ExpenseForecast   *ExpenseForecast    `json:"expenseForecast"`
	CashFlow          *CashFlowForecast   `json:"cashFlow"`
	GoalPredictions   []*GoalPrediction   `json:"goalPredictions"`
	BillImpact        *BillImpact         `json:"billImpact"`
	Summary           *ReportSummary      `json:"summary"`
}
