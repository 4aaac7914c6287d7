package insights

import "math"

// buildSummary assembles the top-line numbers block.
func buildSummary(snap *Snapshot, stats *CategoryStats, forecast *ExpenseForecast) *ReportSummary {
	summary := &ReportSummary{
		CurrentBalance:   snap.TotalBalance(),
		MonthlyIncome:    stats.MonthIncome,
		MonthlyExpenses:  stats.MonthExpenses,
		SavingsRate:      stats.SavingsRate(),
		SpendingTrend:    TrendStable,
		TransactionCount: len(snap.Transactions),
	}

	if forecast != nil {
		summary.SpendingTrend = classifyTrend(forecast.ProjectedMonthlyTotal, stats.PrevMonthExpense)
	}

	for _, g := range snap.Goals {
		if !g.IsCompleted {
			summary.ActiveGoalCount++
		}
	}
	for _, b := range snap.Bills {
		if b.IsActive {
			summary.ActiveBillCount++
		}
	}

	return summary
}

// round2 rounds a monetary amount to two decimal places.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// roundPct rounds a percentage to a whole number.
func roundPct(x float64) float64 {
	return math.Round(x)
}

// applyRounding is the report's single formatting step: currency to two
// decimal places, percentages to whole numbers. Analyzers work with raw
// floats so intermediate math never loses precision.
func (r *InsightsReport) applyRounding() {
	if r.HealthScore != nil {
		c := &r.HealthScore.Components
		c.BudgetAdherence = round2(c.BudgetAdherence)
		c.SavingsRate = round2(c.SavingsRate)
		c.BillPunctuality = round2(c.BillPunctuality)
		c.GoalProgress = round2(c.GoalProgress)
	}

	for _, a := range r.Anomalies {
		a.Amount = round2(a.Amount)
		a.ZScore = round2(a.ZScore)
	}

	for _, d := range r.Duplicates {
		d.Amount = round2(d.Amount)
	}

	if r.SpendingPatterns != nil {
		for k, v := range r.SpendingPatterns.ByWeekday {
			r.SpendingPatterns.ByWeekday[k] = round2(v)
		}
		for k, v := range r.SpendingPatterns.ByMonthPhase {
			r.SpendingPatterns.ByMonthPhase[k] = round2(v)
		}
	}

	if r.Subscriptions != nil {
		r.Subscriptions.TotalMonthlyCost = round2(r.Subscriptions.TotalMonthlyCost)
		r.Subscriptions.TotalAnnualCost = round2(r.Subscriptions.TotalAnnualCost)
		for _, s := range r.Subscriptions.Subscriptions {
			s.Amount = round2(s.Amount)
			s.AnnualCost = round2(s.AnnualCost)
			s.MonthlyEquivalent = round2(s.MonthlyEquivalent)
		}
	}

	if r.ExpenseForecast != nil {
		f := r.ExpenseForecast
		f.MonthToDate = round2(f.MonthToDate)
		f.DailyAverage = round2(f.DailyAverage)
		f.ProjectedMonthlyTotal = round2(f.ProjectedMonthlyTotal)
		f.WeeklyPrediction = round2(f.WeeklyPrediction)
		for _, c := range f.Categories {
			c.SpentSoFar = round2(c.SpentSoFar)
			c.ProjectedTotal = round2(c.ProjectedTotal)
		}
	}

	if r.CashFlow != nil {
		cf := r.CashFlow
		cf.CurrentBalance = round2(cf.CurrentBalance)
		cf.ExpectedIncome = round2(cf.ExpectedIncome)
		cf.ExpectedBills = round2(cf.ExpectedBills)
		cf.EstimatedDiscretionary = round2(cf.EstimatedDiscretionary)
		cf.ProjectedBalance = round2(cf.ProjectedBalance)
		for _, cd := range cf.CriticalDates {
			cd.Amount = round2(cd.Amount)
		}
	}

	for _, g := range r.GoalPredictions {
		g.TargetAmount = round2(g.TargetAmount)
		g.CurrentAmount = round2(g.CurrentAmount)
		g.Remaining = round2(g.Remaining)
		g.ProgressPercent = roundPct(g.ProgressPercent)
		g.RequiredMonthly = round2(g.RequiredMonthly)
		g.AverageMonthly = round2(g.AverageMonthly)
		g.SuggestedMonthly = round2(g.SuggestedMonthly)
	}

	if r.BillImpact != nil {
		b := r.BillImpact
		b.TotalMonthlyBills = round2(b.TotalMonthlyBills)
		b.PercentOfIncome = roundPct(b.PercentOfIncome)
		b.UpcomingTotal = round2(b.UpcomingTotal)
		for _, u := range b.UpcomingBills {
			u.Amount = round2(u.Amount)
			u.PercentOfBalance = roundPct(u.PercentOfBalance)
		}
	}

	for _, a := range r.PredictiveAlerts {
		a.BudgetLimit = round2(a.BudgetLimit)
		a.SpentSoFar = round2(a.SpentSoFar)
		a.ProjectedTotal = round2(a.ProjectedTotal)
	}

	if r.Summary != nil {
		s := r.Summary
		s.CurrentBalance = round2(s.CurrentBalance)
		s.MonthlyIncome = round2(s.MonthlyIncome)
		s.MonthlyExpenses = round2(s.MonthlyExpenses)
		s.SavingsRate = roundPct(s.SavingsRate)
	}
}
