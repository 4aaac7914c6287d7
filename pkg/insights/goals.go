package insights

import (
	"fmt"
	"math"
)

// Pace ratio below which a dated goal is flagged behind schedule.
const onTrackRatio = 0.9

// predictGoals estimates, for each active goal, the contribution pace needed
// to meet its target date, the pace observed since the goal was created, and
// a projected completion date. Completed goals are skipped.
func predictGoals(snap *Snapshot, ranges *DateRanges) []*GoalPrediction {
	var predictions []*GoalPrediction

	for _, g := range snap.Goals {
		if g.IsCompleted {
			continue
		}
		predictions = append(predictions, predictGoal(g, ranges))
	}
	return predictions
}

func predictGoal(g *Goal, ranges *DateRanges) *GoalPrediction {
	remaining := g.TargetAmount - g.CurrentAmount

	p := &GoalPrediction{
		GoalID:          g.ID,
		Name:            g.Name,
		TargetAmount:    g.TargetAmount,
		CurrentAmount:   g.CurrentAmount,
		Remaining:       math.Max(remaining, 0),
		ProgressPercent: goalProgressPercent(g),
	}

	// Over-saved but not yet marked complete
	if remaining <= 0 {
		p.OnTrack = true
		p.Insight = fmt.Sprintf("%s has reached its target of $%.2f", g.Name, g.TargetAmount)
		return p
	}

	// Average pace observed since the goal was created. Goals younger than a
	// month count as one month old so the division stays meaningful.
	ageMonths := ranges.AsOf.Sub(g.CreatedAt.Time).Hours() / (24 * 30)
	if ageMonths < 1 {
		ageMonths = 1
	}
	p.AverageMonthly = g.CurrentAmount / ageMonths

	if p.AverageMonthly > 0 {
		monthsToGo := remaining / p.AverageMonthly
		p.PredictedCompletion = ranges.AsOf.
			AddDate(0, 0, int(math.Ceil(monthsToGo*30))).Format("2006-01-02")
	}

	if g.TargetDate == nil || g.TargetDate.IsZero() {
		// No deadline to measure against; suggest a default 12-month pace
		p.SuggestedMonthly = remaining / 12
		p.OnTrack = true
		p.Insight = fmt.Sprintf("%s is %.0f%% funded with $%.2f to go", g.Name, p.ProgressPercent, remaining)
		return p
	}

	target := g.TargetDate.Time
	if !target.After(ranges.AsOf) {
		p.OnTrack = false
		p.Insight = fmt.Sprintf("%s missed its target date, $%.2f short", g.Name, remaining)
		return p
	}

	daysUntilTarget := target.Sub(ranges.AsOf).Hours() / 24
	monthsRemaining := math.Ceil(daysUntilTarget / 30)
	p.RequiredMonthly = remaining / monthsRemaining
	p.OnTrack = p.AverageMonthly >= onTrackRatio*p.RequiredMonthly

	if p.OnTrack {
		p.Insight = fmt.Sprintf("%s is on track at $%.2f/month", g.Name, p.AverageMonthly)
	} else {
		p.SuggestedMonthly = p.RequiredMonthly
		p.Insight = fmt.Sprintf("%s needs $%.2f/month to hit its target date, currently $%.2f/month",
			g.Name, p.RequiredMonthly, p.AverageMonthly)
	}

	return p
}
