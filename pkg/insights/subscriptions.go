package insights

import (
	"fmt"
	"sort"
	"strings"
)

const (
	maxSubscriptions          = 10
	subscriptionCountNudge    = 5
	subscriptionAnnualCostBar = 200
)

// Subscription sources
const (
	SourceRecurring = "recurring"
	SourceDetected  = "detected"
)

// auditSubscriptions identifies subscription-like expenses two ways:
// declared recurring expense transactions, and merchant descriptions that
// repeat at least twice in the trailing three months. Both paths merge,
// declared entries winning on a name collision.
func auditSubscriptions(snap *Snapshot, ranges *DateRanges) *SubscriptionAudit {
	merged := make(map[string]*Subscription)
	var order []string

	// Declared recurring expenses
	for _, rt := range snap.RecurringTransactions {
		if !rt.IsActive || rt.Amount >= 0 {
			continue
		}
		amount := -rt.Amount
		freq := normalizeFrequency(rt.Frequency)
		if freq == "" {
			freq = FrequencyMonthly
		}
		key := strings.ToLower(strings.TrimSpace(rt.Description))
		if key == "" {
			key = strings.ToLower(rt.ID)
		}
		if _, exists := merged[key]; exists {
			continue
		}
		merged[key] = &Subscription{
			Name:              strings.TrimSpace(rt.Description),
			Amount:            amount,
			Frequency:         freq,
			AnnualCost:        annualizeSubscription(amount, freq),
			MonthlyEquivalent: monthlyEquivalent(amount, freq),
			Source:            SourceRecurring,
		}
		order = append(order, key)
	}

	// Repeated merchant descriptions among recent expenses
	type seen struct {
		name   string
		amount float64
		count  int
	}
	counts := make(map[string]*seen)
	for _, t := range windowExpenses(snap, ranges.AsOf, 3) {
		name := strings.TrimSpace(t.Description)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		s, ok := counts[key]
		if !ok {
			s = &seen{name: name}
			counts[key] = s
		}
		s.count++
		s.amount = t.Magnitude() // most recent occurrence wins
	}

	detectedKeys := make([]string, 0, len(counts))
	for key, s := range counts {
		if s.count >= 2 {
			detectedKeys = append(detectedKeys, key)
		}
	}
	sort.Strings(detectedKeys)

	for _, key := range detectedKeys {
		if _, exists := merged[key]; exists {
			continue
		}
		s := counts[key]
		merged[key] = &Subscription{
			Name:              s.name,
			Amount:            s.amount,
			Frequency:         FrequencyMonthly,
			AnnualCost:        s.amount * 12,
			MonthlyEquivalent: s.amount,
			Source:            SourceDetected,
		}
		order = append(order, key)
	}

	audit := &SubscriptionAudit{Count: len(merged)}
	subs := make([]*Subscription, 0, len(merged))
	for _, key := range order {
		sub := merged[key]
		subs = append(subs, sub)
		audit.TotalMonthlyCost += sub.MonthlyEquivalent
		audit.TotalAnnualCost += sub.AnnualCost
	}

	sort.SliceStable(subs, func(i, j int) bool {
		return subs[i].AnnualCost > subs[j].AnnualCost
	})
	if len(subs) > maxSubscriptions {
		subs = subs[:maxSubscriptions]
	}
	audit.Subscriptions = subs

	if audit.Count > subscriptionCountNudge {
		audit.Suggestions = append(audit.Suggestions,
			fmt.Sprintf("You have %d subscriptions; review them for services you no longer use", audit.Count))
	}
	for _, sub := range subs {
		if sub.AnnualCost > subscriptionAnnualCostBar {
			audit.Suggestions = append(audit.Suggestions,
				fmt.Sprintf("%s costs $%.2f per year; check whether it is still worth it", sub.Name, sub.AnnualCost))
			break
		}
	}

	return audit
}

// annualizeSubscription converts an amount at the given frequency to a
// yearly cost: monthly*12, weekly*52, biweekly*26, yearly as-is.
func annualizeSubscription(amount float64, freq string) float64 {
	switch normalizeFrequency(freq) {
	case FrequencyWeekly:
		return amount * 52
	case FrequencyBiweekly:
		return amount * 26
	case FrequencyYearly:
		return amount
	default:
		return amount * 12
	}
}
