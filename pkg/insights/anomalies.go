package insights

import (
	"fmt"
	"sort"
)

const (
	maxAnomalies = 10

	// Absolute thresholds applied independently of the z-score path
	anomalyHighAmount   = 1000
	anomalyMediumAmount = 500
)

// detectAnomalies flags unusually large expense transactions in the current
// month. A transaction is scored against its category's trailing mean and
// standard deviation; expenses over the absolute thresholds are flagged even
// without category history. Output is the 10 highest-severity anomalies in
// detection order.
func detectAnomalies(snap *Snapshot, ranges *DateRanges, stats *CategoryStats) []*Anomaly {
	var anomalies []*Anomaly

	for _, t := range snap.Transactions {
		if !t.IsExpense() || !ranges.inCurrentMonth(t.Date.Time) {
			continue
		}

		cat := snap.CategoryNameFor(t)
		amount := t.Magnitude()

		// Score against category history when there is any; expenses in a
		// category with no baseline can only trip the absolute thresholds
		var z float64
		if ds, ok := stats.Trailing[cat]; ok && ds.Count > 0 {
			stddev := ds.StdDev
			if stddev == 0 {
				stddev = 1
			}
			z = (amount - ds.Mean) / stddev
		}

		var severity, reason string
		switch {
		case z > 3:
			severity = SeverityHigh
			reason = fmt.Sprintf("%.1fx standard deviations above your typical %s spending", z, cat)
		case z > 2:
			severity = SeverityMedium
			reason = fmt.Sprintf("%.1fx standard deviations above your typical %s spending", z, cat)
		case amount > anomalyHighAmount:
			severity = SeverityHigh
			reason = fmt.Sprintf("Large expense of $%.2f", amount)
		case amount > anomalyMediumAmount:
			severity = SeverityMedium
			reason = fmt.Sprintf("Large expense of $%.2f", amount)
		default:
			continue
		}

		anomalies = append(anomalies, &Anomaly{
			TransactionID: t.ID,
			Description:   t.Description,
			Category:      cat,
			Amount:        amount,
			Date:          t.Date,
			ZScore:        z,
			Severity:      severity,
			Reason:        reason,
		})
	}

	// Highest severity first, detection order preserved within a severity
	sort.SliceStable(anomalies, func(i, j int) bool {
		return severityRank(anomalies[i].Severity) < severityRank(anomalies[j].Severity)
	})

	if len(anomalies) > maxAnomalies {
		anomalies = anomalies[:maxAnomalies]
	}
	return anomalies
}

func severityRank(severity string) int {
	if severity == SeverityHigh {
		return 0
	}
	return 1
}
