package insights

import "fmt"

const (
	upcomingBillWindowDays = 7

	billIncomeShareBar   = 50
	billBalanceShareBar  = 20
	billUpcomingTotalBar = 50
)

// analyzeBillImpact normalizes every active bill to a monthly equivalent and
// expresses the total burden as a share of income, then highlights bills due
// in the next seven days relative to the current balance.
func analyzeBillImpact(snap *Snapshot, ranges *DateRanges, stats *CategoryStats) *BillImpact {
	impact := &BillImpact{}
	balance := snap.TotalBalance()
	windowEnd := ranges.AsOf.AddDate(0, 0, upcomingBillWindowDays)

	for _, b := range snap.Bills {
		if !b.IsActive || b.Amount == nil {
			continue
		}
		impact.TotalMonthlyBills += monthlyEquivalent(*b.Amount, b.Frequency)

		if b.NextDue.IsZero() {
			continue
		}
		due := b.NextDue.Time
		if due.Before(startOfDay(ranges.AsOf)) || due.After(windowEnd) {
			continue
		}

		upcoming := &UpcomingBill{
			Name:    b.Name,
			Amount:  *b.Amount,
			DueDate: b.NextDue.String(),
		}
		if balance > 0 {
			upcoming.PercentOfBalance = *b.Amount / balance * 100
		}
		impact.UpcomingBills = append(impact.UpcomingBills, upcoming)
		impact.UpcomingTotal += *b.Amount
	}

	if stats.MonthIncome > 0 {
		impact.PercentOfIncome = impact.TotalMonthlyBills / stats.MonthIncome * 100
	}

	if impact.PercentOfIncome > billIncomeShareBar {
		impact.Recommendations = append(impact.Recommendations,
			fmt.Sprintf("Bills consume %.0f%% of your monthly income; look for obligations to reduce", impact.PercentOfIncome))
	}
	for _, u := range impact.UpcomingBills {
		if u.PercentOfBalance > billBalanceShareBar {
			impact.Recommendations = append(impact.Recommendations,
				fmt.Sprintf("%s ($%.2f) is %.0f%% of your current balance and due %s", u.Name, u.Amount, u.PercentOfBalance, u.DueDate))
		}
	}
	if balance > 0 && impact.UpcomingTotal/balance*100 > billUpcomingTotalBar {
		impact.Recommendations = append(impact.Recommendations,
			fmt.Sprintf("$%.2f in bills due within 7 days is over half your current balance", impact.UpcomingTotal))
	}

	return impact
}
