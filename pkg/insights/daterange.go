package insights

import "time"

// DateRanges holds the calendar anchors every analyzer in a report agrees
// on. Resolving them once per report guarantees a single definition of
// "today" and "this month" across analyzers.
type DateRanges struct {
	AsOf           time.Time
	MonthStart     time.Time
	MonthEnd       time.Time
	PrevMonthStart time.Time
	PrevMonthEnd   time.Time
	WeekStart      time.Time
	DaysInMonth    int
	DayOfMonth     int
	DaysRemaining  int
}

// resolveDateRanges computes the calendar anchors for the given "today".
func resolveDateRanges(asOf time.Time) *DateRanges {
	year, month, day := asOf.Date()
	loc := asOf.Location()

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	nextMonthStart := monthStart.AddDate(0, 1, 0)
	monthEnd := nextMonthStart.Add(-time.Nanosecond)

	prevMonthStart := monthStart.AddDate(0, -1, 0)
	prevMonthEnd := monthStart.Add(-time.Nanosecond)

	// Sunday-anchored week
	weekStart := time.Date(year, month, day, 0, 0, 0, 0, loc).
		AddDate(0, 0, -int(asOf.Weekday()))

	daysInMonth := nextMonthStart.AddDate(0, 0, -1).Day()

	return &DateRanges{
		AsOf:           asOf,
		MonthStart:     monthStart,
		MonthEnd:       monthEnd,
		PrevMonthStart: prevMonthStart,
		PrevMonthEnd:   prevMonthEnd,
		WeekStart:      weekStart,
		DaysInMonth:    daysInMonth,
		DayOfMonth:     day,
		DaysRemaining:  daysInMonth - day,
	}
}

// startOfDay truncates t to midnight in its own location.
func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// inCurrentMonth reports whether t falls in the report's current month, from
// the 1st through "today" inclusive.
func (r *DateRanges) inCurrentMonth(t time.Time) bool {
	return !t.Before(r.MonthStart) && !t.After(r.MonthEnd)
}

// inPrevMonth reports whether t falls in the previous calendar month.
func (r *DateRanges) inPrevMonth(t time.Time) bool {
	return !t.Before(r.PrevMonthStart) && !t.After(r.PrevMonthEnd)
}
