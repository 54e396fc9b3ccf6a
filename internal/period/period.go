// Package period computes local-calendar reporting windows. All functions are
// pure and total: they take a reference instant and derive boundaries from its
// own location, so callers in any timezone get their local weeks and months.
package period

import "time"

// Range is an inclusive calendar span at millisecond grain: Start is the first
// instant of the window, End the last (…23:59:59.999). Start <= End always.
type Range struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls inside the range.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Key is the window's start date, used to deduplicate generated reports.
func (r Range) Key() string {
	return r.Start.Format("2006-01-02")
}

// Reporting jobs fire at 07:00 local time.
const triggerHour = 7

// startOfDay truncates ref to local midnight.
func startOfDay(ref time.Time) time.Time {
	y, m, d := ref.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, ref.Location())
}

// CurrentWeekly returns the Sunday-through-Saturday week containing ref.
func CurrentWeekly(ref time.Time) Range {
	start := startOfDay(ref).AddDate(0, 0, -int(ref.Weekday()))
	return Range{
		Start: start,
		End:   start.AddDate(0, 0, 7).Add(-time.Millisecond),
	}
}

// CompletedWeekly returns the most recently finished week before the one
// containing ref. The boundary is recomputed from the instant one millisecond
// before the current week starts, which keeps month and year rollovers exact.
func CompletedWeekly(ref time.Time) Range {
	return CurrentWeekly(CurrentWeekly(ref).Start.Add(-time.Millisecond))
}

// CurrentMonthly returns the calendar month containing ref. AddDate handles
// variable month lengths and leap years.
func CurrentMonthly(ref time.Time) Range {
	y, m, _ := ref.Date()
	start := time.Date(y, m, 1, 0, 0, 0, 0, ref.Location())
	return Range{
		Start: start,
		End:   start.AddDate(0, 1, 0).Add(-time.Millisecond),
	}
}

// CompletedMonthly returns the previous calendar month, via the same
// back-reference recomputation as CompletedWeekly.
func CompletedMonthly(ref time.Time) Range {
	return CurrentMonthly(CurrentMonthly(ref).Start.Add(-time.Millisecond))
}

// IsWeeklyTrigger reports whether ref is a weekly reporting instant:
// Sunday 07:00 local, to minute granularity (seconds are not checked).
func IsWeeklyTrigger(ref time.Time) bool {
	return ref.Weekday() == time.Sunday && ref.Hour() == triggerHour && ref.Minute() == 0
}

// IsMonthlyTrigger reports whether ref is a monthly reporting instant:
// day 1 of the month, 07:00 local.
func IsMonthlyTrigger(ref time.Time) bool {
	return ref.Day() == 1 && ref.Hour() == triggerHour && ref.Minute() == 0
}
