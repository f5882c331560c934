package engine

import (
	"time"
)

// =============================================================================
// DATE - Calendar date (no time-of-day component)
// =============================================================================

// Date is a calendar date. One attendance record exists per employee per
// Date; all date comparisons in the engine go through this type.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

const dateLayout = "2006-01-02"

func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf truncates a time.Time to its calendar date.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses an ISO "YYYY-MM-DD" date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

// Time returns the date at UTC midnight.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) String() string { return d.Time().Format(dateLayout) }

func (d Date) Weekday() time.Weekday { return d.Time().Weekday() }

// IsSunday reports whether the date is a Sunday. Sundays are rest days:
// they never accrue a real attendance record and are excluded from
// statistics.
func (d Date) IsSunday() bool { return d.Weekday() == time.Sunday }

// MonthKey returns the "YYYY-MM" key used for the short-leave ledger.
func (d Date) MonthKey() string { return d.Time().Format("2006-01") }

// MonthLabel returns a display label like "March 2025".
func (d Date) MonthLabel() string { return d.Time().Format("January 2006") }

// Comparison
func (d Date) Equal(o Date) bool  { return d == o }
func (d Date) Before(o Date) bool { return d.Time().Before(o.Time()) }
func (d Date) After(o Date) bool  { return d.Time().After(o.Time()) }

// AddDays returns the date n days later (negative n for earlier).
func (d Date) AddDays(n int) Date { return DateOf(d.Time().AddDate(0, 0, n)) }

// StartOfWeek returns the Sunday on or before the date, the anchor used
// for weekly goal periods.
func (d Date) StartOfWeek() Date { return d.AddDays(-int(d.Weekday())) }

func (d Date) IsZero() bool { return d == Date{} }
