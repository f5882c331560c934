/*
stats.go - Aggregate statistics over a record history

PURPOSE:
  Rolls a list of Day records up into the numbers the dashboards show:
  counts by status, attendance rate, average hours, overtime total, and
  streaks. Sundays are excluded entirely. Absent days come only from
  stored records - a working day with no record simply never enters the
  denominator (derive, don't store).
*/
package engine

import (
	"sort"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Stats is the aggregate view of one employee's history. Hour and rate
// values are rounded to two decimal places.
type Stats struct {
	TotalDays   int
	PresentDays int
	AbsentDays  int

	AttendanceRate float64
	AverageHours   float64
	TotalOvertime  float64

	CurrentStreak int
	LongestStreak int
}

// Summarize computes Stats from a record history. Input order does not
// matter; records are sorted by date internally. Sunday records are
// ignored.
func Summarize(days []Day) Stats {
	workdays := make([]Day, 0, len(days))
	for _, d := range days {
		if !d.Date.IsSunday() {
			workdays = append(workdays, d)
		}
	}
	sort.Slice(workdays, func(i, j int) bool {
		return workdays[i].Date.Before(workdays[j].Date)
	})

	var st Stats
	st.TotalDays = len(workdays)

	totalHours := decimal.Zero
	totalOvertime := decimal.Zero
	for _, d := range workdays {
		switch d.Status {
		case StatusPresent:
			st.PresentDays++
		case StatusAbsent:
			st.AbsentDays++
		}
		totalHours = totalHours.Add(d.TotalHours)
		totalOvertime = totalOvertime.Add(d.Overtime)
	}

	if st.TotalDays > 0 {
		n := decimal.NewFromInt(int64(st.TotalDays))
		st.AverageHours = totalHours.Div(n).Round(2).InexactFloat64()
		st.AttendanceRate = decimal.NewFromInt(int64(st.PresentDays)).
			Div(n).Mul(hundred).Round(2).InexactFloat64()
	}
	st.TotalOvertime = totalOvertime.Round(2).InexactFloat64()

	st.CurrentStreak, st.LongestStreak = streaks(workdays)
	return st
}

// streaks returns the run of present days ending at the most recent
// record, and the longest run anywhere in the ordered sequence.
func streaks(ordered []Day) (current, longest int) {
	run := 0
	for _, d := range ordered {
		if d.Status == StatusPresent {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	current = run
	return current, longest
}
