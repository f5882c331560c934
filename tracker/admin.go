/*
admin.go - Administrator aggregation

PURPOSE:
  Rolls per-employee histories up into the rows the administrator
  dashboard shows and exports: today's state plus monthly aggregates for
  every employee.
*/
package tracker

import (
	"context"

	"github.com/pulse/attendance-engine/engine"
)

// EmployeeSummary is one admin dashboard row.
type EmployeeSummary struct {
	Employee Employee
	Stats    engine.Stats

	TodayStatus   engine.Status // empty when there is no record today
	TodayCheckIn  string
	TodayCheckOut string
	TodayHours    float64

	TotalRecords int
}

// Summary builds one row per employee.
func (t *Tracker) Summary(ctx context.Context) ([]EmployeeSummary, error) {
	employees, err := t.employees.Employees(ctx)
	if err != nil {
		return nil, err
	}

	today, _ := t.today()
	rows := make([]EmployeeSummary, 0, len(employees))
	for _, e := range employees {
		days, err := t.store.Days(ctx, e.ID)
		if err != nil {
			return nil, err
		}

		row := EmployeeSummary{
			Employee:     e,
			Stats:        engine.Summarize(days),
			TotalRecords: len(days),
		}
		for _, d := range days {
			if !d.Date.Equal(today) {
				continue
			}
			row.TodayStatus = d.Status
			if d.CheckIn != nil {
				row.TodayCheckIn = d.CheckIn.String()
			}
			if d.CheckOut != nil {
				row.TodayCheckOut = d.CheckOut.String()
			}
			row.TodayHours = d.TotalHours.InexactFloat64()
		}
		rows = append(rows, row)
	}
	return rows, nil
}
