package tracker

import "errors"

var (
	// ErrEmployeeNotFound is returned when a referenced employee doesn't exist.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrNoRecord is returned when a day-scoped operation finds no record
	// for the date.
	ErrNoRecord = errors.New("no attendance record for date")

	// Employee validation errors.
	ErrEmployeeName  = errors.New("employee name is required")
	ErrEmployeeEmail = errors.New("employee email is required")
	ErrEmployeeRole  = errors.New("employee role must be employee, manager or admin")
)
