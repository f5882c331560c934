/*
store.go - Persistence interfaces consumed by the tracker

PURPOSE:
  Defines the contract between the tracker and whatever holds the data.
  The original system kept everything in browser local storage keyed by
  employee id; here the same shape is an injected store interface, so
  the engine and tracker never know the persistence technology.

IMPLEMENTATIONS:
  - store/memory: In-memory, for tests and dev
  - store/sqlite: SQLite with WAL and an auto-migrated schema

CONTRACT:
  PutDay persists a whole record atomically. The tracker always writes
  the value returned by a successful engine transition, so a failed
  transition never reaches the store (no partial writes).
*/
package tracker

import (
	"context"

	"github.com/pulse/attendance-engine/engine"
)

// Store holds attendance records and the short-leave counts.
type Store interface {
	// Day returns the record for one date, with a presence flag.
	Day(ctx context.Context, employeeID string, date engine.Date) (engine.Day, bool, error)

	// Days returns the employee's full history ordered by date ascending.
	Days(ctx context.Context, employeeID string) ([]engine.Day, error)

	// AllDays returns every record across employees, for admin views and
	// export. Ordered by date descending (newest first).
	AllDays(ctx context.Context) ([]engine.Day, error)

	// PutDay inserts or replaces the record for (employee, date) as a
	// single atomic write.
	PutDay(ctx context.Context, day engine.Day) error

	// ShortLeavesUsed returns the consumed count for a "YYYY-MM" month.
	// Missing months read as zero.
	ShortLeavesUsed(ctx context.Context, employeeID, month string) (int, error)

	// SetShortLeavesUsed records the consumed count for a month.
	SetShortLeavesUsed(ctx context.Context, employeeID, month string, used int) error
}

// EmployeeStore holds the employee directory.
type EmployeeStore interface {
	Employee(ctx context.Context, id string) (Employee, bool, error)
	Employees(ctx context.Context) ([]Employee, error)
	PutEmployee(ctx context.Context, e Employee) error
}
