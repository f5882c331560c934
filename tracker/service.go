/*
service.go - The attendance tracker service

PURPOSE:
  The orchestration layer between UI events and the pure engine. Every
  operation follows the same shape:

    1. Resolve "now" from the injected clock
    2. Load the day's record (and the month's short-leave count)
    3. Run the pure engine transition
    4. Persist the returned value

  A rejected transition returns the engine's error and writes nothing.

LOCATION GATE:
  Check-in and check-out take a LocationCheck resolved by the external
  geolocation collaborator. An unverified location rejects the action
  before the engine is consulted; the engine itself knows nothing about
  geolocation.

TIME INJECTION:
  The service never reads the wall clock directly; it calls the injected
  now() function. Tests pin it to a fixed instant.
*/
package tracker

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pulse/attendance-engine/engine"
)

// Tracker orchestrates the engine against a Store.
type Tracker struct {
	store     Store
	employees EmployeeStore
	log       *zap.Logger
	now       func() time.Time
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock replaces the wall clock. For tests.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// WithLogger attaches a logger. Defaults to a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(t *Tracker) { t.log = log }
}

// New creates a Tracker over the given stores.
func New(store Store, employees EmployeeStore, opts ...Option) *Tracker {
	t := &Tracker{
		store:     store,
		employees: employees,
		log:       zap.NewNop(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Tracker) today() (engine.Date, engine.Clock) {
	now := t.now()
	return engine.DateOf(now), engine.ClockOf(now)
}

func (t *Tracker) requireEmployee(ctx context.Context, id string) error {
	_, ok, err := t.employees.Employee(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrEmployeeNotFound, id)
	}
	return nil
}

// =============================================================================
// CHECK-IN / CHECK-OUT
// =============================================================================

// CheckIn creates today's record with the current time. The location
// gate must already be verified.
func (t *Tracker) CheckIn(ctx context.Context, employeeID string, loc LocationCheck) (engine.Day, error) {
	if err := t.requireEmployee(ctx, employeeID); err != nil {
		return engine.Day{}, err
	}
	if !loc.Verified {
		return engine.Day{}, &engine.PolicyViolationError{
			Code:   engine.ViolationLocationDenied,
			Detail: "check-in denied: outside the allowed office radius",
		}
	}

	date, at := t.today()
	day, ok, err := t.store.Day(ctx, employeeID, date)
	if err != nil {
		return engine.Day{}, err
	}
	if !ok {
		day = engine.NewDay(uuid.NewString(), employeeID, date)
	}

	day, err = day.Begin(at)
	if err != nil {
		return engine.Day{}, err
	}
	day.LocationVerified = true
	day.DistanceFromOffice = loc.Distance

	if err := t.store.PutDay(ctx, day); err != nil {
		return engine.Day{}, err
	}
	t.log.Info("checked in",
		zap.String("employee", employeeID),
		zap.String("date", date.String()),
		zap.String("time", at.String()))
	return day, nil
}

// CheckOut completes today's record: totals, overtime, final status and
// short-leave consumption, persisted together with the updated ledger.
func (t *Tracker) CheckOut(ctx context.Context, employeeID string, loc LocationCheck) (engine.Day, error) {
	if err := t.requireEmployee(ctx, employeeID); err != nil {
		return engine.Day{}, err
	}
	if !loc.Verified {
		return engine.Day{}, &engine.PolicyViolationError{
			Code:   engine.ViolationLocationDenied,
			Detail: "check-out denied: outside the allowed office radius",
		}
	}

	date, at := t.today()
	day, ok, err := t.store.Day(ctx, employeeID, date)
	if err != nil {
		return engine.Day{}, err
	}
	if !ok {
		return engine.Day{}, &engine.PolicyViolationError{
			Code:   engine.ViolationNoCheckIn,
			Detail: "no active check-in; check in before checking out",
		}
	}

	month := date.MonthKey()
	used, err := t.store.ShortLeavesUsed(ctx, employeeID, month)
	if err != nil {
		return engine.Day{}, err
	}

	day, ledger, err := day.Complete(at, engine.LedgerWith(month, used))
	if err != nil {
		return engine.Day{}, err
	}
	day.CheckOutLocationVerified = true
	day.CheckOutDistance = loc.Distance

	if err := t.store.PutDay(ctx, day); err != nil {
		return engine.Day{}, err
	}
	if day.ShortLeaveUsed {
		if err := t.store.SetShortLeavesUsed(ctx, employeeID, month, ledger.UsedIn(month)); err != nil {
			return engine.Day{}, err
		}
	}
	t.log.Info("checked out",
		zap.String("employee", employeeID),
		zap.String("date", date.String()),
		zap.String("status", string(day.Status)),
		zap.Bool("short_leave", day.ShortLeaveUsed))
	return day, nil
}

// =============================================================================
// BREAKS AND NOTES
// =============================================================================

// StartBreak opens a break on today's record.
func (t *Tracker) StartBreak(ctx context.Context, employeeID string, kind engine.BreakKind) (engine.Day, error) {
	return t.mutateToday(ctx, employeeID, func(d engine.Day, at engine.Clock) (engine.Day, error) {
		return d.StartBreak(uuid.NewString(), kind, at)
	})
}

// EndBreak closes the open break on today's record.
func (t *Tracker) EndBreak(ctx context.Context, employeeID string) (engine.Day, error) {
	return t.mutateToday(ctx, employeeID, func(d engine.Day, at engine.Clock) (engine.Day, error) {
		return d.EndBreak(at)
	})
}

// AddNote attaches a note to today's record, in any state.
func (t *Tracker) AddNote(ctx context.Context, employeeID, note string) (engine.Day, error) {
	return t.mutateToday(ctx, employeeID, func(d engine.Day, _ engine.Clock) (engine.Day, error) {
		return d.WithNote(note), nil
	})
}

func (t *Tracker) mutateToday(ctx context.Context, employeeID string, fn func(engine.Day, engine.Clock) (engine.Day, error)) (engine.Day, error) {
	if err := t.requireEmployee(ctx, employeeID); err != nil {
		return engine.Day{}, err
	}

	date, at := t.today()
	day, ok, err := t.store.Day(ctx, employeeID, date)
	if err != nil {
		return engine.Day{}, err
	}
	if !ok {
		return engine.Day{}, &engine.PolicyViolationError{
			Code:   engine.ViolationNoCheckIn,
			Detail: "must check in first",
		}
	}

	day, err = fn(day, at)
	if err != nil {
		return engine.Day{}, err
	}
	if err := t.store.PutDay(ctx, day); err != nil {
		return engine.Day{}, err
	}
	return day, nil
}

// =============================================================================
// QUERIES
// =============================================================================

// TodayRecord returns today's record, if one exists.
func (t *Tracker) TodayRecord(ctx context.Context, employeeID string) (engine.Day, bool, error) {
	date, _ := t.today()
	return t.store.Day(ctx, employeeID, date)
}

// History returns the employee's full record list, date ascending.
func (t *Tracker) History(ctx context.Context, employeeID string) ([]engine.Day, error) {
	return t.store.Days(ctx, employeeID)
}

// AllRecords returns every record across employees, newest first. Used
// by the admin export paths.
func (t *Tracker) AllRecords(ctx context.Context) ([]engine.Day, error) {
	return t.store.AllDays(ctx)
}

// Stats aggregates the employee's history.
func (t *Tracker) Stats(ctx context.Context, employeeID string) (engine.Stats, error) {
	days, err := t.store.Days(ctx, employeeID)
	if err != nil {
		return engine.Stats{}, err
	}
	return engine.Summarize(days), nil
}

// ShortLeaves returns the quota view for the current month.
func (t *Tracker) ShortLeaves(ctx context.Context, employeeID string) (ShortLeaveInfo, error) {
	date, _ := t.today()
	used, err := t.store.ShortLeavesUsed(ctx, employeeID, date.MonthKey())
	if err != nil {
		return ShortLeaveInfo{}, err
	}
	remaining := engine.MaxShortLeavesPerMonth - used
	if remaining < 0 {
		remaining = 0
	}
	return ShortLeaveInfo{
		Used:      used,
		Remaining: remaining,
		Total:     engine.MaxShortLeavesPerMonth,
		Month:     date.MonthLabel(),
	}, nil
}

// CanCheckIn reports whether a check-in would be accepted right now.
func (t *Tracker) CanCheckIn(ctx context.Context, employeeID string) (bool, error) {
	date, _ := t.today()
	if date.IsSunday() {
		return false, nil
	}
	day, ok, err := t.store.Day(ctx, employeeID, date)
	if err != nil {
		return false, err
	}
	return !ok || day.CheckIn == nil, nil
}

// CanCheckOut reports whether a check-out would be accepted right now.
func (t *Tracker) CanCheckOut(ctx context.Context, employeeID string) (bool, error) {
	date, _ := t.today()
	day, ok, err := t.store.Day(ctx, employeeID, date)
	if err != nil {
		return false, err
	}
	return ok && day.CheckIn != nil && !day.Completed(), nil
}

// =============================================================================
// EMPLOYEES
// =============================================================================

// CreateEmployee validates and stores a new employee, assigning an ID
// when none is set.
func (t *Tracker) CreateEmployee(ctx context.Context, e Employee) (Employee, error) {
	if err := e.Validate(); err != nil {
		return Employee{}, err
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.JoinDate.IsZero() {
		e.JoinDate = engine.DateOf(t.now())
	}
	e.Active = true
	if err := t.employees.PutEmployee(ctx, e); err != nil {
		return Employee{}, err
	}
	return e, nil
}

// Employee returns one directory record.
func (t *Tracker) Employee(ctx context.Context, id string) (Employee, error) {
	e, ok, err := t.employees.Employee(ctx, id)
	if err != nil {
		return Employee{}, err
	}
	if !ok {
		return Employee{}, fmt.Errorf("%w: %s", ErrEmployeeNotFound, id)
	}
	return e, nil
}

// Employees lists the directory.
func (t *Tracker) Employees(ctx context.Context) ([]Employee, error) {
	return t.employees.Employees(ctx)
}
