/*
Package goals tracks personal attendance goals.

PURPOSE:
  Each employee carries a small set of goals (hours per day, days per
  week, days per month). New employees are seeded with a default set;
  progress is refreshed from the attendance history rather than written
  by hand.

PERIODS:
  daily   - today's date ("2006-01-02")
  weekly  - the Sunday starting the current week
  monthly - the current "2006-01" month
*/
package goals

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pulse/attendance-engine/engine"
)

// =============================================================================
// TYPES
// =============================================================================

type Kind string

const (
	KindDaily   Kind = "daily"
	KindWeekly  Kind = "weekly"
	KindMonthly Kind = "monthly"
)

// Goal is one target with its live progress.
type Goal struct {
	ID          string
	EmployeeID  string
	Kind        Kind
	Target      float64
	Current     float64
	Description string
	Period      string
}

var ErrNotFound = errors.New("goal not found")

// Defaults is the goal set seeded for a new employee.
func Defaults(employeeID string, today engine.Date, newID func() string) []Goal {
	return []Goal{
		{
			ID:          newID(),
			EmployeeID:  employeeID,
			Kind:        KindDaily,
			Target:      8,
			Description: "Work 8 hours daily",
			Period:      today.String(),
		},
		{
			ID:          newID(),
			EmployeeID:  employeeID,
			Kind:        KindWeekly,
			Target:      5,
			Description: "Attend 5 days per week",
			Period:      today.StartOfWeek().String(),
		},
		{
			ID:          newID(),
			EmployeeID:  employeeID,
			Kind:        KindMonthly,
			Target:      22,
			Description: "Attend 22 days per month",
			Period:      today.MonthKey(),
		},
	}
}

// =============================================================================
// STORE
// =============================================================================

// Store persists goals.
type Store interface {
	Goals(ctx context.Context, employeeID string) ([]Goal, error)
	PutGoal(ctx context.Context, g Goal) error
	DeleteGoal(ctx context.Context, id string) error
}

// =============================================================================
// SERVICE
// =============================================================================

type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// WithClock replaces the wall clock. For tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Ensure returns the employee's goals, seeding the default set when the
// employee has none yet.
func (s *Service) Ensure(ctx context.Context, employeeID string) ([]Goal, error) {
	existing, err := s.store.Goals(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return existing, nil
	}

	seeded := Defaults(employeeID, engine.DateOf(s.now()), uuid.NewString)
	for _, g := range seeded {
		if err := s.store.PutGoal(ctx, g); err != nil {
			return nil, err
		}
	}
	return seeded, nil
}

// Refresh recomputes progress from the attendance history and persists
// the updated goals. Daily goals track today's hours; weekly and monthly
// goals count present days in their period.
func (s *Service) Refresh(ctx context.Context, employeeID string, days []engine.Day) ([]Goal, error) {
	glist, err := s.Ensure(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	today := engine.DateOf(s.now())
	for i := range glist {
		glist[i].Current = progress(glist[i], days, today)
		if err := s.store.PutGoal(ctx, glist[i]); err != nil {
			return nil, err
		}
	}
	return glist, nil
}

func progress(g Goal, days []engine.Day, today engine.Date) float64 {
	switch g.Kind {
	case KindDaily:
		for _, d := range days {
			if d.Date.Equal(today) {
				return d.TotalHours.InexactFloat64()
			}
		}
		return 0
	case KindWeekly:
		start := today.StartOfWeek()
		return float64(presentBetween(days, start, start.AddDays(6)))
	case KindMonthly:
		count := 0
		for _, d := range days {
			if d.Date.MonthKey() == today.MonthKey() && d.Status == engine.StatusPresent {
				count++
			}
		}
		return float64(count)
	}
	return 0
}

func presentBetween(days []engine.Day, from, to engine.Date) int {
	count := 0
	for _, d := range days {
		if d.Status != engine.StatusPresent {
			continue
		}
		if d.Date.Before(from) || d.Date.After(to) {
			continue
		}
		count++
	}
	return count
}

// Add stores a custom goal.
func (s *Service) Add(ctx context.Context, employeeID string, kind Kind, target float64, description, period string) (Goal, error) {
	g := Goal{
		ID:          uuid.NewString(),
		EmployeeID:  employeeID,
		Kind:        kind,
		Target:      target,
		Description: description,
		Period:      period,
	}
	if err := s.store.PutGoal(ctx, g); err != nil {
		return Goal{}, err
	}
	return g, nil
}

// UpdateProgress sets a goal's progress by hand.
func (s *Service) UpdateProgress(ctx context.Context, employeeID, id string, current float64) (Goal, error) {
	glist, err := s.store.Goals(ctx, employeeID)
	if err != nil {
		return Goal{}, err
	}
	for _, g := range glist {
		if g.ID == id {
			g.Current = current
			if err := s.store.PutGoal(ctx, g); err != nil {
				return Goal{}, err
			}
			return g, nil
		}
	}
	return Goal{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Delete removes a goal.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.DeleteGoal(ctx, id)
}
