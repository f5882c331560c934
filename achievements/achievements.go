/*
Package achievements grants attendance milestones.

PURPOSE:
  Evaluates an employee's aggregate statistics against a fixed rule
  table and unlocks badges. An achievement unlocks at most once per
  employee (keyed by title) and keeps its unlock timestamp.

RULES:
  Rules are pure predicates over engine.Stats, so the evaluation itself
  stays deterministic and testable. Evaluate is typically called after
  every checkout.
*/
package achievements

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pulse/attendance-engine/engine"
)

// =============================================================================
// TYPES
// =============================================================================

type Category string

const (
	CategoryStreak      Category = "streak"
	CategoryHours       Category = "hours"
	CategoryPunctuality Category = "punctuality"
	CategoryConsistency Category = "consistency"
)

// Achievement is one unlocked badge.
type Achievement struct {
	ID          string
	EmployeeID  string
	Title       string
	Description string
	Icon        string
	Category    Category
	UnlockedAt  time.Time
}

// Rule is an unlock condition over the aggregate stats.
type Rule struct {
	Title       string
	Description string
	Icon        string
	Category    Category
	Qualifies   func(engine.Stats) bool
}

// DefaultRules is the standard rule table.
func DefaultRules() []Rule {
	return []Rule{
		{
			Title:       "First Day",
			Description: "Completed your first day of attendance tracking",
			Icon:        "🎉",
			Category:    CategoryStreak,
			Qualifies:   func(st engine.Stats) bool { return st.TotalDays == 1 },
		},
		{
			Title:       "Week Warrior",
			Description: "Maintained a 7-day attendance streak",
			Icon:        "🔥",
			Category:    CategoryStreak,
			Qualifies:   func(st engine.Stats) bool { return st.CurrentStreak >= 7 },
		},
		{
			Title:       "Monthly Master",
			Description: "Maintained a 30-day attendance streak",
			Icon:        "👑",
			Category:    CategoryStreak,
			Qualifies:   func(st engine.Stats) bool { return st.CurrentStreak >= 30 },
		},
		{
			Title:       "Dedicated Worker",
			Description: "Maintained 8+ hours average daily",
			Icon:        "💪",
			Category:    CategoryHours,
			Qualifies:   func(st engine.Stats) bool { return st.TotalDays > 0 && st.AverageHours >= 8 },
		},
		{
			Title:       "Perfect Attendance",
			Description: "Achieved 100% attendance rate",
			Icon:        "⭐",
			Category:    CategoryPunctuality,
			Qualifies:   func(st engine.Stats) bool { return st.AttendanceRate == 100 && st.TotalDays >= 10 },
		},
	}
}

// =============================================================================
// STORE
// =============================================================================

// Store persists unlocked achievements.
type Store interface {
	Achievements(ctx context.Context, employeeID string) ([]Achievement, error)
	PutAchievement(ctx context.Context, a Achievement) error
}

// =============================================================================
// SERVICE
// =============================================================================

// Service evaluates the rule table for an employee.
type Service struct {
	store Store
	rules []Rule
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, rules: DefaultRules(), now: time.Now}
}

// WithClock replaces the wall clock. For tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Evaluate unlocks any rules the stats now satisfy and returns only the
// newly unlocked achievements. Already-unlocked titles are skipped.
func (s *Service) Evaluate(ctx context.Context, employeeID string, st engine.Stats) ([]Achievement, error) {
	existing, err := s.store.Achievements(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	unlocked := make(map[string]bool, len(existing))
	for _, a := range existing {
		unlocked[a.Title] = true
	}

	var fresh []Achievement
	for _, rule := range s.rules {
		if unlocked[rule.Title] || !rule.Qualifies(st) {
			continue
		}
		a := Achievement{
			ID:          uuid.NewString(),
			EmployeeID:  employeeID,
			Title:       rule.Title,
			Description: rule.Description,
			Icon:        rule.Icon,
			Category:    rule.Category,
			UnlockedAt:  s.now(),
		}
		if err := s.store.PutAchievement(ctx, a); err != nil {
			return fresh, err
		}
		fresh = append(fresh, a)
	}
	return fresh, nil
}

// List returns everything the employee has unlocked.
func (s *Service) List(ctx context.Context, employeeID string) ([]Achievement, error) {
	return s.store.Achievements(ctx, employeeID)
}
