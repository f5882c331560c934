// Package memory provides an in-memory store implementation for tests
// and development. It implements every store interface in the module.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/pulse/attendance-engine/achievements"
	"github.com/pulse/attendance-engine/engine"
	"github.com/pulse/attendance-engine/export"
	"github.com/pulse/attendance-engine/goals"
	"github.com/pulse/attendance-engine/leave"
	"github.com/pulse/attendance-engine/tracker"
)

// =============================================================================
// MEMORY STORE
// =============================================================================

type dayKey struct {
	EmployeeID string
	Date       engine.Date
}

type shortLeaveKey struct {
	EmployeeID string
	Month      string
}

type Store struct {
	mu sync.RWMutex

	days         map[dayKey]engine.Day
	shortLeaves  map[shortLeaveKey]int
	employees    map[string]tracker.Employee
	leaves       map[string]leave.Request
	goals        map[string]goals.Goal
	achievements map[string][]achievements.Achievement

	sheetsConfig  *export.SheetsConfig
	syncRuns      []export.SyncRun
	employeeOrder []string
	leaveOrder    []string
}

// Compile-time interface checks.
var (
	_ tracker.Store         = (*Store)(nil)
	_ tracker.EmployeeStore = (*Store)(nil)
	_ leave.Store           = (*Store)(nil)
	_ goals.Store           = (*Store)(nil)
	_ achievements.Store    = (*Store)(nil)
	_ export.ConfigStore    = (*Store)(nil)
)

func New() *Store {
	return &Store{
		days:         make(map[dayKey]engine.Day),
		shortLeaves:  make(map[shortLeaveKey]int),
		employees:    make(map[string]tracker.Employee),
		leaves:       make(map[string]leave.Request),
		goals:        make(map[string]goals.Goal),
		achievements: make(map[string][]achievements.Achievement),
	}
}

// =============================================================================
// ATTENDANCE DAYS
// =============================================================================

func (s *Store) Day(_ context.Context, employeeID string, date engine.Date) (engine.Day, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.days[dayKey{EmployeeID: employeeID, Date: date}]
	return d, ok, nil
}

func (s *Store) Days(_ context.Context, employeeID string) ([]engine.Day, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []engine.Day
	for k, d := range s.days {
		if k.EmployeeID == employeeID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (s *Store) AllDays(_ context.Context) ([]engine.Day, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]engine.Day, 0, len(s.days))
	for _, d := range s.days {
		out = append(out, d)
	}
	// Newest first.
	sort.Slice(out, func(i, j int) bool { return out[j].Date.Before(out[i].Date) })
	return out, nil
}

func (s *Store) PutDay(_ context.Context, day engine.Day) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.days[dayKey{EmployeeID: day.EmployeeID, Date: day.Date}] = day
	return nil
}

// =============================================================================
// SHORT LEAVES
// =============================================================================

func (s *Store) ShortLeavesUsed(_ context.Context, employeeID, month string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.shortLeaves[shortLeaveKey{EmployeeID: employeeID, Month: month}], nil
}

func (s *Store) SetShortLeavesUsed(_ context.Context, employeeID, month string, used int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shortLeaves[shortLeaveKey{EmployeeID: employeeID, Month: month}] = used
	return nil
}

// =============================================================================
// EMPLOYEES
// =============================================================================

func (s *Store) Employee(_ context.Context, id string) (tracker.Employee, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.employees[id]
	return e, ok, nil
}

func (s *Store) Employees(_ context.Context) ([]tracker.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]tracker.Employee, 0, len(s.employeeOrder))
	for _, id := range s.employeeOrder {
		out = append(out, s.employees[id])
	}
	return out, nil
}

func (s *Store) PutEmployee(_ context.Context, e tracker.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.employees[e.ID]; !exists {
		s.employeeOrder = append(s.employeeOrder, e.ID)
	}
	s.employees[e.ID] = e
	return nil
}

// =============================================================================
// LEAVE REQUESTS
// =============================================================================

func (s *Store) Request(_ context.Context, id string) (leave.Request, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.leaves[id]
	return r, ok, nil
}

func (s *Store) Requests(_ context.Context, employeeID string) ([]leave.Request, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []leave.Request
	for _, id := range s.leaveOrder {
		if r, ok := s.leaves[id]; ok && r.EmployeeID == employeeID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *Store) AllRequests(_ context.Context) ([]leave.Request, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]leave.Request, 0, len(s.leaveOrder))
	for _, id := range s.leaveOrder {
		if r, ok := s.leaves[id]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *Store) PutRequest(_ context.Context, r leave.Request) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.leaves[r.ID]; !exists {
		s.leaveOrder = append(s.leaveOrder, r.ID)
	}
	s.leaves[r.ID] = r
	return nil
}

func (s *Store) DeleteRequest(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.leaves, id)
	return nil
}

// =============================================================================
// GOALS
// =============================================================================

func (s *Store) Goals(_ context.Context, employeeID string) ([]goals.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []goals.Goal
	for _, g := range s.goals {
		if g.EmployeeID == employeeID {
			out = append(out, g)
		}
	}
	// Stable order: daily, weekly, monthly, then by description.
	rank := map[goals.Kind]int{goals.KindDaily: 0, goals.KindWeekly: 1, goals.KindMonthly: 2}
	sort.Slice(out, func(i, j int) bool {
		if rank[out[i].Kind] != rank[out[j].Kind] {
			return rank[out[i].Kind] < rank[out[j].Kind]
		}
		return out[i].Description < out[j].Description
	})
	return out, nil
}

func (s *Store) PutGoal(_ context.Context, g goals.Goal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.goals[g.ID] = g
	return nil
}

func (s *Store) DeleteGoal(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.goals, id)
	return nil
}

// =============================================================================
// ACHIEVEMENTS
// =============================================================================

func (s *Store) Achievements(_ context.Context, employeeID string) ([]achievements.Achievement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]achievements.Achievement, len(s.achievements[employeeID]))
	copy(out, s.achievements[employeeID])
	return out, nil
}

func (s *Store) PutAchievement(_ context.Context, a achievements.Achievement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.achievements[a.EmployeeID] = append(s.achievements[a.EmployeeID], a)
	return nil
}

// =============================================================================
// SHEETS CONFIG / SYNC RUNS
// =============================================================================

func (s *Store) SheetsConfig(_ context.Context) (export.SheetsConfig, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.sheetsConfig == nil {
		return export.SheetsConfig{}, false, nil
	}
	return *s.sheetsConfig, true, nil
}

func (s *Store) PutSheetsConfig(_ context.Context, cfg export.SheetsConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sheetsConfig = &cfg
	return nil
}

func (s *Store) RecordSyncRun(_ context.Context, run export.SyncRun) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.syncRuns = append(s.syncRuns, run)
	return nil
}

func (s *Store) LastSyncRun(_ context.Context) (export.SyncRun, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.syncRuns) == 0 {
		return export.SyncRun{}, false, nil
	}
	return s.syncRuns[len(s.syncRuns)-1], true, nil
}
