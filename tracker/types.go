// Package tracker wires the pure attendance engine to storage and to the
// caller's wall clock. It owns the per-employee record lifecycle:
// load -> pure transition -> save, with no partial writes.
package tracker

import (
	"strings"

	"github.com/pulse/attendance-engine/engine"
)

// =============================================================================
// EMPLOYEE
// =============================================================================

type Role string

const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
	RoleAdmin    Role = "admin"
)

// Employee is the directory record the tracker and exports hang off.
type Employee struct {
	ID         string
	Name       string
	Email      string
	Department string
	EmployeeID string // badge/payroll number, distinct from the row ID
	Role       Role
	JoinDate   engine.Date
	Active     bool
}

// Validate checks the fields a new employee must carry.
func (e Employee) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return ErrEmployeeName
	}
	if strings.TrimSpace(e.Email) == "" {
		return ErrEmployeeEmail
	}
	switch e.Role {
	case RoleEmployee, RoleManager, RoleAdmin:
	default:
		return ErrEmployeeRole
	}
	return nil
}

// =============================================================================
// LOCATION GATE
// =============================================================================

// LocationCheck is the resolved result of the external location
// verification collaborator. The tracker consumes it only as a gate:
// geolocation acquisition happens entirely outside the core.
type LocationCheck struct {
	Verified bool
	Distance float64 // meters from the office
	Note     string  // collaborator's message, recorded for reporting
}

// =============================================================================
// SHORT LEAVE INFO
// =============================================================================

// ShortLeaveInfo is the quota view for the current month.
type ShortLeaveInfo struct {
	Used      int
	Remaining int
	Total     int
	Month     string // display label, e.g. "March 2025"
}
