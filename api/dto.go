/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract, allowing:
  - Field renaming without breaking clients
  - API-specific validation
  - Version evolution

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

TYPES:
  Attendance:
    DayDTO, BreakDTO, CheckRequest, BreakRequest, NoteRequest

  Employee:
    EmployeeDTO, CreateEmployeeRequest, EmployeeSummaryDTO

  Leave:
    LeaveRequestDTO, SubmitLeaveRequest, DecideLeaveRequest

  Goals / Achievements:
    GoalDTO, AddGoalRequest, UpdateProgressRequest, AchievementDTO

  Sync:
    SheetsConfigDTO, SyncResultDTO

VALIDATION:
  Validation is done in handlers, not in DTOs. DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
  - server.go: Router setup and middleware
*/
package api

import (
	"time"

	"github.com/pulse/attendance-engine/achievements"
	"github.com/pulse/attendance-engine/engine"
	"github.com/pulse/attendance-engine/export"
	"github.com/pulse/attendance-engine/goals"
	"github.com/pulse/attendance-engine/leave"
	"github.com/pulse/attendance-engine/tracker"
)

// =============================================================================
// ATTENDANCE TYPES
// =============================================================================

// DayDTO represents one attendance record in API responses.
type DayDTO struct {
	ID                 string     `json:"id"`
	EmployeeID         string     `json:"employee_id"`
	Date               string     `json:"date"`
	CheckIn            *string    `json:"check_in"`
	CheckOut           *string    `json:"check_out"`
	Breaks             []BreakDTO `json:"breaks"`
	TotalHours         float64    `json:"total_hours"`
	OvertimeHours      float64    `json:"overtime_hours"`
	Status             string     `json:"status"`
	ShortLeaveUsed     bool       `json:"short_leave_used"`
	Notes              string     `json:"notes,omitempty"`
	LocationVerified   bool       `json:"location_verified"`
	DistanceFromOffice float64    `json:"distance_from_office"`
}

// BreakDTO represents one break interval.
type BreakDTO struct {
	ID       string  `json:"id"`
	Kind     string  `json:"kind"`
	Start    string  `json:"start"`
	End      *string `json:"end"`
	Duration float64 `json:"duration"`
}

// CheckRequest carries the location gate result for check-in/check-out.
type CheckRequest struct {
	LocationVerified bool    `json:"location_verified"`
	Distance         float64 `json:"distance"`
	LocationNote     string  `json:"location_note,omitempty"`
}

// BreakRequest starts a break of the given kind.
type BreakRequest struct {
	Kind string `json:"kind"`
}

// NoteRequest attaches a note to today's record.
type NoteRequest struct {
	Note string `json:"note"`
}

// ShortLeaveDTO is the monthly quota view.
type ShortLeaveDTO struct {
	Used      int    `json:"used"`
	Remaining int    `json:"remaining"`
	Total     int    `json:"total"`
	Month     string `json:"month"`
}

// StatsDTO aggregates an employee's history.
type StatsDTO struct {
	TotalDays      int     `json:"total_days"`
	PresentDays    int     `json:"present_days"`
	AbsentDays     int     `json:"absent_days"`
	AverageHours   float64 `json:"average_hours"`
	TotalOvertime  float64 `json:"total_overtime"`
	AttendanceRate float64 `json:"attendance_rate"`
	CurrentStreak  int     `json:"current_streak"`
	LongestStreak  int     `json:"longest_streak"`
}

// =============================================================================
// EMPLOYEE TYPES
// =============================================================================

// EmployeeDTO represents an employee in API responses.
type EmployeeDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department,omitempty"`
	EmployeeID string `json:"employee_id,omitempty"`
	Role       string `json:"role"`
	JoinDate   string `json:"join_date"`
	Active     bool   `json:"active"`
}

// CreateEmployeeRequest is the request to create an employee.
type CreateEmployeeRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	EmployeeID string `json:"employee_id"`
	Role       string `json:"role"`
	JoinDate   string `json:"join_date"`
}

// EmployeeSummaryDTO is one admin dashboard row.
type EmployeeSummaryDTO struct {
	Employee      EmployeeDTO `json:"employee"`
	Stats         StatsDTO    `json:"stats"`
	TodayStatus   string      `json:"today_status"`
	TodayCheckIn  string      `json:"today_check_in,omitempty"`
	TodayCheckOut string      `json:"today_check_out,omitempty"`
	TodayHours    float64     `json:"today_hours"`
	TotalRecords  int         `json:"total_records"`
}

// =============================================================================
// LEAVE TYPES
// =============================================================================

// LeaveRequestDTO represents a leave request in API responses.
type LeaveRequestDTO struct {
	ID          string `json:"id"`
	EmployeeID  string `json:"employee_id"`
	Type        string `json:"type"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Reason      string `json:"reason,omitempty"`
	Status      string `json:"status"`
	RequestDate string `json:"request_date"`
	ApprovedBy  string `json:"approved_by,omitempty"`
}

// SubmitLeaveRequest files a new leave request.
type SubmitLeaveRequest struct {
	Type      string `json:"type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

// DecideLeaveRequest approves or rejects a pending request.
type DecideLeaveRequest struct {
	Approver string `json:"approver"`
}

// =============================================================================
// GOAL / ACHIEVEMENT TYPES
// =============================================================================

// GoalDTO represents a goal in API responses.
type GoalDTO struct {
	ID          string  `json:"id"`
	EmployeeID  string  `json:"employee_id"`
	Kind        string  `json:"kind"`
	Target      float64 `json:"target"`
	Current     float64 `json:"current"`
	Description string  `json:"description"`
	Period      string  `json:"period"`
}

// AddGoalRequest creates a custom goal.
type AddGoalRequest struct {
	Kind        string  `json:"kind"`
	Target      float64 `json:"target"`
	Description string  `json:"description"`
	Period      string  `json:"period"`
}

// UpdateProgressRequest sets a goal's progress by hand.
type UpdateProgressRequest struct {
	EmployeeID string  `json:"employee_id"`
	Current    float64 `json:"current"`
}

// AchievementDTO represents an unlocked achievement.
type AchievementDTO struct {
	ID          string `json:"id"`
	EmployeeID  string `json:"employee_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Category    string `json:"category"`
	UnlockedAt  string `json:"unlocked_at"`
}

// =============================================================================
// SYNC TYPES
// =============================================================================

// SheetsConfigDTO is the Google Sheets sync configuration.
type SheetsConfigDTO struct {
	SpreadsheetID string `json:"spreadsheet_id"`
	APIKey        string `json:"api_key"`
	SheetName     string `json:"sheet_name"`
	Enabled       bool   `json:"enabled"`
}

// SyncResultDTO reports a sync run.
type SyncResultDTO struct {
	Status   string `json:"status"`
	Records  int    `json:"records"`
	SyncedAt string `json:"synced_at"`
	Error    string `json:"error,omitempty"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// CONVERSIONS
// =============================================================================

func toDayDTO(d engine.Day) DayDTO {
	breaks := make([]BreakDTO, len(d.Breaks))
	for i, b := range d.Breaks {
		breaks[i] = BreakDTO{
			ID:       b.ID,
			Kind:     string(b.Kind),
			Start:    b.Start.String(),
			End:      clockPtr(b.End),
			Duration: b.Duration.InexactFloat64(),
		}
	}
	return DayDTO{
		ID:                 d.ID,
		EmployeeID:         d.EmployeeID,
		Date:               d.Date.String(),
		CheckIn:            clockPtr(d.CheckIn),
		CheckOut:           clockPtr(d.CheckOut),
		Breaks:             breaks,
		TotalHours:         d.TotalHours.InexactFloat64(),
		OvertimeHours:      d.Overtime.InexactFloat64(),
		Status:             string(d.Status),
		ShortLeaveUsed:     d.ShortLeaveUsed,
		Notes:              d.Notes,
		LocationVerified:   d.LocationVerified,
		DistanceFromOffice: d.DistanceFromOffice,
	}
}

func clockPtr(c *engine.Clock) *string {
	if c == nil {
		return nil
	}
	s := c.String()
	return &s
}

func toEmployeeDTO(e tracker.Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:         e.ID,
		Name:       e.Name,
		Email:      e.Email,
		Department: e.Department,
		EmployeeID: e.EmployeeID,
		Role:       string(e.Role),
		JoinDate:   e.JoinDate.String(),
		Active:     e.Active,
	}
}

func toStatsDTO(st engine.Stats) StatsDTO {
	return StatsDTO{
		TotalDays:      st.TotalDays,
		PresentDays:    st.PresentDays,
		AbsentDays:     st.AbsentDays,
		AverageHours:   st.AverageHours,
		TotalOvertime:  st.TotalOvertime,
		AttendanceRate: st.AttendanceRate,
		CurrentStreak:  st.CurrentStreak,
		LongestStreak:  st.LongestStreak,
	}
}

func toSummaryDTO(s tracker.EmployeeSummary) EmployeeSummaryDTO {
	return EmployeeSummaryDTO{
		Employee:      toEmployeeDTO(s.Employee),
		Stats:         toStatsDTO(s.Stats),
		TodayStatus:   string(s.TodayStatus),
		TodayCheckIn:  s.TodayCheckIn,
		TodayCheckOut: s.TodayCheckOut,
		TodayHours:    s.TodayHours,
		TotalRecords:  s.TotalRecords,
	}
}

func toLeaveDTO(r leave.Request) LeaveRequestDTO {
	return LeaveRequestDTO{
		ID:          r.ID,
		EmployeeID:  r.EmployeeID,
		Type:        string(r.Type),
		StartDate:   r.StartDate.String(),
		EndDate:     r.EndDate.String(),
		Reason:      r.Reason,
		Status:      string(r.Status),
		RequestDate: r.RequestDate.String(),
		ApprovedBy:  r.ApprovedBy,
	}
}

func toGoalDTO(g goals.Goal) GoalDTO {
	return GoalDTO{
		ID:          g.ID,
		EmployeeID:  g.EmployeeID,
		Kind:        string(g.Kind),
		Target:      g.Target,
		Current:     g.Current,
		Description: g.Description,
		Period:      g.Period,
	}
}

func toAchievementDTO(a achievements.Achievement) AchievementDTO {
	return AchievementDTO{
		ID:          a.ID,
		EmployeeID:  a.EmployeeID,
		Title:       a.Title,
		Description: a.Description,
		Icon:        a.Icon,
		Category:    string(a.Category),
		UnlockedAt:  a.UnlockedAt.UTC().Format(time.RFC3339),
	}
}

func toSheetsConfigDTO(cfg export.SheetsConfig) SheetsConfigDTO {
	return SheetsConfigDTO{
		SpreadsheetID: cfg.SpreadsheetID,
		APIKey:        cfg.APIKey,
		SheetName:     cfg.SheetName,
		Enabled:       cfg.Enabled,
	}
}
