/*
handlers.go - HTTP API handlers for the attendance system

PURPOSE:
  Exposes the attendance engine via REST API. Handles HTTP
  request/response, JSON serialization, and delegates to domain logic.

ENDPOINTS:
  Employees:
    GET    /api/employees                   List all employees
    POST   /api/employees                   Create employee
    GET    /api/employees/{id}              Get employee details

  Attendance:
    POST   /api/employees/{id}/check-in     Check in for today
    POST   /api/employees/{id}/check-out    Check out and finalize
    POST   /api/employees/{id}/breaks/start Start a break
    POST   /api/employees/{id}/breaks/end   End the open break
    POST   /api/employees/{id}/notes        Attach a note
    GET    /api/employees/{id}/today        Today's record
    GET    /api/employees/{id}/records      Full history
    GET    /api/employees/{id}/stats        Aggregate statistics
    GET    /api/employees/{id}/short-leave  Monthly quota view

  Leave / goals / achievements:
    GET/POST /api/employees/{id}/leaves     List / submit requests
    POST   /api/leaves/{id}/approve|reject  Decide pending requests
    DELETE /api/leaves/{id}                 Remove a request
    GET/POST /api/employees/{id}/goals      List (refreshed) / add goals
    PUT    /api/goals/{id}/progress         Manual progress update
    DELETE /api/goals/{id}                  Remove a goal
    GET    /api/employees/{id}/achievements Unlocked achievements

  Admin:
    GET    /api/admin/summary               Per-employee dashboard rows
    GET    /api/admin/export.csv            CSV download
    GET    /api/admin/export.xlsx           XLSX download
    GET/PUT /api/admin/sheets/config        Sheets sync configuration
    POST   /api/admin/sheets/sync           Run a sync now
    POST   /api/admin/sheets/test           Validate the configuration
    GET    /api/admin/sheets/status         Last sync run

REQUEST FLOW:
  1. Parse HTTP request
  2. Validate input
  3. Call domain logic (tracker, leave, goals, achievements, export)
  4. Serialize response
  5. Handle errors

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input
  - 404: Resource not found
  - 409: Policy violations (already checked in, Sunday, quota, ...)
  - 500: Internal errors

SECURITY NOTE:
  Currently NO authentication or authorization. All endpoints are public.

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/pulse/attendance-engine/achievements"
	"github.com/pulse/attendance-engine/engine"
	"github.com/pulse/attendance-engine/export"
	"github.com/pulse/attendance-engine/goals"
	"github.com/pulse/attendance-engine/leave"
	"github.com/pulse/attendance-engine/tracker"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Tracker      *tracker.Tracker
	Leaves       *leave.Service
	Goals        *goals.Service
	Achievements *achievements.Service
	Sheets       *export.SheetsClient
	SyncConfig   export.ConfigStore

	Log *zap.Logger
}

// NewHandler creates a handler wired to the domain services.
func NewHandler(t *tracker.Tracker, lv *leave.Service, gl *goals.Service,
	ach *achievements.Service, sheets *export.SheetsClient,
	cfg export.ConfigStore, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		Tracker:      t,
		Leaves:       lv,
		Goals:        gl,
		Achievements: ach,
		Sheets:       sheets,
		SyncConfig:   cfg,
		Log:          log,
	}
}

// =============================================================================
// EMPLOYEE HANDLERS
// =============================================================================

// ListEmployees returns all employees.
func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Tracker.Employees(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list employees", err)
		return
	}

	dtos := make([]EmployeeDTO, len(employees))
	for i, e := range employees {
		dtos[i] = toEmployeeDTO(e)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetEmployee returns a single employee.
func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	e, err := h.Tracker.Employee(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeDTO(e))
}

// CreateEmployee creates a new employee and seeds their default goals.
func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	e := tracker.Employee{
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
		EmployeeID: req.EmployeeID,
		Role:       tracker.Role(req.Role),
	}
	if req.JoinDate != "" {
		join, err := engine.ParseDate(req.JoinDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid join_date format (use YYYY-MM-DD)", err)
			return
		}
		e.JoinDate = join
	}

	created, err := h.Tracker.CreateEmployee(r.Context(), e)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if _, err := h.Goals.Ensure(r.Context(), created.ID); err != nil {
		h.Log.Warn("failed to seed default goals",
			zap.String("employee", created.ID), zap.Error(err))
	}

	writeJSON(w, http.StatusCreated, toEmployeeDTO(created))
}

// =============================================================================
// ATTENDANCE HANDLERS
// =============================================================================

// CheckIn checks the employee in for today.
func (h *Handler) CheckIn(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	loc, ok := decodeCheck(w, r)
	if !ok {
		return
	}

	day, err := h.Tracker.CheckIn(r.Context(), id, loc)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toDayDTO(day))
}

// CheckOut finalizes today's record and evaluates achievements.
func (h *Handler) CheckOut(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	loc, ok := decodeCheck(w, r)
	if !ok {
		return
	}

	ctx := r.Context()
	day, err := h.Tracker.CheckOut(ctx, id, loc)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	// Fresh stats may unlock achievements and move goal progress. Both
	// are side channels of a successful check-out, never a reason to
	// fail it.
	st, err := h.Tracker.Stats(ctx, id)
	if err == nil {
		if _, err := h.Achievements.Evaluate(ctx, id, st); err != nil {
			h.Log.Warn("achievement evaluation failed",
				zap.String("employee", id), zap.Error(err))
		}
		if days, err := h.Tracker.History(ctx, id); err == nil {
			if _, err := h.Goals.Refresh(ctx, id, days); err != nil {
				h.Log.Warn("goal refresh failed",
					zap.String("employee", id), zap.Error(err))
			}
		}
	}

	writeJSON(w, http.StatusOK, toDayDTO(day))
}

// StartBreak opens a break on today's record.
func (h *Handler) StartBreak(w http.ResponseWriter, r *http.Request) {
	var req BreakRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	kind := engine.BreakKind(req.Kind)
	switch kind {
	case engine.BreakLunch, engine.BreakCoffee, engine.BreakOther:
	case "":
		kind = engine.BreakOther
	default:
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("Unknown break kind %q", req.Kind), nil)
		return
	}

	day, err := h.Tracker.StartBreak(r.Context(), chi.URLParam(r, "id"), kind)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toDayDTO(day))
}

// EndBreak closes the open break.
func (h *Handler) EndBreak(w http.ResponseWriter, r *http.Request) {
	day, err := h.Tracker.EndBreak(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toDayDTO(day))
}

// AddNote attaches a note to today's record.
func (h *Handler) AddNote(w http.ResponseWriter, r *http.Request) {
	var req NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	day, err := h.Tracker.AddNote(r.Context(), chi.URLParam(r, "id"), req.Note)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toDayDTO(day))
}

// GetToday returns today's record, or 404 when none exists yet.
func (h *Handler) GetToday(w http.ResponseWriter, r *http.Request) {
	day, ok, err := h.Tracker.TodayRecord(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load record", err)
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "No record for today", nil)
		return
	}
	writeJSON(w, http.StatusOK, toDayDTO(day))
}

// GetRecords returns the employee's full history.
func (h *Handler) GetRecords(w http.ResponseWriter, r *http.Request) {
	days, err := h.Tracker.History(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load records", err)
		return
	}

	dtos := make([]DayDTO, len(days))
	for i, d := range days {
		dtos[i] = toDayDTO(d)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetStats returns aggregate statistics.
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	st, err := h.Tracker.Stats(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to compute stats", err)
		return
	}
	writeJSON(w, http.StatusOK, toStatsDTO(st))
}

// GetShortLeave returns the monthly quota view.
func (h *Handler) GetShortLeave(w http.ResponseWriter, r *http.Request) {
	info, err := h.Tracker.ShortLeaves(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load short leaves", err)
		return
	}
	writeJSON(w, http.StatusOK, ShortLeaveDTO{
		Used:      info.Used,
		Remaining: info.Remaining,
		Total:     info.Total,
		Month:     info.Month,
	})
}

// =============================================================================
// LEAVE HANDLERS
// =============================================================================

// ListLeaves returns one employee's requests.
func (h *Handler) ListLeaves(w http.ResponseWriter, r *http.Request) {
	requests, err := h.Leaves.List(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list leave requests", err)
		return
	}

	dtos := make([]LeaveRequestDTO, len(requests))
	for i, req := range requests {
		dtos[i] = toLeaveDTO(req)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// ListPendingLeaves returns every pending request, for the admin queue.
func (h *Handler) ListPendingLeaves(w http.ResponseWriter, r *http.Request) {
	requests, err := h.Leaves.Pending(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list pending requests", err)
		return
	}

	dtos := make([]LeaveRequestDTO, len(requests))
	for i, req := range requests {
		dtos[i] = toLeaveDTO(req)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// SubmitLeave files a new leave request.
func (h *Handler) SubmitLeave(w http.ResponseWriter, r *http.Request) {
	var req SubmitLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	start, err := engine.ParseDate(req.StartDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid start_date format (use YYYY-MM-DD)", err)
		return
	}
	end, err := engine.ParseDate(req.EndDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid end_date format (use YYYY-MM-DD)", err)
		return
	}

	created, err := h.Leaves.Submit(r.Context(), chi.URLParam(r, "id"),
		leave.Type(req.Type), start, end, req.Reason)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toLeaveDTO(created))
}

// ApproveLeave approves a pending request.
func (h *Handler) ApproveLeave(w http.ResponseWriter, r *http.Request) {
	h.decideLeave(w, r, h.Leaves.Approve)
}

// RejectLeave rejects a pending request.
func (h *Handler) RejectLeave(w http.ResponseWriter, r *http.Request) {
	h.decideLeave(w, r, h.Leaves.Reject)
}

func (h *Handler) decideLeave(w http.ResponseWriter, r *http.Request,
	decide func(ctx context.Context, id, approver string) (leave.Request, error)) {
	var req DecideLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	decided, err := decide(r.Context(), chi.URLParam(r, "id"), req.Approver)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toLeaveDTO(decided))
}

// DeleteLeave removes a request.
func (h *Handler) DeleteLeave(w http.ResponseWriter, r *http.Request) {
	if err := h.Leaves.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// GOAL HANDLERS
// =============================================================================

// ListGoals returns the employee's goals with progress refreshed from
// the attendance history.
func (h *Handler) ListGoals(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ctx := r.Context()

	days, err := h.Tracker.History(ctx, id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load records", err)
		return
	}
	glist, err := h.Goals.Refresh(ctx, id, days)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load goals", err)
		return
	}

	dtos := make([]GoalDTO, len(glist))
	for i, g := range glist {
		dtos[i] = toGoalDTO(g)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// AddGoal creates a custom goal.
func (h *Handler) AddGoal(w http.ResponseWriter, r *http.Request) {
	var req AddGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	kind := goals.Kind(req.Kind)
	switch kind {
	case goals.KindDaily, goals.KindWeekly, goals.KindMonthly:
	default:
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("Unknown goal kind %q", req.Kind), nil)
		return
	}
	if req.Target <= 0 {
		writeError(w, http.StatusBadRequest, "Target must be positive", nil)
		return
	}

	g, err := h.Goals.Add(r.Context(), chi.URLParam(r, "id"), kind,
		req.Target, req.Description, req.Period)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create goal", err)
		return
	}
	writeJSON(w, http.StatusCreated, toGoalDTO(g))
}

// UpdateGoalProgress sets a goal's progress by hand.
func (h *Handler) UpdateGoalProgress(w http.ResponseWriter, r *http.Request) {
	var req UpdateProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	g, err := h.Goals.UpdateProgress(r.Context(), req.EmployeeID,
		chi.URLParam(r, "id"), req.Current)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toGoalDTO(g))
}

// DeleteGoal removes a goal.
func (h *Handler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	if err := h.Goals.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete goal", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// ACHIEVEMENT HANDLERS
// =============================================================================

// ListAchievements returns everything the employee has unlocked.
func (h *Handler) ListAchievements(w http.ResponseWriter, r *http.Request) {
	list, err := h.Achievements.List(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list achievements", err)
		return
	}

	dtos := make([]AchievementDTO, len(list))
	for i, a := range list {
		dtos[i] = toAchievementDTO(a)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// ADMIN HANDLERS
// =============================================================================

// AdminSummary returns one dashboard row per employee.
func (h *Handler) AdminSummary(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.Tracker.Summary(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to build summary", err)
		return
	}

	dtos := make([]EmployeeSummaryDTO, len(summaries))
	for i, s := range summaries {
		dtos[i] = toSummaryDTO(s)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// ExportCSV streams all records as a CSV download.
func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	rows, err := h.exportRows(r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to build export", err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="attendance-%s.csv"`, time.Now().Format("2006-01-02")))
	if err := export.WriteCSV(w, rows); err != nil {
		h.Log.Error("csv export failed", zap.Error(err))
	}
}

// ExportXLSX streams all records as an XLSX download.
func (h *Handler) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	rows, err := h.exportRows(r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to build export", err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, "Attendance", rows); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to build workbook", err)
		return
	}

	w.Header().Set("Content-Type",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="attendance-%s.xlsx"`, time.Now().Format("2006-01-02")))
	w.Write(buf.Bytes())
}

func (h *Handler) exportRows(r *http.Request) ([][]string, error) {
	ctx := r.Context()
	days, err := h.Tracker.AllRecords(ctx)
	if err != nil {
		return nil, err
	}
	employees, err := h.Tracker.Employees(ctx)
	if err != nil {
		return nil, err
	}
	return export.Rows(days, employees, time.Now()), nil
}

// =============================================================================
// SHEETS SYNC HANDLERS
// =============================================================================

// GetSheetsConfig returns the sync configuration.
func (h *Handler) GetSheetsConfig(w http.ResponseWriter, r *http.Request) {
	cfg, _, err := h.SyncConfig.SheetsConfig(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load sheets config", err)
		return
	}
	writeJSON(w, http.StatusOK, toSheetsConfigDTO(cfg))
}

// PutSheetsConfig replaces the sync configuration.
func (h *Handler) PutSheetsConfig(w http.ResponseWriter, r *http.Request) {
	var req SheetsConfigDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	cfg := export.SheetsConfig{
		SpreadsheetID: req.SpreadsheetID,
		APIKey:        req.APIKey,
		SheetName:     req.SheetName,
		Enabled:       req.Enabled,
	}
	if err := h.SyncConfig.PutSheetsConfig(r.Context(), cfg); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to store sheets config", err)
		return
	}
	writeJSON(w, http.StatusOK, toSheetsConfigDTO(cfg))
}

// TestSheets validates the configuration against the live API.
func (h *Handler) TestSheets(w http.ResponseWriter, r *http.Request) {
	cfg, _, err := h.SyncConfig.SheetsConfig(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load sheets config", err)
		return
	}
	if err := h.Sheets.TestConnection(r.Context(), cfg); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// SyncSheets runs a sync now and records the outcome.
func (h *Handler) SyncSheets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	cfg, _, err := h.SyncConfig.SheetsConfig(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load sheets config", err)
		return
	}

	rows, err := h.exportRows(r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to build export", err)
		return
	}

	syncedAt := time.Now()
	n, err := h.Sheets.Sync(ctx, cfg, rows)
	run := export.SyncRun{At: syncedAt, Status: "success", Records: n}
	if err != nil {
		run.Status = "error"
		run.Error = err.Error()
	}
	if recErr := h.SyncConfig.RecordSyncRun(ctx, run); recErr != nil {
		h.Log.Warn("failed to record sync run", zap.Error(recErr))
	}

	if err != nil {
		if errors.Is(err, export.ErrSheetsNotConfigured) {
			writeError(w, http.StatusBadRequest, "Google Sheets sync is not configured", err)
			return
		}
		writeError(w, http.StatusBadGateway, "Sync failed", err)
		return
	}

	h.Log.Info("sheets sync complete", zap.Int("records", n))
	writeJSON(w, http.StatusOK, SyncResultDTO{
		Status:   "success",
		Records:  n,
		SyncedAt: syncedAt.UTC().Format(time.RFC3339),
	})
}

// SheetsStatus returns the last sync run.
func (h *Handler) SheetsStatus(w http.ResponseWriter, r *http.Request) {
	run, ok, err := h.SyncConfig.LastSyncRun(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load sync history", err)
		return
	}
	if !ok {
		writeJSON(w, http.StatusOK, SyncResultDTO{Status: "never"})
		return
	}
	writeJSON(w, http.StatusOK, SyncResultDTO{
		Status:   run.Status,
		Records:  run.Records,
		SyncedAt: run.At.UTC().Format(time.RFC3339),
		Error:    run.Error,
	})
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func decodeCheck(w http.ResponseWriter, r *http.Request) (tracker.LocationCheck, bool) {
	var req CheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return tracker.LocationCheck{}, false
	}
	return tracker.LocationCheck{
		Verified: req.LocationVerified,
		Distance: req.Distance,
		Note:     req.LocationNote,
	}, true
}

// writeDomainError maps domain errors to HTTP statuses.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, tracker.ErrEmployeeNotFound),
		errors.Is(err, leave.ErrNotFound),
		errors.Is(err, goals.ErrNotFound),
		errors.Is(err, tracker.ErrNoRecord):
		writeError(w, http.StatusNotFound, "Not found", err)
	case errors.Is(err, engine.ErrPolicyViolation),
		errors.Is(err, engine.ErrQuotaExceeded),
		errors.Is(err, leave.ErrNotPending):
		writeError(w, http.StatusConflict, "Rejected by attendance policy", err)
	case errors.Is(err, engine.ErrInvalidTimeFormat),
		errors.Is(err, leave.ErrInvalidType),
		errors.Is(err, leave.ErrInvalidRange),
		errors.Is(err, tracker.ErrEmployeeName),
		errors.Is(err, tracker.ErrEmployeeEmail),
		errors.Is(err, tracker.ErrEmployeeRole):
		writeError(w, http.StatusBadRequest, "Invalid input", err)
	default:
		writeError(w, http.StatusInternalServerError, "Internal error", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
