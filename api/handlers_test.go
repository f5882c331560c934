package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulse/attendance-engine/achievements"
	"github.com/pulse/attendance-engine/api"
	"github.com/pulse/attendance-engine/export"
	"github.com/pulse/attendance-engine/goals"
	"github.com/pulse/attendance-engine/leave"
	"github.com/pulse/attendance-engine/store/memory"
	"github.com/pulse/attendance-engine/tracker"
)

// =============================================================================
// TEST HARNESS
// =============================================================================

type harness struct {
	router http.Handler
	clock  *time.Time
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	// Monday 2025-03-10, 09:30.
	now := time.Date(2025, time.March, 10, 9, 30, 0, 0, time.UTC)
	clock := &now
	nowFn := func() time.Time { return *clock }

	store := memory.New()
	h := api.NewHandler(
		tracker.New(store, store, tracker.WithClock(nowFn)),
		leave.NewService(store).WithClock(nowFn),
		goals.NewService(store).WithClock(nowFn),
		achievements.NewService(store).WithClock(nowFn),
		export.NewSheetsClient(),
		store,
		nil,
	)
	return &harness{router: api.NewRouter(h), clock: clock}
}

func (h *harness) set(hour, min int) {
	t := *h.clock
	*h.clock = time.Date(t.Year(), t.Month(), t.Day(), hour, min, 0, 0, time.UTC)
}

func (h *harness) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

func (h *harness) createEmployee(t *testing.T) api.EmployeeDTO {
	t.Helper()
	rec := h.do(t, http.MethodPost, "/api/employees", api.CreateEmployeeRequest{
		Name:       "Jordan Reyes",
		Email:      "jordan@example.com",
		Department: "Engineering",
		EmployeeID: "ENG-042",
		Role:       "employee",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	return decode[api.EmployeeDTO](t, rec)
}

func checkBody(verified bool) api.CheckRequest {
	return api.CheckRequest{LocationVerified: verified, Distance: 42.5}
}

// =============================================================================
// EMPLOYEES
// =============================================================================

func TestCreateEmployee_SeedsGoals(t *testing.T) {
	h := newHarness(t)
	emp := h.createEmployee(t)

	assert.NotEmpty(t, emp.ID)
	assert.True(t, emp.Active)

	rec := h.do(t, http.MethodGet, "/api/employees/"+emp.ID+"/goals", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	glist := decode[[]api.GoalDTO](t, rec)
	assert.Len(t, glist, 3)
}

func TestCreateEmployee_Invalid(t *testing.T) {
	h := newHarness(t)

	rec := h.do(t, http.MethodPost, "/api/employees", api.CreateEmployeeRequest{
		Email: "noname@example.com",
		Role:  "employee",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetEmployee_NotFound(t *testing.T) {
	h := newHarness(t)

	rec := h.do(t, http.MethodGet, "/api/employees/nobody", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// =============================================================================
// ATTENDANCE FLOW
// =============================================================================

func TestAttendance_FullDay(t *testing.T) {
	h := newHarness(t)
	emp := h.createEmployee(t)
	base := "/api/employees/" + emp.ID

	rec := h.do(t, http.MethodPost, base+"/check-in", checkBody(true))
	require.Equal(t, http.StatusCreated, rec.Code)
	day := decode[api.DayDTO](t, rec)
	require.NotNil(t, day.CheckIn)
	assert.Equal(t, "09:30", *day.CheckIn)

	h.set(13, 0)
	rec = h.do(t, http.MethodPost, base+"/breaks/start", api.BreakRequest{Kind: "lunch"})
	require.Equal(t, http.StatusOK, rec.Code)

	h.set(14, 0)
	rec = h.do(t, http.MethodPost, base+"/breaks/end", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	h.set(18, 15)
	rec = h.do(t, http.MethodPost, base+"/check-out", checkBody(true))
	require.Equal(t, http.StatusOK, rec.Code)
	day = decode[api.DayDTO](t, rec)
	assert.Equal(t, "present", day.Status)
	assert.Equal(t, 7.75, day.TotalHours)

	rec = h.do(t, http.MethodGet, base+"/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	st := decode[api.StatsDTO](t, rec)
	assert.Equal(t, 1, st.TotalDays)
	assert.Equal(t, 1, st.PresentDays)

	// First completed day unlocks an achievement.
	rec = h.do(t, http.MethodGet, base+"/achievements", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	unlocked := decode[[]api.AchievementDTO](t, rec)
	require.NotEmpty(t, unlocked)
	assert.Equal(t, "First Day", unlocked[0].Title)
}

func TestCheckIn_Conflicts(t *testing.T) {
	h := newHarness(t)
	emp := h.createEmployee(t)
	base := "/api/employees/" + emp.ID

	rec := h.do(t, http.MethodPost, base+"/check-in", checkBody(false))
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = h.do(t, http.MethodPost, base+"/check-in", checkBody(true))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = h.do(t, http.MethodPost, base+"/check-in", checkBody(true))
	assert.Equal(t, http.StatusConflict, rec.Code)
	body := decode[api.ErrorResponse](t, rec)
	assert.Contains(t, body.Details, "already checked in")
}

func TestCheckOut_WithoutCheckIn(t *testing.T) {
	h := newHarness(t)
	emp := h.createEmployee(t)

	rec := h.do(t, http.MethodPost, "/api/employees/"+emp.ID+"/check-out", checkBody(true))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetToday_BeforeCheckIn(t *testing.T) {
	h := newHarness(t)
	emp := h.createEmployee(t)

	rec := h.do(t, http.MethodGet, "/api/employees/"+emp.ID+"/today", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestShortLeave_QuotaView(t *testing.T) {
	h := newHarness(t)
	emp := h.createEmployee(t)
	base := "/api/employees/" + emp.ID

	h.set(11, 0)
	rec := h.do(t, http.MethodPost, base+"/check-in", checkBody(true))
	require.Equal(t, http.StatusCreated, rec.Code)

	h.set(18, 0)
	rec = h.do(t, http.MethodPost, base+"/check-out", checkBody(true))
	require.Equal(t, http.StatusOK, rec.Code)
	day := decode[api.DayDTO](t, rec)
	assert.True(t, day.ShortLeaveUsed)

	rec = h.do(t, http.MethodGet, base+"/short-leave", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	info := decode[api.ShortLeaveDTO](t, rec)
	assert.Equal(t, 1, info.Used)
	assert.Equal(t, 1, info.Remaining)
	assert.Equal(t, "March 2025", info.Month)
}

// =============================================================================
// LEAVES
// =============================================================================

func TestLeaves_SubmitApprove(t *testing.T) {
	h := newHarness(t)
	emp := h.createEmployee(t)
	base := "/api/employees/" + emp.ID

	rec := h.do(t, http.MethodPost, base+"/leaves", api.SubmitLeaveRequest{
		Type:      "vacation",
		StartDate: "2025-03-17",
		EndDate:   "2025-03-21",
		Reason:    "spring trip",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[api.LeaveRequestDTO](t, rec)
	assert.Equal(t, "pending", created.Status)

	rec = h.do(t, http.MethodGet, "/api/leaves/pending", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	pending := decode[[]api.LeaveRequestDTO](t, rec)
	require.Len(t, pending, 1)

	rec = h.do(t, http.MethodPost, "/api/leaves/"+created.ID+"/approve",
		api.DecideLeaveRequest{Approver: "admin-1"})
	require.Equal(t, http.StatusOK, rec.Code)
	approved := decode[api.LeaveRequestDTO](t, rec)
	assert.Equal(t, "approved", approved.Status)
	assert.Equal(t, "admin-1", approved.ApprovedBy)

	// Deciding twice conflicts.
	rec = h.do(t, http.MethodPost, "/api/leaves/"+created.ID+"/reject",
		api.DecideLeaveRequest{Approver: "admin-2"})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLeaves_InvalidRange(t *testing.T) {
	h := newHarness(t)
	emp := h.createEmployee(t)

	rec := h.do(t, http.MethodPost, "/api/employees/"+emp.ID+"/leaves", api.SubmitLeaveRequest{
		Type:      "sick",
		StartDate: "2025-03-21",
		EndDate:   "2025-03-17",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// =============================================================================
// ADMIN
// =============================================================================

func TestAdminSummary(t *testing.T) {
	h := newHarness(t)
	emp := h.createEmployee(t)
	base := "/api/employees/" + emp.ID

	rec := h.do(t, http.MethodPost, base+"/check-in", checkBody(true))
	require.Equal(t, http.StatusCreated, rec.Code)
	h.set(18, 0)
	rec = h.do(t, http.MethodPost, base+"/check-out", checkBody(true))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = h.do(t, http.MethodGet, "/api/admin/summary", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rows := decode[[]api.EmployeeSummaryDTO](t, rec)
	require.Len(t, rows, 1)
	assert.Equal(t, "present", rows[0].TodayStatus)
	assert.Equal(t, 1, rows[0].TotalRecords)
}

func TestExportCSV(t *testing.T) {
	h := newHarness(t)
	emp := h.createEmployee(t)
	base := "/api/employees/" + emp.ID

	rec := h.do(t, http.MethodPost, base+"/check-in", checkBody(true))
	require.Equal(t, http.StatusCreated, rec.Code)
	h.set(18, 0)
	rec = h.do(t, http.MethodPost, base+"/check-out", checkBody(true))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = h.do(t, http.MethodGet, "/api/admin/export.csv", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Employee Name")
	assert.Contains(t, lines[1], "Jordan Reyes")
}

func TestSheetsConfig_RoundTrip(t *testing.T) {
	h := newHarness(t)

	rec := h.do(t, http.MethodPut, "/api/admin/sheets/config", api.SheetsConfigDTO{
		SpreadsheetID: "sheet-123",
		APIKey:        "key-abc",
		SheetName:     "Attendance Data",
		Enabled:       true,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = h.do(t, http.MethodGet, "/api/admin/sheets/config", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cfg := decode[api.SheetsConfigDTO](t, rec)
	assert.Equal(t, "sheet-123", cfg.SpreadsheetID)
	assert.True(t, cfg.Enabled)

	rec = h.do(t, http.MethodGet, "/api/admin/sheets/status", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	status := decode[api.SyncResultDTO](t, rec)
	assert.Equal(t, "never", status.Status)
}
