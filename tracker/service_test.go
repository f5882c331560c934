package tracker_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulse/attendance-engine/engine"
	"github.com/pulse/attendance-engine/store/memory"
	"github.com/pulse/attendance-engine/tracker"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

// testClock is a settable wall clock. Tests move it between calls to
// simulate a working day passing.
type testClock struct {
	t time.Time
}

func newTestClock() *testClock {
	// Monday 2025-03-10, 09:30.
	return &testClock{t: time.Date(2025, time.March, 10, 9, 30, 0, 0, time.UTC)}
}

func (c *testClock) now() time.Time { return c.t }

func (c *testClock) set(hour, min int) {
	c.t = time.Date(c.t.Year(), c.t.Month(), c.t.Day(), hour, min, 0, 0, time.UTC)
}

func (c *testClock) setDate(year int, month time.Month, day, hour, min int) {
	c.t = time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

func newTestTracker(t *testing.T) (*tracker.Tracker, *testClock, tracker.Employee) {
	t.Helper()
	store := memory.New()
	clock := newTestClock()
	tr := tracker.New(store, store, tracker.WithClock(clock.now))

	emp, err := tr.CreateEmployee(context.Background(), tracker.Employee{
		Name:       "Jordan Reyes",
		Email:      "jordan@example.com",
		Department: "Engineering",
		EmployeeID: "ENG-042",
		Role:       tracker.RoleEmployee,
	})
	require.NoError(t, err)
	return tr, clock, emp
}

func atOffice() tracker.LocationCheck {
	return tracker.LocationCheck{Verified: true, Distance: 42.5}
}

func offSite() tracker.LocationCheck {
	return tracker.LocationCheck{Verified: false, Distance: 812, Note: "outside office radius"}
}

func hours(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// =============================================================================
// CHECK-IN
// =============================================================================

func TestCheckIn_CreatesTodayRecord(t *testing.T) {
	tr, _, emp := newTestTracker(t)
	ctx := context.Background()

	day, err := tr.CheckIn(ctx, emp.ID, atOffice())
	require.NoError(t, err)

	require.NotNil(t, day.CheckIn)
	assert.Equal(t, "09:30", day.CheckIn.String())
	assert.Equal(t, engine.StatusPresent, day.Status)
	assert.True(t, day.LocationVerified)
	assert.Equal(t, 42.5, day.DistanceFromOffice)

	got, ok, err := tr.TodayRecord(ctx, emp.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, day, got)

	canIn, err := tr.CanCheckIn(ctx, emp.ID)
	require.NoError(t, err)
	assert.False(t, canIn)

	canOut, err := tr.CanCheckOut(ctx, emp.ID)
	require.NoError(t, err)
	assert.True(t, canOut)
}

func TestCheckIn_UnknownEmployee(t *testing.T) {
	tr, _, _ := newTestTracker(t)

	_, err := tr.CheckIn(context.Background(), "nobody", atOffice())

	assert.ErrorIs(t, err, tracker.ErrEmployeeNotFound)
}

func TestCheckIn_LocationDenied(t *testing.T) {
	tr, _, emp := newTestTracker(t)
	ctx := context.Background()

	_, err := tr.CheckIn(ctx, emp.ID, offSite())

	var pv *engine.PolicyViolationError
	require.ErrorAs(t, err, &pv)
	assert.Equal(t, engine.ViolationLocationDenied, pv.Code)

	// Nothing was written.
	_, ok, err := tr.TodayRecord(ctx, emp.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCheckIn_Twice_Rejected(t *testing.T) {
	tr, clock, emp := newTestTracker(t)
	ctx := context.Background()

	_, err := tr.CheckIn(ctx, emp.ID, atOffice())
	require.NoError(t, err)

	clock.set(10, 0)
	_, err = tr.CheckIn(ctx, emp.ID, atOffice())

	var pv *engine.PolicyViolationError
	require.ErrorAs(t, err, &pv)
	assert.Equal(t, engine.ViolationAlreadyCheckedIn, pv.Code)
}

func TestCheckIn_Sunday_Rejected(t *testing.T) {
	tr, clock, emp := newTestTracker(t)
	clock.setDate(2025, time.March, 9, 9, 30) // Sunday

	_, err := tr.CheckIn(context.Background(), emp.ID, atOffice())

	var pv *engine.PolicyViolationError
	require.ErrorAs(t, err, &pv)
	assert.Equal(t, engine.ViolationSundayRest, pv.Code)

	canIn, err := tr.CanCheckIn(context.Background(), emp.ID)
	require.NoError(t, err)
	assert.False(t, canIn)
}

// =============================================================================
// CHECK-OUT
// =============================================================================

func TestCheckOut_CompletesRecord(t *testing.T) {
	tr, clock, emp := newTestTracker(t)
	ctx := context.Background()

	_, err := tr.CheckIn(ctx, emp.ID, atOffice())
	require.NoError(t, err)

	clock.set(18, 15)
	day, err := tr.CheckOut(ctx, emp.ID, atOffice())
	require.NoError(t, err)

	assert.Equal(t, engine.StatusPresent, day.Status)
	assert.True(t, day.TotalHours.Equal(hours("8.75")))
	assert.True(t, day.Overtime.Equal(hours("0.75")))
	assert.False(t, day.ShortLeaveUsed)
	assert.True(t, day.CheckOutLocationVerified)

	canOut, err := tr.CanCheckOut(ctx, emp.ID)
	require.NoError(t, err)
	assert.False(t, canOut)
}

func TestCheckOut_WithoutCheckIn_Rejected(t *testing.T) {
	tr, _, emp := newTestTracker(t)

	_, err := tr.CheckOut(context.Background(), emp.ID, atOffice())

	var pv *engine.PolicyViolationError
	require.ErrorAs(t, err, &pv)
	assert.Equal(t, engine.ViolationNoCheckIn, pv.Code)
}

func TestCheckOut_ShortLeave_PersistsQuota(t *testing.T) {
	tr, clock, emp := newTestTracker(t)
	ctx := context.Background()

	// Late morning arrival covered by the short-leave window.
	clock.set(11, 0)
	_, err := tr.CheckIn(ctx, emp.ID, atOffice())
	require.NoError(t, err)

	clock.set(18, 0)
	day, err := tr.CheckOut(ctx, emp.ID, atOffice())
	require.NoError(t, err)

	assert.Equal(t, engine.StatusPresent, day.Status)
	assert.True(t, day.ShortLeaveUsed)

	info, err := tr.ShortLeaves(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, info.Used)
	assert.Equal(t, 1, info.Remaining)
	assert.Equal(t, engine.MaxShortLeavesPerMonth, info.Total)
	assert.Equal(t, "March 2025", info.Month)
}

func TestCheckOut_FullDay_QuotaUntouched(t *testing.T) {
	tr, clock, emp := newTestTracker(t)
	ctx := context.Background()

	clock.set(9, 30)
	_, err := tr.CheckIn(ctx, emp.ID, atOffice())
	require.NoError(t, err)

	clock.set(18, 0)
	_, err = tr.CheckOut(ctx, emp.ID, atOffice())
	require.NoError(t, err)

	info, err := tr.ShortLeaves(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, info.Used)
	assert.Equal(t, 2, info.Remaining)
}

// =============================================================================
// BREAKS AND NOTES
// =============================================================================

func TestBreaks_DeductedFromTotal(t *testing.T) {
	tr, clock, emp := newTestTracker(t)
	ctx := context.Background()

	clock.set(9, 45)
	_, err := tr.CheckIn(ctx, emp.ID, atOffice())
	require.NoError(t, err)

	clock.set(13, 0)
	day, err := tr.StartBreak(ctx, emp.ID, engine.BreakLunch)
	require.NoError(t, err)
	_, open := day.OpenBreak()
	require.True(t, open)

	clock.set(14, 0)
	day, err = tr.EndBreak(ctx, emp.ID)
	require.NoError(t, err)
	_, open = day.OpenBreak()
	assert.False(t, open)

	clock.set(18, 0)
	day, err = tr.CheckOut(ctx, emp.ID, atOffice())
	require.NoError(t, err)

	// 8.25 raw minus the 1h lunch.
	assert.True(t, day.TotalHours.Equal(hours("7.25")))
	assert.True(t, day.BreakHours().Equal(hours("1")))
}

func TestStartBreak_RequiresCheckIn(t *testing.T) {
	tr, _, emp := newTestTracker(t)

	_, err := tr.StartBreak(context.Background(), emp.ID, engine.BreakCoffee)

	var pv *engine.PolicyViolationError
	require.ErrorAs(t, err, &pv)
	assert.Equal(t, engine.ViolationNoCheckIn, pv.Code)
}

func TestEndBreak_NoOpenBreak_Rejected(t *testing.T) {
	tr, _, emp := newTestTracker(t)
	ctx := context.Background()

	_, err := tr.CheckIn(ctx, emp.ID, atOffice())
	require.NoError(t, err)

	_, err = tr.EndBreak(ctx, emp.ID)

	var pv *engine.PolicyViolationError
	require.ErrorAs(t, err, &pv)
	assert.Equal(t, engine.ViolationNoOpenBreak, pv.Code)
}

func TestAddNote(t *testing.T) {
	tr, _, emp := newTestTracker(t)
	ctx := context.Background()

	_, err := tr.CheckIn(ctx, emp.ID, atOffice())
	require.NoError(t, err)

	day, err := tr.AddNote(ctx, emp.ID, "worked from the annex")
	require.NoError(t, err)
	assert.Equal(t, "worked from the annex", day.Notes)
}

// =============================================================================
// EMPLOYEES
// =============================================================================

func TestCreateEmployee_DefaultsAndValidation(t *testing.T) {
	tr, _, _ := newTestTracker(t)
	ctx := context.Background()

	e, err := tr.CreateEmployee(ctx, tracker.Employee{
		Name:  "Sam Okafor",
		Email: "sam@example.com",
		Role:  tracker.RoleManager,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, e.ID)
	assert.True(t, e.Active)
	assert.Equal(t, engine.NewDate(2025, time.March, 10), e.JoinDate)

	_, err = tr.CreateEmployee(ctx, tracker.Employee{Email: "x@example.com", Role: tracker.RoleEmployee})
	assert.ErrorIs(t, err, tracker.ErrEmployeeName)

	_, err = tr.CreateEmployee(ctx, tracker.Employee{Name: "No Role", Email: "x@example.com", Role: "owner"})
	assert.ErrorIs(t, err, tracker.ErrEmployeeRole)
}

// =============================================================================
// STATS AND ADMIN SUMMARY
// =============================================================================

func TestStats_AcrossDays(t *testing.T) {
	tr, clock, emp := newTestTracker(t)
	ctx := context.Background()

	// Two full working days, Monday and Tuesday.
	for day := 10; day <= 11; day++ {
		clock.setDate(2025, time.March, day, 9, 30)
		_, err := tr.CheckIn(ctx, emp.ID, atOffice())
		require.NoError(t, err)

		clock.set(18, 0)
		_, err = tr.CheckOut(ctx, emp.ID, atOffice())
		require.NoError(t, err)
	}

	st, err := tr.Stats(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, st.TotalDays)
	assert.Equal(t, 2, st.PresentDays)
	assert.Equal(t, 100.0, st.AttendanceRate)
	assert.Equal(t, 8.5, st.AverageHours)
	assert.Equal(t, 2, st.CurrentStreak)
}

func TestSummary_OneRowPerEmployee(t *testing.T) {
	tr, clock, emp := newTestTracker(t)
	ctx := context.Background()

	other, err := tr.CreateEmployee(ctx, tracker.Employee{
		Name:  "Riley Chen",
		Email: "riley@example.com",
		Role:  tracker.RoleEmployee,
	})
	require.NoError(t, err)

	_, err = tr.CheckIn(ctx, emp.ID, atOffice())
	require.NoError(t, err)
	clock.set(18, 0)
	_, err = tr.CheckOut(ctx, emp.ID, atOffice())
	require.NoError(t, err)

	rows, err := tr.Summary(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byID := map[string]tracker.EmployeeSummary{}
	for _, r := range rows {
		byID[r.Employee.ID] = r
	}

	worked := byID[emp.ID]
	assert.Equal(t, engine.StatusPresent, worked.TodayStatus)
	assert.Equal(t, "09:30", worked.TodayCheckIn)
	assert.Equal(t, "18:00", worked.TodayCheckOut)
	assert.Equal(t, 1, worked.TotalRecords)

	idle := byID[other.ID]
	assert.Empty(t, idle.TodayStatus)
	assert.Zero(t, idle.TotalRecords)
}
