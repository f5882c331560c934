package leave_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulse/attendance-engine/engine"
	"github.com/pulse/attendance-engine/leave"
	"github.com/pulse/attendance-engine/store/memory"
)

func newTestService() *leave.Service {
	fixed := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	return leave.NewService(memory.New()).WithClock(func() time.Time { return fixed })
}

func submitVacation(t *testing.T, svc *leave.Service, employeeID string) leave.Request {
	t.Helper()
	r, err := svc.Submit(context.Background(), employeeID, leave.TypeVacation,
		engine.NewDate(2025, time.March, 17), engine.NewDate(2025, time.March, 21),
		"spring trip")
	require.NoError(t, err)
	return r
}

func TestSubmit_CreatesPendingRequest(t *testing.T) {
	svc := newTestService()

	r := submitVacation(t, svc, "emp-1")

	assert.NotEmpty(t, r.ID)
	assert.Equal(t, leave.StatusPending, r.Status)
	assert.Equal(t, engine.NewDate(2025, time.March, 10), r.RequestDate)
	assert.Empty(t, r.ApprovedBy)
}

func TestSubmit_InvalidType(t *testing.T) {
	svc := newTestService()

	_, err := svc.Submit(context.Background(), "emp-1", "sabbatical",
		engine.NewDate(2025, time.March, 17), engine.NewDate(2025, time.March, 21), "")

	assert.ErrorIs(t, err, leave.ErrInvalidType)
}

func TestSubmit_EndBeforeStart(t *testing.T) {
	svc := newTestService()

	_, err := svc.Submit(context.Background(), "emp-1", leave.TypeSick,
		engine.NewDate(2025, time.March, 21), engine.NewDate(2025, time.March, 17), "")

	assert.ErrorIs(t, err, leave.ErrInvalidRange)
}

func TestApprove_PendingRequest(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	r := submitVacation(t, svc, "emp-1")

	approved, err := svc.Approve(ctx, r.ID, "admin-1")
	require.NoError(t, err)

	assert.Equal(t, leave.StatusApproved, approved.Status)
	assert.Equal(t, "admin-1", approved.ApprovedBy)

	// A decided request cannot be decided again.
	_, err = svc.Reject(ctx, r.ID, "admin-2")
	assert.ErrorIs(t, err, leave.ErrNotPending)
}

func TestReject_PendingRequest(t *testing.T) {
	svc := newTestService()
	r := submitVacation(t, svc, "emp-1")

	rejected, err := svc.Reject(context.Background(), r.ID, "admin-1")
	require.NoError(t, err)

	assert.Equal(t, leave.StatusRejected, rejected.Status)
	assert.Equal(t, "admin-1", rejected.ApprovedBy)
}

func TestDecide_UnknownRequest(t *testing.T) {
	svc := newTestService()

	_, err := svc.Approve(context.Background(), "missing", "admin-1")

	assert.ErrorIs(t, err, leave.ErrNotFound)
}

func TestDelete_RemovesRequest(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	r := submitVacation(t, svc, "emp-1")

	require.NoError(t, svc.Delete(ctx, r.ID))

	list, err := svc.List(ctx, "emp-1")
	require.NoError(t, err)
	assert.Empty(t, list)

	assert.ErrorIs(t, svc.Delete(ctx, r.ID), leave.ErrNotFound)
}

func TestPending_FiltersDecided(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	a := submitVacation(t, svc, "emp-1")
	b := submitVacation(t, svc, "emp-2")
	c := submitVacation(t, svc, "emp-3")

	_, err := svc.Approve(ctx, a.ID, "admin-1")
	require.NoError(t, err)
	_, err = svc.Reject(ctx, b.ID, "admin-1")
	require.NoError(t, err)

	pending, err := svc.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, c.ID, pending[0].ID)
}
