package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulse/attendance-engine/engine"
)

// =============================================================================
// ELIGIBILITY SCHEDULES
// =============================================================================

func TestShortLeaveEligible_Option1_LateArrivalFullEvening(t *testing.T) {
	// Check in by 11:30, check out at/after 18:00.
	assert.True(t, engine.ShortLeaveEligible(engine.MustClock("11:00"), engine.MustClock("18:00"), 0))
	assert.True(t, engine.ShortLeaveEligible(engine.MustClock("11:30"), engine.MustClock("18:30"), 0))

	// 11:31 is past the limit; 17:59 is too early.
	assert.False(t, engine.ShortLeaveEligible(engine.MustClock("11:31"), engine.MustClock("18:00"), 0))
	assert.False(t, engine.ShortLeaveEligible(engine.MustClock("11:00"), engine.MustClock("17:59"), 0))
}

func TestShortLeaveEligible_Option2_OnTimeEarlyDeparture(t *testing.T) {
	// Check in by 09:45, check out at/after 16:00.
	assert.True(t, engine.ShortLeaveEligible(engine.MustClock("09:45"), engine.MustClock("16:00"), 0))
	assert.True(t, engine.ShortLeaveEligible(engine.MustClock("09:00"), engine.MustClock("16:30"), 0))

	assert.False(t, engine.ShortLeaveEligible(engine.MustClock("09:46"), engine.MustClock("16:00"), 0))
	assert.False(t, engine.ShortLeaveEligible(engine.MustClock("09:45"), engine.MustClock("15:59"), 0))
}

func TestShortLeaveEligible_QuotaGate(t *testing.T) {
	in, out := engine.MustClock("11:00"), engine.MustClock("18:00")

	assert.True(t, engine.ShortLeaveEligible(in, out, 0))
	assert.True(t, engine.ShortLeaveEligible(in, out, 1))

	// At the cap the gate closes regardless of schedule.
	assert.False(t, engine.ShortLeaveEligible(in, out, 2))
	assert.False(t, engine.ShortLeaveEligible(in, out, 3))
}

// =============================================================================
// LEDGER
// =============================================================================

func TestShortLeaveLedger_ConsumeIsCopyOnWrite(t *testing.T) {
	// GIVEN: an empty ledger
	l := engine.NewShortLeaveLedger()

	// WHEN: consuming twice in March
	l1, err := l.Consume("2025-03")
	require.NoError(t, err)
	l2, err := l1.Consume("2025-03")
	require.NoError(t, err)

	// THEN: each value is independent; the original is untouched
	assert.Equal(t, 0, l.UsedIn("2025-03"))
	assert.Equal(t, 1, l1.UsedIn("2025-03"))
	assert.Equal(t, 2, l2.UsedIn("2025-03"))
	assert.Equal(t, 0, l2.RemainingIn("2025-03"))
}

func TestShortLeaveLedger_CapRejected(t *testing.T) {
	l := engine.LedgerWith("2025-03", 2)

	_, err := l.Consume("2025-03")
	assert.ErrorIs(t, err, engine.ErrQuotaExceeded)

	var quota *engine.QuotaExceededError
	require.ErrorAs(t, err, &quota)
	assert.Equal(t, "2025-03", quota.Month)
	assert.Equal(t, 2, quota.Used)
}

func TestShortLeaveLedger_MonthsAreIndependent(t *testing.T) {
	// A new month starts fresh: the quota resets implicitly because the
	// ledger is keyed by year-month.
	l := engine.LedgerWith("2025-03", 2)

	assert.Equal(t, 0, l.UsedIn("2025-04"))
	assert.Equal(t, engine.MaxShortLeavesPerMonth, l.RemainingIn("2025-04"))

	next, err := l.Consume("2025-04")
	require.NoError(t, err)
	assert.Equal(t, 1, next.UsedIn("2025-04"))
	assert.Equal(t, 2, next.UsedIn("2025-03"))
}
