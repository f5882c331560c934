/*
shortleave.go - Short-leave eligibility and the monthly quota ledger

PURPOSE:
  A "short leave" is a monthly-limited exception letting a late check-in
  or early check-out still count as a full present day. Two fixed
  schedules qualify, and each use consumes one unit from a quota of two
  per calendar month.

QUALIFYING SCHEDULES (either one):
  Option 1: check in by 11:30 AND check out at/after 18:00
  Option 2: check in by 09:45 AND check out at/after 16:00

QUOTA:
  The ledger is an explicit value keyed by "YYYY-MM". It is passed into
  and returned from the checkout transition, so the engine stays a pure
  function of its inputs. A new month starts fresh simply because its
  key has no entry yet.

CONSUMPTION:
  The quota is spent only at checkout, and only when the day would not
  already be a clean present on raw hours alone (worked hours below the
  minimum, or a check-in after the standard time). A day that is present
  on its own merits never burns a unit.
*/
package engine

import "github.com/shopspring/decimal"

// MaxShortLeavesPerMonth is the monthly short-leave quota.
const MaxShortLeavesPerMonth = 2

// =============================================================================
// LEDGER - Per-employee, per-month consumption counts
// =============================================================================

// ShortLeaveLedger tracks short-leave units consumed per calendar month
// for one employee. The zero value is not usable; construct with
// NewShortLeaveLedger.
type ShortLeaveLedger struct {
	used map[string]int
}

// NewShortLeaveLedger returns an empty ledger.
func NewShortLeaveLedger() ShortLeaveLedger {
	return ShortLeaveLedger{used: make(map[string]int)}
}

// LedgerWith returns a ledger seeded with a known count for one month.
// Used when hydrating from storage.
func LedgerWith(month string, used int) ShortLeaveLedger {
	l := NewShortLeaveLedger()
	if used > 0 {
		l.used[month] = used
	}
	return l
}

// UsedIn returns the units consumed in the given "YYYY-MM" month.
func (l ShortLeaveLedger) UsedIn(month string) int { return l.used[month] }

// RemainingIn returns the units still available in the given month.
func (l ShortLeaveLedger) RemainingIn(month string) int {
	r := MaxShortLeavesPerMonth - l.UsedIn(month)
	if r < 0 {
		return 0
	}
	return r
}

// Consume returns a new ledger with one more unit spent in the month.
// The receiver is not modified. Returns QuotaExceededError at the cap.
func (l ShortLeaveLedger) Consume(month string) (ShortLeaveLedger, error) {
	used := l.UsedIn(month)
	if used >= MaxShortLeavesPerMonth {
		return l, &QuotaExceededError{Month: month, Used: used}
	}
	next := ShortLeaveLedger{used: make(map[string]int, len(l.used)+1)}
	for k, v := range l.used {
		next.used[k] = v
	}
	next.used[month] = used + 1
	return next, nil
}

// =============================================================================
// ELIGIBILITY
// =============================================================================

// ShortLeaveEligible reports whether the check-in/check-out pair
// qualifies under either schedule, gated by the monthly quota. Quota
// exhaustion returns false immediately; the caller falls back to the
// raw-hours rule.
func ShortLeaveEligible(checkIn, checkOut Clock, usedThisMonth int) bool {
	if usedThisMonth >= MaxShortLeavesPerMonth {
		return false
	}

	// Option 1: late arrival, full evening
	option1 := checkIn.AtOrBefore(LateCheckInLimit) && checkOut.AtOrAfter(StandardCheckOut)

	// Option 2: on-time arrival, early departure
	option2 := checkIn.AtOrBefore(StandardCheckIn) && checkOut.AtOrAfter(EarlyCheckOutLimit)

	return option1 || option2
}

// shortLeaveWouldSpend reports whether an eligible present day actually
// needs the exception: the break-adjusted total fell short of the
// minimum, or the check-in was late. A clean present consumes nothing.
func shortLeaveWouldSpend(checkIn Clock, workedHours decimal.Decimal) bool {
	return workedHours.LessThan(minHoursForPresent) || checkIn.After(StandardCheckIn)
}
