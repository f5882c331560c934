/*
status.go - Daily status classification rules

PURPOSE:
  Maps a day's check-in/check-out pair to its attendance status. These
  are the fixed workday rules; there is no user-authored policy layer.

THE RULES:
  1. Sunday is always a rest day. A Sunday record should not exist, but
     if one does it is classified absent and never counted as present.
  2. Still checked in (no check-out yet): present when the check-in was
     at or before the standard time, partial otherwise.
  3. Checked out: a short-leave-eligible day is a full present day.
     Otherwise present when raw in->out hours reach the minimum,
     partial below it.

  Absent for missed working days is never stored: days with no record
  simply do not enter the statistics denominator.

NOTE:
  Classification uses RAW check-in to check-out hours. Break deductions
  apply to the day's recorded total, not to status.
*/
package engine

import "github.com/shopspring/decimal"

// =============================================================================
// STATUS
// =============================================================================

// Status is the derived attendance classification for a day. It is never
// set directly by the user.
type Status string

const (
	StatusPresent Status = "present"
	StatusPartial Status = "partial"
	StatusAbsent  Status = "absent"
)

// =============================================================================
// WORKDAY CONSTANTS
// =============================================================================

var (
	// StandardCheckIn is the on-time check-in boundary.
	StandardCheckIn = MustClock("09:45")

	// StandardCheckOut is the end of the standard workday.
	StandardCheckOut = MustClock("18:00")

	// LateCheckInLimit is the latest check-in that can still qualify for
	// a short leave (Option 1).
	LateCheckInLimit = MustClock("11:30")

	// EarlyCheckOutLimit is the earliest check-out that can still qualify
	// for a short leave (Option 2).
	EarlyCheckOutLimit = MustClock("16:00")
)

const (
	// MinHoursForPresent is the raw-hours threshold for a full day.
	MinHoursForPresent = 7

	// StandardDailyHours is the overtime boundary.
	StandardDailyHours = 8
)

var (
	minHoursForPresent = decimal.NewFromInt(MinHoursForPresent)
	standardDailyHours = decimal.NewFromInt(StandardDailyHours)
)

// =============================================================================
// CLASSIFIER
// =============================================================================

// Classify derives the status for a day. checkOut is nil while the
// employee is still checked in. shortLeaveEligible is the output of
// ShortLeaveEligible for the same pair; an eligible day always counts as
// a full present day.
func Classify(date Date, checkIn Clock, checkOut *Clock, shortLeaveEligible bool) Status {
	if date.IsSunday() {
		return StatusAbsent
	}

	if checkOut == nil {
		if checkIn.AtOrBefore(StandardCheckIn) {
			return StatusPresent
		}
		return StatusPartial
	}

	if shortLeaveEligible {
		return StatusPresent
	}

	if HoursBetween(checkIn, *checkOut).GreaterThanOrEqual(minHoursForPresent) {
		return StatusPresent
	}
	return StatusPartial
}
