/*
Package engine provides the core attendance computation engine.

PURPOSE:
  This package contains the pure, storage-agnostic rules for attendance
  tracking: how check-in/check-out times map to a daily status, how break
  and overtime hours are computed, and how the monthly short-leave quota
  is consumed. Everything here is a deterministic function of its inputs.

KEY CONCEPTS IN THIS FILE (clock.go):
  - Clock: A time of day as minutes since midnight ("HH:MM" on the wire)
  - HoursBetween: Duration between two clock values, in decimal hours

DESIGN PRINCIPLES:
  1. Purity: No wall-clock reads, no storage access. Callers inject time.
  2. Precision: Uses decimal.Decimal to avoid floating-point drift in
     hour arithmetic (totals, overtime, break durations).
  3. No partial writes: Every transition either fully applies or returns
     the input unchanged alongside an error.

SEE ALSO:
  - status.go: Daily status classification rules
  - shortleave.go: Short-leave eligibility and the monthly quota ledger
  - day.go: The per-day attendance state machine
*/
package engine

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// CLOCK - Time of day as minutes since midnight
// =============================================================================

// Clock is a time of day with minute granularity, stored as minutes since
// midnight. The wire format is "HH:MM" (24-hour).
type Clock int

var minutesPerHour = decimal.NewFromInt(60)

// ParseClock parses "HH:MM" into a Clock.
// Returns an error wrapping ErrInvalidTimeFormat on malformed input.
func ParseClock(s string) (Clock, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, &InvalidTimeError{Input: s}
	}
	hh, ok1 := twoDigits(s[0], s[1])
	mm, ok2 := twoDigits(s[3], s[4])
	if !ok1 || !ok2 || hh > 23 || mm > 59 {
		return 0, &InvalidTimeError{Input: s}
	}
	return Clock(hh*60 + mm), nil
}

// MustClock parses "HH:MM" and panics on malformed input.
// Intended for package constants and tests.
func MustClock(s string) Clock {
	c, err := ParseClock(s)
	if err != nil {
		panic(fmt.Sprintf("engine: bad clock literal %q", s))
	}
	return c
}

func twoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}

// ClockOf truncates a time.Time to its time of day, minute granularity.
func ClockOf(t time.Time) Clock {
	return Clock(t.Hour()*60 + t.Minute())
}

// String formats the clock as "HH:MM". Round-trips with ParseClock.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// Minutes returns minutes since midnight.
func (c Clock) Minutes() int { return int(c) }

// Comparison
func (c Clock) Before(o Clock) bool     { return c < o }
func (c Clock) After(o Clock) bool      { return c > o }
func (c Clock) AtOrBefore(o Clock) bool { return c <= o }
func (c Clock) AtOrAfter(o Clock) bool  { return c >= o }

// HoursBetween returns (end - start) in hours as a decimal.
// The result is negative when end is earlier than start; ordering is the
// caller's responsibility. The day state machine never produces an
// out-of-order pair because check-out requires a prior same-day check-in.
func HoursBetween(start, end Clock) decimal.Decimal {
	return decimal.NewFromInt(int64(end - start)).Div(minutesPerHour)
}
