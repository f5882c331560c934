/*
errors.go - Centralized error types for the attendance engine

PURPOSE:
  All engine error types in one place for consistency and
  discoverability. Callers match on the sentinels with errors.Is, or
  extract details with errors.As.

ERROR CATEGORIES:
  1. Input errors  - Malformed time strings
  2. Policy errors - State-machine preconditions (duplicate check-in,
     check-out without check-in, break overlap, Sunday actions)
  3. Quota errors  - Short-leave cap reached

RECOVERABILITY:
  Every engine error is local and recoverable. A rejected transition
  leaves the record untouched; the caller surfaces a message and moves
  on. Nothing here is fatal to the process.
*/
package engine

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidTimeFormat is returned when a time string is not "HH:MM".
	ErrInvalidTimeFormat = errors.New("invalid time format")

	// ErrPolicyViolation is returned when a state-machine precondition
	// fails. The concrete error is always a *PolicyViolationError.
	ErrPolicyViolation = errors.New("policy violation")

	// ErrQuotaExceeded is returned when a short leave is requested beyond
	// the monthly cap. At checkout this degrades gracefully: the day is
	// classified by the raw-hours rule instead of failing.
	ErrQuotaExceeded = errors.New("short leave quota exceeded")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// InvalidTimeError reports the malformed input.
type InvalidTimeError struct {
	Input string
}

func (e *InvalidTimeError) Error() string {
	return fmt.Sprintf("invalid time format: %q (want HH:MM)", e.Input)
}

func (e *InvalidTimeError) Unwrap() error { return ErrInvalidTimeFormat }

// ViolationCode identifies which precondition failed.
type ViolationCode string

const (
	ViolationSundayRest        ViolationCode = "sunday_rest"
	ViolationAlreadyCheckedIn  ViolationCode = "already_checked_in"
	ViolationAlreadyCheckedOut ViolationCode = "already_checked_out"
	ViolationNoCheckIn         ViolationCode = "no_check_in"
	ViolationBreakAlreadyOpen  ViolationCode = "break_already_open"
	ViolationNoOpenBreak       ViolationCode = "no_open_break"
	ViolationLocationDenied    ViolationCode = "location_denied"
)

// PolicyViolationError identifies the precondition that rejected a
// transition.
type PolicyViolationError struct {
	Code   ViolationCode
	Detail string
}

func (e *PolicyViolationError) Error() string {
	return fmt.Sprintf("policy violation (%s): %s", e.Code, e.Detail)
}

func (e *PolicyViolationError) Unwrap() error { return ErrPolicyViolation }

func violation(code ViolationCode, detail string) error {
	return &PolicyViolationError{Code: code, Detail: detail}
}

// QuotaExceededError reports a short-leave request beyond the cap.
type QuotaExceededError struct {
	Month string
	Used  int
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("short leave quota exceeded for %s: %d of %d used",
		e.Month, e.Used, MaxShortLeavesPerMonth)
}

func (e *QuotaExceededError) Unwrap() error { return ErrQuotaExceeded }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid caller input
// rather than an internal failure.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidTimeFormat) ||
		errors.Is(err, ErrPolicyViolation) ||
		errors.Is(err, ErrQuotaExceeded)
}
