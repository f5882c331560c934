/*
day.go - The per-day attendance state machine

PURPOSE:
  One Day record exists per employee per calendar date. It is created on
  first check-in, mutated by same-day check-out/break/note events, and
  never deleted. Transitions:

    NoRecord   --Begin-----> CheckedIn   (rejected on Sunday or if a
                                          check-in already exists)
    CheckedIn  --StartBreak-> OnBreak    (rejected after check-out or
                                          while a break is open)
    OnBreak    --EndBreak---> CheckedIn  (computes break duration)
    CheckedIn  --Complete---> Completed  (computes totals, overtime,
                                          final status, short leave)

  Completed is terminal: no further check-in/out the same day. Notes may
  be attached in any state.

NO PARTIAL WRITES:
  Transitions are value-in/value-out. A rejected transition returns the
  receiver unchanged alongside a *PolicyViolationError naming the failed
  precondition, so callers can persist the returned value blindly.
*/
package engine

import "github.com/shopspring/decimal"

// =============================================================================
// BREAKS
// =============================================================================

// BreakKind labels a break; it has no effect on the math.
type BreakKind string

const (
	BreakLunch  BreakKind = "lunch"
	BreakCoffee BreakKind = "coffee"
	BreakOther  BreakKind = "other"
)

// Break is one break interval within a day. End is nil while the break
// is open; Duration is set when the break ends.
type Break struct {
	ID       string
	Kind     BreakKind
	Start    Clock
	End      *Clock
	Duration decimal.Decimal
}

// Open reports whether the break has not ended yet.
func (b Break) Open() bool { return b.End == nil }

// =============================================================================
// DAY
// =============================================================================

// Day is one attendance record. TotalHours, Overtime and the final
// Status are computed at Complete; Status before that reflects the
// check-in-only classification.
type Day struct {
	ID         string
	EmployeeID string
	Date       Date

	CheckIn  *Clock
	CheckOut *Clock
	Breaks   []Break

	TotalHours decimal.Decimal
	Overtime   decimal.Decimal
	Status     Status

	ShortLeaveUsed bool
	Notes          string

	// Location gate results recorded at check-in/check-out. The engine
	// never reads these; they ride along for reporting.
	LocationVerified         bool
	DistanceFromOffice       float64
	CheckOutLocationVerified bool
	CheckOutDistance         float64
}

// NewDay returns an empty record for the date. No check-in yet.
func NewDay(id, employeeID string, date Date) Day {
	return Day{ID: id, EmployeeID: employeeID, Date: date}
}

// Completed reports whether the day has a check-out (terminal state).
func (d Day) Completed() bool { return d.CheckOut != nil }

// OpenBreak returns the currently open break, if any. At most one break
// may be open at a time.
func (d Day) OpenBreak() (Break, bool) {
	for _, b := range d.Breaks {
		if b.Open() {
			return b, true
		}
	}
	return Break{}, false
}

// BreakHours returns the summed duration of all closed breaks.
func (d Day) BreakHours() decimal.Decimal {
	total := decimal.Zero
	for _, b := range d.Breaks {
		if !b.Open() {
			total = total.Add(b.Duration)
		}
	}
	return total
}

// =============================================================================
// TRANSITIONS
// =============================================================================

// Begin records the day's check-in. Rejected on Sundays and when a
// check-in already exists (one check-in per day).
func (d Day) Begin(at Clock) (Day, error) {
	if d.Date.IsSunday() {
		return d, violation(ViolationSundayRest, "Sunday is a rest day; attendance is not required")
	}
	if d.CheckIn != nil {
		return d, violation(ViolationAlreadyCheckedIn, "already checked in today; only one check-in per day is allowed")
	}

	in := at
	d.CheckIn = &in
	d.Status = Classify(d.Date, in, nil, false)
	d.Breaks = nil
	return d, nil
}

// StartBreak opens a break. Rejected before check-in, after check-out,
// or while another break is open.
func (d Day) StartBreak(id string, kind BreakKind, at Clock) (Day, error) {
	if d.CheckIn == nil {
		return d, violation(ViolationNoCheckIn, "must check in before taking a break")
	}
	if d.Completed() {
		return d, violation(ViolationAlreadyCheckedOut, "cannot take a break after checking out")
	}
	if _, open := d.OpenBreak(); open {
		return d, violation(ViolationBreakAlreadyOpen, "a break is already in progress; end it first")
	}

	breaks := make([]Break, len(d.Breaks), len(d.Breaks)+1)
	copy(breaks, d.Breaks)
	d.Breaks = append(breaks, Break{ID: id, Kind: kind, Start: at})
	return d, nil
}

// EndBreak closes the open break and records its duration.
func (d Day) EndBreak(at Clock) (Day, error) {
	idx := -1
	for i, b := range d.Breaks {
		if b.Open() {
			idx = i
			break
		}
	}
	if idx < 0 {
		return d, violation(ViolationNoOpenBreak, "no break is in progress")
	}

	breaks := make([]Break, len(d.Breaks))
	copy(breaks, d.Breaks)
	end := at
	breaks[idx].End = &end
	breaks[idx].Duration = HoursBetween(breaks[idx].Start, at).Round(2)
	d.Breaks = breaks
	return d, nil
}

// Complete records the check-out and finalizes the day: break-adjusted
// total hours, overtime, final status, and short-leave consumption. The
// ledger is taken and returned by value; it is advanced only when the
// day actually spends a short leave.
//
// An open break at check-out stays open and contributes nothing to the
// deducted break time.
func (d Day) Complete(at Clock, ledger ShortLeaveLedger) (Day, ShortLeaveLedger, error) {
	if d.CheckIn == nil {
		return d, ledger, violation(ViolationNoCheckIn, "no active check-in; check in before checking out")
	}
	if d.Completed() {
		return d, ledger, violation(ViolationAlreadyCheckedOut, "already checked out today; only one check-out per day is allowed")
	}

	in := *d.CheckIn
	total := HoursBetween(in, at).Sub(d.BreakHours())
	overtime := total.Sub(standardDailyHours)
	if overtime.IsNegative() {
		overtime = decimal.Zero
	}

	month := d.Date.MonthKey()
	eligible := ShortLeaveEligible(in, at, ledger.UsedIn(month))
	out := at
	status := Classify(d.Date, in, &out, eligible)

	// Spend the quota only when the exception is actually needed: an
	// eligible present day whose break-adjusted hours fell short, or
	// whose check-in was late. A clean present leaves the ledger alone.
	if status == StatusPresent && eligible && shortLeaveWouldSpend(in, total) {
		next, err := ledger.Consume(month)
		if err != nil {
			return d, ledger, err
		}
		ledger = next
		d.ShortLeaveUsed = true
	}

	d.CheckOut = &out
	d.TotalHours = total.Round(2)
	d.Overtime = overtime.Round(2)
	d.Status = status
	return d, ledger, nil
}

// WithNote attaches or replaces the day's note. Allowed in any state.
func (d Day) WithNote(note string) Day {
	d.Notes = note
	return d
}
