/*
Package leave implements the leave-request workflow.

PURPOSE:
  Employees request whole-day leave spans; a manager approves or rejects
  them. Requests are separate from the attendance engine: an approved
  leave never rewrites attendance records, it is its own ledger.

LIFECYCLE:
  Submit -> pending -> approved | rejected
  Only pending requests can be decided. Decided requests keep the
  approver for the audit trail. Requests can be deleted by their owner.
*/
package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pulse/attendance-engine/engine"
)

// =============================================================================
// TYPES
// =============================================================================

type Type string

const (
	TypeVacation  Type = "vacation"
	TypeSick      Type = "sick"
	TypePersonal  Type = "personal"
	TypeEmergency Type = "emergency"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Request is one leave request.
type Request struct {
	ID          string
	EmployeeID  string
	Type        Type
	StartDate   engine.Date
	EndDate     engine.Date
	Reason      string
	Status      Status
	RequestDate engine.Date
	ApprovedBy  string // set on approve/reject
}

// =============================================================================
// ERRORS
// =============================================================================

var (
	ErrNotFound     = errors.New("leave request not found")
	ErrNotPending   = errors.New("leave request already decided")
	ErrInvalidType  = errors.New("invalid leave type")
	ErrInvalidRange = errors.New("leave end date before start date")
)

// =============================================================================
// STORE
// =============================================================================

// Store persists leave requests.
type Store interface {
	Request(ctx context.Context, id string) (Request, bool, error)
	Requests(ctx context.Context, employeeID string) ([]Request, error)
	AllRequests(ctx context.Context) ([]Request, error)
	PutRequest(ctx context.Context, r Request) error
	DeleteRequest(ctx context.Context, id string) error
}

// =============================================================================
// SERVICE
// =============================================================================

// Service runs the request workflow over a Store.
type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// WithClock replaces the wall clock. For tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Submit files a new pending request.
func (s *Service) Submit(ctx context.Context, employeeID string, typ Type, start, end engine.Date, reason string) (Request, error) {
	switch typ {
	case TypeVacation, TypeSick, TypePersonal, TypeEmergency:
	default:
		return Request{}, fmt.Errorf("%w: %q", ErrInvalidType, typ)
	}
	if end.Before(start) {
		return Request{}, fmt.Errorf("%w: %s before %s", ErrInvalidRange, end, start)
	}

	r := Request{
		ID:          uuid.NewString(),
		EmployeeID:  employeeID,
		Type:        typ,
		StartDate:   start,
		EndDate:     end,
		Reason:      reason,
		Status:      StatusPending,
		RequestDate: engine.DateOf(s.now()),
	}
	if err := s.store.PutRequest(ctx, r); err != nil {
		return Request{}, err
	}
	return r, nil
}

// Approve marks a pending request approved.
func (s *Service) Approve(ctx context.Context, id, approver string) (Request, error) {
	return s.decide(ctx, id, approver, StatusApproved)
}

// Reject marks a pending request rejected.
func (s *Service) Reject(ctx context.Context, id, approver string) (Request, error) {
	return s.decide(ctx, id, approver, StatusRejected)
}

func (s *Service) decide(ctx context.Context, id, approver string, status Status) (Request, error) {
	r, ok, err := s.store.Request(ctx, id)
	if err != nil {
		return Request{}, err
	}
	if !ok {
		return Request{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if r.Status != StatusPending {
		return Request{}, fmt.Errorf("%w: %s is %s", ErrNotPending, id, r.Status)
	}

	r.Status = status
	r.ApprovedBy = approver
	if err := s.store.PutRequest(ctx, r); err != nil {
		return Request{}, err
	}
	return r, nil
}

// Delete removes a request.
func (s *Service) Delete(ctx context.Context, id string) error {
	_, ok, err := s.store.Request(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return s.store.DeleteRequest(ctx, id)
}

// List returns one employee's requests.
func (s *Service) List(ctx context.Context, employeeID string) ([]Request, error) {
	return s.store.Requests(ctx, employeeID)
}

// Pending returns every pending request, for the approver's queue.
func (s *Service) Pending(ctx context.Context) ([]Request, error) {
	all, err := s.store.AllRequests(ctx)
	if err != nil {
		return nil, err
	}
	var pending []Request
	for _, r := range all {
		if r.Status == StatusPending {
			pending = append(pending, r)
		}
	}
	return pending, nil
}
