package leave

import (
	"context"
	"time"

	"hris/internal/apperr"
	"hris/internal/store"
)

type Service struct {
	store *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

// CreateRequest validates the date range and files the request. The
// initial status is always pending regardless of what the caller
// supplied.
func (s *Service) CreateRequest(ctx context.Context, req Request) (Request, error) {
	if req.EmployeeID == "" {
		return Request{}, apperr.Validationf("employeeId is required")
	}
	if !validType(req.Type) {
		return Request{}, apperr.Validationf("invalid leave type %q", req.Type)
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return Request{}, apperr.Validationf("startDate must be in YYYY-MM-DD format")
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return Request{}, apperr.Validationf("endDate must be in YYYY-MM-DD format")
	}

	days, err := CalculateDays(start, end)
	if err != nil {
		return Request{}, apperr.Validationf("startDate must precede endDate")
	}

	req.Days = days
	req.Status = StatusPending
	req.ApproverID = ""
	req.ApproverName = ""
	req.DecidedAt = nil
	req.RejectionReason = ""

	return store.Create(ctx, s.store, TableRequests, req)
}

func (s *Service) GetRequest(ctx context.Context, id string) (Request, error) {
	return store.Get(ctx, s.store, TableRequests, id)
}

func (s *Service) ListRequests(ctx context.Context, filter store.Filter) ([]Request, error) {
	return store.List(ctx, s.store, TableRequests, filter)
}

// Approve moves a pending request to approved and stamps the approver.
func (s *Service) Approve(ctx context.Context, id, approverID, approverName string) (Request, error) {
	return s.decide(ctx, id, StatusApproved, approverID, approverName, "")
}

// Reject moves a pending request to rejected with an optional reason.
func (s *Service) Reject(ctx context.Context, id, approverID, approverName, reason string) (Request, error) {
	return s.decide(ctx, id, StatusRejected, approverID, approverName, reason)
}

func (s *Service) decide(ctx context.Context, id, status, approverID, approverName, reason string) (Request, error) {
	req, err := store.Get(ctx, s.store, TableRequests, id)
	if err != nil {
		return Request{}, err
	}
	if req.Status != StatusPending {
		return Request{}, apperr.Validationf("leave request already %s", req.Status)
	}

	now := time.Now().UTC()
	patch := map[string]any{
		"status":       status,
		"approverId":   approverID,
		"approverName": approverName,
		"decidedAt":    now,
	}
	if reason != "" {
		patch["rejectionReason"] = reason
	}
	return store.Update(ctx, s.store, TableRequests, id, patch)
}

func (s *Service) DeleteRequest(ctx context.Context, id string) (bool, error) {
	return store.Delete(ctx, s.store, TableRequests, id)
}

func validType(leaveType string) bool {
	for _, candidate := range Types {
		if candidate == leaveType {
			return true
		}
	}
	return false
}
