package leave

import (
	"context"
	"testing"
	"time"

	"hris/internal/apperr"
	"hris/internal/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	st := store.New(store.NewMemoryBackend())
	if err := st.Connect(context.Background()); err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	return NewService(st)
}

func TestCreateRequestForcesPending(t *testing.T) {
	svc := newTestService(t)

	req, err := svc.CreateRequest(context.Background(), Request{
		EmployeeID: "emp-1",
		Type:       TypeAnnual,
		StartDate:  "2026-04-06",
		EndDate:    "2026-04-10",
		Status:     StatusApproved,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if req.Status != StatusPending {
		t.Fatalf("expected forced pending status, got %q", req.Status)
	}
	if req.Days != 5 {
		t.Fatalf("expected 5 days, got %d", req.Days)
	}
}

func TestCreateRequestRejectsBadRanges(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	cases := []struct {
		name       string
		start, end string
	}{
		{"start equals end", "2026-04-06", "2026-04-06"},
		{"start after end", "2026-04-10", "2026-04-06"},
		{"bad start format", "06-04-2026", "2026-04-10"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateRequest(ctx, Request{
				EmployeeID: "emp-1",
				Type:       TypeSick,
				StartDate:  tc.start,
				EndDate:    tc.end,
			})
			if !apperr.IsValidation(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestApproveStampsApprover(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	req, err := svc.CreateRequest(ctx, Request{
		EmployeeID: "emp-1",
		Type:       TypeEmergency,
		StartDate:  "2026-04-06",
		EndDate:    "2026-04-08",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	approved, err := svc.Approve(ctx, req.ID, "mgr-1", "Dana Cruz")
	if err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if approved.Status != StatusApproved {
		t.Fatalf("expected approved, got %q", approved.Status)
	}
	if approved.ApproverID != "mgr-1" || approved.ApproverName != "Dana Cruz" {
		t.Fatalf("approver metadata missing: %+v", approved)
	}
	if approved.DecidedAt == nil {
		t.Fatal("expected decidedAt stamped")
	}

	if _, err := svc.Reject(ctx, req.ID, "mgr-1", "Dana Cruz", "late"); !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for decided request, got %v", err)
	}
}

func TestCalculateDays(t *testing.T) {
	start := time.Date(2026, 4, 6, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 4, 8, 0, 0, 0, 0, time.UTC)

	days, err := CalculateDays(start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 3 {
		t.Fatalf("expected 3 days, got %d", days)
	}

	if _, err := CalculateDays(end, start); err == nil {
		t.Fatal("expected error for inverted range")
	}
}
