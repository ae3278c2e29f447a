package notifications

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

func TestCreateForcesUnread(t *testing.T) {
	svc := newTestService(t)

	n, err := svc.Create(context.Background(), Notification{
		UserID: "emp-1",
		Title:  "Payslip ready",
		Read:   true,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if n.Read {
		t.Fatal("expected notification created unread")
	}
	if n.Type != TypeInfo || n.Priority != PriorityMedium || n.Category != CategorySystem {
		t.Fatalf("unexpected defaults: %+v", n)
	}
}

func TestCreateValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, Notification{Title: "x"}); !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for missing user, got %v", err)
	}
	if _, err := svc.Create(ctx, Notification{UserID: "emp-1"}); !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for missing title, got %v", err)
	}
	if _, err := svc.Create(ctx, Notification{UserID: "emp-1", Title: "x", Priority: "extreme"}); !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for bad priority, got %v", err)
	}
}

func TestMarkReadAndUnreadCount(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, Notification{UserID: "emp-1", Title: "one"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Create(ctx, Notification{UserID: "emp-1", Title: "two"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Create(ctx, Notification{UserID: "emp-2", Title: "other user"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	count, err := svc.CountUnread(ctx, "emp-1")
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 unread, got %d", count)
	}

	if _, err := svc.MarkRead(ctx, first.ID); err != nil {
		t.Fatalf("mark read failed: %v", err)
	}
	count, err = svc.CountUnread(ctx, "emp-1")
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 unread after mark, got %d", count)
	}

	marked, err := svc.MarkAllRead(ctx, "emp-1")
	if err != nil {
		t.Fatalf("mark all failed: %v", err)
	}
	if marked != 1 {
		t.Fatalf("expected 1 marked, got %d", marked)
	}
}

func TestListSkipsExpired(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	past := time.Now().UTC().Add(-time.Hour)
	if _, err := svc.Create(ctx, Notification{UserID: "emp-1", Title: "expired", ExpiresAt: &past}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Create(ctx, Notification{UserID: "emp-1", Title: "current"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	list, err := svc.ListForUser(ctx, "emp-1", false)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 1 || list[0].Title != "current" {
		t.Fatalf("expected only the current notification, got %+v", list)
	}
}
