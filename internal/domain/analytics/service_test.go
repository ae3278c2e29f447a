package analytics

import (
	"context"
	"testing"
	"time"

	"hris/internal/domain/attendance"
	"hris/internal/domain/core"
	"hris/internal/domain/leave"
	"hris/internal/domain/notifications"
	"hris/internal/store"
)

func TestDashboardSummary(t *testing.T) {
	st := store.New(store.NewMemoryBackend())
	ctx := context.Background()
	if err := st.Connect(ctx); err != nil {
		t.Fatalf("connect failed: %v", err)
	}

	coreSvc := core.NewService(st)
	active, err := coreSvc.CreateEmployee(ctx, core.Employee{
		Name:         "Jordan Smith",
		Email:        "jordan@example.com",
		EmployeeCode: "EMP-1",
		Department:   "Engineering",
	})
	if err != nil {
		t.Fatalf("seed employee failed: %v", err)
	}
	inactive := core.Employee{
		Name:         "Robin Diaz",
		Email:        "robin@example.com",
		EmployeeCode: "EMP-2",
		Department:   "Engineering",
		Status:       core.StatusInactive,
	}
	if _, err := coreSvc.CreateEmployee(ctx, inactive); err != nil {
		t.Fatalf("seed employee failed: %v", err)
	}

	today := time.Now().UTC().Format("2006-01-02")
	if _, err := attendance.NewService(st).Record(ctx, attendance.Record{
		EmployeeID: active.ID,
		Date:       today,
		Status:     attendance.StatusPresent,
	}); err != nil {
		t.Fatalf("seed attendance failed: %v", err)
	}

	start := time.Now().UTC().AddDate(0, 0, 7).Format("2006-01-02")
	end := time.Now().UTC().AddDate(0, 0, 9).Format("2006-01-02")
	if _, err := leave.NewService(st).CreateRequest(ctx, leave.Request{
		EmployeeID: active.ID,
		Type:       leave.TypeAnnual,
		StartDate:  start,
		EndDate:    end,
	}); err != nil {
		t.Fatalf("seed leave failed: %v", err)
	}

	if _, err := notifications.NewService(st).Create(ctx, notifications.Notification{
		UserID: active.ID,
		Title:  "Welcome",
	}); err != nil {
		t.Fatalf("seed notification failed: %v", err)
	}

	summary, err := NewService(st).DashboardSummary(ctx)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}

	if summary.TotalEmployees != 2 {
		t.Fatalf("expected 2 employees, got %d", summary.TotalEmployees)
	}
	if summary.ActiveEmployees != 1 {
		t.Fatalf("expected 1 active employee, got %d", summary.ActiveEmployees)
	}
	if summary.PresentToday != 1 {
		t.Fatalf("expected 1 present today, got %d", summary.PresentToday)
	}
	if summary.PendingLeave != 1 {
		t.Fatalf("expected 1 pending leave, got %d", summary.PendingLeave)
	}
	if summary.UnreadNotifications != 1 {
		t.Fatalf("expected 1 unread notification, got %d", summary.UnreadNotifications)
	}
	if summary.Departments != 1 {
		t.Fatalf("expected 1 distinct department, got %d", summary.Departments)
	}
}
