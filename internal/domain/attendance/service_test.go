package attendance

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

func TestRecordTwiceUpdatesSameRecord(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	checkIn := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	first, err := svc.Record(ctx, Record{
		EmployeeID: "emp-1",
		Date:       "2026-03-02",
		CheckIn:    &checkIn,
	})
	if err != nil {
		t.Fatalf("first record failed: %v", err)
	}
	if first.Status != StatusPresent {
		t.Fatalf("expected present after check-in, got %q", first.Status)
	}

	checkOut := time.Date(2026, 3, 2, 18, 30, 0, 0, time.UTC)
	second, err := svc.Record(ctx, Record{
		EmployeeID: "emp-1",
		Date:       "2026-03-02",
		CheckOut:   &checkOut,
	})
	if err != nil {
		t.Fatalf("second record failed: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected update of the same record, got new id %s", second.ID)
	}

	all, err := svc.ListByEmployee(ctx, "emp-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected exactly one record per (employee, date), got %d", len(all))
	}
	if all[0].CheckIn == nil || all[0].CheckOut == nil {
		t.Fatal("expected both check-in and check-out retained")
	}
	if all[0].WorkingHours != 9.5 {
		t.Fatalf("expected 9.5 working hours, got %v", all[0].WorkingHours)
	}
	if all[0].Overtime != 1.5 {
		t.Fatalf("expected 1.5 overtime hours, got %v", all[0].Overtime)
	}
}

func TestRecordDifferentDaysCreatesSeparateRecords(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for _, date := range []string{"2026-03-02", "2026-03-03"} {
		if _, err := svc.Record(ctx, Record{EmployeeID: "emp-1", Date: date, Status: StatusPresent}); err != nil {
			t.Fatalf("record for %s failed: %v", date, err)
		}
	}

	all, err := svc.ListByEmployee(ctx, "emp-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 records, got %d", len(all))
	}
}

func TestRecordValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Record(ctx, Record{Date: "2026-03-02"}); !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for missing employee, got %v", err)
	}
	if _, err := svc.Record(ctx, Record{EmployeeID: "emp-1", Date: "02/03/2026"}); !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for bad date, got %v", err)
	}
	if _, err := svc.Record(ctx, Record{EmployeeID: "emp-1", Date: "2026-03-02", Status: "vacationing"}); !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for bad status, got %v", err)
	}
}

func TestRecordWithoutCheckInDefaultsAbsent(t *testing.T) {
	svc := newTestService(t)

	rec, err := svc.Record(context.Background(), Record{EmployeeID: "emp-2", Date: "2026-03-02"})
	if err != nil {
		t.Fatalf("record failed: %v", err)
	}
	if rec.Status != StatusAbsent {
		t.Fatalf("expected absent, got %q", rec.Status)
	}
	if rec.WorkingHours != 0 || rec.Overtime != 0 {
		t.Fatalf("expected zero hours, got %v/%v", rec.WorkingHours, rec.Overtime)
	}
}
