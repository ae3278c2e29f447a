package payroll

import (
	"context"
	"os"
	"testing"

	"hris/internal/apperr"
	"hris/internal/domain/core"
	"hris/internal/store"
)

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	st := store.New(store.NewMemoryBackend())
	if err := st.Connect(context.Background()); err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	return NewService(st, t.TempDir()), st
}

func baseRecord() Record {
	return Record{
		EmployeeID:  "emp-1",
		Month:       3,
		Year:        2026,
		BasicSalary: 15000,
		Allowances:  Allowances{Housing: 5000, Transport: 1500, Medical: 1200, Other: 500},
		Deductions:  Deductions{Insurance: 500, Loan: 1000, Other: 200},
	}
}

func TestCreateRecordComputesTotals(t *testing.T) {
	svc, _ := newTestService(t)

	rec, err := svc.CreateRecord(context.Background(), baseRecord())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if rec.TotalEarnings != 23200 || rec.TotalDeductions != 1700 || rec.NetSalary != 21500 {
		t.Fatalf("unexpected totals: %v / %v / %v", rec.TotalEarnings, rec.TotalDeductions, rec.NetSalary)
	}
	if rec.Currency != "USD" {
		t.Fatalf("expected default currency USD, got %q", rec.Currency)
	}
}

func TestCreateRecordIgnoresCallerTotals(t *testing.T) {
	svc, _ := newTestService(t)

	rec := baseRecord()
	rec.TotalEarnings = 1
	rec.NetSalary = 999999
	created, err := svc.CreateRecord(context.Background(), rec)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.NetSalary != 21500 {
		t.Fatalf("expected recomputed netSalary 21500, got %v", created.NetSalary)
	}
}

func TestUpdateRecordRecomputesTotals(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateRecord(ctx, baseRecord())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.UpdateRecord(ctx, created.ID, map[string]any{"basicSalary": 16000.0})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.BasicSalary != 16000 {
		t.Fatalf("expected basicSalary 16000, got %v", updated.BasicSalary)
	}
	if updated.TotalEarnings != 24200 {
		t.Fatalf("expected recomputed totalEarnings 24200, got %v", updated.TotalEarnings)
	}
	if updated.NetSalary != 22500 {
		t.Fatalf("expected recomputed netSalary 22500, got %v", updated.NetSalary)
	}
}

func TestCreateRecordValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	rec := baseRecord()
	rec.EmployeeID = ""
	if _, err := svc.CreateRecord(ctx, rec); !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for missing employee, got %v", err)
	}

	rec = baseRecord()
	rec.Month = 13
	if _, err := svc.CreateRecord(ctx, rec); !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for bad month, got %v", err)
	}

	rec = baseRecord()
	rec.BasicSalary = -1
	if _, err := svc.CreateRecord(ctx, rec); !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for negative salary, got %v", err)
	}
}

func TestGeneratePayslipPDF(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	emp, err := store.Create(ctx, st, core.TableEmployees, core.Employee{
		EmployeeCode: "EMP-1",
		Name:         "Jordan Smith",
		Email:        "jordan@example.com",
		Role:         core.RoleEmployee,
		Status:       core.StatusActive,
	})
	if err != nil {
		t.Fatalf("seed employee failed: %v", err)
	}

	rec := baseRecord()
	rec.EmployeeID = emp.ID
	created, err := svc.CreateRecord(ctx, rec)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	path, err := svc.GeneratePayslipPDF(ctx, created.ID)
	if err != nil {
		t.Fatalf("payslip failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("payslip file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("payslip file is empty")
	}
}

func TestGeneratePayslipPDFMissingRecord(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.GeneratePayslipPDF(context.Background(), "absent"); !apperr.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}
