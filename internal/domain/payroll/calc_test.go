package payroll

import "testing"

func TestComputeTotals(t *testing.T) {
	rec := Record{
		BasicSalary: 15000,
		Allowances:  Allowances{Housing: 5000, Transport: 1500, Food: 0, Medical: 1200, Other: 500},
		Deductions:  Deductions{Tax: 0, Insurance: 500, Loan: 1000, Other: 200},
		Overtime:    0,
		Bonus:       0,
	}
	ComputeTotals(&rec)

	if rec.TotalEarnings != 23200 {
		t.Fatalf("expected totalEarnings 23200, got %v", rec.TotalEarnings)
	}
	if rec.TotalDeductions != 1700 {
		t.Fatalf("expected totalDeductions 1700, got %v", rec.TotalDeductions)
	}
	if rec.NetSalary != 21500 {
		t.Fatalf("expected netSalary 21500, got %v", rec.NetSalary)
	}
}

func TestComputeTotalsWithOvertimeAndBonus(t *testing.T) {
	rec := Record{
		BasicSalary: 10000,
		Overtime:    800,
		Bonus:       1200,
		Deductions:  Deductions{Tax: 1500},
	}
	ComputeTotals(&rec)

	if rec.TotalEarnings != 12000 {
		t.Fatalf("expected totalEarnings 12000, got %v", rec.TotalEarnings)
	}
	if rec.NetSalary != 10500 {
		t.Fatalf("expected netSalary 10500, got %v", rec.NetSalary)
	}
}
