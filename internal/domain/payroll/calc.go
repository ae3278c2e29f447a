package payroll

// ComputeTotals derives the three payroll totals from a record's
// inputs:
//
//	totalEarnings   = basicSalary + allowances + overtime + bonus
//	totalDeductions = deductions
//	netSalary       = totalEarnings - totalDeductions
func ComputeTotals(rec *Record) {
	rec.TotalEarnings = rec.BasicSalary + rec.Allowances.Total() + rec.Overtime + rec.Bonus
	rec.TotalDeductions = rec.Deductions.Total()
	rec.NetSalary = rec.TotalEarnings - rec.TotalDeductions
}
