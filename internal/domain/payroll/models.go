package payroll

import "hris/internal/store"

type Allowances struct {
	Housing   float64 `json:"housing"`
	Transport float64 `json:"transport"`
	Food      float64 `json:"food"`
	Medical   float64 `json:"medical"`
	Other     float64 `json:"other"`
}

func (a Allowances) Total() float64 {
	return a.Housing + a.Transport + a.Food + a.Medical + a.Other
}

type Deductions struct {
	Tax       float64 `json:"tax"`
	Insurance float64 `json:"insurance"`
	Loan      float64 `json:"loan"`
	Other     float64 `json:"other"`
}

func (d Deductions) Total() float64 {
	return d.Tax + d.Insurance + d.Loan + d.Other
}

// Record stores the payroll inputs together with the three derived
// totals. The totals are never mutated independently: every write path
// recomputes them from the merged inputs.
type Record struct {
	store.Meta
	EmployeeID      string     `json:"employeeId"`
	Month           int        `json:"month"`
	Year            int        `json:"year"`
	BasicSalary     float64    `json:"basicSalary"`
	Allowances      Allowances `json:"allowances"`
	Deductions      Deductions `json:"deductions"`
	Overtime        float64    `json:"overtime"`
	Bonus           float64    `json:"bonus"`
	Currency        string     `json:"currency"`
	TotalEarnings   float64    `json:"totalEarnings"`
	TotalDeductions float64    `json:"totalDeductions"`
	NetSalary       float64    `json:"netSalary"`
}

var TableRecords = store.NewTable[Record]("payroll")
