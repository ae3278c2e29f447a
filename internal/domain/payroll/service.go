package payroll

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/jung-kurt/gofpdf"

	"hris/internal/apperr"
	"hris/internal/domain/core"
	"hris/internal/store"
)

type Service struct {
	store      *store.Store
	payslipDir string

	mu sync.Mutex
}

func NewService(st *store.Store, payslipDir string) *Service {
	return &Service{store: st, payslipDir: payslipDir}
}

// CreateRecord validates the inputs, computes the derived totals and
// stores the record.
func (s *Service) CreateRecord(ctx context.Context, rec Record) (Record, error) {
	if err := validateInputs(rec); err != nil {
		return Record{}, err
	}
	if rec.Currency == "" {
		rec.Currency = "USD"
	}
	ComputeTotals(&rec)
	return store.Create(ctx, s.store, TableRecords, rec)
}

// UpdateRecord merges the patch over the stored record and recomputes
// all three derived totals from the merged inputs, so a partial update
// of basicSalary or an allowance can never leave stale totals behind.
func (s *Service) UpdateRecord(ctx context.Context, id string, patch map[string]any) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := store.Get(ctx, s.store, TableRecords, id)
	if err != nil {
		return Record{}, err
	}

	merged, err := mergeRecord(current, patch)
	if err != nil {
		return Record{}, err
	}
	if err := validateInputs(merged); err != nil {
		return Record{}, err
	}

	ComputeTotals(&merged)
	patch["totalEarnings"] = merged.TotalEarnings
	patch["totalDeductions"] = merged.TotalDeductions
	patch["netSalary"] = merged.NetSalary

	return store.Update(ctx, s.store, TableRecords, id, patch)
}

func (s *Service) GetRecord(ctx context.Context, id string) (Record, error) {
	return store.Get(ctx, s.store, TableRecords, id)
}

func (s *Service) ListRecords(ctx context.Context, filter store.Filter) ([]Record, error) {
	return store.List(ctx, s.store, TableRecords, filter)
}

func (s *Service) DeleteRecord(ctx context.Context, id string) (bool, error) {
	return store.Delete(ctx, s.store, TableRecords, id)
}

// GeneratePayslipPDF renders a payslip for the record and returns the
// file path.
func (s *Service) GeneratePayslipPDF(ctx context.Context, recordID string) (string, error) {
	rec, err := store.Get(ctx, s.store, TableRecords, recordID)
	if err != nil {
		return "", err
	}
	emp, err := store.Get(ctx, s.store, core.TableEmployees, rec.EmployeeID)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.payslipDir, 0o755); err != nil {
		return "", apperr.Wrap(err, "create payslip directory failed")
	}
	filePath := filepath.Join(s.payslipDir, fmt.Sprintf("payslip-%s.pdf", rec.ID))

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s (%s)", emp.Name, emp.EmployeeCode))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Email: %s", emp.Email))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %04d-%02d", rec.Year, rec.Month))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Basic salary: %.2f %s", rec.BasicSalary, rec.Currency))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Allowances: %.2f %s", rec.Allowances.Total(), rec.Currency))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Overtime: %.2f  Bonus: %.2f", rec.Overtime, rec.Bonus))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Total earnings: %.2f %s", rec.TotalEarnings, rec.Currency))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Total deductions: %.2f %s", rec.TotalDeductions, rec.Currency))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Net salary: %.2f %s", rec.NetSalary, rec.Currency))

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", apperr.Wrap(err, "write payslip pdf failed")
	}
	return filePath, nil
}

func validateInputs(rec Record) error {
	if rec.EmployeeID == "" {
		return apperr.Validationf("employeeId is required")
	}
	if rec.Month < 1 || rec.Month > 12 {
		return apperr.Validationf("month must be between 1 and 12")
	}
	if rec.Year < 2000 || rec.Year > 2100 {
		return apperr.Validationf("year %d out of range", rec.Year)
	}
	if rec.BasicSalary < 0 {
		return apperr.Validationf("basicSalary cannot be negative")
	}
	return nil
}

// mergeRecord applies a JSON merge of patch over current, ignoring the
// store-owned meta fields, and returns the merged record.
func mergeRecord(current Record, patch map[string]any) (Record, error) {
	blob, err := json.Marshal(current)
	if err != nil {
		return Record{}, apperr.Wrap(err, "encode payroll record failed")
	}
	var row map[string]any
	if err := json.Unmarshal(blob, &row); err != nil {
		return Record{}, apperr.Wrap(err, "decode payroll record failed")
	}

	for field, value := range patch {
		if field == "id" || field == "createdAt" || field == "updatedAt" {
			continue
		}
		valueBlob, err := json.Marshal(value)
		if err != nil {
			return Record{}, apperr.Validationf("invalid value for field %s", field)
		}
		var normalized any
		if err := json.Unmarshal(valueBlob, &normalized); err != nil {
			return Record{}, apperr.Validationf("invalid value for field %s", field)
		}
		row[field] = normalized
	}

	mergedBlob, err := json.Marshal(row)
	if err != nil {
		return Record{}, apperr.Wrap(err, "encode merged record failed")
	}
	var merged Record
	if err := json.Unmarshal(mergedBlob, &merged); err != nil {
		return Record{}, apperr.Validationf("patch does not match payroll record shape")
	}
	return merged, nil
}
