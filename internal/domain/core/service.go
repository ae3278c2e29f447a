package core

import (
	"context"
	"strings"
	"sync"

	"hris/internal/apperr"
	"hris/internal/store"
)

// Service is the employee and organization facade. All writes go
// through here so validation and uniqueness checks always run before
// the store is touched.
type Service struct {
	store *store.Store

	// mu makes the check-then-create sequences atomic; the KV store
	// has no unique indexes to lean on.
	mu sync.Mutex
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

func (s *Service) CreateEmployee(ctx context.Context, emp Employee) (Employee, error) {
	emp.Email = strings.TrimSpace(strings.ToLower(emp.Email))
	emp.Name = strings.TrimSpace(emp.Name)
	emp.EmployeeCode = strings.TrimSpace(emp.EmployeeCode)

	if emp.Name == "" || emp.Email == "" || emp.EmployeeCode == "" {
		return Employee{}, apperr.Validationf("name, email and employeeCode are required")
	}
	if emp.Role == "" {
		emp.Role = RoleEmployee
	}
	if !contains(Roles, emp.Role) {
		return Employee{}, apperr.Validationf("invalid role %q", emp.Role)
	}
	if emp.Status == "" {
		emp.Status = StatusActive
	}
	if !contains(EmployeeStatuses, emp.Status) {
		return Employee{}, apperr.Validationf("invalid status %q", emp.Status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureEmployeeUnique(ctx, emp.Email, emp.EmployeeCode, ""); err != nil {
		return Employee{}, err
	}
	return store.Create(ctx, s.store, TableEmployees, emp)
}

func (s *Service) GetEmployee(ctx context.Context, id string) (Employee, error) {
	return store.Get(ctx, s.store, TableEmployees, id)
}

// ListEmployees returns all employees, or those matching the filter
// fields exactly (e.g. status, department, role).
func (s *Service) ListEmployees(ctx context.Context, filter store.Filter) ([]Employee, error) {
	return store.List(ctx, s.store, TableEmployees, filter)
}

func (s *Service) UpdateEmployee(ctx context.Context, id string, patch map[string]any) (Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if email, ok := patch["email"].(string); ok {
		email = strings.TrimSpace(strings.ToLower(email))
		if email == "" {
			return Employee{}, apperr.Validationf("email cannot be empty")
		}
		patch["email"] = email
	}
	if code, ok := patch["employeeCode"].(string); ok && strings.TrimSpace(code) == "" {
		return Employee{}, apperr.Validationf("employeeCode cannot be empty")
	}
	if role, ok := patch["role"].(string); ok && !contains(Roles, role) {
		return Employee{}, apperr.Validationf("invalid role %q", role)
	}
	if status, ok := patch["status"].(string); ok && !contains(EmployeeStatuses, status) {
		return Employee{}, apperr.Validationf("invalid status %q", status)
	}

	email, _ := patch["email"].(string)
	code, _ := patch["employeeCode"].(string)
	if email != "" || code != "" {
		if err := s.ensureEmployeeUnique(ctx, email, code, id); err != nil {
			return Employee{}, err
		}
	}
	return store.Update(ctx, s.store, TableEmployees, id, patch)
}

func (s *Service) DeleteEmployee(ctx context.Context, id string) (bool, error) {
	return store.Delete(ctx, s.store, TableEmployees, id)
}

// ensureEmployeeUnique rejects an email or employee code already held
// by a different employee. Empty values are skipped; excludeID lets
// updates match their own record.
func (s *Service) ensureEmployeeUnique(ctx context.Context, email, code, excludeID string) error {
	if email != "" {
		existing, err := store.List(ctx, s.store, TableEmployees, store.Filter{"email": email})
		if err != nil {
			return err
		}
		for _, emp := range existing {
			if emp.ID != excludeID {
				return apperr.Conflictf("employee with email %s already exists", email)
			}
		}
	}
	if code != "" {
		existing, err := store.List(ctx, s.store, TableEmployees, store.Filter{"employeeCode": code})
		if err != nil {
			return err
		}
		for _, emp := range existing {
			if emp.ID != excludeID {
				return apperr.Conflictf("employee with code %s already exists", code)
			}
		}
	}
	return nil
}

func contains(list []string, value string) bool {
	for _, candidate := range list {
		if candidate == value {
			return true
		}
	}
	return false
}
