package core

import (
	"context"
	"reflect"
	"testing"

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

func validEmployee(email, code string) Employee {
	return Employee{
		EmployeeCode: code,
		Name:         "Jordan Smith",
		Email:        email,
		Role:         RoleEmployee,
		Department:   "Engineering",
		Position:     "Developer",
	}
}

func TestCreateEmployeeRequiresFields(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	cases := []struct {
		name string
		emp  Employee
	}{
		{"missing email", Employee{Name: "A", EmployeeCode: "EMP-1"}},
		{"missing name", Employee{Email: "a@example.com", EmployeeCode: "EMP-1"}},
		{"missing code", Employee{Name: "A", Email: "a@example.com"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateEmployee(ctx, tc.emp)
			if !apperr.IsValidation(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestCreateEmployeeDuplicateEmailConflicts(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.CreateEmployee(ctx, validEmployee("dup@example.com", "EMP-1")); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	_, err := svc.CreateEmployee(ctx, validEmployee("dup@example.com", "EMP-2"))
	if !apperr.IsConflict(err) {
		t.Fatalf("expected conflict for duplicate email, got %v", err)
	}

	_, err = svc.CreateEmployee(ctx, validEmployee("other@example.com", "EMP-1"))
	if !apperr.IsConflict(err) {
		t.Fatalf("expected conflict for duplicate employeeCode, got %v", err)
	}
}

func TestCreateEmployeeRoundTrips(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateEmployee(ctx, validEmployee("unique@example.com", "EMP-7"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected id assigned")
	}
	if !created.CreatedAt.Equal(created.UpdatedAt) {
		t.Fatal("expected createdAt == updatedAt at creation")
	}
	if created.Status != StatusActive {
		t.Fatalf("expected default status active, got %q", created.Status)
	}

	fetched, err := svc.GetEmployee(ctx, created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !reflect.DeepEqual(created, fetched) {
		t.Fatalf("round trip mismatch:\ncreated %+v\nfetched %+v", created, fetched)
	}
}

func TestGetEmployeeMissing(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetEmployee(context.Background(), "absent")
	if !apperr.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestListEmployeesFiltered(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.CreateEmployee(ctx, validEmployee("a@example.com", "EMP-1")); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	second := validEmployee("b@example.com", "EMP-2")
	second.Status = StatusInactive
	if _, err := svc.CreateEmployee(ctx, second); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	active, err := svc.ListEmployees(ctx, store.Filter{"status": StatusActive})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(active) != 1 || active[0].Email != "a@example.com" {
		t.Fatalf("unexpected filtered result: %+v", active)
	}
}

func TestUpdateEmployeeRejectsTakenEmail(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.CreateEmployee(ctx, validEmployee("first@example.com", "EMP-1")); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	second, err := svc.CreateEmployee(ctx, validEmployee("second@example.com", "EMP-2"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err = svc.UpdateEmployee(ctx, second.ID, map[string]any{"email": "first@example.com"})
	if !apperr.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}

	updated, err := svc.UpdateEmployee(ctx, second.ID, map[string]any{"email": "second@example.com", "department": "Sales"})
	if err != nil {
		t.Fatalf("update with own email failed: %v", err)
	}
	if updated.Department != "Sales" {
		t.Fatalf("expected department updated, got %q", updated.Department)
	}
}

func TestCandidateStageTransitions(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	cand, err := svc.CreateCandidate(ctx, Candidate{Name: "Sam Lee", Email: "sam@example.com"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if cand.Stage != StageApplied {
		t.Fatalf("expected default stage applied, got %q", cand.Stage)
	}

	moved, err := svc.MoveCandidate(ctx, cand.ID, StageHired)
	if err != nil {
		t.Fatalf("move failed: %v", err)
	}
	if moved.Stage != StageHired {
		t.Fatalf("expected hired, got %q", moved.Stage)
	}

	if _, err := svc.MoveCandidate(ctx, cand.ID, StageInterview); !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for terminal stage, got %v", err)
	}
}

func TestDepartmentNameUnique(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.CreateDepartment(ctx, Department{Name: "Engineering"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.CreateDepartment(ctx, Department{Name: "Engineering"}); !apperr.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
}
