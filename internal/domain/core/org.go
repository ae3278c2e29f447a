package core

import (
	"context"
	"strings"

	"hris/internal/apperr"
	"hris/internal/store"
)

// Departments, job positions and candidates share the same thin CRUD
// shape; only candidates carry extra stage-transition rules.

func (s *Service) CreateDepartment(ctx context.Context, dept Department) (Department, error) {
	dept.Name = strings.TrimSpace(dept.Name)
	if dept.Name == "" {
		return Department{}, apperr.Validationf("department name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := store.List(ctx, s.store, TableDepartments, store.Filter{"name": dept.Name})
	if err != nil {
		return Department{}, err
	}
	if len(existing) > 0 {
		return Department{}, apperr.Conflictf("department %s already exists", dept.Name)
	}
	return store.Create(ctx, s.store, TableDepartments, dept)
}

func (s *Service) GetDepartment(ctx context.Context, id string) (Department, error) {
	return store.Get(ctx, s.store, TableDepartments, id)
}

func (s *Service) ListDepartments(ctx context.Context) ([]Department, error) {
	return store.List(ctx, s.store, TableDepartments, nil)
}

func (s *Service) UpdateDepartment(ctx context.Context, id string, patch map[string]any) (Department, error) {
	if name, ok := patch["name"].(string); ok && strings.TrimSpace(name) == "" {
		return Department{}, apperr.Validationf("department name cannot be empty")
	}
	return store.Update(ctx, s.store, TableDepartments, id, patch)
}

func (s *Service) DeleteDepartment(ctx context.Context, id string) (bool, error) {
	return store.Delete(ctx, s.store, TableDepartments, id)
}

func (s *Service) CreatePosition(ctx context.Context, pos JobPosition) (JobPosition, error) {
	pos.Title = strings.TrimSpace(pos.Title)
	if pos.Title == "" {
		return JobPosition{}, apperr.Validationf("position title is required")
	}
	if pos.Status == "" {
		pos.Status = PositionOpen
	}
	if pos.Status != PositionOpen && pos.Status != PositionClosed && pos.Status != PositionOnHold {
		return JobPosition{}, apperr.Validationf("invalid position status %q", pos.Status)
	}
	return store.Create(ctx, s.store, TablePositions, pos)
}

func (s *Service) GetPosition(ctx context.Context, id string) (JobPosition, error) {
	return store.Get(ctx, s.store, TablePositions, id)
}

func (s *Service) ListPositions(ctx context.Context, filter store.Filter) ([]JobPosition, error) {
	return store.List(ctx, s.store, TablePositions, filter)
}

func (s *Service) UpdatePosition(ctx context.Context, id string, patch map[string]any) (JobPosition, error) {
	return store.Update(ctx, s.store, TablePositions, id, patch)
}

func (s *Service) DeletePosition(ctx context.Context, id string) (bool, error) {
	return store.Delete(ctx, s.store, TablePositions, id)
}

func (s *Service) CreateCandidate(ctx context.Context, cand Candidate) (Candidate, error) {
	cand.Name = strings.TrimSpace(cand.Name)
	cand.Email = strings.TrimSpace(strings.ToLower(cand.Email))
	if cand.Name == "" || cand.Email == "" {
		return Candidate{}, apperr.Validationf("candidate name and email are required")
	}
	if cand.Stage == "" {
		cand.Stage = StageApplied
	}
	if !contains(CandidateStages, cand.Stage) {
		return Candidate{}, apperr.Validationf("invalid candidate stage %q", cand.Stage)
	}
	return store.Create(ctx, s.store, TableCandidates, cand)
}

func (s *Service) GetCandidate(ctx context.Context, id string) (Candidate, error) {
	return store.Get(ctx, s.store, TableCandidates, id)
}

func (s *Service) ListCandidates(ctx context.Context, filter store.Filter) ([]Candidate, error) {
	return store.List(ctx, s.store, TableCandidates, filter)
}

// MoveCandidate advances a candidate to a new pipeline stage. Hired and
// rejected are terminal.
func (s *Service) MoveCandidate(ctx context.Context, id, stage string) (Candidate, error) {
	if !contains(CandidateStages, stage) {
		return Candidate{}, apperr.Validationf("invalid candidate stage %q", stage)
	}

	cand, err := store.Get(ctx, s.store, TableCandidates, id)
	if err != nil {
		return Candidate{}, err
	}
	if cand.Stage == StageHired || cand.Stage == StageRejected {
		return Candidate{}, apperr.Validationf("candidate already %s", cand.Stage)
	}
	return store.Update(ctx, s.store, TableCandidates, id, map[string]any{"stage": stage})
}

func (s *Service) DeleteCandidate(ctx context.Context, id string) (bool, error) {
	return store.Delete(ctx, s.store, TableCandidates, id)
}
