package assets

import (
	"context"
	"strings"
	"sync"
	"time"

	"hris/internal/apperr"
	"hris/internal/store"
)

type Service struct {
	store *store.Store

	mu sync.Mutex
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

func (s *Service) CreateAsset(ctx context.Context, asset Asset) (Asset, error) {
	asset.AssetCode = strings.TrimSpace(asset.AssetCode)
	if asset.AssetCode == "" {
		return Asset{}, apperr.Validationf("assetCode is required")
	}
	if asset.Category == "" || !contains(Categories, asset.Category) {
		return Asset{}, apperr.Validationf("invalid asset category %q", asset.Category)
	}
	if asset.Condition == "" {
		asset.Condition = ConditionGood
	}
	if !contains(Conditions, asset.Condition) {
		return Asset{}, apperr.Validationf("invalid asset condition %q", asset.Condition)
	}
	if asset.Status == "" {
		asset.Status = StatusAvailable
	}
	if !contains(Statuses, asset.Status) {
		return Asset{}, apperr.Validationf("invalid asset status %q", asset.Status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := store.List(ctx, s.store, TableAssets, store.Filter{"assetCode": asset.AssetCode})
	if err != nil {
		return Asset{}, err
	}
	if len(existing) > 0 {
		return Asset{}, apperr.Conflictf("asset with code %s already exists", asset.AssetCode)
	}
	return store.Create(ctx, s.store, TableAssets, asset)
}

func (s *Service) GetAsset(ctx context.Context, id string) (Asset, error) {
	return store.Get(ctx, s.store, TableAssets, id)
}

func (s *Service) ListAssets(ctx context.Context, filter store.Filter) ([]Asset, error) {
	return store.List(ctx, s.store, TableAssets, filter)
}

func (s *Service) UpdateAsset(ctx context.Context, id string, patch map[string]any) (Asset, error) {
	if status, ok := patch["status"].(string); ok && !contains(Statuses, status) {
		return Asset{}, apperr.Validationf("invalid asset status %q", status)
	}
	if condition, ok := patch["condition"].(string); ok && !contains(Conditions, condition) {
		return Asset{}, apperr.Validationf("invalid asset condition %q", condition)
	}
	return store.Update(ctx, s.store, TableAssets, id, patch)
}

func (s *Service) DeleteAsset(ctx context.Context, id string) (bool, error) {
	return store.Delete(ctx, s.store, TableAssets, id)
}

// Assign hands an available asset to an employee.
func (s *Service) Assign(ctx context.Context, id, employeeID string) (Asset, error) {
	if employeeID == "" {
		return Asset{}, apperr.Validationf("employeeId is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	asset, err := store.Get(ctx, s.store, TableAssets, id)
	if err != nil {
		return Asset{}, err
	}
	if asset.Status != StatusAvailable {
		return Asset{}, apperr.Validationf("asset %s is %s, not available", asset.AssetCode, asset.Status)
	}
	return store.Update(ctx, s.store, TableAssets, id, map[string]any{
		"status":       StatusAssigned,
		"assignedTo":   employeeID,
		"assignedDate": time.Now().UTC().Format("2006-01-02"),
	})
}

// Release returns an assigned asset to the available pool.
func (s *Service) Release(ctx context.Context, id string) (Asset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	asset, err := store.Get(ctx, s.store, TableAssets, id)
	if err != nil {
		return Asset{}, err
	}
	if asset.Status != StatusAssigned {
		return Asset{}, apperr.Validationf("asset %s is not assigned", asset.AssetCode)
	}
	return store.Update(ctx, s.store, TableAssets, id, map[string]any{
		"status":       StatusAvailable,
		"assignedTo":   "",
		"assignedDate": "",
	})
}

// AddMaintenance appends an entry to the asset's maintenance history
// and moves the asset into maintenance status.
func (s *Service) AddMaintenance(ctx context.Context, id string, entry MaintenanceEntry) (Asset, error) {
	if entry.Type == "" {
		return Asset{}, apperr.Validationf("maintenance type is required")
	}
	if entry.Date == "" {
		entry.Date = time.Now().UTC().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", entry.Date); err != nil {
		return Asset{}, apperr.Validationf("maintenance date must be in YYYY-MM-DD format")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	asset, err := store.Get(ctx, s.store, TableAssets, id)
	if err != nil {
		return Asset{}, err
	}
	history := append(asset.MaintenanceHistory, entry)
	return store.Update(ctx, s.store, TableAssets, id, map[string]any{
		"maintenanceHistory": history,
		"status":             StatusMaintenance,
	})
}

func contains(list []string, value string) bool {
	for _, candidate := range list {
		if candidate == value {
			return true
		}
	}
	return false
}
