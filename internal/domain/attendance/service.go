package attendance

import (
	"context"
	"sync"
	"time"

	"hris/internal/apperr"
	"hris/internal/store"
)

type Service struct {
	store *store.Store

	// mu keeps the find-or-create for a (employee, date) pair atomic,
	// which is what guarantees at most one record per pair.
	mu sync.Mutex
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

// Record upserts the attendance record for (employeeId, date). A
// second call for the same pair updates the existing record instead of
// creating a duplicate.
func (s *Service) Record(ctx context.Context, rec Record) (Record, error) {
	if rec.EmployeeID == "" {
		return Record{}, apperr.Validationf("employeeId is required")
	}
	if _, err := time.Parse("2006-01-02", rec.Date); err != nil {
		return Record{}, apperr.Validationf("date must be in YYYY-MM-DD format")
	}
	if rec.Status != "" && !validStatus(rec.Status) {
		return Record{}, apperr.Validationf("invalid attendance status %q", rec.Status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := store.List(ctx, s.store, TableRecords, store.Filter{
		"employeeId": rec.EmployeeID,
		"date":       rec.Date,
	})
	if err != nil {
		return Record{}, err
	}

	if len(existing) == 0 {
		if rec.Status == "" {
			rec.Status = defaultStatus(rec.CheckIn)
		}
		rec.WorkingHours, rec.Overtime = deriveHours(rec.CheckIn, rec.CheckOut)
		return store.Create(ctx, s.store, TableRecords, rec)
	}

	current := existing[0]
	patch := map[string]any{}
	checkIn, checkOut := current.CheckIn, current.CheckOut
	if rec.CheckIn != nil {
		checkIn = rec.CheckIn
		patch["checkIn"] = rec.CheckIn
	}
	if rec.CheckOut != nil {
		checkOut = rec.CheckOut
		patch["checkOut"] = rec.CheckOut
	}
	if rec.Status != "" {
		patch["status"] = rec.Status
	}
	if rec.Notes != "" {
		patch["notes"] = rec.Notes
	}
	hours, overtime := deriveHours(checkIn, checkOut)
	patch["workingHours"] = hours
	patch["overtime"] = overtime

	return store.Update(ctx, s.store, TableRecords, current.ID, patch)
}

func (s *Service) Get(ctx context.Context, id string) (Record, error) {
	return store.Get(ctx, s.store, TableRecords, id)
}

func (s *Service) ListByEmployee(ctx context.Context, employeeID string) ([]Record, error) {
	return store.List(ctx, s.store, TableRecords, store.Filter{"employeeId": employeeID})
}

func (s *Service) ListByDate(ctx context.Context, date string) ([]Record, error) {
	return store.List(ctx, s.store, TableRecords, store.Filter{"date": date})
}

func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	return store.Delete(ctx, s.store, TableRecords, id)
}

func deriveHours(checkIn, checkOut *time.Time) (hours, overtime float64) {
	if checkIn == nil || checkOut == nil || !checkOut.After(*checkIn) {
		return 0, 0
	}
	hours = checkOut.Sub(*checkIn).Hours()
	if hours > StandardHours {
		overtime = hours - StandardHours
	}
	return hours, overtime
}

func defaultStatus(checkIn *time.Time) string {
	if checkIn != nil {
		return StatusPresent
	}
	return StatusAbsent
}

func validStatus(status string) bool {
	for _, candidate := range Statuses {
		if candidate == status {
			return true
		}
	}
	return false
}
