package analytics

import (
	"context"
	"time"

	"hris/internal/domain/attendance"
	"hris/internal/domain/core"
	"hris/internal/domain/leave"
	"hris/internal/domain/notifications"
	"hris/internal/store"
)

type DashboardSummary struct {
	TotalEmployees      int `json:"totalEmployees"`
	ActiveEmployees     int `json:"activeEmployees"`
	PresentToday        int `json:"presentToday"`
	PendingLeave        int `json:"pendingLeave"`
	UnreadNotifications int `json:"unreadNotifications"`
	Departments         int `json:"departments"`
}

// Service produces read-only aggregations for the dashboard. No write
// path exists here.
type Service struct {
	store *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

func (s *Service) DashboardSummary(ctx context.Context) (DashboardSummary, error) {
	var summary DashboardSummary

	employees, err := store.List(ctx, s.store, core.TableEmployees, nil)
	if err != nil {
		return DashboardSummary{}, err
	}
	summary.TotalEmployees = len(employees)

	departments := map[string]struct{}{}
	for _, emp := range employees {
		if emp.Status == core.StatusActive {
			summary.ActiveEmployees++
		}
		if emp.Department != "" {
			departments[emp.Department] = struct{}{}
		}
	}
	summary.Departments = len(departments)

	today := time.Now().UTC().Format("2006-01-02")
	present, err := store.List(ctx, s.store, attendance.TableRecords, store.Filter{
		"date":   today,
		"status": attendance.StatusPresent,
	})
	if err != nil {
		return DashboardSummary{}, err
	}
	summary.PresentToday = len(present)

	pending, err := store.List(ctx, s.store, leave.TableRequests, store.Filter{"status": leave.StatusPending})
	if err != nil {
		return DashboardSummary{}, err
	}
	summary.PendingLeave = len(pending)

	unread, err := store.List(ctx, s.store, notifications.TableNotifications, store.Filter{"read": false})
	if err != nil {
		return DashboardSummary{}, err
	}
	summary.UnreadNotifications = len(unread)

	return summary, nil
}
