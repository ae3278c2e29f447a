package notifications

import (
	"context"
	"time"

	"hris/internal/apperr"
	"hris/internal/store"
)

type Service struct {
	store *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

// Create files a notification for a user. New notifications are always
// unread, whatever the caller set.
func (s *Service) Create(ctx context.Context, n Notification) (Notification, error) {
	if n.UserID == "" {
		return Notification{}, apperr.Validationf("userId is required")
	}
	if n.Title == "" {
		return Notification{}, apperr.Validationf("title is required")
	}
	if n.Type == "" {
		n.Type = TypeInfo
	}
	if !contains(Types, n.Type) {
		return Notification{}, apperr.Validationf("invalid notification type %q", n.Type)
	}
	if n.Priority == "" {
		n.Priority = PriorityMedium
	}
	if !contains(Priorities, n.Priority) {
		return Notification{}, apperr.Validationf("invalid notification priority %q", n.Priority)
	}
	if n.Category == "" {
		n.Category = CategorySystem
	}
	if !contains(Categories, n.Category) {
		return Notification{}, apperr.Validationf("invalid notification category %q", n.Category)
	}

	n.Read = false
	return store.Create(ctx, s.store, TableNotifications, n)
}

// ListForUser returns a user's notifications, newest first is not
// guaranteed; expired entries are dropped.
func (s *Service) ListForUser(ctx context.Context, userID string, unreadOnly bool) ([]Notification, error) {
	filter := store.Filter{"userId": userID}
	if unreadOnly {
		filter["read"] = false
	}
	all, err := store.List(ctx, s.store, TableNotifications, filter)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	out := make([]Notification, 0, len(all))
	for _, n := range all {
		if n.ExpiresAt != nil && n.ExpiresAt.Before(now) {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}

func (s *Service) CountUnread(ctx context.Context, userID string) (int, error) {
	unread, err := s.ListForUser(ctx, userID, true)
	if err != nil {
		return 0, err
	}
	return len(unread), nil
}

func (s *Service) MarkRead(ctx context.Context, id string) (Notification, error) {
	return store.Update(ctx, s.store, TableNotifications, id, map[string]any{"read": true})
}

func (s *Service) MarkAllRead(ctx context.Context, userID string) (int, error) {
	unread, err := store.List(ctx, s.store, TableNotifications, store.Filter{"userId": userID, "read": false})
	if err != nil {
		return 0, err
	}
	for _, n := range unread {
		if _, err := store.Update(ctx, s.store, TableNotifications, n.ID, map[string]any{"read": true}); err != nil {
			return 0, err
		}
	}
	return len(unread), nil
}

func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	return store.Delete(ctx, s.store, TableNotifications, id)
}

func contains(list []string, value string) bool {
	for _, candidate := range list {
		if candidate == value {
			return true
		}
	}
	return false
}
