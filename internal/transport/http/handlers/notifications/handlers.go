package notificationshandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hris/internal/auth"
	"hris/internal/domain/notifications"
	"hris/internal/transport/http/api"
	"hris/internal/transport/http/middleware"
)

type Handler struct {
	Service *notifications.Service
}

func NewHandler(service *notifications.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/notifications", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermNotificationsRead)).Get("/", h.handleList)
		r.With(middleware.RequirePermission(auth.PermNotificationsRead)).Get("/unread-count", h.handleUnreadCount)
		r.With(middleware.RequirePermission(auth.PermNotificationsWrite)).Post("/", h.handleCreate)
		r.With(middleware.RequirePermission(auth.PermNotificationsRead)).Post("/{notificationID}/read", h.handleMarkRead)
		r.With(middleware.RequirePermission(auth.PermNotificationsRead)).Post("/read-all", h.handleMarkAllRead)
		r.With(middleware.RequirePermission(auth.PermNotificationsWrite)).Delete("/{notificationID}", h.handleDelete)
	})
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload notifications.Notification
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	n, err := h.Service.Create(r.Context(), payload)
	if err != nil {
		api.FailError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, n, middleware.GetRequestID(r.Context()))
}

// handleList serves the caller's own notifications unless a userId is
// given explicitly.
func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	userID := r.URL.Query().Get("userId")
	if userID == "" {
		user, ok := middleware.GetUser(r.Context())
		if !ok {
			api.Fail(w, http.StatusBadRequest, "validation_error", "userId query parameter is required", requestID)
			return
		}
		userID = user.EmployeeID
	}
	unreadOnly := r.URL.Query().Get("unread") == "true"

	list, err := h.Service.ListForUser(r.Context(), userID, unreadOnly)
	if err != nil {
		api.FailError(w, err, requestID)
		return
	}
	api.Success(w, list, requestID)
}

func (h *Handler) handleUnreadCount(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestID)
		return
	}

	count, err := h.Service.CountUnread(r.Context(), user.EmployeeID)
	if err != nil {
		api.FailError(w, err, requestID)
		return
	}
	api.Success(w, map[string]int{"unread": count}, requestID)
}

func (h *Handler) handleMarkRead(w http.ResponseWriter, r *http.Request) {
	n, err := h.Service.MarkRead(r.Context(), chi.URLParam(r, "notificationID"))
	if err != nil {
		api.FailError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, n, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleMarkAllRead(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestID)
		return
	}

	count, err := h.Service.MarkAllRead(r.Context(), user.EmployeeID)
	if err != nil {
		api.FailError(w, err, requestID)
		return
	}
	api.Success(w, map[string]int{"marked": count}, requestID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	removed, err := h.Service.Delete(r.Context(), chi.URLParam(r, "notificationID"))
	if err != nil {
		api.FailError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	if !removed {
		api.Fail(w, http.StatusNotFound, "not_found", "notification not found", middleware.GetRequestID(r.Context()))
		return
	}
	api.SuccessMessage(w, nil, "notification deleted", middleware.GetRequestID(r.Context()))
}
