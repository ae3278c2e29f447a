package attendancehandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hris/internal/auth"
	"hris/internal/domain/attendance"
	"hris/internal/transport/http/api"
	"hris/internal/transport/http/middleware"
)

type Handler struct {
	Service *attendance.Service
}

func NewHandler(service *attendance.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/attendance", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermAttendanceRead)).Get("/", h.handleList)
		r.With(middleware.RequirePermission(auth.PermAttendanceWrite)).Post("/", h.handleRecord)
		r.With(middleware.RequirePermission(auth.PermAttendanceWrite)).Delete("/{recordID}", h.handleDelete)
	})
}

func (h *Handler) handleRecord(w http.ResponseWriter, r *http.Request) {
	var payload attendance.Record
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	rec, err := h.Service.Record(r.Context(), payload)
	if err != nil {
		api.FailError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, rec, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	if employeeID := r.URL.Query().Get("employeeId"); employeeID != "" {
		records, err := h.Service.ListByEmployee(r.Context(), employeeID)
		if err != nil {
			api.FailError(w, err, requestID)
			return
		}
		api.Success(w, records, requestID)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		api.Fail(w, http.StatusBadRequest, "validation_error", "employeeId or date query parameter is required", requestID)
		return
	}
	records, err := h.Service.ListByDate(r.Context(), date)
	if err != nil {
		api.FailError(w, err, requestID)
		return
	}
	api.Success(w, records, requestID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	removed, err := h.Service.Delete(r.Context(), chi.URLParam(r, "recordID"))
	if err != nil {
		api.FailError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	if !removed {
		api.Fail(w, http.StatusNotFound, "not_found", "attendance record not found", middleware.GetRequestID(r.Context()))
		return
	}
	api.SuccessMessage(w, nil, "attendance record deleted", middleware.GetRequestID(r.Context()))
}
