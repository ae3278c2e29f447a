package payrollhandler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"hris/internal/auth"
	"hris/internal/domain/payroll"
	"hris/internal/store"
	"hris/internal/transport/http/api"
	"hris/internal/transport/http/middleware"
)

type Handler struct {
	Service *payroll.Service
}

func NewHandler(service *payroll.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payroll/records", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermPayrollRead)).Get("/", h.handleList)
		r.With(middleware.RequirePermission(auth.PermPayrollRead)).Get("/{recordID}", h.handleGet)
		r.With(middleware.RequirePermission(auth.PermPayrollWrite)).Post("/", h.handleCreate)
		r.With(middleware.RequirePermission(auth.PermPayrollWrite)).Put("/{recordID}", h.handleUpdate)
		r.With(middleware.RequirePermission(auth.PermPayrollWrite)).Delete("/{recordID}", h.handleDelete)
		r.With(middleware.RequirePermission(auth.PermPayrollRead)).Post("/{recordID}/payslip", h.handlePayslip)
	})
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload payroll.Record
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	rec, err := h.Service.CreateRecord(r.Context(), payload)
	if err != nil {
		api.FailError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, rec, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	filter := store.Filter{}
	if employeeID := r.URL.Query().Get("employeeId"); employeeID != "" {
		filter["employeeId"] = employeeID
	}
	if month := r.URL.Query().Get("month"); month != "" {
		if v, err := strconv.Atoi(month); err == nil {
			filter["month"] = v
		}
	}
	if year := r.URL.Query().Get("year"); year != "" {
		if v, err := strconv.Atoi(year); err == nil {
			filter["year"] = v
		}
	}

	records, err := h.Service.ListRecords(r.Context(), filter)
	if err != nil {
		api.FailError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, records, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	rec, err := h.Service.GetRecord(r.Context(), chi.URLParam(r, "recordID"))
	if err != nil {
		api.FailError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, rec, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var patch map[string]any
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	rec, err := h.Service.UpdateRecord(r.Context(), chi.URLParam(r, "recordID"), patch)
	if err != nil {
		api.FailError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, rec, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	removed, err := h.Service.DeleteRecord(r.Context(), chi.URLParam(r, "recordID"))
	if err != nil {
		api.FailError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	if !removed {
		api.Fail(w, http.StatusNotFound, "not_found", "payroll record not found", middleware.GetRequestID(r.Context()))
		return
	}
	api.SuccessMessage(w, nil, "payroll record deleted", middleware.GetRequestID(r.Context()))
}

func (h *Handler) handlePayslip(w http.ResponseWriter, r *http.Request) {
	path, err := h.Service.GeneratePayslipPDF(r.Context(), chi.URLParam(r, "recordID"))
	if err != nil {
		api.FailError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"file": path}, middleware.GetRequestID(r.Context()))
}
