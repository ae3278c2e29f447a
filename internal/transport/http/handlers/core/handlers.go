package corehandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hris/internal/auth"
	"hris/internal/domain/core"
	"hris/internal/store"
	"hris/internal/transport/http/api"
	"hris/internal/transport/http/middleware"
	"hris/internal/transport/http/shared"
)

type Handler struct {
	Service *core.Service
}

func NewHandler(service *core.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermEmployeesRead)).Get("/", h.handleListEmployees)
		r.With(middleware.RequirePermission(auth.PermEmployeesRead)).Get("/{employeeID}", h.handleGetEmployee)
		r.With(middleware.RequirePermission(auth.PermEmployeesWrite)).Post("/", h.handleCreateEmployee)
		r.With(middleware.RequirePermission(auth.PermEmployeesWrite)).Put("/{employeeID}", h.handleUpdateEmployee)
		r.With(middleware.RequirePermission(auth.PermEmployeesWrite)).Delete("/{employeeID}", h.handleDeleteEmployee)
	})
	r.Route("/departments", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermOrgRead)).Get("/", h.handleListDepartments)
		r.With(middleware.RequirePermission(auth.PermOrgWrite)).Post("/", h.handleCreateDepartment)
		r.With(middleware.RequirePermission(auth.PermOrgWrite)).Put("/{departmentID}", h.handleUpdateDepartment)
		r.With(middleware.RequirePermission(auth.PermOrgWrite)).Delete("/{departmentID}", h.handleDeleteDepartment)
	})
	r.Route("/positions", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermOrgRead)).Get("/", h.handleListPositions)
		r.With(middleware.RequirePermission(auth.PermOrgWrite)).Post("/", h.handleCreatePosition)
		r.With(middleware.RequirePermission(auth.PermOrgWrite)).Put("/{positionID}", h.handleUpdatePosition)
		r.With(middleware.RequirePermission(auth.PermOrgWrite)).Delete("/{positionID}", h.handleDeletePosition)
	})
	r.Route("/candidates", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermOrgRead)).Get("/", h.handleListCandidates)
		r.With(middleware.RequirePermission(auth.PermOrgWrite)).Post("/", h.handleCreateCandidate)
		r.With(middleware.RequirePermission(auth.PermOrgWrite)).Post("/{candidateID}/stage", h.handleMoveCandidate)
		r.With(middleware.RequirePermission(auth.PermOrgWrite)).Delete("/{candidateID}", h.handleDeleteCandidate)
	})
}

func (h *Handler) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	filter := store.Filter{}
	for _, key := range []string{"status", "department", "role"} {
		if value := r.URL.Query().Get(key); value != "" {
			filter[key] = value
		}
	}

	employees, err := h.Service.ListEmployees(r.Context(), filter)
	if err != nil {
		api.FailError(w, err, middleware.GetRequestID(r.Context()))
		return
	}

	page, info := shared.Paginate(employees, shared.ParsePage(r, 50, 200))
	api.SuccessPage(w, page, info, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetEmployee(w http.ResponseWriter, r *http.Request) {
	emp, err := h.Service.GetEmployee(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		api.FailError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, emp, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateEmployee(w http.ResponseWriter, r *http.Request) {
	var payload core.Employee
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	emp, err := h.Service.CreateEmployee(r.Context(), payload)
	if err != nil {
		api.FailError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, emp, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateEmployee(w http.ResponseWriter, r *http.Request) {
	var patch map[string]any
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	emp, err := h.Service.UpdateEmployee(r.Context(), chi.URLParam(r, "employeeID"), patch)
	if err != nil {
		api.FailError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, emp, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDeleteEmployee(w http.ResponseWriter, r *http.Request) {
	removed, err := h.Service.DeleteEmployee(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		api.FailError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	if !removed {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	}
	api.SuccessMessage(w, nil, "employee deleted", middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.Service.ListDepartments(r.Context())
	if err != nil {
		api.FailError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, departments, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateDepartment(w http.ResponseWriter, r *http.Request) {
	var payload core.Department
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	dept, err := h.Service.CreateDepartment(r.Context(), payload)
	if err != nil {
		api.FailError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, dept, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateDepartment(w http.ResponseWriter, r *http.Request) {
	var patch map[string]any
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	dept, err := h.Service.UpdateDepartment(r.Context(), chi.URLParam(r, "departmentID"), patch)
	if err != nil {
		api.FailError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, dept, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDeleteDepartment(w http.ResponseWriter, r *http.Request) {
	removed, err := h.Service.DeleteDepartment(r.Context(), chi.URLParam(r, "departmentID"))
	if err != nil {
		api.FailError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	if !removed {
		api.Fail(w, http.StatusNotFound, "not_found", "department not found", middleware.GetRequestID(r.Context()))
		return
	}
	api.SuccessMessage(w, nil, "department deleted", middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListPositions(w http.ResponseWriter, r *http.Request) {
	filter := store.Filter{}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["status"] = status
	}

	positions, err := h.Service.ListPositions(r.Context(), filter)
	if err != nil {
		api.FailError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, positions, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreatePosition(w http.ResponseWriter, r *http.Request) {
	var payload core.JobPosition
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	pos, err := h.Service.CreatePosition(r.Context(), payload)
	if err != nil {
		api.FailError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, pos, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdatePosition(w http.ResponseWriter, r *http.Request) {
	var patch map[string]any
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	pos, err := h.Service.UpdatePosition(r.Context(), chi.URLParam(r, "positionID"), patch)
	if err != nil {
		api.FailError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, pos, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDeletePosition(w http.ResponseWriter, r *http.Request) {
	removed, err := h.Service.DeletePosition(r.Context(), chi.URLParam(r, "positionID"))
	if err != nil {
		api.FailError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	if !removed {
		api.Fail(w, http.StatusNotFound, "not_found", "position not found", middleware.GetRequestID(r.Context()))
		return
	}
	api.SuccessMessage(w, nil, "position deleted", middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListCandidates(w http.ResponseWriter, r *http.Request) {
	filter := store.Filter{}
	for _, key := range []string{"stage", "positionId"} {
		if value := r.URL.Query().Get(key); value != "" {
			filter[key] = value
		}
	}

	candidates, err := h.Service.ListCandidates(r.Context(), filter)
	if err != nil {
		api.FailError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, candidates, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateCandidate(w http.ResponseWriter, r *http.Request) {
	var payload core.Candidate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	cand, err := h.Service.CreateCandidate(r.Context(), payload)
	if err != nil {
		api.FailError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, cand, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleMoveCandidate(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Stage string `json:"stage"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	cand, err := h.Service.MoveCandidate(r.Context(), chi.URLParam(r, "candidateID"), payload.Stage)
	if err != nil {
		api.FailError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, cand, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDeleteCandidate(w http.ResponseWriter, r *http.Request) {
	removed, err := h.Service.DeleteCandidate(r.Context(), chi.URLParam(r, "candidateID"))
	if err != nil {
		api.FailError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	if !removed {
		api.Fail(w, http.StatusNotFound, "not_found", "candidate not found", middleware.GetRequestID(r.Context()))
		return
	}
	api.SuccessMessage(w, nil, "candidate deleted", middleware.GetRequestID(r.Context()))
}
