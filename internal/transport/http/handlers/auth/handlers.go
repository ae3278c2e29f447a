package authhandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hris/internal/auth"
	"hris/internal/transport/http/api"
	"hris/internal/transport/http/middleware"
)

type Handler struct {
	Service *auth.Service
}

func NewHandler(service *auth.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/login", h.handleLogin)
	r.With(middleware.RequirePermission(auth.PermEmployeesWrite)).Post("/auth/password", h.handleSetPassword)
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	token, emp, err := h.Service.Login(r.Context(), payload.Email, payload.Password)
	if err != nil {
		// Always report bad credentials as unauthorized, not 400.
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "invalid credentials", middleware.GetRequestID(r.Context()))
		return
	}

	api.Success(w, map[string]any{
		"token":    token,
		"employee": emp,
	}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSetPassword(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		EmployeeID string `json:"employeeId"`
		Password   string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	if err := h.Service.SetPassword(r.Context(), payload.EmployeeID, payload.Password); err != nil {
		api.FailError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.SuccessMessage(w, nil, "password updated", middleware.GetRequestID(r.Context()))
}
