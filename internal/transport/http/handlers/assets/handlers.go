package assetshandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hris/internal/auth"
	"hris/internal/domain/assets"
	"hris/internal/store"
	"hris/internal/transport/http/api"
	"hris/internal/transport/http/middleware"
)

type Handler struct {
	Service *assets.Service
}

func NewHandler(service *assets.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/assets", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermAssetsRead)).Get("/", h.handleList)
		r.With(middleware.RequirePermission(auth.PermAssetsRead)).Get("/{assetID}", h.handleGet)
		r.With(middleware.RequirePermission(auth.PermAssetsWrite)).Post("/", h.handleCreate)
		r.With(middleware.RequirePermission(auth.PermAssetsWrite)).Put("/{assetID}", h.handleUpdate)
		r.With(middleware.RequirePermission(auth.PermAssetsWrite)).Delete("/{assetID}", h.handleDelete)
		r.With(middleware.RequirePermission(auth.PermAssetsWrite)).Post("/{assetID}/assign", h.handleAssign)
		r.With(middleware.RequirePermission(auth.PermAssetsWrite)).Post("/{assetID}/release", h.handleRelease)
		r.With(middleware.RequirePermission(auth.PermAssetsWrite)).Post("/{assetID}/maintenance", h.handleMaintenance)
	})
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload assets.Asset
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	asset, err := h.Service.CreateAsset(r.Context(), payload)
	if err != nil {
		api.FailError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, asset, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	filter := store.Filter{}
	for _, key := range []string{"status", "category", "assignedTo"} {
		if value := r.URL.Query().Get(key); value != "" {
			filter[key] = value
		}
	}

	list, err := h.Service.ListAssets(r.Context(), filter)
	if err != nil {
		api.FailError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, list, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	asset, err := h.Service.GetAsset(r.Context(), chi.URLParam(r, "assetID"))
	if err != nil {
		api.FailError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, asset, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var patch map[string]any
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	asset, err := h.Service.UpdateAsset(r.Context(), chi.URLParam(r, "assetID"), patch)
	if err != nil {
		api.FailError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, asset, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	removed, err := h.Service.DeleteAsset(r.Context(), chi.URLParam(r, "assetID"))
	if err != nil {
		api.FailError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	if !removed {
		api.Fail(w, http.StatusNotFound, "not_found", "asset not found", middleware.GetRequestID(r.Context()))
		return
	}
	api.SuccessMessage(w, nil, "asset deleted", middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleAssign(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		EmployeeID string `json:"employeeId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	asset, err := h.Service.Assign(r.Context(), chi.URLParam(r, "assetID"), payload.EmployeeID)
	if err != nil {
		api.FailError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, asset, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleRelease(w http.ResponseWriter, r *http.Request) {
	asset, err := h.Service.Release(r.Context(), chi.URLParam(r, "assetID"))
	if err != nil {
		api.FailError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, asset, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleMaintenance(w http.ResponseWriter, r *http.Request) {
	var payload assets.MaintenanceEntry
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	asset, err := h.Service.AddMaintenance(r.Context(), chi.URLParam(r, "assetID"), payload)
	if err != nil {
		api.FailError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, asset, middleware.GetRequestID(r.Context()))
}
