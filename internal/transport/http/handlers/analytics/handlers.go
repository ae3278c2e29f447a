package analyticshandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hris/internal/auth"
	"hris/internal/domain/analytics"
	"hris/internal/transport/http/api"
	"hris/internal/transport/http/middleware"
)

type Handler struct {
	Service *analytics.Service
}

func NewHandler(service *analytics.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RequirePermission(auth.PermAnalyticsRead)).Get("/analytics/dashboard", h.handleDashboard)
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Service.DashboardSummary(r.Context())
	if err != nil {
		api.FailError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, summary, middleware.GetRequestID(r.Context()))
}
