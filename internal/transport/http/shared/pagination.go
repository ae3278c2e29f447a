package shared

import (
	"net/http"
	"strconv"

	"hris/internal/transport/http/api"
)

type PageRequest struct {
	Page  int
	Limit int
}

func ParsePage(r *http.Request, defaultLimit, maxLimit int) PageRequest {
	page := 1
	limit := defaultLimit
	if raw := r.URL.Query().Get("page"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			page = v
		}
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}
	return PageRequest{Page: page, Limit: limit}
}

// Paginate slices items for the requested page and reports the overall
// shape of the collection.
func Paginate[T any](items []T, req PageRequest) ([]T, *api.Pagination) {
	total := len(items)
	totalPages := (total + req.Limit - 1) / req.Limit
	if totalPages == 0 {
		totalPages = 1
	}

	start := (req.Page - 1) * req.Limit
	if start > total {
		start = total
	}
	end := start + req.Limit
	if end > total {
		end = total
	}

	return items[start:end], &api.Pagination{
		Page:       req.Page,
		Limit:      req.Limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
