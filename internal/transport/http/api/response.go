package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"hris/internal/apperr"
)

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Pagination describes the slice of a list response. Populated by list
// endpoints; omitted everywhere else.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type Envelope struct {
	Success    bool        `json:"success"`
	Data       any         `json:"data,omitempty"`
	Error      *Error      `json:"error,omitempty"`
	Message    string      `json:"message,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
	RequestID  string      `json:"requestId,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, payload Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Warn("write json failed", "err", err)
	}
}

func Success(w http.ResponseWriter, data any, requestID string) {
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Data: data, RequestID: requestID})
}

func SuccessMessage(w http.ResponseWriter, data any, message, requestID string) {
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Data: data, Message: message, RequestID: requestID})
}

func SuccessPage(w http.ResponseWriter, data any, page *Pagination, requestID string) {
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Data: data, Pagination: page, RequestID: requestID})
}

func Created(w http.ResponseWriter, data any, requestID string) {
	WriteJSON(w, http.StatusCreated, Envelope{Success: true, Data: data, RequestID: requestID})
}

func Fail(w http.ResponseWriter, status int, code, message, requestID string) {
	WriteJSON(w, status, Envelope{Success: false, Error: &Error{Code: code, Message: message}, RequestID: requestID})
}

// FailError maps a domain error onto the envelope using its kind for
// both the HTTP status and the machine-readable code.
func FailError(w http.ResponseWriter, err error, requestID string) {
	status := apperr.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		slog.Warn("request failed", "err", err)
		Fail(w, status, apperr.Code(err), "internal error", requestID)
		return
	}
	Fail(w, status, apperr.Code(err), err.Error(), requestID)
}
