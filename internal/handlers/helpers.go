package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/wil-ckaew/contas-api/internal/service"
)

// statusSuccess and statusError are the envelope status values the
// frontend keys on.
const (
	statusSuccess = "success"
	statusError   = "error"
)

type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, errorResponse{
		Status:  statusError,
		Message: message,
	})
}

// respondServiceError translates a service error into an HTTP response.
// NotFound keeps a distinct status, and prediction dependency failures
// are reported as bad gateway rather than a generic server error.
func (h *Handler) respondServiceError(w http.ResponseWriter, err error) {
	var svcErr *service.ServiceError
	if !errors.As(err, &svcErr) {
		h.logger.Error("unexpected error", "error", err)
		h.respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	switch svcErr.Code {
	case service.ErrCodeValidation:
		h.respondError(w, http.StatusBadRequest, svcErr.Message)
	case service.ErrCodeAccountNotFound:
		h.respondError(w, http.StatusNotFound, svcErr.Message)
	case service.ErrCodePredictionUnavailable:
		h.logger.Error("prediction service failure", "error", svcErr.Err)
		h.respondError(w, http.StatusBadGateway, svcErr.Message)
	default:
		h.logger.Error("service failure", "code", svcErr.Code, "error", err)
		h.respondError(w, http.StatusInternalServerError, svcErr.Message)
	}
}

func parseAccountID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(r.PathValue("id"))
}

// parseQueryInt returns the query parameter as an int, or 0 when the
// parameter is absent or malformed; the service applies defaults.
func parseQueryInt(r *http.Request, key string) int {
	value, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return 0
	}
	return value
}

func parseQueryBool(r *http.Request, key string) *bool {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &value
}

func parseQueryString(r *http.Request, key string) *string {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil
	}
	return &raw
}
