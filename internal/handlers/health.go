package handlers

import (
	"context"
	"net/http"
	"time"
)

type healthResponse struct {
	Status string `json:"status"`
}

// GetHealth handles GET /health
func (h *Handler) GetHealth(w http.ResponseWriter, r *http.Request) {
	pingCtx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.healthChecker.PingContext(pingCtx); err != nil {
		h.logger.Error("health check failed: database unreachable", "error", err)
		h.respondJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unhealthy"})
		return
	}

	h.respondJSON(w, http.StatusOK, healthResponse{Status: "healthy"})
}
