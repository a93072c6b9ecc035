package handlers

import (
	"net/http"

	"github.com/google/uuid"
)

type predictPaymentResponse struct {
	Status     string    `json:"status"`
	AccountID  uuid.UUID `json:"account_id"`
	Prediction string    `json:"prediction"`
}

// PredictPayment handles GET /api/accounts/{id}/predict_payment
func (h *Handler) PredictPayment(w http.ResponseWriter, r *http.Request) {
	id, err := parseAccountID(r)
	if err != nil {
		h.respondError(w, http.StatusNotFound, "account not found")
		return
	}

	result, err := h.accounts.PredictPayment(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, predictPaymentResponse{
		Status:     statusSuccess,
		AccountID:  result.AccountID,
		Prediction: result.Prediction,
	})
}
