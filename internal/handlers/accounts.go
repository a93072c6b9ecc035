package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/wil-ckaew/contas-api/internal/models"
	"github.com/wil-ckaew/contas-api/internal/repository"
	"github.com/wil-ckaew/contas-api/internal/service"
)

// CreateAccountRequest is the wire schema for account creation.
// Pointer fields distinguish an absent value from a zero one.
type CreateAccountRequest struct {
	Name    string     `json:"name" validate:"required"`
	Value   *float64   `json:"value" validate:"required"`
	DueDate *time.Time `json:"due_date" validate:"required"`
	Paid    *bool      `json:"paid"`
}

// UpdateAccountRequest is the wire schema for partial updates. Every
// field is optional; absent fields leave the stored value unchanged.
type UpdateAccountRequest struct {
	Name    *string    `json:"name"`
	Value   *float64   `json:"value"`
	DueDate *time.Time `json:"due_date"`
	Paid    *bool      `json:"paid"`
}

type accountResponse struct {
	Status  string          `json:"status"`
	Account *models.Account `json:"account"`
}

type accountListResponse struct {
	Status   string           `json:"status"`
	Results  int              `json:"results"`
	Accounts []models.Account `json:"accounts"`
}

type remindersResponse struct {
	Status    string           `json:"status"`
	Reminders []models.Account `json:"reminders"`
}

// CreateAccount handles POST /api/accounts
func (h *Handler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validateRequest(req); msg != "" {
		h.respondError(w, http.StatusBadRequest, msg)
		return
	}

	paid := false
	if req.Paid != nil {
		paid = *req.Paid
	}

	account, err := h.accounts.Create(r.Context(), service.CreateAccountInput{
		Name:    req.Name,
		Value:   *req.Value,
		DueDate: *req.DueDate,
		Paid:    paid,
	})
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, accountResponse{
		Status:  statusSuccess,
		Account: account,
	})
}

// ListAccounts handles GET /api/accounts
func (h *Handler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accounts.List(r.Context(), service.ListAccountsInput{
		Page:  parseQueryInt(r, "page"),
		Limit: parseQueryInt(r, "limit"),
		Name:  parseQueryString(r, "name"),
		Paid:  parseQueryBool(r, "paid"),
	})
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, accountListResponse{
		Status:   statusSuccess,
		Results:  len(accounts),
		Accounts: accounts,
	})
}

// GetAccount handles GET /api/accounts/{id}
func (h *Handler) GetAccount(w http.ResponseWriter, r *http.Request) {
	id, err := parseAccountID(r)
	if err != nil {
		h.respondError(w, http.StatusNotFound, "account not found")
		return
	}

	account, err := h.accounts.Get(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, accountResponse{
		Status:  statusSuccess,
		Account: account,
	})
}

// UpdateAccount handles PATCH /api/accounts/{id}
func (h *Handler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	id, err := parseAccountID(r)
	if err != nil {
		h.respondError(w, http.StatusNotFound, "account not found")
		return
	}

	var req UpdateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	account, err := h.accounts.Update(r.Context(), id, repository.UpdateAccountParams{
		Name:    req.Name,
		Value:   req.Value,
		DueDate: req.DueDate,
		Paid:    req.Paid,
	})
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, accountResponse{
		Status:  statusSuccess,
		Account: account,
	})
}

// DeleteAccount handles DELETE /api/accounts/{id}
func (h *Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	id, err := parseAccountID(r)
	if err != nil {
		h.respondError(w, http.StatusNotFound, "account not found")
		return
	}

	if err := h.accounts.Delete(r.Context(), id); err != nil {
		h.respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// PendingReminders handles GET /api/accounts/pending_reminders
func (h *Handler) PendingReminders(w http.ResponseWriter, r *http.Request) {
	reminders, err := h.accounts.PendingReminders(r.Context())
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, remindersResponse{
		Status:    statusSuccess,
		Reminders: reminders,
	})
}
