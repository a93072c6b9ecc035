// Package service implements the business logic for account entries.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wil-ckaew/contas-api/internal/models"
	"github.com/wil-ckaew/contas-api/internal/prediction"
	"github.com/wil-ckaew/contas-api/internal/repository"
)

// AccountService orchestrates account CRUD and the prediction flow.
// Dependencies are injected at construction; the service keeps no
// state between requests.
type AccountService struct {
	repo      repository.AccountRepository
	predictor prediction.Predictor
}

// NewAccountService creates a new AccountService
func NewAccountService(repo repository.AccountRepository, predictor prediction.Predictor) *AccountService {
	return &AccountService{
		repo:      repo,
		predictor: predictor,
	}
}

// CreateAccountInput holds the validated fields for account creation.
type CreateAccountInput struct {
	Name    string
	Value   float64
	DueDate time.Time
	Paid    bool
}

// ListAccountsInput holds raw pagination and filter parameters as they
// arrive from the transport layer.
type ListAccountsInput struct {
	Name  *string
	Paid  *bool
	Page  int
	Limit int
}

// Create validates the input and inserts a new account. Identifier and
// creation timestamp are assigned by the repository.
func (s *AccountService) Create(ctx context.Context, input CreateAccountInput) (*models.Account, error) {
	if err := s.validateCreateInput(input); err != nil {
		return nil, err
	}

	account, err := s.repo.Create(ctx, repository.CreateAccountParams{
		Name:    input.Name,
		Value:   input.Value,
		DueDate: input.DueDate,
		Paid:    input.Paid,
	})
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeStoreError,
			Message: "failed to create account",
			Err:     err,
		}
	}

	return account, nil
}

// List returns one page of accounts. No total count is computed.
func (s *AccountService) List(ctx context.Context, input ListAccountsInput) ([]models.Account, error) {
	limit, offset := NormalizePagination(input.Page, input.Limit)

	accounts, err := s.repo.List(ctx, repository.ListAccountsParams{
		Name:   input.Name,
		Paid:   input.Paid,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeStoreError,
			Message: "failed to list accounts",
			Err:     err,
		}
	}

	return accounts, nil
}

// Get retrieves a single account by id.
func (s *AccountService) Get(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.wrapLookupError(err)
	}
	return account, nil
}

// Update applies a partial update. Fields absent from the patch keep
// their stored value.
func (s *AccountService) Update(ctx context.Context, id uuid.UUID, patch repository.UpdateAccountParams) (*models.Account, error) {
	if patch.IsEmpty() {
		return nil, &ServiceError{
			Code:    ErrCodeValidation,
			Message: "update requires at least one field",
		}
	}
	if patch.Value != nil {
		if err := ValidateValue(*patch.Value); err != nil {
			return nil, &ServiceError{
				Code:    ErrCodeValidation,
				Message: err.Error(),
			}
		}
	}
	if patch.Name != nil {
		if err := ValidateName(*patch.Name); err != nil {
			return nil, &ServiceError{
				Code:    ErrCodeValidation,
				Message: err.Error(),
			}
		}
	}

	account, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, s.wrapLookupError(err)
	}

	return account, nil
}

// Delete removes an account. The store-level delete is unconditional,
// so deleting an already-absent account succeeds.
func (s *AccountService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return &ServiceError{
			Code:    ErrCodeStoreError,
			Message: "failed to delete account",
			Err:     err,
		}
	}
	return nil
}

// PendingReminders returns unpaid accounts ordered by due date.
func (s *AccountService) PendingReminders(ctx context.Context) ([]models.Account, error) {
	accounts, err := s.repo.ListPendingReminders(ctx)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeStoreError,
			Message: "failed to list pending reminders",
			Err:     err,
		}
	}
	return accounts, nil
}

func (s *AccountService) validateCreateInput(input CreateAccountInput) error {
	if err := ValidateName(input.Name); err != nil {
		return &ServiceError{Code: ErrCodeValidation, Message: err.Error()}
	}
	if err := ValidateValue(input.Value); err != nil {
		return &ServiceError{Code: ErrCodeValidation, Message: err.Error()}
	}
	if err := ValidateDueDate(input.DueDate); err != nil {
		return &ServiceError{Code: ErrCodeValidation, Message: err.Error()}
	}
	return nil
}

// wrapLookupError keeps the not-found outcome distinct from generic
// store failures.
func (s *AccountService) wrapLookupError(err error) error {
	if errors.Is(err, models.ErrNotFound) {
		return &ServiceError{
			Code:    ErrCodeAccountNotFound,
			Message: "account not found",
			Err:     err,
		}
	}
	return &ServiceError{
		Code:    ErrCodeStoreError,
		Message: fmt.Sprintf("store failure: %v", err),
		Err:     err,
	}
}
