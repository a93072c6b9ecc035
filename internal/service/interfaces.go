package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/wil-ckaew/contas-api/internal/models"
	"github.com/wil-ckaew/contas-api/internal/repository"
)

// Accounts handles account record operations and the payment
// prediction flow.
type Accounts interface {
	Create(ctx context.Context, input CreateAccountInput) (*models.Account, error)
	List(ctx context.Context, input ListAccountsInput) ([]models.Account, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Account, error)
	Update(ctx context.Context, id uuid.UUID, patch repository.UpdateAccountParams) (*models.Account, error)
	Delete(ctx context.Context, id uuid.UUID) error
	PredictPayment(ctx context.Context, id uuid.UUID) (*PaymentPrediction, error)
	PendingReminders(ctx context.Context) ([]models.Account, error)
}

// Ensure concrete types implement interfaces
var _ Accounts = (*AccountService)(nil)
