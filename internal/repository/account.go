// Package repository provides the data access layer for account entries.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wil-ckaew/contas-api/internal/models"
)

// Querier is the subset of database operations the repository needs.
// Both *db.DB and *sql.Tx satisfy it.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// CreateAccountParams holds the fields required to insert a new account.
type CreateAccountParams struct {
	Name    string
	Value   float64
	DueDate time.Time
	Paid    bool
}

// UpdateAccountParams holds an account patch. Nil fields keep their
// stored value.
type UpdateAccountParams struct {
	Name    *string
	Value   *float64
	DueDate *time.Time
	Paid    *bool
}

// IsEmpty reports whether the patch carries no fields at all.
func (p UpdateAccountParams) IsEmpty() bool {
	return p.Name == nil && p.Value == nil && p.DueDate == nil && p.Paid == nil
}

// ListAccountsParams holds pagination and optional filters for listing.
type ListAccountsParams struct {
	Name   *string
	Paid   *bool
	Limit  int
	Offset int
}

// AccountRepository defines the interface for account data access
type AccountRepository interface {
	Create(ctx context.Context, params CreateAccountParams) (*models.Account, error)
	List(ctx context.Context, params ListAccountsParams) ([]models.Account, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Account, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateAccountParams) (*models.Account, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListPendingReminders(ctx context.Context) ([]models.Account, error)
}

// accountRepository implements AccountRepository
type accountRepository struct {
	db Querier
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(db Querier) AccountRepository {
	return &accountRepository{db: db}
}

const accountColumns = "id, name, value, due_date, paid, created_at"

// Create inserts a new account row with a fresh identifier and a
// server-assigned creation timestamp.
func (r *accountRepository) Create(ctx context.Context, params CreateAccountParams) (*models.Account, error) {
	query := `
		INSERT INTO accounts (id, name, value, due_date, paid, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING ` + accountColumns

	row := r.db.QueryRowContext(ctx, query,
		uuid.New(),
		params.Name,
		params.Value,
		params.DueDate,
		params.Paid,
	)

	account, err := scanAccount(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return account, nil
}

// List retrieves one page of accounts in ascending identifier order so
// pagination is stable across requests.
func (r *accountRepository) List(ctx context.Context, params ListAccountsParams) ([]models.Account, error) {
	var conditions []string
	var args []any

	if params.Name != nil {
		args = append(args, "%"+*params.Name+"%")
		conditions = append(conditions, "name ILIKE $"+strconv.Itoa(len(args)))
	}
	if params.Paid != nil {
		args = append(args, *params.Paid)
		conditions = append(conditions, "paid = $"+strconv.Itoa(len(args)))
	}

	query := "SELECT " + accountColumns + " FROM accounts"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	args = append(args, params.Limit)
	query += " ORDER BY id ASC LIMIT $" + strconv.Itoa(len(args))
	args = append(args, params.Offset)
	query += " OFFSET $" + strconv.Itoa(len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close() //nolint:errcheck // row iteration errors are checked below

	return collectAccounts(rows)
}

// FindByID retrieves an account by its UUID
func (r *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	query := "SELECT " + accountColumns + " FROM accounts WHERE id = $1"

	account, err := scanAccount(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("account %s: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find account by id: %w", err)
	}

	return account, nil
}

// Update applies a partial update in a single conditional statement.
// Absent fields keep their stored value via COALESCE; updating a
// missing row returns models.ErrNotFound.
func (r *accountRepository) Update(ctx context.Context, id uuid.UUID, params UpdateAccountParams) (*models.Account, error) {
	query := `
		UPDATE accounts
		SET name     = COALESCE($1, name),
		    value    = COALESCE($2, value),
		    due_date = COALESCE($3, due_date),
		    paid     = COALESCE($4, paid)
		WHERE id = $5
		RETURNING ` + accountColumns

	row := r.db.QueryRowContext(ctx, query,
		params.Name,
		params.Value,
		params.DueDate,
		params.Paid,
		id,
	)

	account, err := scanAccount(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("account %s: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	return account, nil
}

// Delete removes the account row if present. Deleting an absent row is
// not an error.
func (r *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := "DELETE FROM accounts WHERE id = $1"

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	return nil
}

// ListPendingReminders retrieves unpaid accounts ordered by due date,
// soonest first.
func (r *accountRepository) ListPendingReminders(ctx context.Context) ([]models.Account, error) {
	query := "SELECT " + accountColumns + " FROM accounts WHERE paid = FALSE ORDER BY due_date ASC"

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending reminders: %w", err)
	}
	defer rows.Close() //nolint:errcheck // row iteration errors are checked below

	return collectAccounts(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*models.Account, error) {
	var account models.Account
	err := row.Scan(
		&account.ID,
		&account.Name,
		&account.Value,
		&account.DueDate,
		&account.Paid,
		&account.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func collectAccounts(rows *sql.Rows) ([]models.Account, error) {
	accounts := []models.Account{}
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, *account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate account rows: %w", err)
	}
	return accounts, nil
}
