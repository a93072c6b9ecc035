// Package handlers implements the HTTP handlers for the contas API.
package handlers

import (
	"context"
	"log/slog"

	"github.com/wil-ckaew/contas-api/internal/service"
)

// HealthChecker validates system health.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// Handler holds the handlers for all endpoints
type Handler struct {
	accounts      service.Accounts
	healthChecker HealthChecker
	logger        *slog.Logger
}

// NewHandler creates a new Handler with injected service dependencies.
func NewHandler(accounts service.Accounts, healthChecker HealthChecker, logger *slog.Logger) *Handler {
	return &Handler{
		accounts:      accounts,
		healthChecker: healthChecker,
		logger:        logger,
	}
}
