package handlers

import (
	"log/slog"
	"net/http"

	"github.com/wil-ckaew/contas-api/internal/api"
	"github.com/wil-ckaew/contas-api/internal/config"
	"github.com/wil-ckaew/contas-api/internal/db"
	"github.com/wil-ckaew/contas-api/internal/middleware"
	"github.com/wil-ckaew/contas-api/internal/prediction"
	"github.com/wil-ckaew/contas-api/internal/repository"
	"github.com/wil-ckaew/contas-api/internal/service"
)

// NewRouter creates and configures the HTTP router with all routes and middleware.
func NewRouter(
	database *db.DB,
	cfg *config.Config,
	logger *slog.Logger,
) http.Handler {
	accountRepo := repository.NewAccountRepository(database)
	predictor := prediction.NewClient(cfg.Prediction.URL, &http.Client{
		Timeout: cfg.Prediction.Timeout,
	})
	accountService := service.NewAccountService(accountRepo, predictor)

	handler := NewHandler(accountService, database, logger)

	mux := http.NewServeMux()
	api.RegisterDocsRoutes(mux)

	mux.HandleFunc("POST /api/accounts", handler.CreateAccount)
	mux.HandleFunc("GET /api/accounts", handler.ListAccounts)
	mux.HandleFunc("GET /api/accounts/pending_reminders", handler.PendingReminders)
	mux.HandleFunc("GET /api/accounts/{id}", handler.GetAccount)
	mux.HandleFunc("PATCH /api/accounts/{id}", handler.UpdateAccount)
	mux.HandleFunc("DELETE /api/accounts/{id}", handler.DeleteAccount)
	mux.HandleFunc("GET /api/accounts/{id}/predict_payment", handler.PredictPayment)

	mux.HandleFunc("GET /health", handler.GetHealth)
	mux.Handle("GET /metrics", middleware.MetricsHandler())

	var finalHandler http.Handler = mux
	finalHandler = middleware.CORS(&cfg.CORS)(finalHandler)
	finalHandler = middleware.Metrics()(finalHandler)
	finalHandler = middleware.RequestLogger(logger)(finalHandler)

	return finalHandler
}
