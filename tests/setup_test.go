//nolint:errcheck // unchecked errors are acceptable in test files
package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wil-ckaew/contas-api/internal/config"
	"github.com/wil-ckaew/contas-api/internal/db"
	"github.com/wil-ckaew/contas-api/internal/handlers"
)

// TestServer wraps the HTTP test server, the database, and a stub
// prediction endpoint for end-to-end tests.
type TestServer struct {
	Server     *httptest.Server
	Prediction *predictionStub
	Database   *db.DB
	t          *testing.T
}

// predictionStub is a controllable stand-in for the external
// prediction service.
type predictionStub struct {
	server *httptest.Server

	mu     sync.Mutex
	status int
	body   string
}

func newPredictionStub() *predictionStub {
	stub := &predictionStub{
		status: http.StatusOK,
		body:   `{"prediction":"pago"}`,
	}
	stub.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stub.mu.Lock()
		status, body := stub.status, stub.body
		stub.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	return stub
}

// Respond sets the stub's next responses.
func (p *predictionStub) Respond(status int, body string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.status = status
	p.body = body
}

// SetupTest creates a new test server with a clean database state.
func SetupTest(t *testing.T) *TestServer {
	t.Helper()

	cfg, err := config.Load()
	require.NoError(t, err, "failed to load config")

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	database, err := db.Connect(context.Background(), &cfg.Database, logger)
	require.NoError(t, err, "failed to connect to test database")

	applyMigration(t, database)
	resetAccounts(t, database)

	stub := newPredictionStub()
	cfg.Prediction.URL = stub.server.URL

	router := handlers.NewRouter(database, cfg, logger)
	server := httptest.NewServer(router)

	return &TestServer{
		Server:     server,
		Prediction: stub,
		Database:   database,
		t:          t,
	}
}

// Close shuts down the servers and the database connection.
func (ts *TestServer) Close() {
	ts.Server.Close()
	ts.Prediction.server.Close()
	ts.Database.Close()
}

func applyMigration(t *testing.T, database *db.DB) {
	t.Helper()

	migrationPath := filepath.Join("..", "internal", "db", "migrations", "000001_init.up.sql")
	sqlBytes, err := os.ReadFile(migrationPath) // #nosec G304
	require.NoError(t, err, "failed to read migration file")

	_, err = database.ExecContext(context.Background(), string(sqlBytes))
	require.NoError(t, err, "failed to apply migration")
}

func resetAccounts(t *testing.T, database *db.DB) {
	t.Helper()

	_, err := database.ExecContext(context.Background(), "TRUNCATE TABLE accounts")
	require.NoError(t, err, "failed to reset accounts")
}

// CreateAccount posts a creation request and returns the raw response.
func (ts *TestServer) CreateAccount(t *testing.T, payload map[string]any) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	resp, err := http.Post(ts.Server.URL+"/api/accounts", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	return resp
}

// MustCreateAccount creates an account and returns its id, failing the
// test on any error.
func (ts *TestServer) MustCreateAccount(t *testing.T, name string, value float64, dueDate string) string {
	t.Helper()

	resp := ts.CreateAccount(t, map[string]any{
		"name":     name,
		"value":    value,
		"due_date": dueDate,
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	account := body["account"].(map[string]any)
	return account["id"].(string)
}

// Get performs a GET against the API and returns the raw response.
func (ts *TestServer) Get(t *testing.T, path string) *http.Response {
	t.Helper()

	resp, err := http.Get(ts.Server.URL + path)
	require.NoError(t, err)
	return resp
}

// Patch performs a PATCH against the API and returns the raw response.
func (ts *TestServer) Patch(t *testing.T, path string, payload map[string]any) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPatch, ts.Server.URL+path, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

// Delete performs a DELETE against the API and returns the raw response.
func (ts *TestServer) Delete(t *testing.T, path string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodDelete, ts.Server.URL+path, nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	defer resp.Body.Close()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}
