package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSwagger(t *testing.T) {
	spec, err := GetSwagger()
	require.NoError(t, err, "embedded OpenAPI document must load and validate")

	paths := []string{
		"/api/accounts",
		"/api/accounts/{id}",
		"/api/accounts/{id}/predict_payment",
		"/api/accounts/pending_reminders",
		"/health",
	}
	for _, path := range paths {
		assert.NotNil(t, spec.Paths.Find(path), "missing path %s", path)
	}

	accounts := spec.Paths.Find("/api/accounts")
	require.NotNil(t, accounts)
	assert.NotNil(t, accounts.Post, "POST /api/accounts must be documented")
	assert.NotNil(t, accounts.Get, "GET /api/accounts must be documented")
}

func TestDocsRoutes(t *testing.T) {
	mux := http.NewServeMux()
	RegisterDocsRoutes(mux)

	t.Run("root redirects to docs", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusMovedPermanently, rec.Code)
		assert.Equal(t, "/docs", rec.Header().Get("Location"))
	})

	t.Run("openapi spec served as json", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs/openapi", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Body.String(), "Contas API")
	})

	t.Run("swagger ui served", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "swagger-ui")
	})
}
