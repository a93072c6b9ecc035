package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubHealthChecker struct {
	err error
}

func (s *stubHealthChecker) PingContext(context.Context) error {
	return s.err
}

func TestGetHealth(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		handler := NewHandler(nil, &stubHealthChecker{}, testLogger())

		rec := httptest.NewRecorder()
		handler.GetHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "healthy", decodeBody(t, rec)["status"])
	})

	t.Run("database unreachable", func(t *testing.T) {
		handler := NewHandler(nil, &stubHealthChecker{err: errors.New("connection refused")}, testLogger())

		rec := httptest.NewRecorder()
		handler.GetHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "unhealthy", decodeBody(t, rec)["status"])
	})
}
