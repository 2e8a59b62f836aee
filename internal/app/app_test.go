package app

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voclab/internal/config"
)

func TestRouterHealthAndMetrics(t *testing.T) {
	a := New(config.Default(), slog.Default())
	router := a.router()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNewConfiguresServer(t *testing.T) {
	cfg := config.Default()
	cfg.Server.Port = 9090

	a := New(cfg, slog.Default())
	assert.Equal(t, ":9090", a.Server.Addr)
	assert.Equal(t, cfg.Server.ReadTimeout, a.Server.ReadTimeout)
}
