package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/AgentOS/urls/internal/infrastructure/config"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Logging.Level = "error"
	cfg.RateLimit.Enabled = false
	return cfg
}

func TestNewServerRegistersProviders(t *testing.T) {
	srv, err := NewServer(testConfig())
	require.NoError(t, err)

	stats := srv.registry.Stats()
	assert.Equal(t, 2, stats["total_services"])

	_, ok := srv.registry.Get("urls")
	assert.True(t, ok)
	_, ok = srv.registry.Get("http")
	assert.True(t, ok)
}

func TestGzipResponses(t *testing.T) {
	srv, err := NewServer(testConfig())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/services", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
}

func TestPlainResponsesWithoutGzip(t *testing.T) {
	cfg := testConfig()
	cfg.Server.Gzip = false
	srv, err := NewServer(cfg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Empty(t, w.Header().Get("Content-Encoding"))
	assert.True(t, strings.Contains(w.Body.String(), "healthy"))
}

func TestGlobalRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit.Enabled = true
	cfg.RateLimit.Global = true
	cfg.RateLimit.RequestsPerSecond = 1
	cfg.RateLimit.Burst = 1

	srv, err := NewServer(cfg)
	require.NoError(t, err)

	codes := make([]int, 0, 2)
	for _, addr := range []string{"10.0.0.1:1000", "10.0.0.2:1000"} {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.RemoteAddr = addr
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestShutdownBeforeRun(t *testing.T) {
	srv, err := NewServer(testConfig())
	require.NoError(t, err)

	assert.NoError(t, srv.Shutdown(context.Background()))
}
