package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/AgentOS/urls/internal/api/middleware"
	"github.com/GriffinCanCode/AgentOS/urls/internal/infrastructure/config"
	"github.com/GriffinCanCode/AgentOS/urls/internal/infrastructure/monitoring"
	urlsprovider "github.com/GriffinCanCode/AgentOS/urls/internal/providers/urls"
	"github.com/GriffinCanCode/AgentOS/urls/internal/service"
)

func setupRouter(t *testing.T) (*gin.Engine, *monitoring.Metrics) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	metrics := monitoring.NewMetrics()
	registry := service.NewRegistry(nil, metrics)
	require.NoError(t, registry.Register(urlsprovider.NewProvider(config.Default().Query, nil)))

	router := gin.New()
	router.Use(middleware.RequestID(), monitoring.Middleware(metrics))
	NewHandlers(registry, metrics, nil).Register(router)
	return router, metrics
}

func do(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestRootAndHealth(t *testing.T) {
	router, _ := setupRouter(t)

	w := do(router, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "online", decodeBody(t, w)["status"])

	w = do(router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "healthy", body["status"])
	assert.NotNil(t, body["metrics"])
}

func TestListServices(t *testing.T) {
	router, _ := setupRouter(t)

	w := do(router, http.MethodGet, "/services?category=url", "")
	require.Equal(t, http.StatusOK, w.Code)
	services := decodeBody(t, w)["services"].([]interface{})
	assert.Len(t, services, 1)

	w = do(router, http.MethodGet, "/services?category=bogus", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDiscoverServices(t *testing.T) {
	router, _ := setupRouter(t)

	w := do(router, http.MethodPost, "/services/discover", `{"message":"normalize a url path"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decodeBody(t, w)["services"])

	w = do(router, http.MethodPost, "/services/discover", `{"message":"  "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExecuteService(t *testing.T) {
	router, metrics := setupRouter(t)

	w := do(router, http.MethodPost, "/services/execute",
		`{"tool_id":"urls.query.set","params":{"query":"a=1&a=2&b=","key":"a","value":"3"}}`)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "a=3&b=", body["data"].(map[string]interface{})["query"])
	assert.True(t, strings.HasPrefix(w.Header().Get(middleware.RequestIDHeader), "req_"))

	w = do(router, http.MethodPost, "/services/execute", `{"tool_id":"urls.parseURL","params":{"url":"http://h:x/"}}`)
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "invalid_url", body["error_kind"])

	assert.Equal(t, int64(2), metrics.Snapshot().ToolCalls)
	assert.Equal(t, int64(1), metrics.Snapshot().ToolFailures)
}

func TestExecuteServiceBadRequests(t *testing.T) {
	router, _ := setupRouter(t)

	assert.Equal(t, http.StatusBadRequest, do(router, http.MethodPost, "/services/execute", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(router, http.MethodPost, "/services/execute", "{bad").Code)
	assert.Equal(t, http.StatusBadRequest, do(router, http.MethodPost, "/services/execute", `{"params":{}}`).Code)
	assert.Equal(t, http.StatusNotFound, do(router, http.MethodPost, "/services/execute", `{"tool_id":"nope.tool"}`).Code)

	nested := `{"tool_id":"urls.quote","params":{"s":` + strings.Repeat("[", 40) + strings.Repeat("]", 40) + `}}`
	w := do(router, http.MethodPost, "/services/execute", nested)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeBody(t, w)["error"], "nesting depth")
}

func TestMetricsEndpoint(t *testing.T) {
	router, _ := setupRouter(t)

	do(router, http.MethodGet, "/health", "")
	w := do(router, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "urls_http_requests_total")
}
