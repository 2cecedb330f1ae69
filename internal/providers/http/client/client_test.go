package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/AgentOS/urls/internal/infrastructure/config"
	"github.com/GriffinCanCode/AgentOS/urls/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/AgentOS/urls/internal/queryparams"
	"github.com/GriffinCanCode/AgentOS/urls/internal/urls"
)

func testConfig() config.ClientConfig {
	return config.ClientConfig{
		Timeout:   5 * time.Second,
		Retries:   0,
		UserAgent: "urls-test/1.0",
	}
}

func TestBuildURL(t *testing.T) {
	parts, err := urls.Parse("https://example.com/search?a=1&c=3#top")
	require.NoError(t, err)

	tests := []struct {
		name   string
		params *queryparams.Params
		want   string
	}{
		{"nil params", nil, "https://example.com/search?a=1&c=3#top"},
		{"empty params", queryparams.Parse(""), "https://example.com/search?a=1&c=3#top"},
		{"overwrite in place", queryparams.Parse("a=9&b=2"), "https://example.com/search?a=9&c=3&b=2#top"},
		{"encodes values", queryparams.Parse("q=How HTTP works!"), "https://example.com/search?a=1&c=3&q=How+HTTP+works%21#top"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildURL(parts, tt.params))
		})
	}
}

func TestDo(t *testing.T) {
	var gotQuery, gotRequestID, gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		gotRequestID = r.Header.Get(RequestIDHeader)
		gotAgent = r.Header.Get("User-Agent")
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "abc", Path: "/"})
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	metrics := monitoring.NewMetrics()
	c, err := NewClient(testConfig(), nil, metrics)
	require.NoError(t, err)

	parts, err := urls.Parse(server.URL + "/echo?a=1")
	require.NoError(t, err)

	resp, err := c.Do(context.Background(), http.MethodGet, parts, queryparams.Parse("b=2&a=9"), map[string]string{"X-Test": "1"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "ok", resp.String())
	assert.Equal(t, "a=9&b=2", gotQuery)
	assert.Equal(t, "urls-test/1.0", gotAgent)
	_, err = uuid.Parse(gotRequestID)
	assert.NoError(t, err)

	value, found, err := c.Cookies.Get("session", "", "")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "abc", value)

	data := ResponseToMap(resp)
	assert.Equal(t, 200, data["status"])
	assert.Equal(t, "ok", data["body"])
	assert.Equal(t, "text/plain; charset=utf-8", data["mime"])
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ClientRequests.WithLabelValues(http.MethodGet, "200")))
}

func TestDoRejectsRelativeURL(t *testing.T) {
	c, err := NewClient(testConfig(), nil, nil)
	require.NoError(t, err)

	parts, err := urls.Parse("/relative/path")
	require.NoError(t, err)

	_, err = c.Do(context.Background(), http.MethodGet, parts, nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, urls.ErrInvalidURL))
}

func TestRequestHonoursCancelledContext(t *testing.T) {
	c, err := NewClient(testConfig(), nil, nil)
	require.NoError(t, err)
	c.SetRateLimit(0.001)

	// First token is available immediately; the second must wait and fail
	_, err = c.Request(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = c.Request(ctx)
	assert.Error(t, err)
}

func TestResultHelpers(t *testing.T) {
	res, err := Success(map[string]interface{}{"ok": true})
	require.NoError(t, err)
	assert.True(t, res.Success)

	res, _ = Failure("boom")
	assert.False(t, res.Success)
	assert.Equal(t, "boom", *res.Error)

	res, _ = FailureFrom(urls.InvalidURL("bad path"))
	assert.Equal(t, "bad path", *res.Error)
	assert.Equal(t, "invalid_url", res.ErrorKind)

	params := map[string]interface{}{"s": "x", "n": 1, "m": map[string]interface{}{"k": "v"}}
	s, err := GetString(params, "s", true)
	require.NoError(t, err)
	assert.Equal(t, "x", s)

	_, err = GetString(params, "n", true)
	assert.Error(t, err)
	_, err = GetString(params, "missing", true)
	assert.Error(t, err)

	opt, err := GetOptionalString(params, "missing")
	require.NoError(t, err)
	assert.Nil(t, opt)

	assert.Equal(t, "v", GetMap(params, "m")["k"])
	assert.True(t, GetBool(params, "missing", true))
}

func TestDoRetriesServerErrors(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	cfg := testConfig()
	cfg.Retries = 2
	c, err := NewClient(cfg, nil, nil)
	require.NoError(t, err)

	parts, err := urls.Parse(server.URL + "/")
	require.NoError(t, err)

	resp, err := c.Do(context.Background(), http.MethodGet, parts, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}

func TestDoSendsOnlyStoredCookies(t *testing.T) {
	var (
		mu            sync.Mutex
		cookieHeaders []string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		cookieHeaders = append(cookieHeaders, r.Header.Get("Cookie"))
		mu.Unlock()
		if r.URL.Path == "/login" {
			http.SetCookie(w, &http.Cookie{Name: "session", Value: "abc", Path: "/"})
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	c, err := NewClient(testConfig(), nil, nil)
	require.NoError(t, err)

	send := func(path string) {
		parts, err := urls.Parse(server.URL + path)
		require.NoError(t, err)
		_, err = c.Do(context.Background(), http.MethodGet, parts, nil, nil)
		require.NoError(t, err)
	}

	send("/login")
	send("/next")
	assert.Equal(t, 1, c.Cookies.Delete("session", "", ""))
	send("/after")

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"", "session=abc", ""}, cookieHeaders)
}
