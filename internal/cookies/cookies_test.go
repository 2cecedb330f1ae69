package cookies

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/AgentOS/urls/internal/urls"
)

func TestSetReplacesSameIdentity(t *testing.T) {
	c := New()
	c.Set("sid", "1", "example.com", "")
	c.Set("sid", "2", "example.com", "/")
	c.Set("sid", "3", "other.com", "/")

	assert.Equal(t, 2, c.Len())

	value, found, err := c.Get("sid", "example.com", "")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "2", value)
}

func TestGetConflict(t *testing.T) {
	c := New()
	c.Set("sid", "a", "example.com", "/")
	c.Set("sid", "b", "example.org", "/")

	_, _, err := c.Get("sid", "", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, urls.ErrCookieConflict))
	assert.Equal(t, "Multiple cookies exist with name=sid", err.Error())

	_, found, err := c.Get("missing", "", "")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestDelete(t *testing.T) {
	c := New()
	c.Set("a", "1", "x.com", "/")
	c.Set("a", "2", "y.com", "/")
	c.Set("b", "3", "x.com", "/")

	assert.Equal(t, 1, c.Delete("a", "x.com", ""))
	assert.Equal(t, 1, c.Delete("a", "", ""))
	assert.Equal(t, 0, c.Delete("a", "", ""))
	assert.Equal(t, 1, c.Len())
}

func TestExtractAndApply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "token", Value: "abc", Path: "/"})
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	resp.Body.Close()

	c := New()
	c.Extract(resp)
	c.Extract(nil)

	value, found, err := c.Get("token", "127.0.0.1", "/")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "abc", value)

	jar, err := NewJar()
	require.NoError(t, err)

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	c.ApplyTo(jar, u)

	sent := jar.Cookies(u)
	require.Len(t, sent, 1)
	assert.Equal(t, "token", sent[0].Name)
	assert.Equal(t, "abc", sent[0].Value)
}

func responseFrom(t *testing.T, rawURL string, setCookies ...string) *http.Response {
	t.Helper()
	u, err := url.Parse(rawURL)
	require.NoError(t, err)
	return &http.Response{
		Header:  http.Header{"Set-Cookie": setCookies},
		Request: &http.Request{URL: u},
	}
}

func names(cookies []*http.Cookie) []string {
	out := []string{}
	for _, c := range cookies {
		out = append(out, c.Name)
	}
	return out
}

func TestHostOnlyCookiesStayOnTheirHost(t *testing.T) {
	c := New()
	c.Extract(responseFrom(t, "http://example.com/login",
		"host=1; Path=/",
		"shared=2; Path=/; Domain=example.com",
	))

	tests := []struct {
		url  string
		want []string
	}{
		{"http://example.com/", []string{"host", "shared"}},
		{"http://api.example.com/", []string{"shared"}},
		{"http://other.org/", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			u, err := url.Parse(tt.url)
			require.NoError(t, err)
			sent, err := c.For(u)
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, names(sent))
		})
	}
}

func TestExtractHonoursExpiry(t *testing.T) {
	c := New()
	c.Extract(responseFrom(t, "http://example.com/", "sid=1; Path=/"))
	require.Equal(t, 1, c.Len())

	c.Extract(responseFrom(t, "http://example.com/", "sid=; Path=/; Max-Age=0"))
	assert.Equal(t, 0, c.Len())
}

func TestForReflectsDeletes(t *testing.T) {
	c := New()
	c.Set("sid", "1", "", "/")

	u, err := url.Parse("http://example.com/")
	require.NoError(t, err)

	sent, err := c.For(u)
	require.NoError(t, err)
	assert.Equal(t, []string{"sid"}, names(sent))

	c.Delete("sid", "", "")
	sent, err = c.For(u)
	require.NoError(t, err)
	assert.Empty(t, sent)
}
