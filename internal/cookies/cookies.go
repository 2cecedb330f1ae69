// Package cookies holds client-side cookies for outgoing requests.
package cookies

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sync"
	"time"

	"golang.org/x/net/publicsuffix"

	"github.com/GriffinCanCode/AgentOS/urls/internal/urls"
)

type entry struct {
	cookie *http.Cookie
	// hostOnly cookies came without a Domain attribute; cookie.Domain holds
	// the exact host that set them.
	hostOnly bool
}

// Cookies is an ordered cookie store keyed by (name, domain, path). It is the
// only source of cookies for outgoing requests: a fresh jar is built from it
// per request, so deletions take effect immediately.
type Cookies struct {
	mu      sync.RWMutex
	entries []entry
}

// New creates an empty store
func New() *Cookies {
	return &Cookies{}
}

// NewJar creates a net/http cookie jar that honours the public suffix list
func NewJar() (http.CookieJar, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}
	return jar, nil
}

// Set stores a cookie, replacing one with the same name, domain and path
func (c *Cookies) Set(name, value, domain, path string) {
	c.set(name, value, domain, path, false)
}

func (c *Cookies) set(name, value, domain, path string, hostOnly bool) {
	if path == "" {
		path = "/"
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i, e := range c.entries {
		if e.cookie.Name == name && e.cookie.Domain == domain && e.cookie.Path == path {
			c.entries[i].cookie.Value = value
			c.entries[i].hostOnly = hostOnly
			return
		}
	}
	c.entries = append(c.entries, entry{
		cookie:   &http.Cookie{Name: name, Value: value, Domain: domain, Path: path},
		hostOnly: hostOnly,
	})
}

// Get returns the value of the single cookie matching name and the optional
// domain and path filters. More than one match is a conflict.
func (c *Cookies) Get(name, domain, path string) (string, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var (
		value string
		found bool
	)
	for _, e := range c.entries {
		if !matches(e.cookie, name, domain, path) {
			continue
		}
		if found {
			return "", false, urls.CookieConflict(fmt.Sprintf("Multiple cookies exist with name=%s", name))
		}
		value, found = e.cookie.Value, true
	}
	return value, found, nil
}

// Delete removes cookies matching name and the optional domain and path filters
func (c *Cookies) Delete(name, domain, path string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.entries[:0]
	removed := 0
	for _, e := range c.entries {
		if matches(e.cookie, name, domain, path) {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	c.entries = kept
	return removed
}

func matches(cookie *http.Cookie, name, domain, path string) bool {
	return cookie.Name == name && (domain == "" || cookie.Domain == domain) && (path == "" || cookie.Path == path)
}

// Len returns the number of stored cookies
func (c *Cookies) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Extract stores the cookies a response set for its request URL. Cookies
// without a Domain attribute stay bound to the responding host, and cookies
// the server expired are removed.
func (c *Cookies) Extract(resp *http.Response) {
	if resp == nil || resp.Request == nil || resp.Request.URL == nil {
		return
	}
	host := resp.Request.URL.Hostname()
	now := time.Now()
	for _, cookie := range resp.Cookies() {
		domain, hostOnly := cookie.Domain, false
		if domain == "" {
			domain, hostOnly = host, true
		}
		path := cookie.Path
		if path == "" {
			path = "/"
		}

		if cookie.MaxAge < 0 || (!cookie.Expires.IsZero() && cookie.Expires.Before(now)) {
			c.Delete(cookie.Name, domain, path)
			continue
		}
		c.set(cookie.Name, cookie.Value, domain, path, hostOnly)
	}
}

// ApplyTo copies the cookies that may be sent to u into jar. Host-only
// cookies are copied only when u is their host.
func (c *Cookies) ApplyTo(jar http.CookieJar, u *url.URL) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*http.Cookie, 0, len(c.entries))
	for _, e := range c.entries {
		copied := *e.cookie
		if e.hostOnly {
			if u.Hostname() != e.cookie.Domain {
				continue
			}
			copied.Domain = ""
		}
		out = append(out, &copied)
	}
	jar.SetCookies(u, out)
}

// For returns the cookies to send with a request to u, resolved through a
// jar built from the current contents of the store.
func (c *Cookies) For(u *url.URL) ([]*http.Cookie, error) {
	jar, err := NewJar()
	if err != nil {
		return nil, err
	}
	c.ApplyTo(jar, u)
	return jar.Cookies(u), nil
}
