package urls

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestPartsViews(t *testing.T) {
	p := NewParts("http", "u:p", "::1", strPtr("8080"), "/a", strPtr("x=1"), strPtr("top"))

	assert.Equal(t, "[::1]:8080", p.Netloc())
	assert.Equal(t, "u:p@[::1]:8080", p.Authority())
	assert.Equal(t, "/a?x=1", p.Target())
	assert.True(t, p.IsAbsolute())
	assert.Equal(t, "http://u:p@[::1]:8080/a?x=1#top", p.String())
}

func TestPartsAbsentVersusEmpty(t *testing.T) {
	absent := NewParts("http", "", "h", nil, "/", nil, nil)
	empty := NewParts("http", "", "h", nil, "/", strPtr(""), strPtr(""))

	assert.Equal(t, "http://h/", absent.String())
	assert.Equal(t, "http://h/?#", empty.String())
	assert.Equal(t, "/", absent.Target())
	assert.Equal(t, "/?", empty.Target())
}

func TestPartsRelative(t *testing.T) {
	p := NewParts("", "", "h", nil, "/p", nil, nil)

	assert.True(t, p.IsRelative())
	assert.Equal(t, "//h/p", p.String())
	assert.True(t, NewParts("http", "", "", nil, "/p", nil, nil).IsRelative())
}

func TestPartsWith(t *testing.T) {
	base := NewParts("http", "", "a.com", strPtr("81"), "/x", strPtr("q=1"), nil)

	changed := base.WithScheme("https").WithHost("b.com").WithPort(nil).
		WithPath("/y").WithQuery(nil).WithFragment(strPtr("f"))

	assert.Equal(t, "https://b.com/y#f", changed.String())
	assert.Equal(t, "http://a.com:81/x?q=1", base.String())

	port, ok := changed.Port()
	assert.False(t, ok)
	assert.Empty(t, port)
}
