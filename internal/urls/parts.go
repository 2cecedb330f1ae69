package urls

import "strings"

// Parts is an immutable, already-encoded breakdown of a URL.
//
// Fields are not validated against each other; derived views are computed
// from the current fields on each call. Use the With* methods to obtain a
// modified copy.
type Parts struct {
	scheme   string
	userinfo string
	host     string
	path     string

	port     string
	query    string
	fragment string

	hasPort     bool
	hasQuery    bool
	hasFragment bool
}

// NewParts builds Parts from caller-supplied components. A nil port, query or
// fragment means the component is absent, which is distinct from empty.
func NewParts(scheme, userinfo, host string, port *string, path string, query, fragment *string) Parts {
	p := Parts{
		scheme:   scheme,
		userinfo: userinfo,
		host:     host,
		path:     path,
	}
	if port != nil {
		p.port, p.hasPort = *port, true
	}
	if query != nil {
		p.query, p.hasQuery = *query, true
	}
	if fragment != nil {
		p.fragment, p.hasFragment = *fragment, true
	}
	return p
}

func (p Parts) Scheme() string   { return p.scheme }
func (p Parts) Userinfo() string { return p.userinfo }
func (p Parts) Host() string     { return p.host }
func (p Parts) Path() string     { return p.path }

// Port returns the port and whether one is present
func (p Parts) Port() (string, bool) { return p.port, p.hasPort }

// Query returns the encoded query and whether one is present
func (p Parts) Query() (string, bool) { return p.query, p.hasQuery }

// Fragment returns the fragment and whether one is present
func (p Parts) Fragment() (string, bool) { return p.fragment, p.hasFragment }

// Netloc returns host[:port], bracketing hosts that contain ':' as IPv6 literals
func (p Parts) Netloc() string {
	var sb strings.Builder
	if strings.Contains(p.host, ":") {
		sb.WriteByte('[')
		sb.WriteString(p.host)
		sb.WriteByte(']')
	} else {
		sb.WriteString(p.host)
	}
	if p.hasPort {
		sb.WriteByte(':')
		sb.WriteString(p.port)
	}
	return sb.String()
}

// Authority returns [userinfo@]netloc
func (p Parts) Authority() string {
	if p.userinfo != "" {
		return p.userinfo + "@" + p.Netloc()
	}
	return p.Netloc()
}

// Target returns the request target: path plus ?query when present
func (p Parts) Target() string {
	if p.hasQuery {
		return p.path + "?" + p.query
	}
	return p.path
}

// IsAbsolute reports whether both scheme and host are set
func (p Parts) IsAbsolute() bool {
	return p.scheme != "" && p.host != ""
}

// IsRelative reports whether the URL is a relative reference
func (p Parts) IsRelative() bool {
	return !p.IsAbsolute()
}

// String renders scheme://authority/path?query#fragment, or
// //authority/path?query#fragment when the scheme is empty.
func (p Parts) String() string {
	var sb strings.Builder
	if p.scheme != "" {
		sb.WriteString(p.scheme)
		sb.WriteString("://")
	} else {
		sb.WriteString("//")
	}
	sb.WriteString(p.Authority())
	sb.WriteString(p.path)
	if p.hasQuery {
		sb.WriteByte('?')
		sb.WriteString(p.query)
	}
	if p.hasFragment {
		sb.WriteByte('#')
		sb.WriteString(p.fragment)
	}
	return sb.String()
}

// WithScheme returns a copy with the scheme replaced
func (p Parts) WithScheme(scheme string) Parts {
	p.scheme = scheme
	return p
}

// WithHost returns a copy with the host replaced
func (p Parts) WithHost(host string) Parts {
	p.host = host
	return p
}

// WithPort returns a copy with the port replaced; nil removes it
func (p Parts) WithPort(port *string) Parts {
	p.port, p.hasPort = "", false
	if port != nil {
		p.port, p.hasPort = *port, true
	}
	return p
}

// WithPath returns a copy with the path replaced
func (p Parts) WithPath(path string) Parts {
	p.path = path
	return p
}

// WithQuery returns a copy with the encoded query replaced; nil removes it
func (p Parts) WithQuery(query *string) Parts {
	p.query, p.hasQuery = "", false
	if query != nil {
		p.query, p.hasQuery = *query, true
	}
	return p
}

// WithFragment returns a copy with the fragment replaced; nil removes it
func (p Parts) WithFragment(fragment *string) Parts {
	p.fragment, p.hasFragment = "", false
	if fragment != nil {
		p.fragment, p.hasFragment = *fragment, true
	}
	return p
}
