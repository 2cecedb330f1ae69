package urls

import (
	"fmt"
	"regexp"
	"strings"
)

// Per-component characters left unescaped in addition to the unreserved set
const (
	subDelims    = "!$&'()*+,;="
	UserinfoSafe = subDelims + ":"
	PathSafe     = subDelims + ":/[]@"
	QuerySafe    = subDelims + ":/?[]@"
	FragmentSafe = subDelims + ":/?#[]@"
)

// MaxURLLength bounds the input accepted by Parse
const MaxURLLength = 65536

var (
	urlPattern = regexp.MustCompile(
		`^(?:(?P<scheme>[a-zA-Z][a-zA-Z0-9+.\-]*):)?` +
			`(?://(?P<authority>[^/?#]*))?` +
			`(?P<path>[^?#]*)` +
			`(?:\?(?P<query>[^#]*))?` +
			`(?:#(?P<fragment>.*))?$`,
	)
	authorityPattern = regexp.MustCompile(
		`^(?:(?P<userinfo>[^@]*)@)?(?P<host>\[.*\]|[^:@]*):?(?P<port>.*)$`,
	)
	portPattern = regexp.MustCompile(`^[0-9]+$`)

	defaultPorts = map[string]string{
		"ftp":   "21",
		"http":  "80",
		"https": "443",
		"ws":    "80",
		"wss":   "443",
	}
)

// Parse splits raw into Parts. Components are percent-quoted with their
// safe sets, scheme and host are lowercased, a default port for the scheme
// is dropped, and absolute paths are normalized before validation.
func Parse(raw string) (Parts, error) {
	if len(raw) > MaxURLLength {
		return Parts{}, InvalidURL("URL too long")
	}
	if idx, ok := FindFirstNonPrintableASCII(raw); ok {
		char := []rune(raw)[idx]
		return Parts{}, InvalidURL(fmt.Sprintf("Invalid non-printable ASCII character in URL, %q at position %d.", char, idx))
	}

	m := urlPattern.FindStringSubmatchIndex(raw)
	if m == nil {
		return Parts{}, InvalidURL("Invalid URL")
	}
	group := func(name string) (string, bool) {
		i := urlPattern.SubexpIndex(name)
		if m[2*i] < 0 {
			return "", false
		}
		return raw[m[2*i]:m[2*i+1]], true
	}

	scheme, _ := group("scheme")
	scheme = strings.ToLower(scheme)
	rawAuthority, _ := group("authority")
	path, _ := group("path")

	var query, fragment *string
	if q, ok := group("query"); ok {
		q = Quote(q, QuerySafe)
		query = &q
	}
	if f, ok := group("fragment"); ok {
		f = Quote(f, FragmentSafe)
		fragment = &f
	}

	a := authorityPattern.FindStringSubmatch(rawAuthority)
	if a == nil {
		return Parts{}, InvalidURL("Invalid URL component 'authority'")
	}
	userinfo := Quote(a[authorityPattern.SubexpIndex("userinfo")], UserinfoSafe)
	host := parseHost(a[authorityPattern.SubexpIndex("host")])
	port, err := parsePort(a[authorityPattern.SubexpIndex("port")], scheme)
	if err != nil {
		return Parts{}, err
	}

	hasScheme := scheme != ""
	hasAuthority := userinfo != "" || host != "" || port != nil
	if err := ValidatePath(path, hasScheme, hasAuthority); err != nil {
		return Parts{}, err
	}
	if hasScheme || hasAuthority {
		path = NormalizePath(path)
	}
	path = Quote(path, PathSafe)

	return NewParts(scheme, userinfo, host, port, path, query, fragment), nil
}

func parseHost(host string) string {
	if strings.HasPrefix(host, "[") && strings.HasSuffix(host, "]") {
		return strings.ToLower(host[1 : len(host)-1])
	}
	return strings.ToLower(host)
}

func parsePort(port, scheme string) (*string, error) {
	if port == "" {
		return nil, nil
	}
	if !portPattern.MatchString(port) {
		return nil, InvalidURL(fmt.Sprintf("Invalid port: %q", port))
	}
	port = strings.TrimLeft(port, "0")
	if port == "" {
		port = "0"
	}
	if defaultPorts[scheme] == port {
		return nil, nil
	}
	return &port, nil
}
