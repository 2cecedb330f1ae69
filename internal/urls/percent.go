package urls

import (
	"strings"
	"unicode/utf8"
)

const upperhex = "0123456789ABCDEF"

// isUnreserved reports whether b is an RFC 3986 unreserved character
func isUnreserved(b byte) bool {
	switch {
	case 'a' <= b && b <= 'z', 'A' <= b && b <= 'Z', '0' <= b && b <= '9':
		return true
	}
	switch b {
	case '-', '.', '_', '~':
		return true
	}
	return false
}

func isHex(b byte) bool {
	return ('0' <= b && b <= '9') || ('a' <= b && b <= 'f') || ('A' <= b && b <= 'F')
}

func unhex(b byte) byte {
	switch {
	case '0' <= b && b <= '9':
		return b - '0'
	case 'a' <= b && b <= 'f':
		return b - 'a' + 10
	default:
		return b - 'A' + 10
	}
}

// EncodeByte returns b literally when it is unreserved or listed in safe,
// and as an uppercase %XX escape otherwise.
func EncodeByte(b byte, safe string) string {
	if isUnreserved(b) || strings.IndexByte(safe, b) >= 0 {
		return string(b)
	}
	return string([]byte{'%', upperhex[b>>4], upperhex[b&15]})
}

func appendEncoded(sb *strings.Builder, b byte, safe string) {
	if isUnreserved(b) || strings.IndexByte(safe, b) >= 0 {
		sb.WriteByte(b)
		return
	}
	sb.WriteByte('%')
	sb.WriteByte(upperhex[b>>4])
	sb.WriteByte(upperhex[b&15])
}

// PercentEncode escapes every byte of s that is neither unreserved nor in safe.
// Existing escapes are not recognised, so a '%' always becomes "%25".
func PercentEncode(s, safe string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		appendEncoded(&sb, s[i], safe)
	}
	return sb.String()
}

// Quote percent-encodes s, copying valid %XX triplets through untouched.
//
// A '%' that does not start a valid triplet is encoded as "%25". Literal text
// that happens to contain "%XX" is never escaped, so Quote is a one-time
// forward transform for already-encoded components, not a general escaper.
func Quote(s, safe string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
			sb.WriteString(s[i : i+3])
			i += 2
			continue
		}
		appendEncoded(&sb, s[i], safe)
	}
	return sb.String()
}

// QuoteForm encodes s for an application/x-www-form-urlencoded body or query:
// spaces become '+', unreserved bytes pass through, everything else is escaped.
func QuoteForm(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' {
			sb.WriteByte('+')
			continue
		}
		appendEncoded(&sb, s[i], "")
	}
	return sb.String()
}

// Unescape decodes runs of %XX escapes as UTF-8 text. Anything that is not a
// valid triplet is copied as-is.
func Unescape(s string) (string, error) {
	if strings.IndexByte(s, '%') < 0 {
		return s, nil
	}

	var sb strings.Builder
	sb.Grow(len(s))
	var run []byte
	flush := func(at int) error {
		if len(run) == 0 {
			return nil
		}
		if !utf8.Valid(run) {
			return MalformedInput("invalid UTF-8 in percent-encoded sequence ending at position %d", at)
		}
		sb.Write(run)
		run = run[:0]
		return nil
	}

	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
			run = append(run, unhex(s[i+1])<<4|unhex(s[i+2]))
			i += 2
			continue
		}
		if err := flush(i); err != nil {
			return "", err
		}
		sb.WriteByte(s[i])
	}
	if err := flush(len(s)); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// FindFirstNonPrintableASCII returns the character index of the first ASCII
// control character in s. Space is considered printable.
func FindFirstNonPrintableASCII(s string) (int, bool) {
	pos := 0
	for _, r := range s {
		if r < 0x20 || r == 0x7f {
			return pos, true
		}
		pos++
	}
	return 0, false
}

// Unquote strips one layer of matching double or single quotes from value.
func Unquote(value string) string {
	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if first == last && (first == '"' || first == '\'') {
			return value[1 : len(value)-1]
		}
	}
	return value
}
