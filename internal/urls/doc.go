// Package urls provides RFC 3986 flavoured URL component handling for the
// HTTP client.
//
// Components:
//   - Percent codec: EncodeByte, PercentEncode, Quote, QuoteForm, Unescape
//   - Path handling: NormalizePath (dot-segment removal), ValidatePath
//   - Parts: immutable, already-encoded URL breakdown with Netloc/Authority views
//   - Parse: raw string to Parts, quoting each component with its safe set
//
// All functions are pure and safe for concurrent use. Failures are reported as
// *Error values carrying a Kind; match them with errors.Is against
// ErrInvalidURL, ErrImmutable, ErrMalformedInput or ErrCookieConflict.
//
// Example Usage:
//
//	parts, err := urls.Parse("https://example.com/a/./b/../c?q=1")
//	if err != nil {
//		return err
//	}
//	fmt.Println(parts.String()) // https://example.com/a/c?q=1
package urls
