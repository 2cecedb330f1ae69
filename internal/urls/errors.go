package urls

import (
	"errors"
	"fmt"
)

// Kind classifies errors raised by URL and query handling
type Kind int

const (
	KindInvalidURL Kind = iota + 1
	KindImmutable
	KindMalformedInput
	KindCookieConflict
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindInvalidURL:
		return "invalid_url"
	case KindImmutable:
		return "immutable"
	case KindMalformedInput:
		return "malformed_input"
	case KindCookieConflict:
		return "cookie_conflict"
	default:
		return "unknown"
	}
}

// Error carries a kind and a descriptive message
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches any *Error of the same kind, so the sentinels below work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrInvalidURL     = &Error{Kind: KindInvalidURL, Message: "invalid URL"}
	ErrImmutable      = &Error{Kind: KindImmutable, Message: "immutable value"}
	ErrMalformedInput = &Error{Kind: KindMalformedInput, Message: "malformed input"}
	ErrCookieConflict = &Error{Kind: KindCookieConflict, Message: "cookie conflict"}
)

// InvalidURL creates an invalid URL error
func InvalidURL(message string) *Error {
	return &Error{Kind: KindInvalidURL, Message: message}
}

// Immutable creates an immutability violation error
func Immutable(message string) *Error {
	return &Error{Kind: KindImmutable, Message: message}
}

// MalformedInput creates a malformed input error
func MalformedInput(format string, args ...interface{}) *Error {
	return &Error{Kind: KindMalformedInput, Message: fmt.Sprintf(format, args...)}
}

// CookieConflict creates a cookie conflict error
func CookieConflict(message string) *Error {
	return &Error{Kind: KindCookieConflict, Message: message}
}

// KindOf returns the kind of err, or zero if err is not an *Error
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
