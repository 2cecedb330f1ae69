// Package id generates prefixed, time-sortable ULID identifiers for API requests.
package id

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// RequestID identifies one API request
type RequestID string

// RequestPrefix marks request IDs in logs and headers
const RequestPrefix = "req"

func (id RequestID) String() string { return string(id) }

// Generator generates ULIDs with optional prefixes
type Generator struct {
	entropy   io.Reader
	entropyMu sync.Mutex
}

var (
	defaultGenerator *Generator
	once             sync.Once
)

// Default returns the process-wide generator
func Default() *Generator {
	once.Do(func() {
		defaultGenerator = NewGenerator()
	})
	return defaultGenerator
}

// NewGenerator creates a generator whose IDs are monotonic within a millisecond
func NewGenerator() *Generator {
	return &Generator{entropy: ulid.Monotonic(rand.Reader, 0)}
}

// NewGeneratorWithEntropy creates a generator with a custom entropy source,
// for deterministic tests.
func NewGeneratorWithEntropy(entropy io.Reader) *Generator {
	return &Generator{entropy: entropy}
}

// Generate creates a new ULID
func (g *Generator) Generate() ulid.ULID {
	g.entropyMu.Lock()
	defer g.entropyMu.Unlock()

	return ulid.MustNew(ulid.Timestamp(time.Now()), g.entropy)
}

// GenerateWithPrefix creates a "<prefix>_<ulid>" string
func (g *Generator) GenerateWithPrefix(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, g.Generate().String())
}

// NewRequestID creates a request ID from the default generator
func NewRequestID() RequestID {
	return RequestID(Default().GenerateWithPrefix(RequestPrefix))
}

// ParseRequestID validates a request ID and returns its ULID
func ParseRequestID(s string) (ulid.ULID, error) {
	raw, ok := strings.CutPrefix(s, RequestPrefix+"_")
	if !ok {
		return ulid.ULID{}, fmt.Errorf("request ID %q lacks %s_ prefix", s, RequestPrefix)
	}
	return ulid.Parse(raw)
}

// Timestamp returns when a request ID was generated
func Timestamp(s string) (time.Time, error) {
	parsed, err := ParseRequestID(s)
	if err != nil {
		return time.Time{}, err
	}
	return ulid.Time(parsed.Time()), nil
}
