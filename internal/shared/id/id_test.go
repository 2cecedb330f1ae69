package id

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequestID(t *testing.T) {
	rid := NewRequestID()

	assert.True(t, strings.HasPrefix(rid.String(), "req_"))
	_, err := ParseRequestID(rid.String())
	assert.NoError(t, err)
}

func TestRequestIDsSortByCreation(t *testing.T) {
	g := NewGenerator()
	prev := g.GenerateWithPrefix(RequestPrefix)
	for i := 0; i < 100; i++ {
		next := g.GenerateWithPrefix(RequestPrefix)
		require.Less(t, prev, next)
		prev = next
	}
}

func TestParseRequestIDRejects(t *testing.T) {
	_, err := ParseRequestID("01ARZ3NDEKTSV4RRFFQ69G5FAV")
	assert.Error(t, err)

	_, err = ParseRequestID("req_not-a-ulid")
	assert.Error(t, err)
}

func TestTimestamp(t *testing.T) {
	before := time.Now().Add(-time.Second)
	rid := NewRequestID()

	ts, err := Timestamp(rid.String())
	require.NoError(t, err)
	assert.True(t, ts.After(before))
	assert.True(t, ts.Before(time.Now().Add(time.Second)))
}

func TestDeterministicEntropy(t *testing.T) {
	entropy := bytes.Repeat([]byte{0x01}, 32)
	a := NewGeneratorWithEntropy(bytes.NewReader(entropy)).Generate()
	b := NewGeneratorWithEntropy(bytes.NewReader(entropy)).Generate()

	assert.Equal(t, a.Entropy(), b.Entropy())
}
