package queryparams

import (
	"net/url"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/GriffinCanCode/AgentOS/urls/internal/urls"
)

// Source is one way of populating a Params. Build one with the From*
// functions and pass it to New.
type Source interface {
	populate(p *Params) error
}

// Pair is a single key/value entry
type Pair struct {
	Key   string
	Value string
}

// Entry is one key of a Mapping. A List entry contributes each of its values
// separately; a scalar entry contributes exactly one value.
type Entry struct {
	Key    string
	Values []Value
	List   bool
}

// Mapping is an ordered key to value(s) mapping
type Mapping []Entry

// Scalar creates a single-value mapping entry
func Scalar(key string, value Value) Entry {
	return Entry{Key: key, Values: []Value{value}}
}

// List creates a multi-value mapping entry
func List(key string, values ...Value) Entry {
	return Entry{Key: key, Values: values, List: true}
}

type stringSource string

func (s stringSource) populate(p *Params) error {
	p.parse(string(s))
	return nil
}

type bytesSource []byte

func (b bytesSource) populate(p *Params) error {
	if !utf8.Valid(b) {
		return urls.MalformedInput("query string is not valid UTF-8")
	}
	p.parse(string(b))
	return nil
}

type paramsSource struct {
	other *Params
}

func (s paramsSource) populate(p *Params) error {
	if s.other != nil {
		p.keys, p.values = s.other.clone()
	}
	return nil
}

type pairsSource []Pair

func (s pairsSource) populate(p *Params) error {
	for _, pair := range s {
		p.append(pair.Key, pair.Value)
	}
	return nil
}

type mappingSource Mapping

func (s mappingSource) populate(p *Params) error {
	for _, entry := range s {
		if entry.List {
			p.ensure(entry.Key)
		}
		for _, v := range entry.Values {
			p.append(entry.Key, v.String())
		}
	}
	return nil
}

// FromString parses an already-encoded query string. Values are kept as
// written; no percent-decoding is applied.
func FromString(query string) Source { return stringSource(query) }

// FromBytes parses a UTF-8 encoded query string
func FromBytes(query []byte) Source { return bytesSource(query) }

// FromParams copies another Params
func FromParams(other *Params) Source { return paramsSource{other: other} }

// FromPairs appends each pair in order, keeping duplicate keys
func FromPairs(pairs ...Pair) Source { return pairsSource(pairs) }

// FromMapping adds each mapping entry in order
func FromMapping(m Mapping) Source { return mappingSource(m) }

// FromValues adds a net/url Values map with keys in sorted order
func FromValues(v url.Values) Source {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	m := make(Mapping, 0, len(keys))
	for _, k := range keys {
		m = append(m, List(k, Texts(v[k]...)...))
	}
	return mappingSource(m)
}

// FromObject converts a decoded JSON-like object. Object keys are taken in
// sorted order since Go maps carry none.
func FromObject(obj map[string]interface{}) (Source, error) {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	m := make(Mapping, 0, len(keys))
	for _, k := range keys {
		values, isList, err := ValuesOf(obj[k])
		if err != nil {
			return nil, err
		}
		m = append(m, Entry{Key: k, Values: values, List: isList})
	}
	return mappingSource(m), nil
}

func (p *Params) parse(query string) {
	if query == "" {
		return
	}
	for _, part := range strings.Split(query, "&") {
		key, value, _ := strings.Cut(part, "=")
		p.append(key, value)
	}
}
