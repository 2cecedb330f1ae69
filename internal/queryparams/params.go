package queryparams

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/GriffinCanCode/AgentOS/urls/internal/shared/utils"
	"github.com/GriffinCanCode/AgentOS/urls/internal/urls"
)

// ErrKeyNotFound is returned by Index for keys with no value
var ErrKeyNotFound = errors.New("key not found")

const (
	immutableUpdate = "QueryParams are immutable since 0.18.0. Use `q = q.Merge(...)` to create an updated copy."
	immutableAssign = "QueryParams are immutable since 0.18.0. Use `q = q.Set(key, value)` to create an updated copy."
)

// Params is an immutable ordered multimap of query parameters.
//
// Keys are unique and keep their first-insertion order; each key holds an
// ordered value list. Set, Add, Remove and Merge return a new Params and never
// touch the receiver, so a Params may be shared between goroutines.
type Params struct {
	keys   []string
	values map[string][]string
}

// New builds Params from at most one source. No source yields an empty Params.
func New(sources ...Source) (*Params, error) {
	if len(sources) > 1 {
		return nil, urls.MalformedInput("Too many arguments.")
	}

	p := &Params{values: make(map[string][]string)}
	if len(sources) == 0 || sources[0] == nil {
		return p, nil
	}
	if err := sources[0].populate(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Parse builds Params from an encoded query string
func Parse(query string) *Params {
	p := &Params{values: make(map[string][]string)}
	p.parse(query)
	return p
}

// Must panics if err is non-nil; for static initialisation only
func Must(p *Params, err error) *Params {
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Params) clone() ([]string, map[string][]string) {
	keys := make([]string, len(p.keys))
	copy(keys, p.keys)
	values := make(map[string][]string, len(p.values))
	for k, v := range p.values {
		values[k] = append([]string(nil), v...)
	}
	return keys, values
}

func (p *Params) copy() *Params {
	keys, values := p.clone()
	return &Params{keys: keys, values: values}
}

// ensure registers key at the end if it is not present yet
func (p *Params) ensure(key string) {
	if p.values == nil {
		p.values = make(map[string][]string)
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
		p.values[key] = []string{}
	}
}

func (p *Params) append(key, value string) {
	p.ensure(key)
	p.values[key] = append(p.values[key], value)
}

// Keys returns the distinct keys in insertion order
func (p *Params) Keys() []string {
	return append([]string(nil), p.keys...)
}

// Values returns the first value of each key in key order
func (p *Params) Values() []string {
	out := make([]string, 0, len(p.keys))
	for _, k := range p.keys {
		if vs := p.values[k]; len(vs) > 0 {
			out = append(out, vs[0])
		}
	}
	return out
}

// Items returns (key, first value) pairs, skipping keys with no values
func (p *Params) Items() []Pair {
	out := make([]Pair, 0, len(p.keys))
	for _, k := range p.keys {
		if vs := p.values[k]; len(vs) > 0 {
			out = append(out, Pair{Key: k, Value: vs[0]})
		}
	}
	return out
}

// MultiItems returns every (key, value) pair in key then value order
func (p *Params) MultiItems() []Pair {
	var out []Pair
	for _, k := range p.keys {
		for _, v := range p.values[k] {
			out = append(out, Pair{Key: k, Value: v})
		}
	}
	return out
}

// MultiDict returns a copy of the key to value list mapping
func (p *Params) MultiDict() map[string][]string {
	_, values := p.clone()
	return values
}

// Get returns the first value for key, or def when there is none
func (p *Params) Get(key, def string) string {
	if v, ok := p.Lookup(key); ok {
		return v
	}
	return def
}

// Lookup returns the first value for key and whether it exists
func (p *Params) Lookup(key string) (string, bool) {
	vs := p.values[key]
	if len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

// Index returns the first value for key or ErrKeyNotFound
func (p *Params) Index(key string) (string, error) {
	v, ok := p.Lookup(key)
	if !ok {
		return "", fmt.Errorf("%w: '%s'", ErrKeyNotFound, key)
	}
	return v, nil
}

// GetList returns all values for key, empty when absent
func (p *Params) GetList(key string) []string {
	return append([]string{}, p.values[key]...)
}

// Contains reports whether key is present
func (p *Params) Contains(key string) bool {
	_, ok := p.values[key]
	return ok
}

// Len returns the number of distinct keys
func (p *Params) Len() int {
	return len(p.keys)
}

// IsEmpty reports whether there are no keys
func (p *Params) IsEmpty() bool {
	return len(p.keys) == 0
}

// Set returns a copy where key holds exactly value
func (p *Params) Set(key string, value Value) *Params {
	q := p.copy()
	q.ensure(key)
	q.values[key] = []string{value.String()}
	return q
}

// Add returns a copy with value appended to key
func (p *Params) Add(key string, value Value) *Params {
	q := p.copy()
	q.append(key, value.String())
	return q
}

// Remove returns a copy without key
func (p *Params) Remove(key string) *Params {
	q := p.copy()
	if _, ok := q.values[key]; !ok {
		return q
	}
	delete(q.values, key)
	for i, k := range q.keys {
		if k == key {
			q.keys = append(q.keys[:i], q.keys[i+1:]...)
			break
		}
	}
	return q
}

// Merge returns a copy where every key of other replaces the receiver's
// value list in place, or is appended when new.
func (p *Params) Merge(other *Params) *Params {
	q := p.copy()
	if other == nil {
		return q
	}
	for _, k := range other.keys {
		q.ensure(k)
		q.values[k] = append([]string{}, other.values[k]...)
	}
	return q
}

// Update always fails: Params cannot be changed in place
func (p *Params) Update(Source) error {
	return urls.Immutable(immutableUpdate)
}

// Assign always fails: Params cannot be changed in place
func (p *Params) Assign(key, value string) error {
	return urls.Immutable(immutableAssign)
}

// Iter returns a one-shot iterator over a snapshot of the keys
func (p *Params) Iter() *KeyIterator {
	return &KeyIterator{remaining: p.Keys()}
}

// Equal reports whether both hold the same multiset of (key, value) pairs
func (p *Params) Equal(other *Params) bool {
	if other == nil {
		return false
	}
	a, b := sortedPairs(p.MultiItems()), sortedPairs(other.MultiItems())
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Hash returns a digest of the sorted encoded pairs, so equal Params hash equal
func (p *Params) Hash() string {
	items := p.MultiItems()
	fields := make([]string, len(items))
	for i, it := range items {
		fields[i] = urls.QuoteForm(it.Key) + "=" + urls.QuoteForm(it.Value)
	}
	return utils.DefaultHasher().HashFields(fields...)
}

// String renders the form-encoded query, key=value pairs joined by '&'
func (p *Params) String() string {
	var sb strings.Builder
	for i, it := range p.MultiItems() {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(urls.QuoteForm(it.Key))
		sb.WriteByte('=')
		sb.WriteString(urls.QuoteForm(it.Value))
	}
	return sb.String()
}

// GoString renders QueryParams('...') for %#v
func (p *Params) GoString() string {
	return fmt.Sprintf("QueryParams('%s')", p.String())
}

func sortedPairs(pairs []Pair) []Pair {
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Key != pairs[j].Key {
			return pairs[i].Key < pairs[j].Key
		}
		return pairs[i].Value < pairs[j].Value
	})
	return pairs
}
