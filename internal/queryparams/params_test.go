package queryparams

import (
	"errors"
	"fmt"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/AgentOS/urls/internal/urls"
)

func pairs(kv ...string) []Pair {
	out := make([]Pair, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		out = append(out, Pair{Key: kv[i], Value: kv[i+1]})
	}
	return out
}

func TestParseMultiItems(t *testing.T) {
	q := Parse("a=1&a=2&b=")

	assert.Equal(t, pairs("a", "1", "a", "2", "b", ""), q.MultiItems())
	assert.Equal(t, []string{"a", "b"}, q.Keys())
	assert.Equal(t, []string{"1", ""}, q.Values())
	assert.Equal(t, pairs("a", "1", "b", ""), q.Items())
	assert.Equal(t, "a=1&a=2&b=", q.String())
}

func TestParseEdgeCases(t *testing.T) {
	tests := []struct {
		query string
		want  []Pair
	}{
		{"", nil},
		{"a", pairs("a", "")},
		{"a=b=c", pairs("a", "b=c")},
		{"a=1&&b=2", pairs("a", "1", "", "", "b", "2")},
		{"a=1&", pairs("a", "1", "", "")},
		{"&", pairs("", "", "", "")},
		{"=x", pairs("", "x")},
		{"q=%20", pairs("q", "%20")},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.query).MultiItems())
		})
	}
}

func TestNewSources(t *testing.T) {
	empty, err := New()
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())

	fromBytes, err := New(FromBytes([]byte("a=1")))
	require.NoError(t, err)
	assert.Equal(t, "1", fromBytes.Get("a", ""))

	_, err = New(FromBytes([]byte{'a', '=', 0xff}))
	assert.True(t, errors.Is(err, urls.ErrMalformedInput))

	fromPairs, err := New(FromPairs(pairs("k", "1", "j", "2", "k", "3")...))
	require.NoError(t, err)
	assert.Equal(t, []string{"k", "j"}, fromPairs.Keys())
	assert.Equal(t, []string{"1", "3"}, fromPairs.GetList("k"))

	mapping, err := New(FromMapping(Mapping{
		Scalar("flag", Bool(true)),
		Scalar("none", Absent()),
		List("tags", Text("x"), Text("y")),
		List("empty"),
	}))
	require.NoError(t, err)
	assert.Equal(t, "flag=true&none=&tags=x&tags=y", mapping.String())
	assert.True(t, mapping.Contains("empty"))
	assert.Empty(t, mapping.GetList("empty"))

	fromValues, err := New(FromValues(url.Values{"b": {"2"}, "a": {"1", "3"}}))
	require.NoError(t, err)
	assert.Equal(t, "a=1&a=3&b=2", fromValues.String())

	clone, err := New(FromParams(mapping))
	require.NoError(t, err)
	assert.True(t, clone.Equal(mapping))
}

func TestNewTooManyArguments(t *testing.T) {
	_, err := New(FromString("a=1"), FromString("b=2"))

	require.Error(t, err)
	assert.Equal(t, "Too many arguments.", err.Error())
	assert.Equal(t, urls.KindMalformedInput, urls.KindOf(err))
}

func TestFromObject(t *testing.T) {
	source, err := FromObject(map[string]interface{}{
		"b":    []interface{}{"x", float64(2), true, nil},
		"a":    "1",
		"list": []string{"p", "q"},
	})
	require.NoError(t, err)

	q, err := New(source)
	require.NoError(t, err)
	assert.Equal(t, "a=1&b=x&b=2&b=true&b=&list=p&list=q", q.String())

	_, err = FromObject(map[string]interface{}{"bad": map[string]interface{}{}})
	assert.True(t, errors.Is(err, urls.ErrMalformedInput))
}

func TestEqualityIgnoresOrder(t *testing.T) {
	a := Must(New(FromPairs(pairs("a", "1", "b", "2")...)))
	b := Must(New(FromPairs(pairs("b", "2", "a", "1")...)))

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.NotEqual(t, a.String(), b.String())

	c := Parse("a=1&b=3")
	assert.False(t, a.Equal(c))
	assert.NotEqual(t, a.Hash(), c.Hash())
	assert.False(t, a.Equal(nil))
}

func TestRoundTrip(t *testing.T) {
	original := Must(New(FromPairs(pairs("name", "a b", "x", "1&2", "x", "=", "u", "ü")...)))

	reparsed := Parse(original.String())
	decoded := make([]Pair, 0)
	for _, p := range reparsed.MultiItems() {
		k, err := url.QueryUnescape(p.Key)
		require.NoError(t, err)
		v, err := url.QueryUnescape(p.Value)
		require.NoError(t, err)
		decoded = append(decoded, Pair{Key: k, Value: v})
	}
	assert.True(t, original.Equal(Must(New(FromPairs(decoded...)))))

	plain := Parse("a=1&a=2&b=")
	assert.True(t, plain.Equal(Parse(plain.String())))
}

func TestSetReplacesAllValues(t *testing.T) {
	q := Parse("").Add("k", Text("1")).Add("k", Text("2"))
	assert.Equal(t, []string{"1", "2"}, q.GetList("k"))

	set := q.Set("k", Text("3"))
	assert.Equal(t, []string{"3"}, set.GetList("k"))
	assert.Equal(t, []string{"1", "2"}, q.GetList("k"))

	appended := q.Set("new", Bool(false))
	assert.Equal(t, []string{"k", "new"}, appended.Keys())
	assert.Equal(t, "false", appended.Get("new", ""))
}

func TestRemoveKeepsOrder(t *testing.T) {
	q := Parse("a=1&k=2&b=3")

	removed := q.Remove("k")
	assert.Equal(t, []string{"a", "b"}, removed.Keys())
	assert.Equal(t, []string{"a", "k", "b"}, q.Keys())

	assert.True(t, q.Remove("missing").Equal(q))
}

func TestMergeOverwritesInPlace(t *testing.T) {
	q := Parse("a=1&b=2")
	merged := q.Merge(Parse("a=9&c=3"))

	assert.Equal(t, []string{"a", "b", "c"}, merged.Keys())
	assert.Equal(t, []string{"9"}, merged.GetList("a"))
	assert.Equal(t, "a=1&b=2", q.String())

	assert.True(t, q.Merge(nil).Equal(q))
}

func TestLookups(t *testing.T) {
	q := Parse("a=1&a=2")

	assert.Equal(t, "1", q.Get("a", "d"))
	assert.Equal(t, "d", q.Get("z", "d"))

	v, ok := q.Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	_, err := q.Index("z")
	assert.True(t, errors.Is(err, ErrKeyNotFound))
	assert.Equal(t, "key not found: 'z'", err.Error())

	assert.Equal(t, []string{}, q.GetList("z"))
	assert.Equal(t, 1, q.Len())
	assert.Equal(t, map[string][]string{"a": {"1", "2"}}, q.MultiDict())

	dict := q.MultiDict()
	dict["a"][0] = "changed"
	assert.Equal(t, "1", q.Get("a", ""))
}

func TestImmutableEntryPoints(t *testing.T) {
	q := Parse("a=1")

	err := q.Update(FromString("b=2"))
	assert.True(t, errors.Is(err, urls.ErrImmutable))
	assert.Contains(t, err.Error(), "q = q.Merge(...)")

	err = q.Assign("a", "2")
	assert.True(t, errors.Is(err, urls.ErrImmutable))
	assert.Contains(t, err.Error(), "q = q.Set(key, value)")

	assert.Equal(t, "a=1", q.String())
}

func TestStringEncoding(t *testing.T) {
	q := Must(New(FromPairs(pairs("q", "How HTTP works!", "a/b", "ü")...)))

	assert.Equal(t, "q=How+HTTP+works%21&a%2Fb=%C3%BC", q.String())
	assert.Equal(t, "QueryParams('q=How+HTTP+works%21&a%2Fb=%C3%BC')", fmt.Sprintf("%#v", q))
}

func TestConcurrentReads(t *testing.T) {
	q := Parse("a=1&b=2&c=3")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = q.Set("a", Text(fmt.Sprint(i))).Add("d", Bool(true)).Remove("b").String()
			_ = q.MultiItems()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, "a=1&b=2&c=3", q.String())
}
