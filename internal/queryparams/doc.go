// Package queryparams provides an immutable, order-preserving multimap of
// URL query parameters.
//
// Construction takes one Source:
//   - FromString / FromBytes: an already-encoded "a=1&a=2&b=" query
//   - FromParams: a copy of another Params
//   - FromPairs: ordered (key, value) pairs, duplicates kept
//   - FromMapping / FromObject / FromValues: key to value(s) mappings
//
// Values are coerced through the Value union (Text, Bool, Absent, Other).
// Set, Add, Remove and Merge return new instances. Equality ignores order;
// Hash is computed over the sorted pairs so it agrees with Equal.
//
// Example Usage:
//
//	q := queryparams.Parse("a=1&a=2&b=")
//	q = q.Set("a", queryparams.Text("3")).Add("c", queryparams.Bool(true))
//	fmt.Println(q.String()) // a=3&b=&c=true
package queryparams
