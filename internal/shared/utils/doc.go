// Package utils provides hashing and payload validation helpers.
//
// Hasher digests strings and unordered field sets; HashFields sorts its
// input so permutations hash equal. JSONValidator bounds the size and nesting
// depth of request bodies.
//
// Example Usage:
//
//	digest := utils.DefaultHasher().HashFields("a=1", "b=2")
//
//	if err := utils.DefaultJSONValidator().ValidateJSON(body); err != nil {
//		return err
//	}
package utils
