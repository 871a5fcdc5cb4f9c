// Package cast validates whole collections up front and returns them as
// concrete Go collections.
//
// cast.List and cast.Map consume the same sequences as seq.List and seq.Map,
// so eager and lazy validation always agree on the result.
package cast

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/LerianStudio/lib-strict/strict/kind"
	"github.com/LerianStudio/lib-strict/strict/seq"
)

// List validates every element of src and returns them renumbered from 0.
func List[T any](src any, k kind.Kind[T], context ...string) ([]T, error) {
	it := seq.List(src, k, context...)
	out := []T{}

	for _, v := range it.All() {
		out = append(out, v)
	}

	if err := it.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// Map validates every element of src and returns an ordered map keyed by the
// stringified source keys. Keys keep the position they were first seen at;
// the last value written to a key wins.
func Map[T any](src any, k kind.Kind[T], context ...string) (*orderedmap.OrderedMap[string, T], error) {
	it := seq.Map(src, k, context...)
	out := orderedmap.New[string, T]()

	for key, v := range it.All() {
		out.Set(key, v)
	}

	if err := it.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// Values returns the values of any collection, renumbered.
func Values(src any, context ...string) ([]any, error) {
	return List(src, kind.Mixed, context...)
}

// Pairs returns the entries of any collection with stringified keys.
func Pairs(src any, context ...string) (*orderedmap.OrderedMap[string, any], error) {
	return Map(src, kind.Mixed, context...)
}

// ListInt validates src as a list of ints, renumbered from 0.
func ListInt(src any, context ...string) ([]int, error) {
	return List(src, kind.Int, context...)
}

// ListFloat validates src as a list of floats, renumbered from 0.
func ListFloat(src any, context ...string) ([]float64, error) {
	return List(src, kind.Float, context...)
}

// ListString validates src as a list of strings, renumbered from 0.
func ListString(src any, context ...string) ([]string, error) {
	return List(src, kind.String, context...)
}

// ListNullableString validates src as a list of strings or nils, renumbered from 0.
func ListNullableString(src any, context ...string) ([]*string, error) {
	return List(src, kind.Nullable(kind.String), context...)
}

// ListStringy validates src as a list of strings or Stringers, renumbered from 0.
func ListStringy(src any, context ...string) ([]fmt.Stringer, error) {
	return List(src, kind.Stringy, context...)
}

// ListNullableStringy validates src as a list of strings, Stringers or nils, renumbered from 0.
func ListNullableStringy(src any, context ...string) ([]fmt.Stringer, error) {
	return List(src, kind.StringyOrNull, context...)
}

// ListStringOrListString validates src as a list of strings or flat string lists, renumbered from 0.
func ListStringOrListString(src any, context ...string) ([]kind.OneOrMany[string], error) {
	return List(src, kind.OneOrList(kind.String), context...)
}

// MapInt validates src as a map of ints in first-seen key order.
func MapInt(src any, context ...string) (*orderedmap.OrderedMap[string, int], error) {
	return Map(src, kind.Int, context...)
}

// MapFloat validates src as a map of floats in first-seen key order.
func MapFloat(src any, context ...string) (*orderedmap.OrderedMap[string, float64], error) {
	return Map(src, kind.Float, context...)
}

// MapString validates src as a map of strings in first-seen key order.
func MapString(src any, context ...string) (*orderedmap.OrderedMap[string, string], error) {
	return Map(src, kind.String, context...)
}

// MapNullableString validates src as a map of strings or nils in first-seen key order.
func MapNullableString(src any, context ...string) (*orderedmap.OrderedMap[string, *string], error) {
	return Map(src, kind.Nullable(kind.String), context...)
}

// MapStringy validates src as a map of strings or Stringers in first-seen key order.
func MapStringy(src any, context ...string) (*orderedmap.OrderedMap[string, fmt.Stringer], error) {
	return Map(src, kind.Stringy, context...)
}

// MapNullableStringy validates src as a map of strings, Stringers or nils in first-seen key order.
func MapNullableStringy(src any, context ...string) (*orderedmap.OrderedMap[string, fmt.Stringer], error) {
	return Map(src, kind.StringyOrNull, context...)
}

// MapStringOrListString validates src as a map of strings or flat string lists in first-seen key order.
func MapStringOrListString(src any, context ...string) (*orderedmap.OrderedMap[string, kind.OneOrMany[string]], error) {
	return Map(src, kind.OneOrList(kind.String), context...)
}
