package strict

import (
	"cmp"
	"iter"
	"maps"
	"math"
	"reflect"
	"slices"
	"strconv"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Entries returns an ordered key/value view of a collection-shaped value.
//
// Slices and arrays yield their indices as keys. Plain maps have no order of
// their own, so their keys are sorted: integers numerically, then strings.
// Ordered maps and iterator functions keep their own order. Strings are never
// collections.
func Entries(value any) (iter.Seq2[any, any], bool) {
	switch v := value.(type) {
	case nil, string, Text:
		return nil, false
	case []any:
		if v == nil {
			return nil, false
		}

		return func(yield func(any, any) bool) {
			for i, elem := range v {
				if !yield(i, elem) {
					return
				}
			}
		}, true
	case map[string]any:
		if v == nil {
			return nil, false
		}

		return func(yield func(any, any) bool) {
			for _, key := range slices.Sorted(maps.Keys(v)) {
				if !yield(key, v[key]) {
					return
				}
			}
		}, true
	case *orderedmap.OrderedMap[string, any]:
		if v == nil {
			return nil, false
		}

		return func(yield func(any, any) bool) {
			for pair := v.Oldest(); pair != nil; pair = pair.Next() {
				if !yield(pair.Key, pair.Value) {
					return
				}
			}
		}, true
	case iter.Seq2[any, any]:
		return v, v != nil
	case func(func(any, any) bool):
		return v, v != nil
	case iter.Seq[any]:
		return indexed(v), v != nil
	case func(func(any) bool):
		return indexed(v), v != nil
	}

	return reflectEntries(value)
}

// IsCollection reports whether Entries accepts value.
func IsCollection(value any) bool {
	_, ok := Entries(value)
	return ok
}

// KeyString returns the string form of an integer or string key.
func KeyString(key any) (string, bool) {
	switch k := key.(type) {
	case string:
		return k, true
	case Text:
		return string(k), true
	}

	rv := reflect.ValueOf(key)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true
	default:
		return "", false
	}
}

// Index returns an integer key as an int.
func Index(key any) (int, bool) {
	if i, ok := key.(int); ok {
		return i, true
	}

	rv := reflect.ValueOf(key)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > uint64(math.MaxInt) {
			return 0, false
		}

		return int(u), true
	default:
		return 0, false
	}
}

func indexed(seq iter.Seq[any]) iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		i := 0
		for elem := range seq {
			if !yield(i, elem) {
				return
			}

			i++
		}
	}
}

func reflectEntries(value any) (iter.Seq2[any, any], bool) {
	rv := reflect.ValueOf(value)

	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return nil, false
		}

		fallthrough
	case reflect.Array:
		return func(yield func(any, any) bool) {
			for i := range rv.Len() {
				if !yield(i, rv.Index(i).Interface()) {
					return
				}
			}
		}, true
	case reflect.Map:
		if rv.IsNil() {
			return nil, false
		}

		keys := rv.MapKeys()
		slices.SortFunc(keys, compareKeys)

		return func(yield func(any, any) bool) {
			for _, key := range keys {
				if !yield(key.Interface(), rv.MapIndex(key).Interface()) {
					return
				}
			}
		}, true
	default:
		return nil, false
	}
}

// compareKeys orders integer keys numerically before any other key, then the
// rest by their string form.
func compareKeys(a, b reflect.Value) int {
	ai, aIsInt := Index(a.Interface())
	bi, bIsInt := Index(b.Interface())

	switch {
	case aIsInt && bIsInt:
		return cmp.Compare(ai, bi)
	case aIsInt:
		return -1
	case bIsInt:
		return 1
	}

	return cmp.Compare(sortKey(a.Interface()), sortKey(b.Interface()))
}

func sortKey(key any) string {
	if s, ok := KeyString(key); ok {
		return s
	}

	return Preview(key)
}
