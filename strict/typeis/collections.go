package typeis

import (
	"fmt"

	"github.com/LerianStudio/lib-strict/strict/kind"
)

// ListInt accepts a list of ints.
func ListInt(value any, context ...string) ([]int, error) {
	return listInt.Narrow(value, context...)
}

// ListFloat widens integer elements to float64.
func ListFloat(value any, context ...string) ([]float64, error) {
	return listFloat.Narrow(value, context...)
}

// ListString accepts a list of strings.
func ListString(value any, context ...string) ([]string, error) {
	return listString.Narrow(value, context...)
}

// ListNullableString accepts a list of strings or nils.
func ListNullableString(value any, context ...string) ([]*string, error) {
	return listNullableString.Narrow(value, context...)
}

// ListStringy accepts a list of strings or Stringers.
func ListStringy(value any, context ...string) ([]fmt.Stringer, error) {
	return listStringy.Narrow(value, context...)
}

// ListNullableStringy accepts a list of strings, Stringers or nils.
func ListNullableStringy(value any, context ...string) ([]fmt.Stringer, error) {
	return listNullableStringy.Narrow(value, context...)
}

// ListStringOrListString accepts a list whose elements are strings or flat
// lists of strings.
func ListStringOrListString(value any, context ...string) ([]kind.OneOrMany[string], error) {
	return listStringOrList.Narrow(value, context...)
}

// MapInt accepts a string-keyed map of ints.
func MapInt(value any, context ...string) (map[string]int, error) {
	return mapInt.Narrow(value, context...)
}

// MapFloat accepts a string-keyed map of floats.
func MapFloat(value any, context ...string) (map[string]float64, error) {
	return mapFloat.Narrow(value, context...)
}

// MapString accepts a string-keyed map of strings.
func MapString(value any, context ...string) (map[string]string, error) {
	return mapString.Narrow(value, context...)
}

// MapNullableString accepts a string-keyed map of strings or nils.
func MapNullableString(value any, context ...string) (map[string]*string, error) {
	return mapNullableString.Narrow(value, context...)
}

// MapStringy accepts a string-keyed map of strings or Stringers.
func MapStringy(value any, context ...string) (map[string]fmt.Stringer, error) {
	return mapStringy.Narrow(value, context...)
}

// MapNullableStringy accepts a string-keyed map of strings, Stringers or nils.
func MapNullableStringy(value any, context ...string) (map[string]fmt.Stringer, error) {
	return mapNullableStringy.Narrow(value, context...)
}

// MapStringOrListString accepts a map whose values are strings or flat lists
// of strings.
func MapStringOrListString(value any, context ...string) (map[string]kind.OneOrMany[string], error) {
	return mapStringOrList.Narrow(value, context...)
}

// MapStringOrMapString accepts a map whose values are strings or flat maps of
// strings.
func MapStringOrMapString(value any, context ...string) (map[string]kind.OneOrMapped[string], error) {
	return mapStringOrMap.Narrow(value, context...)
}

// StringOrListString accepts a string or a flat list of strings.
func StringOrListString(value any, context ...string) (kind.OneOrMany[string], error) {
	return stringOrListString.Narrow(value, context...)
}

// StringOrMapString accepts a string or a flat map of strings.
func StringOrMapString(value any, context ...string) (kind.OneOrMapped[string], error) {
	return stringOrMapString.Narrow(value, context...)
}
