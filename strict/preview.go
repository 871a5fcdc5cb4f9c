package strict

import (
	"fmt"
	"net"
	"os"
	"reflect"
	"strconv"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const (
	// previewLimit is the longest string rendered in full by Preview.
	previewLimit = 10

	// previewKeep is how many characters of a longer string are kept.
	previewKeep = 7
)

// TypeName returns the runtime type name used in diagnostics.
func TypeName(value any) string {
	if value == nil {
		return "nil"
	}

	return fmt.Sprintf("%T", value)
}

// Preview renders a short, human readable form of value for diagnostics.
//
// Collections render as kind[count], long strings are cut to their first
// seven characters and handles render as their subtype name.
func Preview(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case bool:
		return strconv.FormatBool(v)
	case string:
		return previewString(v)
	case Text:
		return previewString(string(v))
	case *orderedmap.OrderedMap[string, any]:
		if v == nil {
			return "null"
		}

		return "map[" + strconv.Itoa(v.Len()) + "]"
	}

	if name, ok := HandleName(value); ok {
		return name
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map:
		if rv.IsNil() {
			return "null"
		}

		return rv.Kind().String() + "[" + strconv.Itoa(rv.Len()) + "]"
	case reflect.Array:
		return "array[" + strconv.Itoa(rv.Len()) + "]"
	default:
		return fmt.Sprintf("%v", value)
	}
}

// HandleName returns the subtype name of an opaque handle: file, socket or
// listener.
func HandleName(value any) (string, bool) {
	switch value.(type) {
	case *os.File:
		return "file", true
	case net.Conn, net.PacketConn:
		return "socket", true
	case net.Listener:
		return "listener", true
	default:
		return "", false
	}
}

func previewString(s string) string {
	runes := []rune(s)
	if len(runes) > previewLimit {
		return `"` + string(runes[:previewKeep]) + `..."`
	}

	return `"` + s + `"`
}
