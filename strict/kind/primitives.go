package kind

import (
	"fmt"
	"io"
	"iter"
	"net"
	"os"
	"reflect"
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/LerianStudio/lib-strict/strict"
	"github.com/LerianStudio/lib-strict/strict/internal/nilcheck"
)

var (
	// Mixed accepts every value, nil included.
	Mixed = New("mixed", func(value any) (any, bool) { return value, true })

	Bool   = Of[bool]("bool")
	Int    = Of[int]("int")
	String = Of[string]("string")

	// Float accepts floats and widens every integer type to float64.
	Float = New("float", toFloat)

	// True accepts only the literal true.
	True = New("true", func(value any) (bool, bool) {
		b, ok := value.(bool)
		return true, ok && b
	})

	// Stringy accepts a string, returned as strict.Text, or any non-nil
	// fmt.Stringer.
	Stringy = New("string or Stringer", toStringer)

	// StringyOrNull is Stringy that also accepts nil, returned as a nil Stringer.
	StringyOrNull = New("string, Stringer or null", func(value any) (fmt.Stringer, bool) {
		if value == nil {
			return nil, true
		}

		return toStringer(value)
	})

	// Callable accepts any non-nil func value.
	Callable = New("callable", func(value any) (any, bool) {
		return value, value != nil && reflect.TypeOf(value).Kind() == reflect.Func && !nilcheck.Interface(value)
	})

	// Object accepts a struct value or a non-nil pointer to a struct.
	Object = New("object", isObject)

	// Handle accepts open files, connections and listeners.
	Handle = New("handle", toHandle)

	File = New("file", func(value any) (*os.File, bool) {
		f, ok := value.(*os.File)
		return f, ok && f != nil
	})

	Socket = New("socket", func(value any) (net.Conn, bool) {
		c, ok := value.(net.Conn)
		return c, ok && !nilcheck.Interface(c)
	})

	// Array accepts any slice or array and returns its elements as []any.
	Array = New("array", toArray)

	// Map accepts maps and ordered maps whose keys are strings or integers.
	Map = New("map", toMap)

	// Iterable accepts every collection-shaped value, see strict.Entries.
	Iterable = New("iterable", strict.Entries)

	// Decimal accepts decimals and widens every integer type.
	Decimal = New("decimal", toDecimal)

	UUID = Of[uuid.UUID]("uuid")
)

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	default:
		return 0, false
	}
}

func toDecimal(value any) (decimal.Decimal, bool) {
	switch v := value.(type) {
	case decimal.Decimal:
		return v, true
	case *decimal.Decimal:
		if v == nil {
			return decimal.Zero, false
		}

		return *v, true
	case int:
		return decimal.NewFromInt(int64(v)), true
	case int8:
		return decimal.NewFromInt(int64(v)), true
	case int16:
		return decimal.NewFromInt(int64(v)), true
	case int32:
		return decimal.NewFromInt32(v), true
	case int64:
		return decimal.NewFromInt(v), true
	case uint:
		return decimal.NewFromUint64(uint64(v)), true
	case uint8:
		return decimal.NewFromUint64(uint64(v)), true
	case uint16:
		return decimal.NewFromUint64(uint64(v)), true
	case uint32:
		return decimal.NewFromUint64(uint64(v)), true
	case uint64:
		return decimal.NewFromUint64(v), true
	default:
		return decimal.Zero, false
	}
}

func toStringer(value any) (fmt.Stringer, bool) {
	switch v := value.(type) {
	case string:
		return strict.Text(v), true
	case fmt.Stringer:
		return v, !nilcheck.Interface(v)
	default:
		return nil, false
	}
}

func isObject(value any) (any, bool) {
	rv := reflect.ValueOf(value)

	switch rv.Kind() {
	case reflect.Struct:
		return value, true
	case reflect.Pointer:
		return value, !rv.IsNil() && rv.Elem().Kind() == reflect.Struct
	default:
		return nil, false
	}
}

func toHandle(value any) (io.Closer, bool) {
	if nilcheck.Interface(value) {
		return nil, false
	}

	switch v := value.(type) {
	case *os.File:
		return v, true
	case net.Conn:
		return v, true
	case net.Listener:
		return v, true
	case net.PacketConn:
		return v, true
	default:
		return nil, false
	}
}

func toArray(value any) ([]any, bool) {
	if v, ok := value.([]any); ok {
		return v, v != nil
	}

	rv := reflect.ValueOf(value)

	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return nil, false
		}
	case reflect.Array:
	default:
		return nil, false
	}

	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}

	return out, true
}

func toMap(value any) (map[string]any, bool) {
	if v, ok := value.(map[string]any); ok {
		return v, v != nil
	}

	var entries iter.Seq2[any, any]

	switch v := value.(type) {
	case *orderedmap.OrderedMap[string, any]:
		entries, _ = strict.Entries(v)
	default:
		if reflect.ValueOf(value).Kind() != reflect.Map {
			return nil, false
		}

		entries, _ = strict.Entries(value)
	}

	if entries == nil {
		return nil, false
	}

	out := make(map[string]any)

	for key, elem := range entries {
		s, ok := strict.KeyString(key)
		if !ok {
			return nil, false
		}

		out[s] = elem
	}

	return out, true
}

// formatIndex is the expectation used when a list key is out of sequence.
func formatIndex(next int) string {
	return "sequential key " + strconv.Itoa(next)
}
