package ok

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/LerianStudio/lib-strict/strict"
)

// DefaultDepth is the nesting limit used when callers have no better bound.
const DefaultDepth = 512

var (
	// ErrDepth is the cause when a document nests deeper than allowed.
	ErrDepth = errors.New("maximum stack depth exceeded")

	// ErrSyntax is the cause when a document is malformed.
	ErrSyntax = errors.New("syntax error")
)

// DecodeJSON decodes a single JSON document. Arrays become []any and objects
// map[string]any. Integral numbers that fit an int become int, every other
// number float64. Arrays and objects may nest at most depth levels.
func DecodeJSON(data string, depth int) (any, error) {
	if depth <= 0 {
		return nil, strict.NewInvalidArgument("DecodeJSON", "depth must be greater than 0")
	}

	dec := json.NewDecoder(strings.NewReader(data))
	dec.UseNumber()

	v, err := decodeJSONValue(dec, 0, depth)
	if err != nil {
		return nil, strict.NewUnexpectedFailure("DecodeJSON", err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, strict.NewUnexpectedFailure("DecodeJSON", fmt.Errorf("%w: unexpected data after document", ErrSyntax))
	}

	return v, nil
}

func decodeJSONValue(dec *json.Decoder, level, depth int) (any, error) {
	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected end of input", ErrSyntax)
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}

	switch t := tok.(type) {
	case json.Delim:
		if level+1 > depth {
			return nil, ErrDepth
		}

		switch t {
		case '[':
			return decodeJSONArray(dec, level+1, depth)
		case '{':
			return decodeJSONObject(dec, level+1, depth)
		default:
			return nil, fmt.Errorf("%w: unexpected %q", ErrSyntax, t.String())
		}
	case json.Number:
		return normalizeNumber(t.String())
	default:
		return t, nil
	}
}

func decodeJSONArray(dec *json.Decoder, level, depth int) (any, error) {
	out := []any{}

	for dec.More() {
		v, err := decodeJSONValue(dec, level, depth)
		if err != nil {
			return nil, err
		}

		out = append(out, v)
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}

	return out, nil
}

func decodeJSONObject(dec *json.Decoder, level, depth int) (any, error) {
	out := make(map[string]any)

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
		}

		key, isString := tok.(string)
		if !isString {
			return nil, fmt.Errorf("%w: object key must be a string", ErrSyntax)
		}

		v, err := decodeJSONValue(dec, level, depth)
		if err != nil {
			return nil, err
		}

		out[key] = v
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}

	return out, nil
}

// normalizeNumber returns an int for integral literals in range and a
// float64 otherwise.
func normalizeNumber(literal string) (any, error) {
	if i, err := strconv.ParseInt(literal, 10, strconv.IntSize); err == nil {
		return int(i), nil
	}

	f, err := strconv.ParseFloat(literal, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, fmt.Errorf("%w: invalid number %s", ErrSyntax, literal)
	}

	return f, nil
}

// DecodeYAML decodes a single YAML document with the same shape rules as
// DecodeJSON. Mappings with non-string keys keep their original key types.
// An empty document decodes to nil.
func DecodeYAML(data string) (any, error) {
	dec := yaml.NewDecoder(strings.NewReader(data))

	var v any
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}

		return nil, strict.NewUnexpectedFailure("DecodeYAML", err)
	}

	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, strict.NewUnexpectedFailure("DecodeYAML", fmt.Errorf("%w: more than one document", ErrSyntax))
	}

	return normalizeYAML(v), nil
}

func normalizeYAML(value any) any {
	switch v := value.(type) {
	case []any:
		for i, elem := range v {
			v[i] = normalizeYAML(elem)
		}

		return v
	case map[string]any:
		for key, elem := range v {
			v[key] = normalizeYAML(elem)
		}

		return v
	case map[any]any:
		for key, elem := range v {
			v[key] = normalizeYAML(elem)
		}

		return v
	case int64:
		if v >= math.MinInt && v <= math.MaxInt {
			return int(v)
		}

		return float64(v)
	case uint64:
		if v <= math.MaxInt {
			return int(v)
		}

		return float64(v)
	default:
		return v
	}
}
