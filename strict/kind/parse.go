package kind

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownKind is returned by Parse for an expression it cannot build.
var ErrUnknownKind = errors.New("unknown kind")

var named = map[string]Kind[any]{
	"mixed":    Mixed,
	"bool":     Any(Bool),
	"int":      Any(Int),
	"float":    Any(Float),
	"string":   Any(String),
	"stringy":  Any(Stringy),
	"true":     Any(True),
	"callable": Callable,
	"object":   Object,
	"handle":   Any(Handle),
	"file":     Any(File),
	"socket":   Any(Socket),
	"array":    Any(Array),
	"map":      Any(Map),
	"iterable": Any(Iterable),
	"decimal":  Any(Decimal),
	"uuid":     Any(UUID),
}

// Names returns the primitive kind names understood by Parse, sorted.
func Names() []string {
	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Parse builds an erased Kind from an expression.
//
// Grammar:
//
//	expr  = term { "|" term }
//	term  = "?" term | "list<" expr ">" | "map<" expr ">" | name
//
// "?int" accepts nil or an int, "list<string>" a list of strings, and
// "string|list<string>" either form.
func Parse(expr string) (Kind[any], error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return Kind[any]{}, fmt.Errorf("%w: empty expression", ErrUnknownKind)
	}

	alternatives, err := splitTopLevel(expr)
	if err != nil {
		return Kind[any]{}, err
	}

	if len(alternatives) > 1 {
		kinds := make([]Kind[any], 0, len(alternatives))
		names := make([]string, 0, len(alternatives))

		for _, alt := range alternatives {
			k, err := Parse(alt)
			if err != nil {
				return Kind[any]{}, err
			}

			kinds = append(kinds, k)
			names = append(names, k.Name())
		}

		return Union(strings.Join(names, " or "), kinds...), nil
	}

	return parseTerm(expr)
}

func parseTerm(expr string) (Kind[any], error) {
	switch {
	case strings.HasPrefix(expr, "?"):
		inner, err := Parse(expr[1:])
		if err != nil {
			return Kind[any]{}, err
		}

		return nullableAny(inner), nil
	case strings.HasPrefix(expr, "list<") && strings.HasSuffix(expr, ">"):
		inner, err := Parse(expr[len("list<") : len(expr)-1])
		if err != nil {
			return Kind[any]{}, err
		}

		return Any(ListOf(inner)), nil
	case strings.HasPrefix(expr, "map<") && strings.HasSuffix(expr, ">"):
		inner, err := Parse(expr[len("map<") : len(expr)-1])
		if err != nil {
			return Kind[any]{}, err
		}

		return Any(MapOf(inner)), nil
	}

	k, ok := named[strings.ToLower(expr)]
	if !ok {
		return Kind[any]{}, fmt.Errorf("%w: %q", ErrUnknownKind, expr)
	}

	return k, nil
}

// nullableAny is Nullable for erased kinds: nil stays nil instead of
// becoming a pointer.
func nullableAny(k Kind[any]) Kind[any] {
	name := k.Name() + " or null"

	return Kind[any]{
		name: name,
		narrow: func(value any, context string) (any, error) {
			if value == nil {
				return nil, nil
			}

			v, err := k.check(value, context)
			if err != nil {
				return nil, widenScalar(err, name, value, context)
			}

			return v, nil
		},
	}
}

func splitTopLevel(expr string) ([]string, error) {
	var parts []string

	depth := 0
	start := 0

	for i, r := range expr {
		switch r {
		case '<':
			depth++
		case '>':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("%w: unbalanced %q", ErrUnknownKind, expr)
			}
		case '|':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(expr[start:i]))
				start = i + 1
			}
		}
	}

	if depth != 0 {
		return nil, fmt.Errorf("%w: unbalanced %q", ErrUnknownKind, expr)
	}

	return append(parts, strings.TrimSpace(expr[start:])), nil
}
