// Package kind defines narrowing targets for loosely typed values.
//
// A Kind pairs a diagnostic name with a function that returns a value as a
// concrete Go type or fails with *strict.TypeError. Primitive kinds (Bool, Int,
// Float, String, ...) cover scalars and handles; combinators (Nullable, ListOf,
// MapOf, OneOrList, OneOrMap) build collection kinds on top of them.
//
//	ports, err := kind.ListOf(kind.Int).Narrow(raw["ports"], "ports")
//	if err != nil {
//		return fmt.Errorf("load config: %w", err)
//	}
//
// Parse builds erased kinds from textual expressions such as "list<string>"
// or "?int" for tooling that receives kinds as input.
package kind
