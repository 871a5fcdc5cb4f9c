// Package strict provides the error taxonomy and value helpers shared by the
// narrowing, collection and safe-wrapper subpackages.
//
// Two error kinds exist:
//
//   - *TypeError: a value did not have the expected runtime type.
//   - *UnexpectedFailureError: a host primitive reported failure.
//
// Callers match on kind with errors.Is or errors.As rather than on message text:
//
//	if errors.Is(err, strict.ErrTypeMismatch) {
//		// handle bad input
//	}
//
// Narrowing lives in the kind and typeis subpackages, lazy and eager collection
// conversion in seq and cast, loose conversion in convert and the host wrappers
// in ok.
package strict
