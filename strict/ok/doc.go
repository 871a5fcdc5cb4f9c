// Package ok wraps host primitives that report failure through a sentinel
// return value and turns that failure into an error.
//
// Every wrapper returns its narrowed result on success. On failure it returns
// a *strict.UnexpectedFailureError whose Operation is the wrapper name (Open,
// Read, Match, ...) and whose Message is the host error text. Arguments that
// can never succeed are rejected before the host call with an error matching
// strict.ErrInvalidArgument.
//
// Covered areas: files and directories, regular expressions, JSON and YAML
// decoding, nested output buffers, environment variables, date parsing,
// sockets and binary packing.
package ok
