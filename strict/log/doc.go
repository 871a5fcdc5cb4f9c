// Package log defines the logging interface used by lib-strict and a few
// typed field constructors for type-check diagnostics.
//
// The zap package provides the production adapter. GoLogger writes through
// the standard library logger and NopLogger drops everything.
package log
