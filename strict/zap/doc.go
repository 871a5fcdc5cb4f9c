// Package zap adapts go.uber.org/zap to the lib-strict log.Logger interface.
//
// Events logged with a context that carries an OpenTelemetry span are
// annotated with trace_id and span_id, and every event is also forwarded to
// the OpenTelemetry log bridge.
package zap
