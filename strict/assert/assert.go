// Package assert narrows values at service boundaries and reports every
// failure through the logger, the active OpenTelemetry span and the
// strict.assertion_failures counter.
//
//	a := assert.New(ctx, logger, "config", "load")
//	port, err := assert.Narrow(ctx, a, kind.Int, raw["port"], "port")
//	if err != nil {
//		return err
//	}
package assert

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/LerianStudio/lib-strict/strict"
	"github.com/LerianStudio/lib-strict/strict/internal/nilcheck"
	"github.com/LerianStudio/lib-strict/strict/kind"
	"github.com/LerianStudio/lib-strict/strict/log"
)

const (
	// TypeMismatchEvent is the span event recorded for a rejected value.
	TypeMismatchEvent = "strict.type_mismatch"

	// UnexpectedFailureEvent is the span event recorded for a failed host call.
	UnexpectedFailureEvent = "strict.unexpected_failure"
)

// Logger is the subset of log.Logger used for reporting.
type Logger interface {
	Log(ctx context.Context, level log.Level, msg string, fields ...log.Field)
}

// Asserter carries the labels attached to every report. A nil *Asserter is
// valid: checks still run, nothing is logged.
type Asserter struct {
	ctx       context.Context
	logger    Logger
	metrics   *Metrics
	component string
	operation string
}

// New returns an Asserter. A nil ctx means context.Background and a nil
// logger disables logging.
//
//nolint:contextcheck
func New(ctx context.Context, logger Logger, component, operation string) *Asserter {
	if ctx == nil {
		ctx = context.Background()
	}

	if nilcheck.Interface(logger) {
		logger = nil
	}

	return &Asserter{
		ctx:       ctx,
		logger:    logger,
		component: component,
		operation: operation,
	}
}

// WithMetrics returns a copy of a that counts failures on m instead of the
// process-wide Metrics.
func (a *Asserter) WithMetrics(m *Metrics) *Asserter {
	if a == nil {
		return &Asserter{ctx: context.Background(), metrics: m}
	}

	c := *a
	c.metrics = m

	return &c
}

// Narrow narrows v with k. A mismatch is reported and returned unchanged.
func Narrow[T any](ctx context.Context, a *Asserter, k kind.Kind[T], v any, label string) (T, error) {
	out, err := k.Narrow(v, label)
	if err != nil {
		a.report(ctx, err)

		var zero T

		return zero, err
	}

	return out, nil
}

// Succeeds reports and returns a failed host call as an
// *strict.UnexpectedFailureError naming operation. Errors that already come
// from lib-strict are reported as they are.
func (a *Asserter) Succeeds(ctx context.Context, operation string, err error) error {
	if err == nil {
		return nil
	}

	var (
		typeErr *strict.TypeError
		failure *strict.UnexpectedFailureError
	)

	if !errors.As(err, &typeErr) && !errors.As(err, &failure) {
		err = strict.NewUnexpectedFailure(operation, err)
	}

	a.report(ctx, err)

	return err
}

// NotNil rejects nil, including typed nil pointers, maps, slices and funcs.
func (a *Asserter) NotNil(ctx context.Context, v any, label string) error {
	if !nilcheck.Interface(v) {
		return nil
	}

	err := strict.NewTypeError("non-nil value", v, label)
	a.report(ctx, err)

	return err
}

func (a *Asserter) values(ctx context.Context) (context.Context, Logger, string, string) {
	if a == nil {
		if ctx == nil {
			ctx = context.Background()
		}

		return ctx, nil, "", ""
	}

	if ctx == nil {
		ctx = a.ctx
	}

	return ctx, a.logger, a.component, a.operation
}

func (a *Asserter) report(ctx context.Context, err error) {
	ctx, logger, component, operation := a.values(ctx)

	event, msg := UnexpectedFailureEvent, "unexpected failure"

	var typeErr *strict.TypeError
	if errors.As(err, &typeErr) {
		event, msg = TypeMismatchEvent, "type mismatch"
	}

	if logger != nil {
		fields := make([]log.Field, 0, 8)

		if component != "" {
			fields = append(fields, log.String("component", component))
		}

		if operation != "" {
			fields = append(fields, log.String("operation", operation))
		}

		fields = append(fields, log.Failure(err)...)
		logger.Log(ctx, log.LevelError, msg, fields...)
	}

	recordToSpan(ctx, event, err, component, operation)

	m := GetMetrics()
	if a != nil && a.metrics != nil {
		m = a.metrics
	}

	m.Record(ctx, component, operation, event)
}

func recordToSpan(ctx context.Context, event string, err error, component, operation string) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	attrs := make([]attribute.KeyValue, 0, 6)

	if component != "" {
		attrs = append(attrs, attribute.String("strict.component", component))
	}

	if operation != "" {
		attrs = append(attrs, attribute.String("strict.operation", operation))
	}

	var (
		typeErr *strict.TypeError
		failure *strict.UnexpectedFailureError
	)

	switch {
	case errors.As(err, &typeErr):
		attrs = append(attrs,
			attribute.String("strict.expected", typeErr.Expected),
			attribute.String("strict.actual", typeErr.Actual),
			attribute.String("strict.preview", typeErr.Preview),
			attribute.String("strict.context", typeErr.Context),
		)
	case errors.As(err, &failure):
		attrs = append(attrs,
			attribute.String("strict.failed_operation", failure.Operation),
			attribute.String("strict.message", failure.Message),
		)
	}

	span.AddEvent(event, trace.WithAttributes(attrs...))
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
