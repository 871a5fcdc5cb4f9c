package log

import (
	"context"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"strings"
)

// controlChars escapes characters that could forge extra log lines (CWE-117).
var controlChars = strings.NewReplacer(
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

func sanitize(s string) string {
	return controlChars.Replace(s)
}

// GoLogger writes events through a standard library logger as
//
//	[level] message key=value key=value
//
// Strings in messages and field values are sanitized.
type GoLogger struct {
	out    *stdlog.Logger
	level  Level
	group  string
	fields []Field
}

// NewGoLogger returns a logger emitting events up to level on w. A nil w
// means os.Stderr.
func NewGoLogger(w io.Writer, level Level) *GoLogger {
	if w == nil {
		w = os.Stderr
	}

	return &GoLogger{
		out:   stdlog.New(w, "", stdlog.LstdFlags),
		level: level,
	}
}

// Enabled reports whether level is at or above the configured level.
func (l *GoLogger) Enabled(level Level) bool {
	if l == nil {
		return false
	}

	return l.level >= level
}

// Log writes one sanitized line: "[level] msg key=value ...".
func (l *GoLogger) Log(_ context.Context, level Level, msg string, fields ...Field) {
	if !l.Enabled(level) {
		return
	}

	var b strings.Builder

	b.WriteString("[" + level.String() + "] ")
	b.WriteString(sanitize(msg))

	for _, f := range l.fields {
		writeField(&b, "", f)
	}

	for _, f := range fields {
		writeField(&b, l.group, f)
	}

	l.out.Print(b.String())
}

func writeField(b *strings.Builder, group string, f Field) {
	key := f.Key
	if group != "" {
		key = group + "." + key
	}

	b.WriteByte(' ')
	b.WriteString(sanitize(key))
	b.WriteByte('=')

	switch v := f.Value.(type) {
	case string:
		b.WriteString(sanitize(v))
	case error:
		b.WriteString(sanitize(v.Error()))
	default:
		b.WriteString(sanitize(fmt.Sprint(v)))
	}
}

// With returns a child logger that adds fields to every event.
//
//nolint:ireturn
func (l *GoLogger) With(fields ...Field) Logger {
	if l == nil {
		return NewNop()
	}

	child := *l
	child.fields = make([]Field, 0, len(l.fields)+len(fields))
	child.fields = append(child.fields, l.fields...)

	for _, f := range fields {
		if l.group != "" {
			f.Key = l.group + "." + f.Key
		}

		child.fields = append(child.fields, f)
	}

	return &child
}

// WithGroup returns a child logger that prefixes later field keys with name.
//
//nolint:ireturn
func (l *GoLogger) WithGroup(name string) Logger {
	if l == nil {
		return NewNop()
	}

	child := *l
	child.fields = append([]Field(nil), l.fields...)

	switch {
	case name == "":
	case l.group == "":
		child.group = name
	default:
		child.group = l.group + "." + name
	}

	return &child
}

// Sync is a no-op; the standard logger writes synchronously.
func (l *GoLogger) Sync(_ context.Context) error { return nil }
