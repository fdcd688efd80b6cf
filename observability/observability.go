// Package observability defines the logging hooks the viewer exposes.
// The library never logs on its own; hosts inject a Logger (or the slog
// bridge) to watch gesture classification and state commits.
package observability

import "log/slog"

// Logger is a leveled, structured logger.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
}

// Field is a typed key/value pair.
type Field interface {
	Key() string
	Value() interface{}
}

type stringField struct{ key, val string }

func (f stringField) Key() string        { return f.key }
func (f stringField) Value() interface{} { return f.val }

type intField struct {
	key string
	val int
}

func (f intField) Key() string        { return f.key }
func (f intField) Value() interface{} { return f.val }

type float64Field struct {
	key string
	val float64
}

func (f float64Field) Key() string        { return f.key }
func (f float64Field) Value() interface{} { return f.val }

type boolField struct {
	key string
	val bool
}

func (f boolField) Key() string        { return f.key }
func (f boolField) Value() interface{} { return f.val }

type errorField struct {
	key string
	err error
}

func (f errorField) Key() string        { return f.key }
func (f errorField) Value() interface{} { return f.err }

func String(key, value string) Field          { return stringField{key, value} }
func Int(key string, value int) Field         { return intField{key, value} }
func Float64(key string, value float64) Field { return float64Field{key, value} }
func Bool(key string, value bool) Field       { return boolField{key, value} }
func Error(key string, err error) Field       { return errorField{key, err} }

// NopLogger discards everything. It is the default.
type NopLogger struct{}

func (NopLogger) Debug(string, ...Field) {}
func (NopLogger) Info(string, ...Field)  {}
func (NopLogger) Warn(string, ...Field)  {}
func (NopLogger) Error(string, ...Field) {}
func (NopLogger) With(...Field) Logger   { return NopLogger{} }

// SlogLogger adapts a *slog.Logger to Logger.
type SlogLogger struct {
	L *slog.Logger
}

// NewSlog wraps l; a nil l uses slog.Default().
func NewSlog(l *slog.Logger) SlogLogger {
	if l == nil {
		l = slog.Default()
	}
	return SlogLogger{L: l}
}

func (s SlogLogger) Debug(msg string, fields ...Field) { s.L.Debug(msg, args(fields)...) }
func (s SlogLogger) Info(msg string, fields ...Field)  { s.L.Info(msg, args(fields)...) }
func (s SlogLogger) Warn(msg string, fields ...Field)  { s.L.Warn(msg, args(fields)...) }
func (s SlogLogger) Error(msg string, fields ...Field) { s.L.Error(msg, args(fields)...) }

func (s SlogLogger) With(fields ...Field) Logger {
	return SlogLogger{L: s.L.With(args(fields)...)}
}

func args(fields []Field) []any {
	out := make([]any, 0, 2*len(fields))
	for _, f := range fields {
		out = append(out, f.Key(), f.Value())
	}
	return out
}
