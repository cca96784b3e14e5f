package logx

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ZerologAdapter adapts zerolog.Logger to the logx.Logger interface.
type ZerologAdapter struct {
	l zerolog.Logger
}

// NewZerologAdapter returns a JSON Logger writing to w at the given level.
func NewZerologAdapter(w io.Writer, level string, service string) Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	l := zerolog.New(w).With().Timestamp().Str("service", service).Logger().Level(ParseZerologLevel(level))
	return &ZerologAdapter{l: l}
}

// ParseZerologLevel maps a level name to zerolog, defaulting to info.
func ParseZerologLevel(value string) zerolog.Level {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return zerolog.InfoLevel
	}
	if lvl, err := zerolog.ParseLevel(v); err == nil {
		return lvl
	}
	return zerolog.InfoLevel
}

// Debug logs a debug-level message with optional structured fields.
func (z *ZerologAdapter) Debug(msg string, fields ...Field) { withFields(z.l.Debug(), fields).Msg(msg) }

// Info logs an info-level message with optional structured fields.
func (z *ZerologAdapter) Info(msg string, fields ...Field) { withFields(z.l.Info(), fields).Msg(msg) }

// Warn logs a warning-level message with optional structured fields.
func (z *ZerologAdapter) Warn(msg string, fields ...Field) { withFields(z.l.Warn(), fields).Msg(msg) }

// Error logs an error-level message with optional structured fields.
func (z *ZerologAdapter) Error(msg string, fields ...Field) { withFields(z.l.Error(), fields).Msg(msg) }

// With returns a child logger carrying fields.
func (z *ZerologAdapter) With(fields ...Field) Logger {
	ctx := z.l.With()
	for _, f := range fields {
		if err, ok := f.Value.(error); ok {
			ctx = ctx.AnErr(f.Key, err)
			continue
		}
		ctx = ctx.Interface(f.Key, f.Value)
	}
	return &ZerologAdapter{l: ctx.Logger()}
}

// Sync is a no-op, zerolog writes synchronously.
func (z *ZerologAdapter) Sync() error { return nil }

func withFields(e *zerolog.Event, fields []Field) *zerolog.Event {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case error:
			e = e.AnErr(f.Key, v)
		case string:
			e = e.Str(f.Key, v)
		case int:
			e = e.Int(f.Key, v)
		case time.Duration:
			e = e.Dur(f.Key, v)
		default:
			e = e.Interface(f.Key, v)
		}
	}
	return e
}
