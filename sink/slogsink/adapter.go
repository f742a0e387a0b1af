package slogsink

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/trickstertwo/xclock"
	"github.com/trickstertwo/xlite"
)

// Sink forwards xlite payloads to a *slog.Logger using LogAttrs.
type Sink struct {
	l     *slog.Logger
	tsKey string
}

// New returns a Sink writing to l (slog.Default() when nil).
func New(l *slog.Logger) *Sink {
	return NewWithTimestampKey(l, "ts")
}

// NewWithTimestampKey lets callers override the timestamp attribute key.
// An empty key disables the attribute.
func NewWithTimestampKey(l *slog.Logger, tsKey string) *Sink {
	if l == nil {
		l = slog.Default()
	}
	return &Sink{l: l, tsKey: tsKey}
}

// Log emits one record. The timestamp comes from xclock so that frozen
// clocks apply.
func (s *Sink) Log(p xlite.Payload) {
	lvl := ToSlog(p.Level)
	ctx := context.Background()
	if !s.l.Enabled(ctx, lvl) {
		return
	}
	attrs := make([]slog.Attr, 0, 3)
	if s.tsKey != "" {
		attrs = append(attrs, slog.Time(s.tsKey, xclock.Now()))
	}
	if m, ok := p.Meta(); ok {
		attrs = append(attrs,
			slog.String("module", m.ModulePath),
			slog.String("source", m.File+":"+strconv.Itoa(m.Line)),
		)
	}
	s.l.LogAttrs(ctx, lvl, p.Message, attrs...)
}

// ToSlog maps xlite levels onto slog's numeric scale; Trace sits at -8.
func ToSlog(l xlite.Level) slog.Level {
	switch l {
	case xlite.LevelTrace:
		return slog.LevelDebug - 4
	case xlite.LevelDebug:
		return slog.LevelDebug
	case xlite.LevelInfo:
		return slog.LevelInfo
	case xlite.LevelWarn:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
