package zerologsink

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/trickstertwo/xclock"
	"github.com/trickstertwo/xlite"
)

// Sink bridges xlite to rs/zerolog.
//
// Events below the zerolog logger's level are dropped before an Event is
// allocated. The xclock timestamp is written as "ts" in RFC3339Nano.
type Sink struct {
	l zerolog.Logger
}

func New(l zerolog.Logger) *Sink {
	return &Sink{l: l}
}

func (s *Sink) Log(p xlite.Payload) {
	zlvl := ToZerologLevel(p.Level)
	if zlvl < s.l.GetLevel() {
		return
	}
	ev := s.l.WithLevel(zlvl)
	ev.Str("ts", xclock.Now().UTC().Format(time.RFC3339Nano))
	if m, ok := p.Meta(); ok {
		ev.Str("module", m.ModulePath).Str("file", m.File).Int("line", m.Line)
	}
	ev.Msg(p.Message)
}

// ToZerologLevel maps xlite levels one to one onto zerolog.
func ToZerologLevel(l xlite.Level) zerolog.Level {
	switch l {
	case xlite.LevelTrace:
		return zerolog.TraceLevel
	case xlite.LevelDebug:
		return zerolog.DebugLevel
	case xlite.LevelInfo:
		return zerolog.InfoLevel
	case xlite.LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}
