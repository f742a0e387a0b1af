package zapsink

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/xclock"
	"github.com/trickstertwo/xlite"
)

// Sink bridges xlite to go.uber.org/zap.
//
// It uses Logger.Check so nothing is built for levels the zap core rejects,
// and writes the xclock timestamp as an RFC3339Nano string field.
type Sink struct {
	l     *zap.Logger
	al    *zap.AtomicLevel // optional, enables SetMinLevel
	tsKey string
}

// New creates a sink for the provided zap logger.
func New(l *zap.Logger) *Sink {
	return NewWithTimestampKey(l, nil, "ts")
}

// NewWithTimestampKey wires an optional AtomicLevel and overrides the
// timestamp field key. An empty key disables the field.
func NewWithTimestampKey(l *zap.Logger, al *zap.AtomicLevel, tsKey string) *Sink {
	if l == nil {
		l = zap.NewNop()
	}
	return &Sink{l: l, al: al, tsKey: tsKey}
}

func (s *Sink) Log(p xlite.Payload) {
	ce := s.l.Check(ToZapLevel(p.Level), p.Message)
	if ce == nil {
		return
	}
	fs := make([]zap.Field, 0, 3)
	if s.tsKey != "" {
		fs = append(fs, zap.String(s.tsKey, xclock.Now().UTC().Format(time.RFC3339Nano)))
	}
	if m, ok := p.Meta(); ok {
		fs = append(fs, zap.String("module", m.ModulePath), zap.String("file", m.File), zap.Int("line", m.Line))
	}
	ce.Write(fs...)
}

// SetMinLevel updates the zap core filter when an AtomicLevel was supplied.
func (s *Sink) SetMinLevel(l xlite.Level) {
	if s.al == nil {
		return
	}
	s.al.SetLevel(ToZapLevel(l))
}

// Sync flushes the underlying zap core.
func (s *Sink) Sync() error {
	return s.l.Sync()
}

// ToZapLevel maps xlite levels to zap; zap has no trace, so Trace maps to
// Debug.
func ToZapLevel(l xlite.Level) zapcore.Level {
	switch l {
	case xlite.LevelTrace, xlite.LevelDebug:
		return zapcore.DebugLevel
	case xlite.LevelInfo:
		return zapcore.InfoLevel
	case xlite.LevelWarn:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
