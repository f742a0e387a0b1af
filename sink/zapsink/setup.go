//go:build !xlite_static

package zapsink

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/xlite"
)

// Config is an explicit, code-first configuration for zap + xlite.
type Config struct {
	Writer             io.Writer // default: os.Stdout
	MinLevel           xlite.Level
	Console            bool                  // zapcore console encoder instead of JSON
	EncoderConfig      zapcore.EncoderConfig // if zero, a sensible default is used
	TimestampFieldName string                // default "ts"
}

// Use builds a zap-backed sink from cfg, installs it with xlite.SetLogger and
// returns it.
func Use(cfg Config) *Sink {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}
	if cfg.TimestampFieldName == "" {
		cfg.TimestampFieldName = "ts"
	}

	encCfg := cfg.EncoderConfig
	if encCfg.LevelKey == "" && encCfg.MessageKey == "" {
		encCfg = zapcore.EncoderConfig{
			LevelKey:       "level",
			MessageKey:     "message",
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		}
	}
	// The sink writes its own timestamp field.
	encCfg.TimeKey = ""

	var enc zapcore.Encoder
	if cfg.Console {
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	al := zap.NewAtomicLevelAt(ToZapLevel(cfg.MinLevel))
	core := zapcore.NewCore(enc, zapcore.AddSync(w), al)
	zl := zap.New(core, zap.AddStacktrace(zapcore.FatalLevel+1))

	s := NewWithTimestampKey(zl, &al, cfg.TimestampFieldName)
	xlite.SetLogger(s)
	return s
}
