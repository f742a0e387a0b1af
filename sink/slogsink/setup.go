//go:build !xlite_static

package slogsink

import (
	"io"
	"log/slog"
	"os"

	"github.com/trickstertwo/xlite"
)

// Format selects the slog handler format.
type Format uint8

const (
	FormatJSON Format = iota + 1
	FormatText
)

// Config is an explicit, code-first configuration for slog + xlite.
type Config struct {
	Writer             io.Writer            // default: os.Stdout
	MinLevel           xlite.Level          // slog handler level
	Format             Format               // JSON (default) or Text
	HandlerOptions     *slog.HandlerOptions // optional; Level is set from MinLevel
	TimestampFieldName string               // default "ts"
}

// Use builds a slog-backed sink from cfg, installs it with xlite.SetLogger
// and returns it.
func Use(cfg Config) *Sink {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}
	if cfg.TimestampFieldName == "" {
		cfg.TimestampFieldName = "ts"
	}
	opts := slog.HandlerOptions{}
	if cfg.HandlerOptions != nil {
		opts = *cfg.HandlerOptions
	}
	opts.Level = ToSlog(cfg.MinLevel)

	var h slog.Handler
	if cfg.Format == FormatText {
		h = slog.NewTextHandler(w, &opts)
	} else {
		h = slog.NewJSONHandler(w, &opts)
	}
	s := NewWithTimestampKey(slog.New(h), cfg.TimestampFieldName)
	xlite.SetLogger(s)
	return s
}
