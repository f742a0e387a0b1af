//go:build !xlite_static

package zerologsink

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/trickstertwo/xlite"
)

// Config is an explicit, code-first configuration for zerolog + xlite.
type Config struct {
	Writer            io.Writer // default: os.Stdout
	MinLevel          xlite.Level
	Console           bool   // zerolog.ConsoleWriter instead of JSON
	ConsoleTimeFormat string // only used if Console; default time.RFC3339Nano
}

// Use builds a zerolog-backed sink from cfg, installs it with xlite.SetLogger
// and returns it.
func Use(cfg Config) *Sink {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}

	var zl zerolog.Logger
	if cfg.Console {
		cw := zerolog.ConsoleWriter{Out: w, TimeFormat: cfg.ConsoleTimeFormat}
		if cw.TimeFormat == "" {
			cw.TimeFormat = time.RFC3339Nano
		}
		zl = zerolog.New(cw)
	} else {
		zl = zerolog.New(w)
	}
	zl = zl.Level(ToZerologLevel(cfg.MinLevel))

	s := New(zl)
	xlite.SetLogger(s)
	return s
}
