package consolesink

import "github.com/trickstertwo/xlite"

const ansiReset = "\x1b[0m"

// Palette holds the ANSI sequence used for each level label.
type Palette struct {
	Trace string
	Debug string
	Info  string
	Warn  string
	Error string
}

// PaletteDefault colours labels the way most terminal loggers do.
var PaletteDefault = Palette{
	Trace: "\x1b[34m",   // blue
	Debug: "\x1b[32m",   // green
	Info:  "\x1b[1;32m", // bright green
	Warn:  "\x1b[1;33m", // bright yellow
	Error: "\x1b[1;31m", // bright red
}

func (p *Palette) forLevel(l xlite.Level) string {
	switch l {
	case xlite.LevelTrace:
		return p.Trace
	case xlite.LevelDebug:
		return p.Debug
	case xlite.LevelInfo:
		return p.Info
	case xlite.LevelWarn:
		return p.Warn
	case xlite.LevelError:
		return p.Error
	default:
		return ""
	}
}
