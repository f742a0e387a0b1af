package xlite

import "strings"

// Level is the severity of a log event. The order is fixed:
// Trace < Debug < Info < Warn < Error.
type Level uint8

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

// Fixed-width labels so that "[LEVEL]" columns line up.
var levelLabels = [...]string{
	LevelTrace: "TRACE",
	LevelDebug: "DEBUG",
	LevelInfo:  " INFO",
	LevelWarn:  " WARN",
	LevelError: "ERROR",
}

var levelNames = [...]string{
	LevelTrace: "trace",
	LevelDebug: "debug",
	LevelInfo:  "info",
	LevelWarn:  "warn",
	LevelError: "error",
}

// String returns the 5-character, right-aligned label ("TRACE", " INFO", ...).
func (l Level) String() string {
	if l.Valid() {
		return levelLabels[l]
	}
	return "?????"
}

// Name returns the lower-case level name without padding.
func (l Level) Name() string {
	if l.Valid() {
		return levelNames[l]
	}
	return "unknown"
}

// Valid reports whether l is one of the five defined levels.
func (l Level) Valid() bool { return l <= LevelError }

// LevelOf converts a raw value into a Level.
func LevelOf(v uint8) (Level, bool) {
	l := Level(v)
	return l, l.Valid()
}

// ParseLevel converts a textual level ("trace", "debug", "info", "warn",
// "warning", "error"; case insensitive) into a Level.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return LevelTrace, true
	case "debug":
		return LevelDebug, true
	case "info":
		return LevelInfo, true
	case "warn", "warning":
		return LevelWarn, true
	case "error":
		return LevelError, true
	default:
		return LevelInfo, false
	}
}
