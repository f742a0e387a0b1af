package xlite

import "fmt"

// Package-level entry points. Each checks the compile-time constant first, so
// a level below the xlite_min_* floor compiles to an empty function; then the
// runtime minimum; only then is the message formatted.

// Trace logs msg at LevelTrace.
func Trace(msg string) {
	if !TraceEnabled || !runtimeAllows(LevelTrace) {
		return
	}
	emit(LevelTrace, msg)
}

// Tracef logs a fmt.Sprintf-formatted message at LevelTrace.
func Tracef(format string, args ...any) {
	if !TraceEnabled || !runtimeAllows(LevelTrace) {
		return
	}
	emit(LevelTrace, fmt.Sprintf(format, args...))
}

// TraceFn logs the message returned by fn at LevelTrace. fn is not called when
// the event is filtered out.
func TraceFn(fn func() string) {
	if !TraceEnabled || !runtimeAllows(LevelTrace) {
		return
	}
	emit(LevelTrace, fn())
}

// Debug logs msg at LevelDebug.
func Debug(msg string) {
	if !DebugEnabled || !runtimeAllows(LevelDebug) {
		return
	}
	emit(LevelDebug, msg)
}

// Debugf logs a fmt.Sprintf-formatted message at LevelDebug.
func Debugf(format string, args ...any) {
	if !DebugEnabled || !runtimeAllows(LevelDebug) {
		return
	}
	emit(LevelDebug, fmt.Sprintf(format, args...))
}

// DebugFn logs the message returned by fn at LevelDebug. fn is not called when
// the event is filtered out.
func DebugFn(fn func() string) {
	if !DebugEnabled || !runtimeAllows(LevelDebug) {
		return
	}
	emit(LevelDebug, fn())
}

// Info logs msg at LevelInfo.
func Info(msg string) {
	if !InfoEnabled || !runtimeAllows(LevelInfo) {
		return
	}
	emit(LevelInfo, msg)
}

// Infof logs a fmt.Sprintf-formatted message at LevelInfo.
func Infof(format string, args ...any) {
	if !InfoEnabled || !runtimeAllows(LevelInfo) {
		return
	}
	emit(LevelInfo, fmt.Sprintf(format, args...))
}

// InfoFn logs the message returned by fn at LevelInfo. fn is not called when
// the event is filtered out.
func InfoFn(fn func() string) {
	if !InfoEnabled || !runtimeAllows(LevelInfo) {
		return
	}
	emit(LevelInfo, fn())
}

// Warn logs msg at LevelWarn.
func Warn(msg string) {
	if !WarnEnabled || !runtimeAllows(LevelWarn) {
		return
	}
	emit(LevelWarn, msg)
}

// Warnf logs a fmt.Sprintf-formatted message at LevelWarn.
func Warnf(format string, args ...any) {
	if !WarnEnabled || !runtimeAllows(LevelWarn) {
		return
	}
	emit(LevelWarn, fmt.Sprintf(format, args...))
}

// WarnFn logs the message returned by fn at LevelWarn. fn is not called when
// the event is filtered out.
func WarnFn(fn func() string) {
	if !WarnEnabled || !runtimeAllows(LevelWarn) {
		return
	}
	emit(LevelWarn, fn())
}

// Error logs msg at LevelError.
func Error(msg string) {
	if !ErrorEnabled || !runtimeAllows(LevelError) {
		return
	}
	emit(LevelError, msg)
}

// Errorf logs a fmt.Sprintf-formatted message at LevelError.
func Errorf(format string, args ...any) {
	if !ErrorEnabled || !runtimeAllows(LevelError) {
		return
	}
	emit(LevelError, fmt.Sprintf(format, args...))
}

// ErrorFn logs the message returned by fn at LevelError. fn is not called when
// the event is filtered out.
func ErrorFn(fn func() string) {
	if !ErrorEnabled || !runtimeAllows(LevelError) {
		return
	}
	emit(LevelError, fn())
}

// Log logs msg at level. Prefer the per-level functions where the level is
// known: only they are removed entirely at compile time.
func Log(level Level, msg string) {
	if !compiledAllows(level) || !runtimeAllows(level) {
		return
	}
	emit(level, msg)
}

// Logf logs a fmt.Sprintf-formatted message at level.
func Logf(level Level, format string, args ...any) {
	if !compiledAllows(level) || !runtimeAllows(level) {
		return
	}
	emit(level, fmt.Sprintf(format, args...))
}
