package xlite

// Per-level compile-time switches. They are constants, so a guarded block
// such as
//
//	if xlite.DebugEnabled {
//		xlite.Debugf("state=%v", expensive())
//	}
//
// is removed by the compiler when Debug is below the xlite_min_* floor and
// its arguments are never evaluated.
const (
	TraceEnabled = !CompiledOff && LevelTrace >= CompiledMinimum
	DebugEnabled = !CompiledOff && LevelDebug >= CompiledMinimum
	InfoEnabled  = !CompiledOff && LevelInfo >= CompiledMinimum
	WarnEnabled  = !CompiledOff && LevelWarn >= CompiledMinimum
	ErrorEnabled = !CompiledOff && LevelError >= CompiledMinimum
)

// compiledAllows also rejects values outside the five defined levels.
func compiledAllows(level Level) bool {
	return !CompiledOff && level >= CompiledMinimum && level.Valid()
}

// Enabled reports whether an event at level would currently reach the sink,
// combining the compile-time floor with the runtime minimum.
func Enabled(level Level) bool {
	return compiledAllows(level) && runtimeAllows(level)
}
