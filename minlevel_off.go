//go:build xlite_min_off

package xlite

// xlite_min_off: no call site is compiled in.

const (
	CompiledMinimum = LevelError
	CompiledOff     = true
)
