//go:build !xlite_min_off && !xlite_min_debug && !xlite_min_info && !xlite_min_warn && !xlite_min_error

package xlite

// No xlite_min_* tag: every level is compiled in.

const (
	CompiledMinimum = LevelTrace
	CompiledOff     = false
)
