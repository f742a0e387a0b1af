//go:build xlite_min_debug

package xlite

const (
	CompiledMinimum = LevelDebug
	CompiledOff     = false
)
