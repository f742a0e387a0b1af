//go:build xlite_min_warn

package xlite

const (
	CompiledMinimum = LevelWarn
	CompiledOff     = false
)
