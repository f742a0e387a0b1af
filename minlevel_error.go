//go:build xlite_min_error

package xlite

const (
	CompiledMinimum = LevelError
	CompiledOff     = false
)
