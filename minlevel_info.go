//go:build xlite_min_info

package xlite

const (
	CompiledMinimum = LevelInfo
	CompiledOff     = false
)
