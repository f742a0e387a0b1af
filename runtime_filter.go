//go:build !xlite_norfilter

package xlite

import "sync/atomic"

// RuntimeFilterEnabled reports whether SetMinimum/Minimum are compiled in.
const RuntimeFilterEnabled = true

// runtimeMinimum holds level+1; zero means "never set" and reads as
// CompiledMinimum, so no initialisation step is needed.
var runtimeMinimum atomic.Uint32

// SetMinimum sets the process-wide minimum level. It only ever raises the
// effective floor: call sites removed by the xlite_min_* tag stay removed even
// when level is lower. Levels above LevelError silence everything.
func SetMinimum(level Level) {
	runtimeMinimum.Store(uint32(level) + 1)
}

// Minimum returns the level last passed to SetMinimum, or CompiledMinimum.
func Minimum() Level {
	v := runtimeMinimum.Load()
	if v == 0 {
		return CompiledMinimum
	}
	return Level(v - 1)
}

func runtimeAllows(level Level) bool {
	return level >= Minimum()
}
