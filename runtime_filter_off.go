//go:build xlite_norfilter

package xlite

// RuntimeFilterEnabled reports whether SetMinimum/Minimum are compiled in.
const RuntimeFilterEnabled = false

func runtimeAllows(Level) bool { return true }
