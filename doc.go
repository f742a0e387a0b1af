// Package xlite is a minimal logging facade. Application code logs through
// package-level functions; where the text goes is decided by a Sink that is
// either swapped at run time (dynamic dispatch, the default) or bound by the
// linker (static dispatch, -tags xlite_static).
//
// # Usage
//
//	xlite.Info("ready")
//	xlite.Warnf("retrying in %s", delay)
//	xlite.DebugFn(func() string { return dump(state) }) // not called when filtered
//
// With no sink configured, events go to Console, which writes
//
//	[ INFO] ready
//	[ WARN] retrying in 2s
//
// to standard output. SetLogger installs another Sink at any time; the sink
// packages under sink/ bridge to slog, zerolog, zap and waPC hosts.
//
// # Filtering
//
// A call passes two filters. The compile-time floor is chosen with one of the
// tags xlite_min_debug, xlite_min_info, xlite_min_warn, xlite_min_error or
// xlite_min_off; levels below it compile to nothing (see DebugEnabled and
// friends). The runtime minimum (SetMinimum) can only raise that floor.
//
// # Build tags
//
//	xlite_min_*      compile-time floor (at most one)
//	xlite_nodefault  no Console sink; unset dynamic dispatch drops events
//	xlite_meta       capture module path, file and line into Payload.Metadata
//	xlite_noext      remove the Extension hook
//	xlite_norfilter  remove SetMinimum/Minimum
//	xlite_static     resolve the sink (and extension) at link time
//
// Under xlite_static the host binary must define the sink with a push
// linkname, and the extension too unless xlite_noext is set:
//
//	import _ "unsafe"
//
//	//go:linkname logSink github.com/trickstertwo/xlite.externSink
//	func logSink(p xlite.Payload) { xlite.Console.Log(p) }
//
//	//go:linkname logExtension github.com/trickstertwo/xlite.externExtension
//	func logExtension(p xlite.Payload) {}
//
// Missing definitions are reported by the linker.
//
// # Failure model
//
// Logging never fails from the caller's point of view. Sinks and extensions
// own their errors; a panic inside either is recovered, and a failing
// extension does not stop the sink from running.
package xlite
