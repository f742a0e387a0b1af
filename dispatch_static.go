//go:build xlite_static

package xlite

import _ "unsafe" // go:linkname

// StaticDispatch reports whether the sink is resolved by the linker.
const StaticDispatch = true

// externSink has no body here; the host binary provides it:
//
//	import _ "unsafe"
//
//	//go:linkname logSink github.com/trickstertwo/xlite.externSink
//	func logSink(p xlite.Payload) { ... }
//
// A binary that does not define it fails to link.
//
//go:linkname externSink github.com/trickstertwo/xlite.externSink
func externSink(p Payload)

func dispatch(p Payload) {
	defer recoverSilently()
	externSink(p)
}
