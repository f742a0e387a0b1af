//go:build !xlite_noext && xlite_static

package xlite

import _ "unsafe" // go:linkname

// externExtension is provided by the host binary, like externSink:
//
//	//go:linkname logExtension github.com/trickstertwo/xlite.externExtension
//	func logExtension(p xlite.Payload) { ... }
//
//go:linkname externExtension github.com/trickstertwo/xlite.externExtension
func externExtension(p Payload)

func extend(p Payload) {
	externExtension(p)
}
