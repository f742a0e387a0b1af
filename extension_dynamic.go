//go:build !xlite_noext && !xlite_static

package xlite

import "sync/atomic"

type extensionCell struct{ e Extension }

var activeExtension atomic.Pointer[extensionCell]

// SetExtension installs the extension hook; nil removes it.
func SetExtension(e Extension) {
	if e == nil {
		activeExtension.Store(nil)
		return
	}
	activeExtension.Store(&extensionCell{e: e})
}

func extend(p Payload) {
	if c := activeExtension.Load(); c != nil {
		c.e.OnLog(p)
	}
}
