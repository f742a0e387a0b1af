//go:build !xlite_noext

package xlite

// ExtensionsEnabled reports whether the extension hook is compiled in.
const ExtensionsEnabled = true

// Extension runs alongside the sink, immediately before it, on the logging
// goroutine. Failures must stay inside the extension; a panic is recovered and
// the sink still runs.
type Extension interface {
	OnLog(p Payload)
}

// ExtensionFunc adapts a plain function to Extension.
type ExtensionFunc func(Payload)

func (f ExtensionFunc) OnLog(p Payload) { f(p) }

func runExtension(p Payload) {
	defer recoverSilently()
	extend(p)
}
