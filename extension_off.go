//go:build xlite_noext

package xlite

// ExtensionsEnabled reports whether the extension hook is compiled in.
const ExtensionsEnabled = false

func runExtension(Payload) {}
