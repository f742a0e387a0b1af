//go:build !xlite_nodefault

package xlite

import "os"

// Console is the built-in sink: "[LEVEL] message" lines on standard output.
// In dynamic mode it is installed on first use when no sink was set.
var Console Sink = NewTextSink(os.Stdout)

var defaultSink = Console
