//go:build xlite_nodefault

package xlite

// No built-in sink: until SetLogger is called, events are dropped.
var defaultSink = Discard
