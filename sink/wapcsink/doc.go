/*
Package wapcsink forwards xlite events from a WebAssembly guest to its waPC host.

Each payload becomes one host call on the "logging" capability. The function
name is the level ("Trace", "Debug", "Info", "Warn", "Error") and the call
payload is the message text, which is what Tarmac-style hosts expect.

Quick start

	s, _ := wapcsink.New(wapcsink.Config{})
	xlite.SetLogger(s)

Tests inject Config.HostCall to observe calls without a host.
*/
package wapcsink
