//go:build !xlite_static

package xlite

import "sync/atomic"

// StaticDispatch reports whether the sink is resolved by the linker.
const StaticDispatch = false

// sinkCell boxes the interface so the slot can be swapped with one atomic
// pointer store.
type sinkCell struct{ s Sink }

var activeSink atomic.Pointer[sinkCell]

// SetLogger replaces the active sink. It may be called at any time, including
// while other goroutines are logging: each event goes to exactly one sink,
// either the old or the new one. A nil sink discards events.
func SetLogger(s Sink) {
	if s == nil {
		s = Discard
	}
	activeSink.Store(&sinkCell{s: s})
}

// Logger returns the sink currently receiving events.
func Logger() Sink {
	return currentSink()
}

func currentSink() Sink {
	if c := activeSink.Load(); c != nil {
		return c.s
	}
	// First use without SetLogger. CompareAndSwap keeps a concurrent
	// SetLogger from being overwritten by the default.
	activeSink.CompareAndSwap(nil, &sinkCell{s: defaultSink})
	return activeSink.Load().s
}

func dispatch(p Payload) {
	s := currentSink()
	defer recoverSilently()
	s.Log(p)
}
