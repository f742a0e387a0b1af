package xlite

import (
	"io"
	"sync"
)

// Sink turns a Payload into an external effect. Implementations must be safe
// for concurrent use and handle their own failures: xlite never inspects them.
type Sink interface {
	Log(p Payload)
}

// SinkFunc adapts a plain function to Sink.
type SinkFunc func(Payload)

func (f SinkFunc) Log(p Payload) { f(p) }

// Discard drops every payload.
var Discard Sink = discardSink{}

type discardSink struct{}

func (discardSink) Log(Payload) {}

// TextSink writes one AppendText line per payload to an io.Writer.
// Write errors are dropped.
type TextSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewTextSink returns a TextSink writing to w. A nil w discards output.
func NewTextSink(w io.Writer) *TextSink {
	if w == nil {
		w = io.Discard
	}
	return &TextSink{w: w}
}

func (s *TextSink) Log(p Payload) {
	buf := getBuf()
	buf.b = AppendText(buf.b, p)
	s.mu.Lock()
	_, _ = s.w.Write(buf.b)
	s.mu.Unlock()
	putBuf(buf)
}

// recoverSilently is deferred around sink and extension calls so that a
// misbehaving collaborator cannot unwind into the caller.
func recoverSilently() {
	_ = recover()
}
