package xlite

import (
	"sync"
	"testing"
)

// recordingSink is a minimal Sink for tests. It records every payload.
type recordingSink struct {
	mu       sync.Mutex
	payloads []Payload
}

func (s *recordingSink) Log(p Payload) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payloads = append(s.payloads, p)
}

func (s *recordingSink) snapshot() []Payload {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Payload, len(s.payloads))
	copy(out, s.payloads)
	return out
}

// requireCompiled skips tests whose level is removed by an xlite_min_* tag.
func requireCompiled(t *testing.T, levels ...Level) {
	t.Helper()
	for _, l := range levels {
		if !compiledAllows(l) {
			t.Skipf("%s compiled out (floor %s, off=%t)", l.Name(), CompiledMinimum.Name(), CompiledOff)
		}
	}
}
