package consolesink

import "sync/atomic"

type stats struct {
	lines       atomic.Uint64
	writeErrors atomic.Uint64
}

// StatsSnapshot is a point-in-time counters snapshot.
type StatsSnapshot struct {
	Lines       uint64 // lines handed to the writer successfully
	WriteErrors uint64
}

func (s *stats) snapshot() StatsSnapshot {
	return StatsSnapshot{
		Lines:       s.lines.Load(),
		WriteErrors: s.writeErrors.Load(),
	}
}

func (s *stats) reset() {
	s.lines.Store(0)
	s.writeErrors.Store(0)
}

// Stats returns a snapshot of internal counters.
func (s *Sink) Stats() StatsSnapshot { return s.st.snapshot() }

// ResetStats resets internal counters.
func (s *Sink) ResetStats() { s.st.reset() }
