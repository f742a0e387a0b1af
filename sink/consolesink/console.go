// Package consolesink writes "[LEVEL] message" lines to an io.Writer, with
// optional ANSI colour on the level label and optional call-site metadata.
package consolesink

import (
	"io"
	"os"
	"sync"

	"github.com/trickstertwo/xlite"
)

// ColorMode controls when level labels are coloured.
type ColorMode uint8

const (
	// ColorAuto colours labels only when the writer is a terminal.
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

// Option configures a Sink.
type Option func(*Sink)

// WithColor selects the colour mode. Default: ColorAuto.
func WithColor(m ColorMode) Option {
	return func(s *Sink) { s.mode = m }
}

// WithPalette overrides the label colours.
func WithPalette(p Palette) Option {
	return func(s *Sink) { s.palette = p }
}

// WithMetadata includes module path, file and line when the payload carries
// them (builds with the xlite_meta tag).
func WithMetadata(on bool) Option {
	return func(s *Sink) { s.meta = on }
}

// WithErrorHandler receives write failures, which are dropped otherwise.
func WithErrorHandler(h func(error)) Option {
	return func(s *Sink) { s.onError = h }
}

// Sink is an xlite.Sink writing one line per payload. Safe for concurrent use;
// lines never interleave.
type Sink struct {
	mu      sync.Mutex
	w       io.Writer
	mode    ColorMode
	palette Palette
	meta    bool
	onError func(error)

	color bool
	st    stats
	line  []byte // plain rendering
	buf   []byte // coloured rendering
}

// New returns a Sink writing to w (os.Stdout when nil).
func New(w io.Writer, opts ...Option) *Sink {
	if w == nil {
		w = os.Stdout
	}
	s := &Sink{w: w, palette: PaletteDefault}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	switch s.mode {
	case ColorAlways:
		s.color = true
	case ColorNever:
		s.color = false
	default:
		s.color = isTerminal(w)
	}
	return s
}

// Colored reports whether labels are coloured.
func (s *Sink) Colored() bool { return s.color }

// Log implements xlite.Sink.
func (s *Sink) Log(p xlite.Payload) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.meta {
		s.line = xlite.AppendTextWithMeta(s.line[:0], p)
	} else {
		s.line = xlite.AppendText(s.line[:0], p)
	}
	out := s.line
	if s.color {
		if c := s.palette.forLevel(p.Level); c != "" {
			s.buf = colorLabel(s.buf[:0], s.line, c)
			out = s.buf
		}
	}
	if _, err := s.w.Write(out); err != nil {
		s.st.writeErrors.Add(1)
		if s.onError != nil {
			s.onError(err)
		}
		return
	}
	s.st.lines.Add(1)
}

// labelEnd is the offset just past "[LEVEL" in a rendered line.
const labelEnd = 1 + 5

// colorLabel copies line into dst with the level label wrapped in color.
func colorLabel(dst, line []byte, color string) []byte {
	if len(line) <= labelEnd {
		return append(dst, line...)
	}
	dst = append(dst, line[0])
	dst = append(dst, color...)
	dst = append(dst, line[1:labelEnd]...)
	dst = append(dst, ansiReset...)
	return append(dst, line[labelEnd:]...)
}
