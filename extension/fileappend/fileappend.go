// Package fileappend is an xlite extension that copies every event to a file.
//
// Each event is written as one "[LEVEL] message" line. The file is opened in
// append mode for every event and created when missing; existing content is
// never truncated.
package fileappend

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/trickstertwo/xclock"

	"github.com/trickstertwo/xlite"
)

// ErrNoPath is returned when the target path is empty.
var ErrNoPath = errors.New("fileappend: empty path")

const (
	fileFlags = os.O_APPEND | os.O_CREATE | os.O_WRONLY
	fileMode  = 0o644
)

// Append writes p as a single text line at the end of the file at path.
func Append(p xlite.Payload, path string) error {
	return appendLine(path, xlite.AppendText(nil, p))
}

func appendLine(path string, line []byte) error {
	if path == "" {
		return ErrNoPath
	}
	f, err := os.OpenFile(path, fileFlags, fileMode)
	if err != nil {
		return fmt.Errorf("fileappend: open %s: %w", path, err)
	}
	_, werr := f.Write(line)
	cerr := f.Close()
	if werr != nil {
		return fmt.Errorf("fileappend: write %s: %w", path, werr)
	}
	if cerr != nil {
		return fmt.Errorf("fileappend: close %s: %w", path, cerr)
	}
	return nil
}

// Option configures an Extension.
type Option func(*Extension)

// WithErrorHandler receives failures that OnLog cannot return.
func WithErrorHandler(fn func(error)) Option {
	return func(e *Extension) { e.onError = fn }
}

// WithTimestamp prefixes each line with xclock.Now() formatted by layout.
func WithTimestamp(layout string) Option {
	return func(e *Extension) { e.layout = layout }
}

// Extension appends every event it sees to one file.
type Extension struct {
	path    string
	layout  string
	onError func(error)

	mu  sync.Mutex
	buf []byte
}

// New returns an Extension writing to path.
func New(path string, opts ...Option) *Extension {
	e := &Extension{path: path}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Path returns the target file.
func (e *Extension) Path() string { return e.path }

// OnLog implements xlite.Extension.
func (e *Extension) OnLog(p xlite.Payload) {
	e.mu.Lock()
	defer e.mu.Unlock()

	b := e.buf[:0]
	if e.layout != "" {
		b = xclock.Now().AppendFormat(b, e.layout)
		b = append(b, ' ')
	}
	b = xlite.AppendText(b, p)
	e.buf = b

	if err := appendLine(e.path, b); err != nil && e.onError != nil {
		e.onError(err)
	}
}
