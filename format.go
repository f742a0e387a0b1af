package xlite

import (
	"strconv"
	"sync"
)

// AppendText appends the documented text form "[LEVEL] message\n" to dst.
func AppendText(dst []byte, p Payload) []byte {
	dst = append(dst, '[')
	dst = append(dst, p.Level.String()...)
	dst = append(dst, "] "...)
	dst = append(dst, p.Message...)
	return append(dst, '\n')
}

// AppendTextWithMeta appends "[LEVEL] module file:line message\n" when the
// payload carries metadata, and falls back to AppendText otherwise.
func AppendTextWithMeta(dst []byte, p Payload) []byte {
	m, ok := p.Meta()
	if !ok {
		return AppendText(dst, p)
	}
	dst = append(dst, '[')
	dst = append(dst, p.Level.String()...)
	dst = append(dst, "] "...)
	if m.ModulePath != "" {
		dst = append(dst, m.ModulePath...)
		dst = append(dst, ' ')
	}
	if m.File != "" {
		dst = append(dst, m.File...)
		dst = append(dst, ':')
		dst = strconv.AppendInt(dst, int64(m.Line), 10)
		dst = append(dst, ' ')
	}
	dst = append(dst, p.Message...)
	return append(dst, '\n')
}

type buffer struct{ b []byte }

var bufPool = sync.Pool{New: func() any { return &buffer{b: make([]byte, 0, 256)} }}

func getBuf() *buffer {
	buf := bufPool.Get().(*buffer)
	buf.b = buf.b[:0]
	return buf
}

func putBuf(buf *buffer) {
	// Oversized buffers are left to the GC.
	if cap(buf.b) <= 64*1024 {
		bufPool.Put(buf)
	}
}
