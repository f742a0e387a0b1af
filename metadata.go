//go:build xlite_meta

package xlite

import (
	"runtime"
	"strings"
)

// captureMetadata resolves the frame skip levels above its caller.
// runtime.Callers counts inlined frames, so skip is a logical depth.
func captureMetadata(skip int) Metadata {
	var pcs [1]uintptr
	// Skip runtime.Callers and captureMetadata.
	if runtime.Callers(skip+2, pcs[:]) == 0 {
		return Metadata{}
	}
	frame, _ := runtime.CallersFrames(pcs[:]).Next()
	return Metadata{
		ModulePath: packagePath(frame.Function),
		File:       frame.File,
		Line:       frame.Line,
	}
}

// packagePath strips the function and receiver from a fully qualified
// function name: "example.com/a/b.(*T).M" becomes "example.com/a/b".
func packagePath(fn string) string {
	if fn == "" {
		return ""
	}
	slash := strings.LastIndexByte(fn, '/')
	if dot := strings.IndexByte(fn[slash+1:], '.'); dot >= 0 {
		return fn[:slash+1+dot]
	}
	return fn
}
