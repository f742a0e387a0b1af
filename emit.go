package xlite

// callerDepth is the number of frames between emit and the code that called
// an entry point. Every entry point must call emit directly.
const callerDepth = 2

// emit runs after both filters passed: build the payload, run the extension,
// then hand the payload to the sink.
func emit(level Level, msg string) {
	p := newPayload(level, msg, callerDepth)
	runExtension(p)
	dispatch(p)
}
