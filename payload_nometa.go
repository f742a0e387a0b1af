//go:build !xlite_meta

package xlite

// Payload is the immutable event handed to the extension and the sink.
// It is built once per passing call and never retained by xlite.
type Payload struct {
	Level   Level
	Message string
}

// MetadataEnabled reports whether call-site metadata is captured.
const MetadataEnabled = false

// Meta always reports false: metadata capture is compiled out.
func (p Payload) Meta() (Metadata, bool) { return Metadata{}, false }

func newPayload(level Level, msg string, _ int) Payload {
	return Payload{Level: level, Message: msg}
}
