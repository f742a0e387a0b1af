//go:build xlite_meta

package xlite

// Payload is the immutable event handed to the extension and the sink.
// It is built once per passing call and never retained by xlite.
type Payload struct {
	Level    Level
	Message  string
	Metadata Metadata
}

// MetadataEnabled reports whether call-site metadata is captured.
const MetadataEnabled = true

// Meta returns the call-site metadata.
func (p Payload) Meta() (Metadata, bool) { return p.Metadata, true }

func newPayload(level Level, msg string, skip int) Payload {
	return Payload{Level: level, Message: msg, Metadata: captureMetadata(skip + 1)}
}
