package wapcsink

import (
	"errors"

	wapc "github.com/wapc/wapc-guest-tinygo"

	"github.com/trickstertwo/xlite"
)

const (
	// DefaultNamespace is used when Config.Namespace is empty.
	DefaultNamespace = "tarmac"

	capabilityName = "logging"
)

// ErrHostCall wraps failures reported by the host.
var ErrHostCall = errors.New("wapcsink: host call failed")

// HostCall is the waPC host function signature.
type HostCall func(namespace, capability, function string, payload []byte) ([]byte, error)

// Config controls how the sink reaches the host.
type Config struct {
	// Namespace of the host call. Defaults to DefaultNamespace.
	Namespace string

	// HostCall overrides wapc.HostCall.
	HostCall HostCall

	// ErrorHandler receives host failures wrapped with ErrHostCall.
	ErrorHandler func(error)
}

var functionNames = [...]string{
	xlite.LevelTrace: "Trace",
	xlite.LevelDebug: "Debug",
	xlite.LevelInfo:  "Info",
	xlite.LevelWarn:  "Warn",
	xlite.LevelError: "Error",
}

// FunctionName returns the host function used for l.
func FunctionName(l xlite.Level) string {
	if l.Valid() {
		return functionNames[l]
	}
	return "Info"
}

// Sink sends payloads to the host runtime.
type Sink struct {
	namespace string
	hostCall  HostCall
	onError   func(error)
}

// New creates a Sink from cfg.
func New(cfg Config) (*Sink, error) {
	ns := cfg.Namespace
	if ns == "" {
		ns = DefaultNamespace
	}
	hc := cfg.HostCall
	if hc == nil {
		hc = wapc.HostCall
	}
	return &Sink{namespace: ns, hostCall: hc, onError: cfg.ErrorHandler}, nil
}

// Log implements xlite.Sink.
func (s *Sink) Log(p xlite.Payload) {
	_, err := s.hostCall(s.namespace, capabilityName, FunctionName(p.Level), []byte(p.Message))
	if err != nil && s.onError != nil {
		s.onError(errors.Join(ErrHostCall, err))
	}
}
