//go:build xlite_static

package xlite_test

import (
	"sync"
	"testing"
	_ "unsafe" // go:linkname

	"github.com/trickstertwo/xlite"
)

var (
	hostMu       sync.Mutex
	hostPayloads []xlite.Payload
	hostCalls    []string
)

//go:linkname hostSink github.com/trickstertwo/xlite.externSink
func hostSink(p xlite.Payload) {
	hostMu.Lock()
	defer hostMu.Unlock()
	hostPayloads = append(hostPayloads, p)
	hostCalls = append(hostCalls, "sink")
}

func resetHost(t *testing.T) {
	t.Helper()
	hostMu.Lock()
	hostPayloads, hostCalls = nil, nil
	hostMu.Unlock()
}

func TestStaticDispatchReachesLinkedSink(t *testing.T) {
	if !xlite.StaticDispatch {
		t.Fatal("xlite_static build must report StaticDispatch")
	}
	if !xlite.ErrorEnabled {
		t.Skip("Error compiled out")
	}
	resetHost(t)

	xlite.Error("linked")
	xlite.Errorf("n=%d", 3)

	hostMu.Lock()
	defer hostMu.Unlock()
	if len(hostPayloads) != 2 {
		t.Fatalf("linked sink got %d payloads, want 2", len(hostPayloads))
	}
	if hostPayloads[0].Message != "linked" || hostPayloads[1].Message != "n=3" {
		t.Fatalf("unexpected payloads %+v", hostPayloads)
	}
	for _, p := range hostPayloads {
		if p.Level != xlite.LevelError {
			t.Fatalf("level %v, want Error", p.Level)
		}
	}
}
