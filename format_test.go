package xlite

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

func TestAppendText(t *testing.T) {
	cases := []struct {
		p    Payload
		want string
	}{
		{Payload{Level: LevelError, Message: "boom"}, "[ERROR] boom\n"},
		{Payload{Level: LevelWarn, Message: "x=5"}, "[ WARN] x=5\n"},
		{Payload{Level: LevelInfo, Message: ""}, "[ INFO] \n"},
		{Payload{Level: LevelTrace, Message: "t"}, "[TRACE] t\n"},
	}
	for _, tc := range cases {
		if got := string(AppendText(nil, tc.p)); got != tc.want {
			t.Fatalf("AppendText = %q, want %q", got, tc.want)
		}
	}
}

func TestAppendTextWithMetaFallsBack(t *testing.T) {
	if MetadataEnabled {
		t.Skip("metadata compiled in")
	}
	p := Payload{Level: LevelDebug, Message: "m"}
	if got := string(AppendTextWithMeta([]byte("> "), p)); got != "> [DEBUG] m\n" {
		t.Fatalf("got %q", got)
	}
}

func TestTextSinkLinesDoNotInterleave(t *testing.T) {
	var buf bytes.Buffer
	s := NewTextSink(&buf)

	const workers, perWorker = 8, 200
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				s.Log(Payload{Level: LevelInfo, Message: "concurrent line"})
			}
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != workers*perWorker {
		t.Fatalf("got %d lines, want %d", len(lines), workers*perWorker)
	}
	for _, l := range lines {
		if l != "[ INFO] concurrent line" {
			t.Fatalf("corrupted line %q", l)
		}
	}
}

func TestNewTextSinkNilWriter(t *testing.T) {
	NewTextSink(nil).Log(Payload{Level: LevelError, Message: "dropped"})
}
