package slogsink

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/trickstertwo/xclock"
	"github.com/trickstertwo/xlite"
)

func freezeClock(t *testing.T, at time.Time) {
	t.Helper()
	old := xclock.Default()
	xclock.SetDefault(xclock.NewFrozen(at))
	t.Cleanup(func() { xclock.SetDefault(old) })
}

func TestSlogSink_JSONHandler_EmitsTSAndMessage(t *testing.T) {
	at := time.Date(2024, 12, 31, 23, 59, 59, 123456789, time.UTC)
	freezeClock(t, at)

	var buf bytes.Buffer
	h := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	s := New(slog.New(h))

	s.Log(xlite.Payload{Level: xlite.LevelWarn, Message: "disk low"})

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("json unmarshal: %v; line=%s", err, buf.String())
	}
	if m["msg"] != "disk low" {
		t.Fatalf("msg mismatch: %v", m["msg"])
	}
	if m["level"] != "WARN" {
		t.Fatalf("level mismatch: %v", m["level"])
	}
	gotTS, _ := m["ts"].(string)
	if gotTS != at.Format(time.RFC3339Nano) {
		t.Fatalf("ts mismatch: got %q want %q", gotTS, at.Format(time.RFC3339Nano))
	}
}

func TestSlogSink_RespectsHandlerLevel(t *testing.T) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	s := New(slog.New(h))

	s.Log(xlite.Payload{Level: xlite.LevelTrace, Message: "hidden"})
	s.Log(xlite.Payload{Level: xlite.LevelDebug, Message: "hidden"})
	if buf.Len() != 0 {
		t.Fatalf("expected no output below handler level, got %q", buf.String())
	}
}

func TestSlogSink_NoTimestampKey(t *testing.T) {
	var buf bytes.Buffer
	h := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})
	s := NewWithTimestampKey(slog.New(h), "")
	s.Log(xlite.Payload{Level: xlite.LevelError, Message: "x"})

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if _, ok := m["ts"]; ok {
		t.Fatalf("ts must be omitted: %v", m)
	}
}

func TestToSlog(t *testing.T) {
	cases := map[xlite.Level]slog.Level{
		xlite.LevelTrace: slog.Level(-8),
		xlite.LevelDebug: slog.LevelDebug,
		xlite.LevelInfo:  slog.LevelInfo,
		xlite.LevelWarn:  slog.LevelWarn,
		xlite.LevelError: slog.LevelError,
	}
	for in, want := range cases {
		if got := ToSlog(in); got != want {
			t.Fatalf("ToSlog(%v) = %v, want %v", in, got, want)
		}
	}
}
