package zerologsink

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/trickstertwo/xclock"
	"github.com/trickstertwo/xlite"
)

func TestZerologSink_JSON_EmitsTSAndMessage(t *testing.T) {
	old := xclock.Default()
	defer xclock.SetDefault(old)
	at := time.Date(2030, 2, 2, 3, 4, 5, 0, time.UTC)
	xclock.SetDefault(xclock.NewFrozen(at))

	var buf bytes.Buffer
	s := New(zerolog.New(&buf))
	s.Log(xlite.Payload{Level: xlite.LevelError, Message: "boom"})

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("json unmarshal: %v; line=%s", err, buf.String())
	}
	if m["level"] != "error" {
		t.Fatalf("level mismatch: %v", m["level"])
	}
	if m["message"] != "boom" {
		t.Fatalf("message mismatch: %v", m["message"])
	}
	if m["ts"] != at.Format(time.RFC3339Nano) {
		t.Fatalf("ts mismatch: %v", m["ts"])
	}
}

func TestZerologSink_DropsBelowLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	s := New(zerolog.New(&buf).Level(zerolog.WarnLevel))

	s.Log(xlite.Payload{Level: xlite.LevelInfo, Message: "hidden"})
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
	s.Log(xlite.Payload{Level: xlite.LevelWarn, Message: "shown"})
	if buf.Len() == 0 {
		t.Fatal("warn must pass a warn-level logger")
	}
}

func TestToZerologLevel(t *testing.T) {
	cases := map[xlite.Level]zerolog.Level{
		xlite.LevelTrace: zerolog.TraceLevel,
		xlite.LevelDebug: zerolog.DebugLevel,
		xlite.LevelInfo:  zerolog.InfoLevel,
		xlite.LevelWarn:  zerolog.WarnLevel,
		xlite.LevelError: zerolog.ErrorLevel,
	}
	for in, want := range cases {
		if got := ToZerologLevel(in); got != want {
			t.Fatalf("ToZerologLevel(%v) = %v, want %v", in, got, want)
		}
	}
}
