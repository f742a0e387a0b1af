package fileappend

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/trickstertwo/xclock"

	"github.com/trickstertwo/xlite"
)

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(b)
}

func TestAppendCreatesFileAndKeepsOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	if err := Append(xlite.Payload{Level: xlite.LevelInfo, Message: "first"}, path); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := Append(xlite.Payload{Level: xlite.LevelError, Message: "second"}, path); err != nil {
		t.Fatalf("append: %v", err)
	}

	if got, want := readFile(t, path), "[ INFO] first\n[ERROR] second\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestAppendDoesNotTruncate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	if err := os.WriteFile(path, []byte("existing\n"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := Append(xlite.Payload{Level: xlite.LevelWarn, Message: "more"}, path); err != nil {
		t.Fatalf("append: %v", err)
	}
	if got, want := readFile(t, path), "existing\n[ WARN] more\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestAppendErrors(t *testing.T) {
	if err := Append(xlite.Payload{}, ""); !errors.Is(err, ErrNoPath) {
		t.Fatalf("want ErrNoPath, got %v", err)
	}

	missing := filepath.Join(t.TempDir(), "no", "such", "dir", "app.log")
	err := Append(xlite.Payload{Level: xlite.LevelError, Message: "x"}, missing)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("want wrapped ErrNotExist, got %v", err)
	}
}

func TestExtensionTimestamp(t *testing.T) {
	at := time.Date(2025, 3, 1, 12, 30, 0, 0, time.UTC)
	old := xclock.Default()
	xclock.SetDefault(xclock.NewFrozen(at))
	t.Cleanup(func() { xclock.SetDefault(old) })

	path := filepath.Join(t.TempDir(), "ts.log")
	e := New(path, WithTimestamp(time.RFC3339))
	e.OnLog(xlite.Payload{Level: xlite.LevelDebug, Message: "tick"})

	if got, want := readFile(t, path), "2025-03-01T12:30:00Z [DEBUG] tick\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestExtensionErrorHandler(t *testing.T) {
	var got []error
	e := New(filepath.Join(t.TempDir(), "missing", "app.log"),
		WithErrorHandler(func(err error) { got = append(got, err) }))

	e.OnLog(xlite.Payload{Level: xlite.LevelError, Message: "a"})
	e.OnLog(xlite.Payload{Level: xlite.LevelError, Message: "b"})

	if len(got) != 2 {
		t.Fatalf("want 2 errors, got %d", len(got))
	}
	if !errors.Is(got[0], os.ErrNotExist) {
		t.Fatalf("unexpected error: %v", got[0])
	}

	// No handler: failures are dropped.
	New("").OnLog(xlite.Payload{Level: xlite.LevelError, Message: "c"})
}
