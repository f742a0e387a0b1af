//go:build !xlite_static

package config

import (
	"fmt"
	"os"

	"github.com/trickstertwo/xlite"
	"github.com/trickstertwo/xlite/extension/fileappend"
	"github.com/trickstertwo/xlite/sink/consolesink"
)

// Apply installs the sink, the file extension and the runtime minimum
// described by cfg. Nothing is changed when cfg is invalid or asks for a
// capability that was compiled out.
func Apply(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	minimum, hasMinimum := cfg.MinimumLevel()
	if hasMinimum && !xlite.RuntimeFilterEnabled {
		return fmt.Errorf("config: level %q: %w", cfg.Level, ErrCapabilityUnavailable)
	}
	if cfg.File != "" && !xlite.ExtensionsEnabled {
		return fmt.Errorf("config: file %q: %w", cfg.File, ErrCapabilityUnavailable)
	}
	if cfg.Metadata && !xlite.MetadataEnabled {
		return fmt.Errorf("config: metadata: %w", ErrCapabilityUnavailable)
	}

	xlite.SetLogger(newSink(cfg))

	if cfg.File != "" {
		var opts []fileappend.Option
		if cfg.FileTimestamp != "" {
			opts = append(opts, fileappend.WithTimestamp(cfg.FileTimestamp))
		}
		setExtension(fileappend.New(cfg.File, opts...))
	} else {
		clearExtension()
	}

	if hasMinimum {
		setMinimum(minimum)
	}
	return nil
}

func newSink(cfg Config) xlite.Sink {
	var w *os.File
	switch cfg.Output {
	case "discard":
		return xlite.Discard
	case "stderr":
		w = os.Stderr
	default:
		w = os.Stdout
	}
	return consolesink.New(w,
		consolesink.WithColor(colorMode(cfg.Color)),
		consolesink.WithMetadata(cfg.Metadata),
	)
}

func colorMode(s string) consolesink.ColorMode {
	switch s {
	case "always":
		return consolesink.ColorAlways
	case "never":
		return consolesink.ColorNever
	default:
		return consolesink.ColorAuto
	}
}
