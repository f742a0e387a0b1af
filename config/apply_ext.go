//go:build !xlite_static && !xlite_noext

package config

import (
	"github.com/trickstertwo/xlite"
	"github.com/trickstertwo/xlite/extension/fileappend"
)

func setExtension(e *fileappend.Extension) { xlite.SetExtension(e) }

func clearExtension() { xlite.SetExtension(nil) }
