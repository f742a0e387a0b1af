//go:build !xlite_static && xlite_noext

package config

import "github.com/trickstertwo/xlite/extension/fileappend"

func setExtension(*fileappend.Extension) {}

func clearExtension() {}
