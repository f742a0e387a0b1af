//go:build !xlite_static && !xlite_norfilter

package config

import "github.com/trickstertwo/xlite"

func setMinimum(l xlite.Level) { xlite.SetMinimum(l) }
