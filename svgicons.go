// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package svgicons is a library of stroked SVG icons drawn on a 24x24 grid.
//
// Icon geometry lives in package catalog as static node lists. Package
// renderer turns those lists into SVG element trees, filling in stroke,
// fill and line defaults from per-call options and injected defaults.
package svgicons

import (
	"github.com/maloquacious/semver"
)

var (
	version = semver.Version{
		Major: 0,
		Minor: 1,
		Patch: 0,
		Build: semver.Commit(),
	}
)

func Version() semver.Version {
	return version
}
