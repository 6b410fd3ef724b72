// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package catalog defines the built-in icons.
//
// Each icon is a static list of renderer nodes plus the family settings it
// is drawn with. Icons are grouped into named sets; a set can also be loaded
// from a SQLite export (see package store).
package catalog
