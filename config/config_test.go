// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package config_test

import (
	"testing"

	"github.com/mdhender/svgicons/config"
	"github.com/mdhender/svgicons/renderer"
)

func TestParseEnvironment_Defaults(t *testing.T) {
	d, err := config.ParseEnvironment(map[string]string{})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if d != config.Baseline() {
		t.Fatalf("defaults = %+v, want %+v", d, config.Baseline())
	}
}

func TestParseEnvironment_Overrides(t *testing.T) {
	d, err := config.ParseEnvironment(map[string]string{
		"SVGICONS_SIZE":                  "32",
		"SVGICONS_COLOR":                 "#222",
		"SVGICONS_STROKE_WIDTH":          "1.5",
		"SVGICONS_ABSOLUTE_STROKE_WIDTH": "true",
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := config.Defaults{Size: 32, Color: "#222", StrokeWidth: 1.5, AbsoluteStrokeWidth: true}
	if d != want {
		t.Fatalf("defaults = %+v, want %+v", d, want)
	}
}

func TestParseEnvironment_Invalid(t *testing.T) {
	for _, tc := range []struct {
		name    string
		environ map[string]string
	}{
		{"not a number", map[string]string{"SVGICONS_SIZE": "big"}},
		{"negative size", map[string]string{"SVGICONS_SIZE": "-4"}},
		{"negative stroke", map[string]string{"SVGICONS_STROKE_WIDTH": "-1"}},
		{"not a bool", map[string]string{"SVGICONS_ABSOLUTE_STROKE_WIDTH": "maybe"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := config.ParseEnvironment(tc.environ); err == nil {
				t.Fatalf("parse: want error")
			}
		})
	}
}

func TestSetAndGet(t *testing.T) {
	t.Cleanup(func() {
		_ = config.Set(config.Baseline())
	})
	if err := config.Set(config.Defaults{Size: -1, Color: "red"}); err == nil {
		t.Fatalf("set: want error for negative size")
	}
	want := config.Defaults{Size: 48, Color: "red", StrokeWidth: 1}
	if err := config.Set(want); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got := config.Get(); got != want {
		t.Fatalf("get = %+v, want %+v", got, want)
	}
}

func TestOption_InjectsIntoRenderer(t *testing.T) {
	d := config.Defaults{Size: 48, Color: "red", StrokeWidth: 1.5}
	r, err := renderer.New(d.Option())
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	o := r.Resolve()
	if o.Size != 48 || o.Color != "red" || o.ScaledStrokeWidth() != 3 {
		t.Fatalf("resolved = %+v, want size 48 color red stroke 3", o)
	}
}
