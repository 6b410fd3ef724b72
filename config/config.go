// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package config holds the process-wide icon defaults.
//
// Defaults are read from the environment once and may be overridden
// afterwards (for example by command line flags). The renderer never reads
// this package directly; callers inject the defaults with Option.
package config

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/caarlos0/env/v11"
	"github.com/mdhender/svgicons/renderer"
)

// Defaults are the presentation values used when a render call omits them.
type Defaults struct {
	Size                float64 `env:"SVGICONS_SIZE" envDefault:"24"`
	Color               string  `env:"SVGICONS_COLOR" envDefault:"currentColor"`
	StrokeWidth         float64 `env:"SVGICONS_STROKE_WIDTH" envDefault:"2"`
	AbsoluteStrokeWidth bool    `env:"SVGICONS_ABSOLUTE_STROKE_WIDTH" envDefault:"false"`
}

// Baseline returns the defaults used when the environment sets nothing.
func Baseline() Defaults {
	d := renderer.BaselineDefaults()
	return Defaults{
		Size:                d.Size,
		Color:               d.Color,
		StrokeWidth:         d.StrokeWidth,
		AbsoluteStrokeWidth: d.AbsoluteStrokeWidth,
	}
}

// Parse reads the defaults from the process environment.
func Parse() (Defaults, error) {
	return parse(env.Options{})
}

// ParseEnvironment reads the defaults from the given variables instead of
// the process environment.
func ParseEnvironment(environ map[string]string) (Defaults, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (Defaults, error) {
	var d Defaults
	if err := env.ParseWithOptions(&d, opts); err != nil {
		return Defaults{}, fmt.Errorf("parse env: %w", err)
	}
	if err := d.Validate(); err != nil {
		return Defaults{}, err
	}
	return d, nil
}

func (d Defaults) Validate() error {
	if err := d.Renderer().Validate(); err != nil {
		return fmt.Errorf("defaults: %w", err)
	}
	return nil
}

// Renderer converts the defaults for the renderer package.
func (d Defaults) Renderer() renderer.Defaults {
	return renderer.Defaults{
		Size:                d.Size,
		Color:               d.Color,
		StrokeWidth:         d.StrokeWidth,
		AbsoluteStrokeWidth: d.AbsoluteStrokeWidth,
	}
}

// Option injects the defaults into a new renderer.
func (d Defaults) Option() renderer.Option {
	return renderer.WithDefaults(d.Renderer())
}

var (
	loadOnce sync.Once
	loadErr  error
	current  atomic.Pointer[Defaults]
)

// Load parses the process environment on first use and installs the result
// as the process-wide defaults. Later calls return the installed defaults.
func Load() (Defaults, error) {
	loadOnce.Do(func() {
		d, err := Parse()
		if err != nil {
			loadErr = err
			return
		}
		current.CompareAndSwap(nil, &d)
	})
	if loadErr != nil {
		return Defaults{}, loadErr
	}
	return Get(), nil
}

// Get returns the process-wide defaults, or the baseline when nothing has
// been loaded or set.
func Get() Defaults {
	if d := current.Load(); d != nil {
		return *d
	}
	return Baseline()
}

// Set overrides the process-wide defaults.
func Set(d Defaults) error {
	if err := d.Validate(); err != nil {
		return err
	}
	current.Store(&d)
	return nil
}
