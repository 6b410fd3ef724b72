// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package renderer

import (
	"fmt"
	"strings"
)

// Option configures a Renderer.
type Option func(p *Renderer) error

// WithDefaults replaces all of the renderer's defaults.
func WithDefaults(d Defaults) Option {
	return func(p *Renderer) error {
		if err := d.Validate(); err != nil {
			return err
		}
		p.defaults = d
		return nil
	}
}

func WithDefaultSize(size float64) Option {
	return func(p *Renderer) error {
		if size < 0 {
			return fmt.Errorf("size: %v: must not be negative", size)
		}
		p.defaults.Size = size
		return nil
	}
}

func WithDefaultColor(color string) Option {
	return func(p *Renderer) error {
		if strings.TrimSpace(color) == "" {
			return fmt.Errorf("color: must not be blank")
		}
		p.defaults.Color = color
		return nil
	}
}

func WithDefaultStrokeWidth(width float64) Option {
	return func(p *Renderer) error {
		if width < 0 {
			return fmt.Errorf("stroke width: %v: must not be negative", width)
		}
		p.defaults.StrokeWidth = width
		return nil
	}
}

func WithDefaultAbsoluteStrokeWidth(flag bool) Option {
	return func(p *Renderer) error {
		p.defaults.AbsoluteStrokeWidth = flag
		return nil
	}
}

// Omit selects line defaults that an icon does not want filled in.
type Omit uint8

const (
	OmitLinecap Omit = 1 << iota
	OmitLinejoin

	OmitNone Omit = 0
)

func (o Omit) Has(flag Omit) bool {
	return o&flag != 0
}

// Prop sets one per-call presentation option.
type Prop func(p *props)

type optional[T any] struct {
	value T
	ok    bool
}

func (o optional[T]) or(def T) T {
	if o.ok {
		return o.value
	}
	return def
}

func some[T any](v T) optional[T] {
	return optional[T]{value: v, ok: true}
}

type props struct {
	size        optional[float64]
	color       optional[string]
	strokeWidth optional[float64]
	absolute    optional[bool]
	family      optional[float64]
	omit        Omit
	attrs       Attrs
	ref         **Element
}

// Size sets the rendered width and height.
func Size(size float64) Prop {
	return func(p *props) {
		p.size = some(size)
	}
}

// Color sets the default stroke color for shapes.
func Color(color string) Prop {
	return func(p *props) {
		p.color = some(color)
	}
}

// StrokeWidth sets the stroke width, in design-grid units unless
// AbsoluteStrokeWidth is set.
func StrokeWidth(width float64) Prop {
	return func(p *props) {
		p.strokeWidth = some(width)
	}
}

// AbsoluteStrokeWidth stops the stroke width from scaling with size.
func AbsoluteStrokeWidth(flag bool) Prop {
	return func(p *props) {
		p.absolute = some(flag)
	}
}

// FamilyStrokeWidth is the stroke width an icon family is drawn with.
// It applies only when the caller does not set StrokeWidth.
// A zero width defers to the renderer defaults.
func FamilyStrokeWidth(width float64) Prop {
	return func(p *props) {
		if width > 0 {
			p.family = some(width)
		}
	}
}

// Omitting suppresses line cap or line join defaults.
func Omitting(omit Omit) Prop {
	return func(p *props) {
		p.omit |= omit
	}
}

// Class appends class names to the root element.
func Class(names ...string) Prop {
	return func(p *props) {
		var classes []string
		if v, ok := p.attrs.Get("class"); ok {
			classes = append(classes, FormatValue(v))
		}
		for _, name := range names {
			if name = strings.TrimSpace(name); name != "" {
				classes = append(classes, name)
			}
		}
		if len(classes) != 0 {
			p.attrs = Merge(p.attrs, Attrs{{"class", strings.Join(classes, " ")}})
		}
	}
}

// Attribute passes an extra attribute through to the root element.
func Attribute(name string, value any) Prop {
	return func(p *props) {
		p.attrs = Merge(p.attrs, Attrs{{name, value}})
	}
}

// Ref receives the rendered root element.
func Ref(ref **Element) Prop {
	return func(p *props) {
		p.ref = ref
	}
}

// Options are the presentation options after defaults have been applied.
type Options struct {
	Size                float64
	Color               string
	StrokeWidth         float64
	AbsoluteStrokeWidth bool
	Omit                Omit
	Attrs               Attrs
}

// ScaledStrokeWidth returns the stroke width to draw shapes with.
func (o Options) ScaledStrokeWidth() float64 {
	if o.AbsoluteStrokeWidth {
		return o.StrokeWidth
	}
	return o.StrokeWidth * (o.Size / GridSize)
}
