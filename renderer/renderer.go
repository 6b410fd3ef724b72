// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package renderer turns static icon geometry into SVG element trees,
// filling in presentation defaults for every shape.
package renderer

import (
	"fmt"
	"strings"
)

const (
	// GridSize is the native width and height of the icon design grid.
	GridSize = 24

	Namespace = "http://www.w3.org/2000/svg"
	ViewBox   = "0 0 24 24"
)

// Defaults are consulted when a render call omits an option.
type Defaults struct {
	Size                float64
	Color               string
	StrokeWidth         float64
	AbsoluteStrokeWidth bool
}

// BaselineDefaults returns the defaults used when nothing is configured.
func BaselineDefaults() Defaults {
	return Defaults{
		Size:        GridSize,
		Color:       "currentColor",
		StrokeWidth: 2,
	}
}

func (d Defaults) Validate() error {
	if d.Size < 0 {
		return fmt.Errorf("size: %v: must not be negative", d.Size)
	}
	if strings.TrimSpace(d.Color) == "" {
		return fmt.Errorf("color: must not be blank")
	}
	if d.StrokeWidth < 0 {
		return fmt.Errorf("stroke width: %v: must not be negative", d.StrokeWidth)
	}
	return nil
}

// Renderer holds the defaults injected into every render.
// It is immutable after New and safe for concurrent use.
type Renderer struct {
	defaults Defaults
}

func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		defaults: BaselineDefaults(),
	}
	for _, option := range options {
		err := option(r)
		if err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Defaults returns a copy of the renderer's defaults.
func (r *Renderer) Defaults() Defaults {
	return r.defaults
}

// Resolve applies the renderer defaults to the per-call props.
// Negative sizes and stroke widths are clamped to zero.
func (r *Renderer) Resolve(list ...Prop) Options {
	var p props
	for _, prop := range list {
		prop(&p)
	}
	return r.resolve(&p)
}

func (r *Renderer) resolve(p *props) Options {
	o := Options{
		Size:                max(p.size.or(r.defaults.Size), 0),
		Color:               p.color.or(r.defaults.Color),
		StrokeWidth:         max(p.strokeWidth.or(p.family.or(r.defaults.StrokeWidth)), 0),
		AbsoluteStrokeWidth: p.absolute.or(r.defaults.AbsoluteStrokeWidth),
		Omit:                p.omit,
		Attrs:               p.attrs,
	}
	if o.Color == "" {
		o.Color = r.defaults.Color
	}
	return o
}

// Render wraps the rendered nodes in a root svg element.
// It never fails and never modifies nodes.
func (r *Renderer) Render(nodes []Node, list ...Prop) *Element {
	var p props
	for _, prop := range list {
		prop(&p)
	}
	o := r.resolve(&p)

	root := &Element{
		Tag:      SVG,
		Attrs:    rootAttrs(o),
		Children: renderNodes(nodes, o),
	}
	if p.ref != nil {
		*p.ref = root
	}
	return root
}

// SpriteSymbol names a node list to include in a sprite sheet.
type SpriteSymbol struct {
	ID    string
	Nodes []Node
	// Props are applied before the sprite-wide props.
	Props []Prop
}

// Sprite renders each symbol into a <symbol> inside one hidden root svg.
// Symbols are drawn in design-grid units and each use site sizes its own
// reference, so the Size prop and default are ignored.
func (r *Renderer) Sprite(symbols []SpriteSymbol, list ...Prop) *Element {
	root := &Element{
		Tag: SVG,
		Attrs: Attrs{
			{"xmlns", Namespace},
			{"style", "display: none"},
		},
	}
	for _, symbol := range symbols {
		var p props
		for _, prop := range symbol.Props {
			prop(&p)
		}
		for _, prop := range list {
			prop(&p)
		}
		o := r.resolve(&p)
		o.Size = GridSize
		root.Children = append(root.Children, &Element{
			Tag: Symbol,
			Attrs: Attrs{
				{"id", symbol.ID},
				{"viewBox", ViewBox},
				{"fill", "none"},
			},
			Children: renderNodes(symbol.Nodes, o),
		})
	}
	return root
}

func rootAttrs(o Options) Attrs {
	attrs := Attrs{
		{"xmlns", Namespace},
		{"width", o.Size},
		{"height", o.Size},
		{"viewBox", ViewBox},
		{"fill", "none"},
	}
	for _, attr := range o.Attrs {
		if attrs.Has(attr.Name) {
			continue
		}
		attrs = append(attrs, attr)
	}
	return attrs
}

func renderNodes(nodes []Node, o Options) []*Element {
	if len(nodes) == 0 {
		return nil
	}
	elements := make([]*Element, 0, len(nodes))
	for _, node := range nodes {
		elements = append(elements, renderNode(node, o))
	}
	return elements
}

func renderNode(node Node, o Options) *Element {
	e := &Element{Tag: node.Tag}
	if node.Tag.IsShape() {
		e.Attrs = Merge(shapeDefaults(o), node.Attrs)
	} else {
		e.Attrs = Merge(node.Attrs)
	}
	if len(node.Children) != 0 {
		e.Children = renderNodes(node.Children, o)
	} else {
		e.Text = node.Text
	}
	return e
}

func shapeDefaults(o Options) Attrs {
	attrs := Attrs{
		{AttrStroke, o.Color},
		{AttrFill, "none"},
		{AttrStrokeWidth, o.ScaledStrokeWidth()},
	}
	if !o.Omit.Has(OmitLinecap) {
		attrs = append(attrs, Attr{AttrStrokeLinecap, "round"})
	}
	if !o.Omit.Has(OmitLinejoin) {
		attrs = append(attrs, Attr{AttrStrokeLinejoin, "round"})
	}
	return attrs
}
