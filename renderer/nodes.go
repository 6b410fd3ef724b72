// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package renderer

import (
	"fmt"
	"strconv"
)

// Tag is the element name of a primitive node.
type Tag string

const (
	Path     Tag = "path"
	Circle   Tag = "circle"
	Rect     Tag = "rect"
	Line     Tag = "line"
	Polyline Tag = "polyline"
	Polygon  Tag = "polygon"
	Ellipse  Tag = "ellipse"
	Group    Tag = "g"

	// Root and symbol elements are produced by the renderer, never by icon data.
	SVG    Tag = "svg"
	Symbol Tag = "symbol"
)

// IsShape reports whether the tag draws geometry.
// Only shapes receive presentation defaults.
func (t Tag) IsShape() bool {
	switch t {
	case Path, Circle, Rect, Line, Polyline, Polygon, Ellipse:
		return true
	}
	return false
}

// Presentation attribute names filled in by the renderer.
const (
	AttrStroke         = "stroke"
	AttrFill           = "fill"
	AttrStrokeWidth    = "stroke-width"
	AttrStrokeLinecap  = "stroke-linecap"
	AttrStrokeLinejoin = "stroke-linejoin"
)

// Attr is a single attribute. Value is a string or a number.
type Attr struct {
	Name  string
	Value any
}

// A is shorthand for building an Attr.
func A(name string, value any) Attr {
	return Attr{Name: name, Value: value}
}

// Attrs is an ordered attribute list.
type Attrs []Attr

// Get returns the value of the named attribute.
func (a Attrs) Get(name string) (any, bool) {
	for _, attr := range a {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return nil, false
}

// Has reports whether the named attribute is present.
func (a Attrs) Has(name string) bool {
	_, ok := a.Get(name)
	return ok
}

// Merge combines attribute lists into a new list.
// Later lists win on name collisions; names keep the position
// of their first appearance. The inputs are never modified.
func Merge(layers ...Attrs) Attrs {
	n := 0
	for _, layer := range layers {
		n += len(layer)
	}
	out := make(Attrs, 0, n)
	index := make(map[string]int, n)
	for _, layer := range layers {
		for _, attr := range layer {
			if i, ok := index[attr.Name]; ok {
				out[i].Value = attr.Value
				continue
			}
			index[attr.Name] = len(out)
			out = append(out, attr)
		}
	}
	return out
}

// FormatValue returns the markup text for an attribute value.
// Numbers use the shortest representation that round-trips.
func FormatValue(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprint(v)
}

// Node is one primitive of an icon's static geometry.
// Node values are shared between renders and must be treated as read-only.
type Node struct {
	Tag      Tag
	Attrs    Attrs
	Children []Node
	// Text is used only when Children is empty.
	Text string
}

// With returns a copy of the node with extra attributes merged over its own.
func (n Node) With(attrs ...Attr) Node {
	n.Attrs = Merge(n.Attrs, attrs)
	return n
}

func PathNode(d string) Node {
	return Node{Tag: Path, Attrs: Attrs{{"d", d}}}
}

func CircleNode(cx, cy, r float64) Node {
	return Node{Tag: Circle, Attrs: Attrs{{"cx", cx}, {"cy", cy}, {"r", r}}}
}

func EllipseNode(cx, cy, rx, ry float64) Node {
	return Node{Tag: Ellipse, Attrs: Attrs{{"cx", cx}, {"cy", cy}, {"rx", rx}, {"ry", ry}}}
}

// RectNode builds a rect; a zero rx leaves the corners square.
func RectNode(x, y, width, height, rx float64) Node {
	attrs := Attrs{{"width", width}, {"height", height}, {"x", x}, {"y", y}}
	if rx != 0 {
		attrs = append(attrs, Attr{"rx", rx})
	}
	return Node{Tag: Rect, Attrs: attrs}
}

func LineNode(x1, y1, x2, y2 float64) Node {
	return Node{Tag: Line, Attrs: Attrs{{"x1", x1}, {"x2", x2}, {"y1", y1}, {"y2", y2}}}
}

func PolylineNode(points string) Node {
	return Node{Tag: Polyline, Attrs: Attrs{{"points", points}}}
}

func PolygonNode(points string) Node {
	return Node{Tag: Polygon, Attrs: Attrs{{"points", points}}}
}

// GroupNode builds a grouping container around children.
func GroupNode(attrs Attrs, children ...Node) Node {
	return Node{Tag: Group, Attrs: attrs, Children: children}
}
