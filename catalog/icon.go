// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/a-h/templ"
	"github.com/mdhender/svgicons/renderer"
)

// Icon is the static description of one icon.
type Icon struct {
	// Name is the stable identifier, e.g. "arrow-right".
	Name  string
	Nodes []renderer.Node
	// StrokeWidth is the family stroke width.
	// Zero defers to the renderer defaults.
	StrokeWidth float64
	// Omit lists line defaults this icon is drawn without.
	Omit renderer.Omit
	Tags []string
}

// String returns the display name.
func (i Icon) String() string {
	return i.Name
}

// Props returns the family props that precede caller props.
func (i Icon) Props() []renderer.Prop {
	return []renderer.Prop{
		renderer.FamilyStrokeWidth(i.StrokeWidth),
		renderer.Omitting(i.Omit),
	}
}

// Render draws the icon. Caller props override the family props.
func (i Icon) Render(r *renderer.Renderer, props ...renderer.Prop) *renderer.Element {
	return r.Render(i.Nodes, append(i.Props(), props...)...)
}

// Component returns the icon as a templ component.
func (i Icon) Component(r *renderer.Renderer, props ...renderer.Prop) templ.Component {
	return i.Render(r, props...)
}

var (
	ErrUnknownIcon = errors.New("unknown icon")
	ErrInvalidIcon = errors.New("invalid icon")
)

// Set is a named, immutable collection of icons.
type Set struct {
	name   string
	icons  []Icon
	byName map[string]int
}

// NewSet returns a set holding icons sorted by name.
// Names must be non-blank and unique, and every icon needs geometry.
func NewSet(name string, icons ...Icon) (*Set, error) {
	s := &Set{
		name:   name,
		icons:  make([]Icon, len(icons)),
		byName: make(map[string]int, len(icons)),
	}
	copy(s.icons, icons)
	sort.Slice(s.icons, func(a, b int) bool {
		return s.icons[a].Name < s.icons[b].Name
	})
	for n, icon := range s.icons {
		if strings.TrimSpace(icon.Name) == "" {
			return nil, fmt.Errorf("%s: %w: blank name", name, ErrInvalidIcon)
		}
		if len(icon.Nodes) == 0 {
			return nil, fmt.Errorf("%s: %s: %w: no nodes", name, icon.Name, ErrInvalidIcon)
		}
		if icon.StrokeWidth < 0 {
			return nil, fmt.Errorf("%s: %s: %w: negative stroke width", name, icon.Name, ErrInvalidIcon)
		}
		if _, ok := s.byName[icon.Name]; ok {
			return nil, fmt.Errorf("%s: %s: %w: duplicate name", name, icon.Name, ErrInvalidIcon)
		}
		s.byName[icon.Name] = n
	}
	return s, nil
}

// Builtin returns the named built-in set.
func Builtin(name string) (*Set, bool) {
	switch name {
	case lucide.name:
		return lucide, true
	case outline.name:
		return outline, true
	}
	return nil, false
}

// BuiltinNames lists the built-in sets.
func BuiltinNames() []string {
	return []string{lucide.name, outline.name}
}

func mustSet(name string, icons ...Icon) *Set {
	s, err := NewSet(name, icons...)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Set) Name() string {
	return s.name
}

func (s *Set) Len() int {
	return len(s.icons)
}

// Lookup finds an icon by name.
func (s *Set) Lookup(name string) (Icon, bool) {
	n, ok := s.byName[name]
	if !ok {
		return Icon{}, false
	}
	return s.icons[n], true
}

// Get is Lookup with an error for unknown names.
func (s *Set) Get(name string) (Icon, error) {
	icon, ok := s.Lookup(name)
	if !ok {
		return Icon{}, fmt.Errorf("%s: %q: %w", s.name, name, ErrUnknownIcon)
	}
	return icon, nil
}

// All returns a copy of the icons, sorted by name.
func (s *Set) All() []Icon {
	result := make([]Icon, len(s.icons))
	copy(result, s.icons)
	return result
}

func (s *Set) Names() []string {
	names := make([]string, 0, len(s.icons))
	for _, icon := range s.icons {
		names = append(names, icon.Name)
	}
	return names
}

// Sprite renders every icon in the set as a <symbol> with id prefix+name.
func (s *Set) Sprite(r *renderer.Renderer, prefix string, props ...renderer.Prop) *renderer.Element {
	return Sprite(r, prefix, s.icons, props...)
}

// Sprite renders the icons as symbols of one sprite sheet.
func Sprite(r *renderer.Renderer, prefix string, icons []Icon, props ...renderer.Prop) *renderer.Element {
	symbols := make([]renderer.SpriteSymbol, 0, len(icons))
	for _, icon := range icons {
		symbols = append(symbols, renderer.SpriteSymbol{
			ID:    prefix + icon.Name,
			Nodes: icon.Nodes,
			Props: icon.Props(),
		})
	}
	return r.Sprite(symbols, props...)
}

// Markdown renders the set as a markdown table.
func (s *Set) Markdown() string {
	var builder strings.Builder
	builder.WriteString("# Icon Catalog: ")
	builder.WriteString(s.name)
	builder.WriteString("\n\n")
	builder.WriteString("Generated by `svgicons catalog`.\n\n")
	builder.WriteString("| Name | Stroke Width | Nodes | Tags |\n")
	builder.WriteString("| --- | --- | --- | --- |\n")
	for _, icon := range s.icons {
		builder.WriteString("| ")
		builder.WriteString(icon.Name)
		builder.WriteString(" | ")
		if icon.StrokeWidth == 0 {
			builder.WriteString("default")
		} else {
			builder.WriteString(renderer.FormatValue(icon.StrokeWidth))
		}
		builder.WriteString(" | ")
		builder.WriteString(fmt.Sprint(countNodes(icon.Nodes)))
		builder.WriteString(" | ")
		builder.WriteString(strings.Join(icon.Tags, ", "))
		builder.WriteString(" |\n")
	}
	return builder.String()
}

func countNodes(nodes []renderer.Node) int {
	n := len(nodes)
	for _, node := range nodes {
		n += countNodes(node.Children)
	}
	return n
}
