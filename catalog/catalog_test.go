// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package catalog_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/mdhender/svgicons/catalog"
	"github.com/mdhender/svgicons/renderer"
)

func TestBuiltinSetsAreWellFormed(t *testing.T) {
	for _, name := range catalog.BuiltinNames() {
		set, ok := catalog.Builtin(name)
		if !ok {
			t.Fatalf("builtin %q missing", name)
		}
		if set.Len() == 0 {
			t.Fatalf("%s: expected icons", name)
		}
		seen := make(map[string]struct{})
		for _, icon := range set.All() {
			if strings.TrimSpace(icon.Name) == "" {
				t.Errorf("%s: icon with blank name", name)
			}
			if _, ok := seen[icon.Name]; ok {
				t.Errorf("%s: duplicate icon %s", name, icon.Name)
			}
			seen[icon.Name] = struct{}{}
			if len(icon.Nodes) == 0 {
				t.Errorf("%s: %s has no nodes", name, icon.Name)
			}
			walkNodes(icon.Nodes, func(n renderer.Node) {
				if !n.Tag.IsShape() && n.Tag != renderer.Group {
					t.Errorf("%s: %s: unexpected tag %q", name, icon.Name, n.Tag)
				}
			})
		}
	}
	if _, ok := catalog.Builtin("nope"); ok {
		t.Errorf("builtin nope: want missing")
	}
}

func walkNodes(nodes []renderer.Node, fn func(renderer.Node)) {
	for _, n := range nodes {
		fn(n)
		walkNodes(n.Children, fn)
	}
}

func TestSet_LookupAndGet(t *testing.T) {
	set := catalog.Lucide()
	icon, ok := set.Lookup("arrow-right")
	if !ok {
		t.Fatalf("lookup arrow-right: missing")
	}
	if got, want := icon.String(), "arrow-right"; got != want {
		t.Fatalf("display name = %q, want %q", got, want)
	}
	if _, err := set.Get("no-such-icon"); !errors.Is(err, catalog.ErrUnknownIcon) {
		t.Fatalf("get no-such-icon: err = %v, want ErrUnknownIcon", err)
	}
}

func TestSet_AllIsSortedCopy(t *testing.T) {
	set := catalog.Lucide()
	all := set.All()
	for n := 1; n < len(all); n++ {
		if all[n-1].Name >= all[n].Name {
			t.Fatalf("icons not sorted: %q before %q", all[n-1].Name, all[n].Name)
		}
	}
	all[0].Name = "changed"
	if set.All()[0].Name == "changed" {
		t.Fatalf("All returned the backing slice")
	}
	if got := set.Names(); len(got) != set.Len() {
		t.Fatalf("names = %d, want %d", len(got), set.Len())
	}
}

func TestNewSet_Rejects(t *testing.T) {
	good := catalog.Icon{Name: "a", Nodes: []renderer.Node{renderer.PathNode("M1 1")}}
	for _, tc := range []struct {
		name  string
		icons []catalog.Icon
	}{
		{"blank name", []catalog.Icon{{Name: " ", Nodes: good.Nodes}}},
		{"no nodes", []catalog.Icon{{Name: "b"}}},
		{"duplicate", []catalog.Icon{good, good}},
		{"negative stroke", []catalog.Icon{{Name: "c", Nodes: good.Nodes, StrokeWidth: -1}}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := catalog.NewSet("test", tc.icons...); !errors.Is(err, catalog.ErrInvalidIcon) {
				t.Fatalf("NewSet: err = %v, want ErrInvalidIcon", err)
			}
		})
	}
}

func TestIcon_RenderUsesFamilyStrokeWidth(t *testing.T) {
	r, err := renderer.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	for _, tc := range []struct {
		name  string
		icon  catalog.Icon
		props []renderer.Prop
		want  string
	}{
		{"lucide default", catalog.Minus, nil, "2"},
		{"outline family", catalog.OutlineMinus, nil, "1.5"},
		{"outline scaled", catalog.OutlineMinus, []renderer.Prop{renderer.Size(48)}, "3"},
		{"caller wins", catalog.OutlineMinus, []renderer.Prop{renderer.StrokeWidth(1)}, "1"},
		{"absolute", catalog.OutlineMinus, []renderer.Prop{renderer.Size(48), renderer.AbsoluteStrokeWidth(true)}, "1.5"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			root := tc.icon.Render(r, tc.props...)
			got, ok := root.Children[0].Attr(renderer.AttrStrokeWidth)
			if !ok || got != tc.want {
				t.Fatalf("stroke-width = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestIcon_RenderHonorsOmit(t *testing.T) {
	r, err := renderer.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	root := catalog.X.Render(r)
	for _, e := range root.Children {
		if e.Attrs.Has(renderer.AttrStrokeLinejoin) {
			t.Errorf("x: stroke-linejoin present, want omitted")
		}
		if !e.Attrs.Has(renderer.AttrStrokeLinecap) {
			t.Errorf("x: stroke-linecap missing")
		}
	}
	root = catalog.Check.Render(r)
	if !root.Children[0].Attrs.Has(renderer.AttrStrokeLinejoin) {
		t.Errorf("check: stroke-linejoin missing")
	}
}

func TestIcon_StaticFillWins(t *testing.T) {
	r, err := renderer.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	root := catalog.CircleDot.Render(r, renderer.Color("blue"))
	if got, _ := root.Children[0].Attr(renderer.AttrFill); got != "none" {
		t.Errorf("outer fill = %q, want none", got)
	}
	if got, _ := root.Children[1].Attr(renderer.AttrFill); got != "currentColor" {
		t.Errorf("dot fill = %q, want currentColor", got)
	}
	if got, _ := root.Children[1].Attr(renderer.AttrStroke); got != "blue" {
		t.Errorf("dot stroke = %q, want blue", got)
	}
}

func TestIcon_Digest(t *testing.T) {
	a, b := catalog.Minus.Digest(), catalog.OutlineMinus.Digest()
	if len(a) != 64 {
		t.Fatalf("digest length = %d, want 64", len(a))
	}
	if a == b {
		t.Fatalf("digests match across families with different stroke widths")
	}
	if a != catalog.Minus.Digest() {
		t.Fatalf("digest is not stable")
	}
}

func TestSet_Sprite(t *testing.T) {
	r, err := renderer.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	sprite := catalog.Outline().Sprite(r, "hi-")
	if got, want := len(sprite.Children), catalog.Outline().Len(); got != want {
		t.Fatalf("symbols = %d, want %d", got, want)
	}
	markup := sprite.String()
	for _, name := range catalog.Outline().Names() {
		if !strings.Contains(markup, `id="hi-`+name+`"`) {
			t.Errorf("sprite missing symbol %s", name)
		}
	}
	if !strings.Contains(markup, `stroke-width="1.5"`) {
		t.Errorf("sprite symbols not drawn at family stroke width")
	}
}

func TestSet_Markdown(t *testing.T) {
	markdown := catalog.Lucide().Markdown()
	if !strings.HasPrefix(markdown, "# Icon Catalog: lucide") {
		t.Fatalf("markdown header = %q", strings.SplitN(markdown, "\n", 2)[0])
	}
	for _, name := range catalog.Lucide().Names() {
		if !strings.Contains(markdown, "| "+name+" |") {
			t.Errorf("markdown missing icon %s", name)
		}
	}
	if !strings.Contains(catalog.Outline().Markdown(), "| minus | 1.5 | 1 | subtract |") {
		t.Errorf("outline markdown missing minus row")
	}
}
