// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package catalog

// Geometry from Heroicons outline (https://heroicons.com, MIT License).
// The family is drawn with a 1.5 stroke.

const outlineStrokeWidth = 1.5

var (
	OutlineBars3 = Icon{Name: "bars-3", StrokeWidth: outlineStrokeWidth, Tags: []string{"menu"}, Nodes: nodes{
		p("M3.75 6.75h16.5M3.75 12h16.5m-16.5 5.25h16.5"),
	}}
	OutlineCheck = Icon{Name: "check", StrokeWidth: outlineStrokeWidth, Tags: []string{"done"}, Nodes: nodes{
		p("m4.5 12.75 6 6 9-13.5"),
	}}
	OutlineChevronDown = Icon{Name: "chevron-down", StrokeWidth: outlineStrokeWidth, Tags: []string{"expand"}, Nodes: nodes{
		p("m19.5 8.25-7.5 7.5-7.5-7.5"),
	}}
	OutlineChevronUp = Icon{Name: "chevron-up", StrokeWidth: outlineStrokeWidth, Tags: []string{"collapse"}, Nodes: nodes{
		p("m4.5 15.75 7.5-7.5 7.5 7.5"),
	}}
	OutlineMagnifyingGlass = Icon{Name: "magnifying-glass", StrokeWidth: outlineStrokeWidth, Tags: []string{"search"}, Nodes: nodes{
		p("m21 21-5.197-5.197m0 0A7.5 7.5 0 1 0 5.196 5.196a7.5 7.5 0 0 0 10.607 10.607Z"),
	}}
	OutlineMinus = Icon{Name: "minus", StrokeWidth: outlineStrokeWidth, Tags: []string{"subtract"}, Nodes: nodes{
		p("M5 12h14"),
	}}
	OutlinePlus = Icon{Name: "plus", StrokeWidth: outlineStrokeWidth, Tags: []string{"add"}, Nodes: nodes{
		p("M12 4.5v15m7.5-7.5h-15"),
	}}
	OutlineXMark = Icon{Name: "x-mark", StrokeWidth: outlineStrokeWidth, Tags: []string{"close"}, Nodes: nodes{
		p("M6 18 18 6M6 6l12 12"),
	}}
)

var outline = mustSet("outline",
	OutlineBars3, OutlineCheck, OutlineChevronDown, OutlineChevronUp,
	OutlineMagnifyingGlass, OutlineMinus, OutlinePlus, OutlineXMark,
)

// Outline returns the outline icon set, drawn with a 1.5 stroke.
func Outline() *Set {
	return outline
}
