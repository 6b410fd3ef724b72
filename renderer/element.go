// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package renderer

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"
)

// Element is one node of a rendered tree.
type Element struct {
	Tag      Tag
	Attrs    Attrs
	Children []*Element
	Text     string
}

var _ templ.Component = (*Element)(nil)

// Attr returns the formatted value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.Attrs.Get(name)
	if !ok {
		return "", false
	}
	return FormatValue(v), true
}

// Walk calls fn for e and every descendant, depth first.
func (e *Element) Walk(fn func(*Element)) {
	fn(e)
	for _, child := range e.Children {
		child.Walk(fn)
	}
}

// Render writes the element as SVG markup.
func (e *Element) Render(ctx context.Context, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var b bytes.Buffer
	e.write(&b)
	_, err := w.Write(b.Bytes())
	return err
}

func (e *Element) String() string {
	var b bytes.Buffer
	e.write(&b)
	return b.String()
}

func (e *Element) write(b *bytes.Buffer) {
	b.WriteByte('<')
	b.WriteString(string(e.Tag))
	for _, attr := range e.Attrs {
		b.WriteByte(' ')
		b.WriteString(attr.Name)
		b.WriteString(`="`)
		b.WriteString(templ.EscapeString(FormatValue(attr.Value)))
		b.WriteByte('"')
	}
	if len(e.Children) == 0 && e.Text == "" {
		b.WriteString("/>")
		return
	}
	b.WriteByte('>')
	if len(e.Children) != 0 {
		for _, child := range e.Children {
			child.write(b)
		}
	} else {
		b.WriteString(templ.EscapeString(e.Text))
	}
	b.WriteString("</")
	b.WriteString(string(e.Tag))
	b.WriteByte('>')
}
