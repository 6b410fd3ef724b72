// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package templates holds the HTML pages served next to the icons.
package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// LayoutData is shared by every page.
type LayoutData struct {
	Title   string
	Version string
}

// GalleryIcon is one tile of the gallery.
type GalleryIcon struct {
	Name  string
	Href  string
	Glyph templ.Component
}

// GalleryLink points at another set's gallery. Href must already be
// URL-escaped; it is only HTML-escaped here.
type GalleryLink struct {
	Name string
	Href string
}

// GalleryData lists the icons of one set.
type GalleryData struct {
	LayoutData
	SetName string
	Sets    []GalleryLink
	Icons   []GalleryIcon
}

// Gallery renders an HTML page with one tile per icon.
func Gallery(data GalleryData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return Layout(data.LayoutData, galleryBody(data)).Render(ctx, w)
	})
}

func galleryBody(data GalleryData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pw := &pageWriter{w: w}
		pw.raw(`<h1>`)
		pw.text(data.SetName)
		pw.raw(`</h1>`)
		if len(data.Sets) > 1 {
			pw.raw(`<nav class="sets">`)
			for _, link := range data.Sets {
				pw.raw(`<a href="`)
				pw.text(link.Href)
				pw.raw(`">`)
				pw.text(link.Name)
				pw.raw(`</a>`)
			}
			pw.raw(`</nav>`)
		}
		pw.raw(`<ul class="gallery">`)
		for _, icon := range data.Icons {
			pw.raw(`<li><a href="`)
			pw.text(icon.Href)
			pw.raw(`" title="`)
			pw.text(icon.Name)
			pw.raw(`">`)
			if pw.err == nil && icon.Glyph != nil {
				pw.err = icon.Glyph.Render(ctx, w)
			}
			pw.raw(`<span>`)
			pw.text(icon.Name)
			pw.raw(`</span></a></li>`)
		}
		pw.raw(`</ul>`)
		return pw.err
	})
}

// Layout wraps body in the page chrome.
func Layout(data LayoutData, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pw := &pageWriter{w: w}
		pw.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>`)
		pw.text(data.Title)
		pw.raw(`</title><style>`)
		pw.raw(layoutCSS)
		pw.raw(`</style></head><body><main>`)
		if pw.err == nil {
			pw.err = body.Render(ctx, w)
		}
		pw.raw(`</main><footer>svgicons `)
		pw.text(data.Version)
		pw.raw(`</footer></body></html>`)
		return pw.err
	})
}

const layoutCSS = `body{font-family:system-ui,sans-serif;margin:2rem;color:#222}` +
	`.gallery{list-style:none;padding:0;display:grid;grid-template-columns:repeat(auto-fill,minmax(8rem,1fr));gap:1rem}` +
	`.gallery a{display:flex;flex-direction:column;align-items:center;gap:.5rem;color:inherit;text-decoration:none}` +
	`.sets a{margin-right:1rem}footer{margin-top:2rem;color:#888;font-size:.8rem}`

// pageWriter stops writing after the first error.
type pageWriter struct {
	w   io.Writer
	err error
}

func (pw *pageWriter) raw(s string) {
	if pw.err != nil {
		return
	}
	_, pw.err = io.WriteString(pw.w, s)
}

func (pw *pageWriter) text(s string) {
	pw.raw(templ.EscapeString(s))
}
