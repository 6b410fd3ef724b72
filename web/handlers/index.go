// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package handlers

import (
	"log"
	"net/http"
	"net/url"

	"github.com/mdhender/svgicons/renderer"
	"github.com/mdhender/svgicons/web/templates"
)

// Index renders the gallery for the selected set.
func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	set, ok := h.set(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	props, err := ParseProps(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	props = append([]renderer.Prop{renderer.Size(32)}, props...)

	data := templates.GalleryData{
		LayoutData: h.layoutData("svgicons: " + set.Name()),
		SetName:    set.Name(),
	}
	for _, name := range h.setNames {
		data.Sets = append(data.Sets, templates.GalleryLink{
			Name: name,
			Href: "/?set=" + url.QueryEscape(name),
		})
	}
	for _, icon := range set.All() {
		data.Icons = append(data.Icons, templates.GalleryIcon{
			Name:  icon.Name,
			Href:  "/icons/" + url.PathEscape(icon.Name) + ".svg?set=" + url.QueryEscape(set.Name()),
			Glyph: icon.Component(h.renderer, props...),
		})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if r.Method == http.MethodHead {
		return
	}
	if err := templates.Gallery(data).Render(r.Context(), w); err != nil {
		log.Printf("index: %v", err)
	}
}
