// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package handlers

import (
	"fmt"
	"net/http"

	"github.com/mdhender/svgicons"
	"github.com/mdhender/svgicons/catalog"
	"github.com/mdhender/svgicons/renderer"
	"github.com/mdhender/svgicons/web/templates"
)

// Handlers holds dependencies for HTTP handlers.
type Handlers struct {
	renderer   *renderer.Renderer
	sets       map[string]*catalog.Set
	setNames   []string
	defaultSet string
}

// New creates Handlers serving the given sets. The first set is the default.
func New(r *renderer.Renderer, sets ...*catalog.Set) (*Handlers, error) {
	if len(sets) == 0 {
		return nil, fmt.Errorf("handlers: no icon sets")
	}
	h := &Handlers{
		renderer:   r,
		sets:       make(map[string]*catalog.Set, len(sets)),
		defaultSet: sets[0].Name(),
	}
	for _, set := range sets {
		if _, ok := h.sets[set.Name()]; ok {
			return nil, fmt.Errorf("handlers: duplicate icon set %q", set.Name())
		}
		h.sets[set.Name()] = set
		h.setNames = append(h.setNames, set.Name())
	}
	return h, nil
}

// Register adds the icon routes to mux.
func (h *Handlers) Register(mux *http.ServeMux) {
	mux.HandleFunc("/{$}", h.Index)
	mux.HandleFunc("/icons/{name}", h.Icon)
	mux.HandleFunc("/sprite.svg", h.Sprite)
}

// set returns the set named by ?set=, or the default set.
func (h *Handlers) set(r *http.Request) (*catalog.Set, bool) {
	name := r.URL.Query().Get("set")
	if name == "" {
		name = h.defaultSet
	}
	set, ok := h.sets[name]
	return set, ok
}

func (h *Handlers) layoutData(title string) templates.LayoutData {
	return templates.LayoutData{
		Title:   title,
		Version: svgicons.Version().String(),
	}
}
