// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package handlers

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"log"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/mdhender/svgicons/renderer"
	"golang.org/x/crypto/blake2b"
)

// QueryError reports a malformed query parameter.
type QueryError struct {
	Param string
	Value string
	Err   error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query %s=%q: %v", e.Param, e.Value, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// ParseProps converts query parameters into render props.
// Recognized parameters are size, color, stroke-width, absolute and class.
// Sprites ignore size.
func ParseProps(q url.Values) ([]renderer.Prop, error) {
	var props []renderer.Prop
	for _, param := range []string{"size", "stroke-width"} {
		value := q.Get(param)
		if value == "" {
			continue
		}
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, &QueryError{Param: param, Value: value, Err: err}
		}
		if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, &QueryError{Param: param, Value: value, Err: fmt.Errorf("must be a non-negative number")}
		}
		if param == "size" {
			props = append(props, renderer.Size(f))
		} else {
			props = append(props, renderer.StrokeWidth(f))
		}
	}
	if value := q.Get("absolute"); value != "" {
		flag, err := strconv.ParseBool(value)
		if err != nil {
			return nil, &QueryError{Param: "absolute", Value: value, Err: err}
		}
		props = append(props, renderer.AbsoluteStrokeWidth(flag))
	}
	if value := q.Get("color"); value != "" {
		props = append(props, renderer.Color(value))
	}
	if values := q["class"]; len(values) != 0 {
		props = append(props, renderer.Class(values...))
	}
	return props, nil
}

// Icon serves one icon as image/svg+xml.
func (h *Handlers) Icon(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	set, ok := h.set(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	icon, ok := set.Lookup(strings.TrimSuffix(r.PathValue("name"), ".svg"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	props, err := ParseProps(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.writeSVG(w, r, icon.Render(h.renderer, props...))
}

// Sprite serves every icon of a set as symbols of one sprite sheet.
func (h *Handlers) Sprite(w http.ResponseWriter, r *http.Request) {
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
	prefix := r.URL.Query().Get("prefix")
	if prefix == "" {
		prefix = set.Name() + "-"
	}
	h.writeSVG(w, r, set.Sprite(h.renderer, prefix, props...))
}

// writeSVG renders the element and serves it with a content-hash ETag.
func (h *Handlers) writeSVG(w http.ResponseWriter, r *http.Request, e *renderer.Element) {
	var buf bytes.Buffer
	if err := e.Render(r.Context(), &buf); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	sum := blake2b.Sum256(buf.Bytes())
	etag := `"` + hex.EncodeToString(sum[:16]) + `"`

	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "public, max-age=86400")
	if ifNoneMatch(r, etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	if r.Method == http.MethodHead {
		return
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Printf("icons: write %s: %v", r.URL.Path, err)
	}
}

// ifNoneMatch reports whether the If-None-Match header lists etag.
// Comparison is weak: a W/ prefix on either side is ignored.
func ifNoneMatch(r *http.Request, etag string) bool {
	header := r.Header.Get("If-None-Match")
	if header == "" {
		return false
	}
	etag = strings.TrimPrefix(etag, "W/")
	for _, item := range strings.Split(header, ",") {
		item = strings.TrimSpace(item)
		if item == "*" || strings.TrimPrefix(item, "W/") == etag {
			return true
		}
	}
	return false
}
