package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"dconn.dev/portfolio/internal/models"
)

// MediaPrefix is the route under which catalog images are served
const MediaPrefix = "/media/"

// MediaHandler serves the local images a catalog references, resolved
// against the catalog file's directory. Any other path is a 404, so the
// directory's other files stay private.
type MediaHandler struct {
	root   string
	images map[string]bool
}

// NewMediaHandler creates a new MediaHandler
func NewMediaHandler(root string, catalog *models.Catalog) *MediaHandler {
	images := make(map[string]bool)
	for _, rel := range catalog.LocalImages() {
		images[rel] = true
	}
	return &MediaHandler{root: root, images: images}
}

// Serve handles GET /media/*
func (h *MediaHandler) Serve(w http.ResponseWriter, r *http.Request) {
	rel, ok := models.LocalImage(strings.TrimPrefix(r.URL.Path, MediaPrefix))
	if !ok || !h.images[rel] {
		http.NotFound(w, r)
		return
	}

	f, err := os.Open(filepath.Join(h.root, filepath.FromSlash(rel)))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}
