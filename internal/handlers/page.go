package handlers

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"dconn.dev/portfolio/internal/services"
	"dconn.dev/portfolio/internal/templates"
)

// PageHandler serves the rendered portfolio page
type PageHandler struct {
	portfolioService *services.PortfolioService
	opts             templates.Options
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(ps *services.PortfolioService, opts templates.Options) *PageHandler {
	return &PageHandler{portfolioService: ps, opts: opts}
}

// Index handles GET / - renders every category, or the one named by ?category=
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	page := h.portfolioService.BuildPage(r.URL.Query().Get("category"))

	// The same URL serves a fragment or a full page depending on HX-Request.
	w.Header().Add("Vary", "HX-Request")
	if isHTMXRequest(r) && !isHistoryRestore(r) {
		templ.Handler(templates.Content(page, h.opts)).ServeHTTP(w, r)
		return
	}
	templ.Handler(templates.Page(page, h.opts)).ServeHTTP(w, r)
}

func isHTMXRequest(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get("HX-Request"), "true")
}

// isHistoryRestore reports a cache miss on htmx back navigation, which
// replaces the whole body and so needs the full page.
func isHistoryRestore(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get("HX-History-Restore-Request"), "true")
}
