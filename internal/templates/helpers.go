// Package templates turns the portfolio view model into HTML components.
//
// The components live in portfolio.templ; run `templ generate` after editing it.
package templates

import (
	"strings"

	"github.com/a-h/templ"

	"dconn.dev/portfolio/internal/models"
)

// Options adapts view-model links to the serving mode
type Options struct {
	// CategoryHref overrides NavControl.Href, e.g. for static export.
	CategoryHref func(category string) string
	// AllHref clears the filter. Defaults to "/".
	AllHref string
	// ImageBase prefixes catalog-relative image paths. Defaults to "/media/".
	ImageBase string
	// HTMX enables in-place navigation.
	HTMX bool
	// Stylesheet is an optional extra stylesheet URL.
	Stylesheet string
}

func (o Options) allHref() string {
	if o.AllHref == "" {
		return "/"
	}
	return o.AllHref
}

func (o Options) imageBase() string {
	if o.ImageBase == "" {
		return "/media/"
	}
	return o.ImageBase
}

func (o Options) href(c models.NavControl) string {
	if o.CategoryHref != nil {
		return o.CategoryHref(c.Label)
	}
	return c.Href
}

// ImageSrc resolves a catalog image against base. Paths relative to the
// catalog are joined to base; URLs and rooted paths are only sanitized.
func ImageSrc(base, image string) string {
	if rel, ok := models.LocalImage(image); ok {
		return strings.TrimSuffix(base, "/") + "/" + rel
	}
	return string(templ.URL(strings.TrimSpace(image)))
}

func heading(page models.Page) string {
	if page.Icon == "" {
		return page.Title
	}
	return page.Icon + " " + page.Title
}

// paragraphs splits text on blank lines
func paragraphs(text string) []string {
	var out []string
	for _, p := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// iconHref wraps an emoji in an inline SVG favicon
func iconHref(icon string) string {
	if strings.Contains(icon, "/") || strings.Contains(icon, ".") {
		return icon
	}
	return "data:image/svg+xml,<svg xmlns='http://www.w3.org/2000/svg' viewBox='0 0 100 100'><text y='.9em' font-size='90'>" + icon + "</text></svg>"
}
