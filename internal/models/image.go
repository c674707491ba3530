package models

import (
	"path"
	"strings"
)

// LocalImage reports whether image is a path relative to the catalog file
// and returns it in clean slash form. URLs, rooted paths and paths that
// climb out of the catalog directory are not local.
func LocalImage(image string) (string, bool) {
	image = strings.ReplaceAll(strings.TrimSpace(image), `\`, "/")
	if image == "" || strings.HasPrefix(image, "/") || strings.Contains(image, ":") {
		return "", false
	}
	clean := path.Clean(image)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", false
	}
	return clean, true
}

// LocalImages returns every distinct local image path the catalog references
func (c *Catalog) LocalImages() []string {
	var images []string
	if c == nil {
		return images
	}
	seen := make(map[string]bool)
	for _, cat := range c.Categories {
		for _, p := range cat.Projects {
			rel, ok := LocalImage(p.Image)
			if !ok || seen[rel] {
				continue
			}
			seen[rel] = true
			images = append(images, rel)
		}
	}
	return images
}
