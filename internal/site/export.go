// Package site writes the portfolio as a set of static HTML files.
package site

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/a-h/templ"

	"dconn.dev/portfolio/internal/services"
	"dconn.dev/portfolio/internal/templates"
)

// IndexFile is the page listing every category
const IndexFile = "index.html"

// MediaDir is the output subdirectory holding copied catalog images
const MediaDir = "media"

// Options controls a static export
type Options struct {
	OutputDir string
	// MediaRoot is the directory catalog-relative images are read from,
	// normally the catalog file's directory. Empty skips copying.
	MediaRoot string
}

// Result lists what an export wrote
type Result struct {
	Pages  []string
	Images int
	// Missing lists referenced images that were not found under MediaRoot.
	Missing []string
}

// Export renders the index page and one page per category into OutputDir
func Export(ctx context.Context, svc *services.PortfolioService, opts Options) (*Result, error) {
	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	files := PageFiles(svc.Categories())
	tmplOpts := templates.Options{
		CategoryHref: func(category string) string { return files[category] },
		AllHref:      IndexFile,
		ImageBase:    MediaDir + "/",
	}

	res := &Result{}
	for _, category := range append([]string{""}, svc.Categories()...) {
		name := IndexFile
		if category != "" {
			name = files[category]
		}
		path := filepath.Join(opts.OutputDir, name)
		if err := writePage(ctx, path, templates.Page(svc.BuildPage(category), tmplOpts)); err != nil {
			return nil, fmt.Errorf("write %s: %w", name, err)
		}
		res.Pages = append(res.Pages, path)
	}

	if opts.MediaRoot != "" {
		if err := copyImages(svc.Catalog().LocalImages(), opts.MediaRoot, filepath.Join(opts.OutputDir, MediaDir), res); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// writePage renders c into path. A failed render leaves no file behind.
func writePage(ctx context.Context, path string, c templ.Component) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := c.Render(ctx, f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return err
	}
	return nil
}

// PageFiles assigns each category a unique file name derived from its name
func PageFiles(categories []string) map[string]string {
	files := make(map[string]string, len(categories))
	used := map[string]bool{strings.TrimSuffix(IndexFile, ".html"): true}
	for _, category := range categories {
		base := Slug(category)
		slug := base
		for i := 2; used[slug]; i++ {
			slug = fmt.Sprintf("%s-%d", base, i)
		}
		used[slug] = true
		files[category] = slug + ".html"
	}
	return files
}

// Slug lowercases name and replaces runs of other characters with "-"
func Slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		return "category"
	}
	return slug
}

func copyImages(images []string, root, dst string, res *Result) error {
	for _, rel := range images {
		src := filepath.Join(root, filepath.FromSlash(rel))
		info, err := os.Stat(src)
		if errors.Is(err, fs.ErrNotExist) || (err == nil && info.IsDir()) {
			res.Missing = append(res.Missing, rel)
			continue
		}
		if err != nil {
			return fmt.Errorf("copy image %s: %w", rel, err)
		}
		if err := copyFile(src, filepath.Join(dst, filepath.FromSlash(rel))); err != nil {
			return fmt.Errorf("copy image %s: %w", rel, err)
		}
		res.Images++
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
