package site

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dconn.dev/portfolio/internal/models"
	"dconn.dev/portfolio/internal/services"
)

func TestSlug(t *testing.T) {
	tests := map[string]string{
		"Machine Learning": "machine-learning",
		"Data & AI":        "data-ai",
		"  NLP!  ":         "nlp",
		"Été 2024":         "été-2024",
		"***":              "category",
	}
	for in, want := range tests {
		assert.Equal(t, want, Slug(in), in)
	}
}

func TestPageFilesAreUnique(t *testing.T) {
	files := PageFiles([]string{"Data AI", "Data & AI", "Index"})

	assert.Equal(t, "data-ai.html", files["Data AI"])
	assert.Equal(t, "data-ai-2.html", files["Data & AI"])
	assert.Equal(t, "index-2.html", files["Index"])
}

func TestExport(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "images", "shots"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "images", "shots", "a.png"), []byte("png"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "images", "unused.png"), []byte("png"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env"), []byte("SECRET=1"), 0o644))

	catalog := &models.Catalog{Categories: []models.Category{
		{Name: "Machine Learning", Projects: []models.Project{
			{Name: "Churn Model", Image: "images/shots/a.png", Description: "predicts churn"},
			{Name: "Forecast", Image: "images/missing.png", Description: "forecasts"},
		}},
		{Name: "Web", Projects: []models.Project{
			{Name: "Site", Image: "https://cdn.example.com/s.png", Description: "portfolio"},
		}},
	}}
	svc := services.NewPortfolioService(catalog, services.PageOptions{Title: "Portfolio"})
	out := filepath.Join(t.TempDir(), "site")

	res, err := Export(context.Background(), svc, Options{OutputDir: out, MediaRoot: root})
	require.NoError(t, err)

	assert.Len(t, res.Pages, 3)
	assert.Equal(t, 1, res.Images)
	assert.Equal(t, []string{"images/missing.png"}, res.Missing)
	assert.FileExists(t, filepath.Join(out, MediaDir, "images", "shots", "a.png"))
	assert.NoFileExists(t, filepath.Join(out, MediaDir, "images", "unused.png"))
	assert.NoFileExists(t, filepath.Join(out, MediaDir, ".env"))

	index, err := os.ReadFile(filepath.Join(out, IndexFile))
	require.NoError(t, err)
	assert.Contains(t, string(index), `href="machine-learning.html"`)
	assert.Contains(t, string(index), `src="media/images/shots/a.png"`)
	assert.Contains(t, string(index), `src="https://cdn.example.com/s.png"`)
	assert.NotContains(t, string(index), "hx-get")

	web, err := os.ReadFile(filepath.Join(out, "web.html"))
	require.NoError(t, err)
	assert.Contains(t, string(web), "<h2>Web</h2>")
	assert.NotContains(t, string(web), "<h2>Machine Learning</h2>")
	assert.Contains(t, string(web), `href="index.html">Show all</a>`)
}

func TestExportEmptyCatalogWithoutImages(t *testing.T) {
	svc := services.NewPortfolioService(nil, services.PageOptions{})
	out := t.TempDir()

	res, err := Export(context.Background(), svc, Options{OutputDir: out, MediaRoot: filepath.Join(out, "missing")})
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(out, IndexFile)}, res.Pages)
	assert.Zero(t, res.Images)
	assert.Empty(t, res.Missing)
}

func TestExportRemovesPageWhenRenderFails(t *testing.T) {
	svc := services.NewPortfolioService(nil, services.PageOptions{})
	out := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Export(ctx, svc, Options{OutputDir: out})

	require.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, err.Error(), "write index.html")
	assert.NoFileExists(t, filepath.Join(out, IndexFile))
}

func TestExportReportsCreateError(t *testing.T) {
	svc := services.NewPortfolioService(nil, services.PageOptions{})
	out := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(out, IndexFile), 0o755))

	_, err := Export(context.Background(), svc, Options{OutputDir: out})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "write index.html")
	assert.DirExists(t, filepath.Join(out, IndexFile))
}
