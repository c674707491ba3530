package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dconn.dev/portfolio/internal/models"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddr)
	assert.Equal(t, "projects.json", cfg.CatalogPath)
	assert.Equal(t, "static", cfg.StaticDir)
	assert.Equal(t, ".", cfg.MediaRoot())
	assert.Equal(t, "Data Science Portfolio", cfg.Title)
	assert.Nil(t, cfg.Projects)
}

func TestLoadFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORTFOLIO_ADDR", ":9090")
	t.Setenv("PORTFOLIO_CATALOG_PATH", "data/projects.yaml")
	t.Setenv("PORTFOLIO_TITLE", "My Work")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ServerAddr)
	assert.Equal(t, "data/projects.yaml", cfg.CatalogPath)
	assert.Equal(t, "data", cfg.MediaRoot())
	assert.Equal(t, "My Work", cfg.Title)
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("PORTFOLIO_SUBTITLE=From dotenv\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("PORTFOLIO_SUBTITLE") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "From dotenv", cfg.Subtitle)
}

func TestLoadProjects(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "projects.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"ML": {"Churn Model": {"image": "a.png", "description": "predicts churn"}}}`), 0o644))

	cfg := &Config{Settings: Settings{CatalogPath: path}}
	cfg.LoadProjects()

	require.NotNil(t, cfg.Projects)
	assert.Equal(t, []string{"ML"}, cfg.Projects.Names())
	assert.Empty(t, cfg.Notices)
}

func TestLoadProjectsMissingFile(t *testing.T) {
	cfg := &Config{Settings: Settings{CatalogPath: filepath.Join(t.TempDir(), "missing.json")}}
	cfg.LoadProjects()

	require.NotNil(t, cfg.Projects)
	assert.Equal(t, 0, cfg.Projects.Len())
	require.Len(t, cfg.Notices, 1)
	assert.Equal(t, models.NoticeError, cfg.Notices[0].Level)
}
