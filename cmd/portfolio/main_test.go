package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCommand(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	catalog := filepath.Join(dir, "projects.json")
	require.NoError(t, os.WriteFile(catalog, []byte(`{"ML": {
		"Churn Model": {"image": "images/a.png", "description": "predicts churn"},
		"Forecast": {"image": "images/b.png", "description": "forecasts"}
	}}`), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "images"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "images", "a.png"), []byte("png"), 0o644))

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"generate", filepath.Join(dir, "site"), "--catalog", catalog})

	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "Generating 1 categories")
	assert.Contains(t, out.String(), "Done!")
	assert.FileExists(t, filepath.Join(dir, "site", "index.html"))
	assert.FileExists(t, filepath.Join(dir, "site", "ml.html"))
	assert.FileExists(t, filepath.Join(dir, "site", "media", "images", "a.png"))
	assert.Contains(t, out.String(), "Copied 1 images")
	assert.Contains(t, out.String(), "Warning: image images/b.png not found")
}

func TestGenerateRequiresOutputDir(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"generate"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	assert.Error(t, cmd.Execute())
}
