package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"dconn.dev/portfolio/internal/models"
)

// ErrCatalogUnavailable is returned when the catalog file cannot be read
var ErrCatalogUnavailable = errors.New("catalog unavailable")

// ReadCatalog reads and decodes the catalog file at path. YAML is used for
// .yaml and .yml files, JSON for everything else.
func ReadCatalog(path string) (*models.Catalog, []models.Notice, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return models.ParseCatalogYAML(data)
	default:
		return models.ParseCatalogJSON(data)
	}
}

// LoadCatalog is ReadCatalog with failures downgraded to notices: a missing
// or malformed file yields an empty catalog and a visible error notice.
func LoadCatalog(path string) (*models.Catalog, []models.Notice) {
	catalog, notices, err := ReadCatalog(path)
	if err == nil {
		for _, n := range notices {
			log.Printf("Warning: %s", n.Message)
		}
		return catalog, notices
	}

	log.Printf("Warning: failed to load projects from %s: %v", path, err)

	msg := fmt.Sprintf("Projects file '%s' could not be read.", path)
	switch {
	case errors.Is(err, ErrCatalogUnavailable) && errors.Is(err, os.ErrNotExist):
		msg = fmt.Sprintf("Projects file '%s' not found!", path)
	case errors.Is(err, models.ErrFileFormat):
		msg = fmt.Sprintf("Projects file '%s' is not a valid catalog: %v", path, err)
	}

	return models.EmptyCatalog(), []models.Notice{{Level: models.NoticeError, Message: msg}}
}
