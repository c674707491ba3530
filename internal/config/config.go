package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"dconn.dev/portfolio/internal/models"
)

// Settings holds the values read from the environment
type Settings struct {
	ServerAddr  string `env:"ADDR" envDefault:":8080"`
	CatalogPath string `env:"CATALOG_PATH" envDefault:"projects.json"`
	StaticDir   string `env:"STATIC_DIR" envDefault:"static"`
	Title       string `env:"TITLE" envDefault:"Data Science Portfolio"`
	Subtitle    string `env:"SUBTITLE" envDefault:"Showcasing my data science and machine learning projects"`
	PageIcon    string `env:"PAGE_ICON" envDefault:"🚀"`
}

// Config holds all application configuration
type Config struct {
	Settings
	Projects *models.Catalog
	Notices  []models.Notice
}

// EnvPrefix is prepended to every environment variable name
const EnvPrefix = "PORTFOLIO_"

// Load reads the optional .env file, then environment variables.
// The catalog itself is loaded separately by LoadProjects.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var settings Settings
	if err := env.ParseWithOptions(&settings, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &Config{Settings: settings}, nil
}

// LoadProjects reads the catalog at CatalogPath into the config.
// Failures are recorded as notices and never abort startup.
func (c *Config) LoadProjects() {
	c.Projects, c.Notices = LoadCatalog(c.CatalogPath)
}

// MediaRoot is the directory relative image paths in the catalog resolve against
func (c *Config) MediaRoot() string {
	return filepath.Dir(c.CatalogPath)
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
