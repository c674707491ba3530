package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"dconn.dev/portfolio/internal/config"
	"dconn.dev/portfolio/internal/middleware"
	"dconn.dev/portfolio/internal/services"
	"dconn.dev/portfolio/internal/templates"
)

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)

	// Initialize services
	portfolioService := services.NewPortfolioService(cfg.Projects, services.PageOptions{
		Title:    cfg.Title,
		Subtitle: cfg.Subtitle,
		Icon:     cfg.PageIcon,
		Notices:  cfg.Notices,
	})

	// Initialize handlers
	projectHandler := NewProjectHandler(portfolioService)
	pageHandler := NewPageHandler(portfolioService, templates.Options{HTMX: true})
	mediaHandler := NewMediaHandler(cfg.MediaRoot(), cfg.Projects)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/catalog", projectHandler.GetCatalog)
		r.Get("/page", projectHandler.GetPage)

		// Category and project endpoints
		r.Get("/categories", projectHandler.ListCategories)
		r.Get("/categories/{category}", projectHandler.GetCategory)
		r.Get("/categories/{category}/projects/{project}", projectHandler.GetProject)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	// Static files
	mountDir(r, "/static", cfg.StaticDir)
	r.Get(MediaPrefix+"*", mediaHandler.Serve)

	r.Get("/", pageHandler.Index)

	return r
}

func mountDir(r chi.Router, prefix, dir string) {
	if dir == "" {
		return
	}
	fileServer := http.FileServer(http.Dir(dir))
	r.Handle(prefix+"/*", http.StripPrefix(prefix, fileServer))
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON: %v", err)
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
