package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"dconn.dev/portfolio/internal/services"
)

// ProjectHandler handles catalog and project endpoints
type ProjectHandler struct {
	portfolioService *services.PortfolioService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.PortfolioService) *ProjectHandler {
	return &ProjectHandler{portfolioService: ps}
}

// GetCatalog handles GET /api/catalog
func (h *ProjectHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.portfolioService.Catalog())
}

// GetPage handles GET /api/page?category= - returns the page view model
func (h *ProjectHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	page := h.portfolioService.BuildPage(r.URL.Query().Get("category"))
	respondJSON(w, http.StatusOK, page)
}

// ListCategories handles GET /api/categories
func (h *ProjectHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.portfolioService.Categories())
}

// GetCategory handles GET /api/categories/{category}
func (h *ProjectHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	category, err := h.portfolioService.GetCategory(chi.URLParam(r, "category"))
	if err != nil {
		respondLookupError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, category)
}

// GetProject handles GET /api/categories/{category}/projects/{project}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	project, err := h.portfolioService.GetProject(chi.URLParam(r, "category"), chi.URLParam(r, "project"))
	if err != nil {
		respondLookupError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, project)
}

func respondLookupError(w http.ResponseWriter, err error) {
	if errors.Is(err, services.ErrNotFound) {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}
	respondError(w, http.StatusInternalServerError, err.Error())
}
