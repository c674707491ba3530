package services

import (
	"errors"
	"fmt"
	"net/url"

	"dconn.dev/portfolio/internal/models"
)

// ErrNotFound is returned when a category or project lookup fails
var ErrNotFound = errors.New("not found")

const (
	detailsLabel    = "Project Details"
	githubLinkLabel = "GitHub Repository"
	demoLinkLabel   = "Live Demo"
)

// PageOptions holds the page chrome shown above the grid
type PageOptions struct {
	Title    string
	Subtitle string
	Icon     string
	// Notices are load-time messages repeated on every render.
	Notices []models.Notice
}

// PortfolioService builds portfolio views from an immutable catalog
type PortfolioService struct {
	catalog *models.Catalog
	opts    PageOptions
}

// NewPortfolioService creates a new PortfolioService. A nil catalog is
// treated as empty.
func NewPortfolioService(catalog *models.Catalog, opts PageOptions) *PortfolioService {
	if catalog == nil {
		catalog = models.EmptyCatalog()
	}
	return &PortfolioService{catalog: catalog, opts: opts}
}

// Catalog returns the catalog the service renders
func (s *PortfolioService) Catalog() *models.Catalog {
	return s.catalog
}

// Categories returns all category names in catalog order
func (s *PortfolioService) Categories() []string {
	return s.catalog.Names()
}

// GetCategory returns a specific category by name
func (s *PortfolioService) GetCategory(name string) (*models.Category, error) {
	cat, ok := s.catalog.Category(name)
	if !ok {
		return nil, fmt.Errorf("category %q: %w", name, ErrNotFound)
	}
	return &cat, nil
}

// GetProject returns a specific project within a category
func (s *PortfolioService) GetProject(category, name string) (*models.Project, error) {
	cat, err := s.GetCategory(category)
	if err != nil {
		return nil, err
	}
	p, ok := cat.Project(name)
	if !ok {
		return nil, fmt.Errorf("project %q in %q: %w", name, category, ErrNotFound)
	}
	return &p, nil
}

// BuildPage renders the catalog into a view model. An empty category shows
// every section; a category absent from the catalog shows none.
func (s *PortfolioService) BuildPage(category string) models.Page {
	page := models.Page{
		Title:    s.opts.Title,
		Subtitle: s.opts.Subtitle,
		Icon:     s.opts.Icon,
		Notices:  append([]models.Notice{}, s.opts.Notices...),
		Nav:      s.buildNav(category),
		Filter:   category,
		Sections: []models.Section{},
	}

	if category == "" {
		for _, cat := range s.catalog.Categories {
			page.Sections = append(page.Sections, buildSection(cat))
		}
		return page
	}

	cat, ok := s.catalog.Category(category)
	if !ok {
		page.FilterMissing = true
		return page
	}
	page.Sections = append(page.Sections, buildSection(cat))
	return page
}

func (s *PortfolioService) buildNav(active string) models.Nav {
	nav := models.Nav{
		Columns:  max(1, s.catalog.Len()),
		Controls: make([]models.NavControl, 0, s.catalog.Len()),
	}
	for _, name := range s.catalog.Names() {
		nav.Controls = append(nav.Controls, models.NavControl{
			Label:  name,
			Href:   CategoryHref(name),
			Active: name == active,
		})
	}
	return nav
}

// CategoryHref is the page URL that selects the given category
func CategoryHref(name string) string {
	return "/?" + url.Values{"category": {name}}.Encode()
}

func buildSection(cat models.Category) models.Section {
	section := models.Section{
		Heading: cat.Name,
		Cards:   make([]models.Card, 0, len(cat.Projects)),
		Columns: make([][]models.Card, models.GridColumns),
	}
	for i := range section.Columns {
		section.Columns[i] = []models.Card{}
	}

	for i, p := range cat.Projects {
		card := buildCard(i, p)
		section.Cards = append(section.Cards, card)
		section.Columns[card.Column] = append(section.Columns[card.Column], card)
	}
	return section
}

func buildCard(position int, p models.Project) models.Card {
	details := models.CardDetails{
		Label:        detailsLabel,
		Description:  p.Description,
		Technologies: p.TechnologiesOrFallback(),
	}
	if p.GitHubLink != "" {
		details.Links = append(details.Links, models.Link{Label: githubLinkLabel, URL: p.GitHubLink})
	}
	if p.DemoLink != "" {
		details.Links = append(details.Links, models.Link{Label: demoLinkLabel, URL: p.DemoLink})
	}

	return models.Card{
		Position: position,
		Column:   position % models.GridColumns,
		Row:      position / models.GridColumns,
		Image:    p.Image,
		Caption:  p.Name,
		Details:  details,
	}
}
