package models

// TechnologiesFallback is shown when a project lists no technologies.
const TechnologiesFallback = "N/A"

// Project represents a portfolio project
type Project struct {
	Name         string `json:"name"`
	Image        string `json:"image"`
	Description  string `json:"description"`
	Technologies string `json:"technologies,omitempty"`
	GitHubLink   string `json:"github_link,omitempty"`
	DemoLink     string `json:"demo_link,omitempty"`
}

// TechnologiesOrFallback returns the technologies line, or "N/A" when absent.
func (p Project) TechnologiesOrFallback() string {
	if p.Technologies == "" {
		return TechnologiesFallback
	}
	return p.Technologies
}

// Category is a named, ordered group of projects
type Category struct {
	Name     string    `json:"name"`
	Projects []Project `json:"projects"`
}

// Project returns the project with the given name
func (c Category) Project(name string) (Project, bool) {
	for _, p := range c.Projects {
		if p.Name == name {
			return p, true
		}
	}
	return Project{}, false
}

// Catalog holds every category in source document order.
// It is built once at startup and never mutated afterwards.
type Catalog struct {
	Categories []Category `json:"categories"`
}

// EmptyCatalog returns a catalog with no categories
func EmptyCatalog() *Catalog {
	return &Catalog{Categories: []Category{}}
}

// Len returns the number of categories
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Categories)
}

// Names returns the category names in order
func (c *Catalog) Names() []string {
	names := make([]string, 0, c.Len())
	if c == nil {
		return names
	}
	for _, cat := range c.Categories {
		names = append(names, cat.Name)
	}
	return names
}

// Category returns the category with the given name
func (c *Catalog) Category(name string) (Category, bool) {
	if c == nil {
		return Category{}, false
	}
	for _, cat := range c.Categories {
		if cat.Name == name {
			return cat, true
		}
	}
	return Category{}, false
}

// ProjectCount returns the total number of projects across categories
func (c *Catalog) ProjectCount() int {
	if c == nil {
		return 0
	}
	n := 0
	for _, cat := range c.Categories {
		n += len(cat.Projects)
	}
	return n
}
