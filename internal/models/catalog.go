package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// ErrFileFormat is returned when a catalog document cannot be decoded
var ErrFileFormat = errors.New("catalog file format")

// rawProject collects the recognised fields of one project entry
type rawProject struct {
	image        string
	description  string
	technologies string
	githubLink   string
	demoLink     string
}

func (r *rawProject) set(field, value string) {
	value = strings.TrimSpace(value)
	switch field {
	case "image":
		r.image = value
	case "description":
		r.description = value
	case "technologies":
		r.technologies = value
	case "github_link":
		r.githubLink = value
	case "demo_link":
		r.demoLink = value
	}
}

// missing lists the required fields that are absent
func (r *rawProject) missing() []string {
	var fields []string
	if r.image == "" {
		fields = append(fields, "image")
	}
	if r.description == "" {
		fields = append(fields, "description")
	}
	return fields
}

// catalogBuilder assembles a Catalog in document order. A repeated key
// replaces the earlier value but keeps its original position; a repeated
// key whose later value is invalid removes the earlier entry.
type catalogBuilder struct {
	catalog *Catalog
	index   map[string]int
	notices []Notice
}

func newCatalogBuilder() *catalogBuilder {
	return &catalogBuilder{
		catalog: EmptyCatalog(),
		index:   make(map[string]int),
	}
}

func (b *catalogBuilder) beginCategory(name string) {
	if i, ok := b.index[name]; ok {
		b.catalog.Categories[i].Projects = []Project{}
		return
	}
	b.index[name] = len(b.catalog.Categories)
	b.catalog.Categories = append(b.catalog.Categories, Category{Name: name, Projects: []Project{}})
}

// skipCategory drops any earlier value for category
func (b *catalogBuilder) skipCategory(name, reason string) {
	b.warnf("Skipped category %q: %s", name, reason)
	i, ok := b.index[name]
	if !ok {
		return
	}
	b.catalog.Categories = append(b.catalog.Categories[:i], b.catalog.Categories[i+1:]...)
	delete(b.index, name)
	for j := i; j < len(b.catalog.Categories); j++ {
		b.index[b.catalog.Categories[j].Name] = j
	}
}

// skipProject drops any earlier value for the project within category
func (b *catalogBuilder) skipProject(category, name, reason string) {
	b.warnf("Skipped project %q in %q: %s", name, category, reason)
	cat := &b.catalog.Categories[b.index[category]]
	for i := range cat.Projects {
		if cat.Projects[i].Name == name {
			cat.Projects = append(cat.Projects[:i], cat.Projects[i+1:]...)
			return
		}
	}
}

func (b *catalogBuilder) addProject(category, name string, raw rawProject) {
	if missing := raw.missing(); len(missing) > 0 {
		b.skipProject(category, name, "missing "+strings.Join(missing, ", "))
		return
	}

	p := Project{
		Name:         name,
		Image:        raw.image,
		Description:  raw.description,
		Technologies: raw.technologies,
		GitHubLink:   raw.githubLink,
		DemoLink:     raw.demoLink,
	}

	cat := &b.catalog.Categories[b.index[category]]
	for i := range cat.Projects {
		if cat.Projects[i].Name == name {
			cat.Projects[i] = p
			return
		}
	}
	cat.Projects = append(cat.Projects, p)
}

func (b *catalogBuilder) warnf(format string, args ...any) {
	b.notices = append(b.notices, Notice{
		Level:   NoticeWarning,
		Message: fmt.Sprintf(format, args...),
	})
}

// ParseCatalogJSON decodes a catalog of the form
// {category: {project: {image, description, ...}}} keeping key order.
// Entries without an image or description are skipped and reported as notices.
func ParseCatalogJSON(data []byte) (*Catalog, []Notice, error) {
	if !gjson.ValidBytes(data) {
		return nil, nil, fmt.Errorf("%w: invalid JSON", ErrFileFormat)
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, nil, fmt.Errorf("%w: top level must be an object of categories", ErrFileFormat)
	}

	b := newCatalogBuilder()
	root.ForEach(func(key, value gjson.Result) bool {
		category := key.String()
		if !value.IsObject() {
			b.skipCategory(category, "expected an object of projects")
			return true
		}
		b.beginCategory(category)

		value.ForEach(func(key, value gjson.Result) bool {
			name := key.String()
			if !value.IsObject() {
				b.skipProject(category, name, "expected an object")
				return true
			}
			var raw rawProject
			value.ForEach(func(field, v gjson.Result) bool {
				raw.set(field.String(), jsonText(v))
				return true
			})
			b.addProject(category, name, raw)
			return true
		})
		return true
	})

	return b.catalog, b.notices, nil
}

// jsonText flattens a field value; arrays are joined with ", "
func jsonText(v gjson.Result) string {
	if v.IsArray() {
		var parts []string
		for _, item := range v.Array() {
			if s := strings.TrimSpace(item.String()); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	}
	if v.Type == gjson.Null || v.IsObject() {
		return ""
	}
	return v.String()
}

// ParseCatalogYAML decodes the same catalog shape from a YAML document
func ParseCatalogYAML(data []byte) (*Catalog, []Notice, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrFileFormat, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, nil, fmt.Errorf("%w: empty document", ErrFileFormat)
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, nil, fmt.Errorf("%w: top level must be a mapping of categories", ErrFileFormat)
	}

	b := newCatalogBuilder()
	for i := 0; i+1 < len(root.Content); i += 2 {
		category, value := root.Content[i].Value, root.Content[i+1]
		if value.Kind != yaml.MappingNode {
			b.skipCategory(category, "expected a mapping of projects")
			continue
		}
		b.beginCategory(category)

		for j := 0; j+1 < len(value.Content); j += 2 {
			name, fields := value.Content[j].Value, value.Content[j+1]
			if fields.Kind != yaml.MappingNode {
				b.skipProject(category, name, "expected a mapping")
				continue
			}
			var raw rawProject
			for k := 0; k+1 < len(fields.Content); k += 2 {
				raw.set(fields.Content[k].Value, yamlText(fields.Content[k+1]))
			}
			b.addProject(category, name, raw)
		}
	}

	return b.catalog, b.notices, nil
}

func yamlText(n *yaml.Node) string {
	switch n.Kind {
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return ""
		}
		return n.Value
	case yaml.SequenceNode:
		var parts []string
		for _, item := range n.Content {
			if item.Kind == yaml.ScalarNode && strings.TrimSpace(item.Value) != "" {
				parts = append(parts, strings.TrimSpace(item.Value))
			}
		}
		return strings.Join(parts, ", ")
	case yaml.AliasNode:
		if n.Alias != nil {
			return yamlText(n.Alias)
		}
	}
	return ""
}
