package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCatalogJSONKeepsDocumentOrder(t *testing.T) {
	data := []byte(`{
		"Zeta": {
			"Second": {"image": "b.png", "description": "two"},
			"First": {"image": "a.png", "description": "one"}
		},
		"Alpha": {
			"Only": {"image": "c.png", "description": "three", "technologies": "Go"}
		}
	}`)

	catalog, notices, err := ParseCatalogJSON(data)
	require.NoError(t, err)
	assert.Empty(t, notices)

	assert.Equal(t, []string{"Zeta", "Alpha"}, catalog.Names())
	zeta, ok := catalog.Category("Zeta")
	require.True(t, ok)
	require.Len(t, zeta.Projects, 2)
	assert.Equal(t, "Second", zeta.Projects[0].Name)
	assert.Equal(t, "First", zeta.Projects[1].Name)
	assert.Equal(t, 3, catalog.ProjectCount())
}

func TestParseCatalogJSONOptionalFields(t *testing.T) {
	data := []byte(`{"ML": {"Churn Model": {
		"image": "a.png",
		"description": "predicts churn",
		"github_link": "https://github.com/x/churn",
		"demo_link": ""
	}}}`)

	catalog, _, err := ParseCatalogJSON(data)
	require.NoError(t, err)

	p, ok := catalog.Categories[0].Project("Churn Model")
	require.True(t, ok)
	assert.Equal(t, "a.png", p.Image)
	assert.Equal(t, "predicts churn", p.Description)
	assert.Empty(t, p.Technologies)
	assert.Equal(t, TechnologiesFallback, p.TechnologiesOrFallback())
	assert.Equal(t, "https://github.com/x/churn", p.GitHubLink)
	assert.Empty(t, p.DemoLink)
}

func TestParseCatalogJSONTechnologiesArray(t *testing.T) {
	data := []byte(`{"Web": {"Site": {"image": "s.png", "description": "d", "technologies": ["Go", "templ", " "]}}}`)

	catalog, _, err := ParseCatalogJSON(data)
	require.NoError(t, err)
	assert.Equal(t, "Go, templ", catalog.Categories[0].Projects[0].Technologies)
}

func TestParseCatalogJSONSkipsIncompleteProjects(t *testing.T) {
	data := []byte(`{
		"ML": {
			"No Image": {"description": "d"},
			"No Description": {"image": "a.png"},
			"Scalar": "oops",
			"Good": {"image": "a.png", "description": "d"}
		},
		"Broken": ["not", "an", "object"]
	}`)

	catalog, notices, err := ParseCatalogJSON(data)
	require.NoError(t, err)

	assert.Equal(t, []string{"ML"}, catalog.Names())
	require.Len(t, catalog.Categories[0].Projects, 1)
	assert.Equal(t, "Good", catalog.Categories[0].Projects[0].Name)

	require.Len(t, notices, 4)
	for _, n := range notices {
		assert.Equal(t, NoticeWarning, n.Level)
	}
	assert.Contains(t, notices[0].Message, `"No Image"`)
	assert.Contains(t, notices[0].Message, "image")
	assert.Contains(t, notices[1].Message, "description")
	assert.Contains(t, notices[3].Message, `"Broken"`)
}

func TestParseCatalogJSONDuplicateKeysLastWins(t *testing.T) {
	data := []byte(`{
		"A": {"P": {"image": "old.png", "description": "old"}, "Q": {"image": "q.png", "description": "q"}},
		"B": {},
		"A": {"P": {"image": "new.png", "description": "new"}}
	}`)

	catalog, _, err := ParseCatalogJSON(data)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B"}, catalog.Names())
	a, _ := catalog.Category("A")
	require.Len(t, a.Projects, 1)
	assert.Equal(t, "new.png", a.Projects[0].Image)

	t.Run("incomplete later project removes the earlier one", func(t *testing.T) {
		data := []byte(`{"A": {
			"P": {"image": "old.png", "description": "old"},
			"Q": {"image": "q.png", "description": "q"},
			"P": {"description": "new, no image"}
		}}`)

		catalog, notices, err := ParseCatalogJSON(data)
		require.NoError(t, err)

		a, _ := catalog.Category("A")
		require.Len(t, a.Projects, 1)
		assert.Equal(t, "Q", a.Projects[0].Name)
		require.Len(t, notices, 1)
		assert.Contains(t, notices[0].Message, `Skipped project "P" in "A": missing image`)
	})

	t.Run("non-object later project removes the earlier one", func(t *testing.T) {
		data := []byte(`{"A": {"P": {"image": "old.png", "description": "old"}, "P": "gone"}}`)

		catalog, _, err := ParseCatalogJSON(data)
		require.NoError(t, err)

		a, _ := catalog.Category("A")
		assert.Empty(t, a.Projects)
	})

	t.Run("non-object later category removes the earlier one", func(t *testing.T) {
		data := []byte(`{
			"A": {"P": {"image": "a.png", "description": "a"}},
			"B": {"Q": {"image": "b.png", "description": "b"}},
			"A": null,
			"C": {"R": {"image": "c.png", "description": "c"}}
		}`)

		catalog, notices, err := ParseCatalogJSON(data)
		require.NoError(t, err)

		assert.Equal(t, []string{"B", "C"}, catalog.Names())
		c, ok := catalog.Category("C")
		require.True(t, ok)
		assert.Equal(t, "R", c.Projects[0].Name)
		require.Len(t, notices, 1)
		assert.Contains(t, notices[0].Message, `Skipped category "A"`)
	})
}

func TestCatalogBuilderSkipRemovesEarlierValue(t *testing.T) {
	b := newCatalogBuilder()
	b.beginCategory("A")
	b.addProject("A", "P", rawProject{image: "old.png", description: "old"})
	b.addProject("A", "P", rawProject{image: "new.png"})
	b.beginCategory("B")
	b.skipCategory("A", "expected a mapping of projects")
	b.beginCategory("C")
	b.addProject("C", "S", rawProject{image: "s.png", description: "s"})

	assert.Equal(t, []string{"B", "C"}, b.catalog.Names())
	assert.Len(t, b.notices, 2)
	c, ok := b.catalog.Category("C")
	require.True(t, ok)
	assert.Equal(t, "S", c.Projects[0].Name)
}

func TestParseCatalogJSONEmptyObject(t *testing.T) {
	catalog, notices, err := ParseCatalogJSON([]byte(`{}`))
	require.NoError(t, err)
	assert.Empty(t, notices)
	assert.Equal(t, 0, catalog.Len())
	assert.Empty(t, catalog.Names())
}

func TestParseCatalogJSONFormatErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "empty", data: ""},
		{name: "truncated", data: `{"ML": {`},
		{name: "array root", data: `[1, 2]`},
		{name: "string root", data: `"hello"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog, _, err := ParseCatalogJSON([]byte(tt.data))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrFileFormat)
			assert.Nil(t, catalog)
		})
	}
}

func TestParseCatalogYAML(t *testing.T) {
	data := []byte(`
Machine Learning:
  Churn Model:
    image: churn.png
    description: predicts churn
    technologies: [Python, scikit-learn]
    demo_link: https://demo.example.com
  Forecast:
    image: forecast.png
    description: time series
Analytics:
  Dashboard:
    image: dash.png
    technologies: ~
`)

	catalog, notices, err := ParseCatalogYAML(data)
	require.NoError(t, err)

	assert.Equal(t, []string{"Machine Learning", "Analytics"}, catalog.Names())
	ml := catalog.Categories[0]
	require.Len(t, ml.Projects, 2)
	assert.Equal(t, "Churn Model", ml.Projects[0].Name)
	assert.Equal(t, "Python, scikit-learn", ml.Projects[0].Technologies)
	assert.Equal(t, "https://demo.example.com", ml.Projects[0].DemoLink)
	assert.Equal(t, "Forecast", ml.Projects[1].Name)

	assert.Empty(t, catalog.Categories[1].Projects)
	require.Len(t, notices, 1)
	assert.Contains(t, notices[0].Message, "Dashboard")
}

func TestParseCatalogYAMLFormatErrors(t *testing.T) {
	for name, data := range map[string]string{
		"empty":    "",
		"sequence": "- a\n- b\n",
		"invalid":  "a: [unclosed",
	} {
		t.Run(name, func(t *testing.T) {
			_, _, err := ParseCatalogYAML([]byte(data))
			assert.ErrorIs(t, err, ErrFileFormat)
		})
	}
}

func TestNilCatalogAccessors(t *testing.T) {
	var c *Catalog
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Names())
	assert.Equal(t, 0, c.ProjectCount())
	_, ok := c.Category("x")
	assert.False(t, ok)
}
