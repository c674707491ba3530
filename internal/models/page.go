package models

// GridColumns is the number of card columns per category section
const GridColumns = 3

// Page is the view model for one render pass of the portfolio
type Page struct {
	Title         string    `json:"title"`
	Subtitle      string    `json:"subtitle,omitempty"`
	Icon          string    `json:"icon,omitempty"`
	Notices       []Notice  `json:"notices"`
	Nav           Nav       `json:"nav"`
	Filter        string    `json:"filter,omitempty"`
	FilterMissing bool      `json:"filter_missing,omitempty"`
	Sections      []Section `json:"sections"`
}

// CardCount returns the number of cards across all sections
func (p Page) CardCount() int {
	n := 0
	for _, s := range p.Sections {
		n += len(s.Cards)
	}
	return n
}

// Nav is the category navigation row
type Nav struct {
	Columns  int          `json:"columns"`
	Controls []NavControl `json:"controls"`
}

// NavControl selects a category as the active filter
type NavControl struct {
	Label  string `json:"label"`
	Href   string `json:"href"`
	Active bool   `json:"active"`
}

// Section is a category heading followed by its cards
type Section struct {
	Heading string `json:"heading"`
	Cards   []Card `json:"cards"`
	// Columns holds the same cards grouped by column, always GridColumns long.
	Columns [][]Card `json:"columns"`
}

// Card is the rendered unit for one project
type Card struct {
	Position int         `json:"position"`
	Column   int         `json:"column"`
	Row      int         `json:"row"`
	Image    string      `json:"image"`
	Caption  string      `json:"caption"`
	Details  CardDetails `json:"details"`
}

// CardDetails is the content of a card's expandable panel
type CardDetails struct {
	Label        string `json:"label"`
	Description  string `json:"description"`
	Technologies string `json:"technologies"`
	Links        []Link `json:"links,omitempty"`
}

// Link is an external project link
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}
