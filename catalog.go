package sharh

// CatalogItem is one entry of a listing page: a title and the detail page
// holding its text.
type CatalogItem struct {
	Title string
	URL   string
}

// CatalogEntry is the scraped text of one catalog item.
type CatalogEntry struct {
	Text  string   `json:"text"`
	Notes []string `json:"notes"`
}

// CatalogParser extracts listings and detail text from catalog pages.
type CatalogParser interface {
	// ParseList returns the items of a listing page in document order.
	// Relative links are resolved against baseURL.
	ParseList(html string, baseURL string) ([]CatalogItem, error)

	// ParseContent returns the main text of a detail page with footnotes
	// removed. It returns an empty string when no content area is found.
	ParseContent(html string) (string, error)
}
