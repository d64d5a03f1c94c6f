package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sharh"
)

// Ensure CatalogParser implements sharh.CatalogParser at compile time.
var _ sharh.CatalogParser = (*CatalogParser)(nil)

// UnknownTitle is used for list items that carry a link but no title span.
const UnknownTitle = "Unknown Title"

// CatalogSelectors names the CSS selectors of a catalog site.
type CatalogSelectors struct {
	Item     string   // list entry wrapping one link
	Link     string   // anchor pointing at a detail page
	Title    string   // element holding the entry title
	Content  []string // detail page body, tried in order
	Footnote string   // removed from the body before reading text
}

// DefaultCatalogSelectors returns the selectors of the AKD catalog theme.
func DefaultCatalogSelectors() CatalogSelectors {
	return CatalogSelectors{
		Item:     "li.AKD-Categ_List",
		Link:     "a.AKD-HrefList",
		Title:    "span.AKD-Li_Tx_",
		Content:  []string{"div.AKD-SiraBodyTx_", "div.AKD-TextContent"},
		Footnote: `div[id^="ftn"]`,
	}
}

// CatalogParser reads list and detail pages of a catalog site.
type CatalogParser struct {
	sel CatalogSelectors
}

// NewCatalogParser creates a CatalogParser with the given selectors.
func NewCatalogParser(sel CatalogSelectors) *CatalogParser {
	return &CatalogParser{sel: sel}
}

// ParseList returns the catalog entries of a list page in document order.
// Item wrappers are preferred; when the page has none, bare links are read.
func (p *CatalogParser) ParseList(html string, baseURL string) ([]sharh.CatalogItem, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, sharh.Errorf(sharh.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, sharh.Errorf(sharh.EINVALID, "failed to parse HTML: %v", err)
	}

	var items []sharh.CatalogItem
	add := func(link *goquery.Selection, title string) {
		href, _ := link.Attr("href")
		if strings.TrimSpace(href) == "" || isNonHTTPLink(href) {
			return
		}
		resolved := resolveURL(base, href)
		if resolved == "" {
			return
		}
		items = append(items, sharh.CatalogItem{Title: title, URL: resolved})
	}

	wrappers := doc.Find(p.sel.Item)
	if wrappers.Length() > 0 {
		wrappers.Each(func(_ int, item *goquery.Selection) {
			link := item.Find(p.sel.Link).First()
			if link.Length() == 0 {
				return
			}
			title := UnknownTitle
			if t := item.Find(p.sel.Title).First(); t.Length() > 0 {
				title = strippedText(t, "")
			}
			add(link, title)
		})
		return items, nil
	}

	doc.Find(p.sel.Link).Each(func(_ int, link *goquery.Selection) {
		t := link.Find(p.sel.Title).First()
		if t.Length() == 0 {
			t = link.Find("span").First()
		}
		if t.Length() == 0 {
			t = link
		}
		add(link, strippedText(t, ""))
	})
	return items, nil
}

// ParseContent returns the body text of a detail page with footnote blocks
// removed and text nodes separated by a blank line. A page without a
// content area yields the empty string.
func (p *CatalogParser) ParseContent(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", sharh.Errorf(sharh.EINVALID, "failed to parse HTML: %v", err)
	}

	for _, selector := range p.sel.Content {
		area := doc.Find(selector).First()
		if area.Length() == 0 {
			continue
		}
		if p.sel.Footnote != "" {
			area.Find(p.sel.Footnote).Remove()
		}
		return strippedText(area, sharh.ParagraphSeparator), nil
	}
	return "", nil
}
