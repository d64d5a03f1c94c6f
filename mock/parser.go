package mock

import "github.com/fwojciec/sharh"

var _ sharh.PageParser = (*PageParser)(nil)

// PageParser is a mock implementation of sharh.PageParser.
type PageParser struct {
	ParseBlocksFn func(html string) ([]sharh.Block, error)
}

func (p *PageParser) ParseBlocks(html string) ([]sharh.Block, error) {
	return p.ParseBlocksFn(html)
}

var _ sharh.CatalogParser = (*CatalogParser)(nil)

// CatalogParser is a mock implementation of sharh.CatalogParser.
type CatalogParser struct {
	ParseListFn    func(html string, baseURL string) ([]sharh.CatalogItem, error)
	ParseContentFn func(html string) (string, error)
}

func (p *CatalogParser) ParseList(html string, baseURL string) ([]sharh.CatalogItem, error) {
	return p.ParseListFn(html, baseURL)
}

func (p *CatalogParser) ParseContent(html string) (string, error) {
	return p.ParseContentFn(html)
}

var _ sharh.SectionExtractor = (*SectionExtractor)(nil)

// SectionExtractor is a mock implementation of sharh.SectionExtractor.
type SectionExtractor struct {
	ExtractSectionsFn func(pages []*sharh.Page) (*sharh.Result, error)
}

func (e *SectionExtractor) ExtractSections(pages []*sharh.Page) (*sharh.Result, error) {
	return e.ExtractSectionsFn(pages)
}
