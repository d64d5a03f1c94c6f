// Package goquery implements sharh's HTML parsers using the goquery library.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sharh"
)

// Ensure BlockParser implements sharh.PageParser at compile time.
var _ sharh.PageParser = (*BlockParser)(nil)

// DefaultBlockKinds maps the body-level elements of a commentary page to
// block kinds.
func DefaultBlockKinds() map[string]sharh.BlockKind {
	return map[string]sharh.BlockKind{
		"h1": sharh.KindSectionHeading,
		"h3": sharh.KindSubHeading,
		"p":  sharh.KindParagraph,
	}
}

// BlockParser turns a commentary page into an ordered block list.
// Only direct children of <body> whose tag is mapped to a kind are kept;
// nested markup contributes text to its enclosing block.
type BlockParser struct {
	kinds map[string]sharh.BlockKind
}

// BlockOption configures a BlockParser.
type BlockOption func(*BlockParser)

// WithBlockKinds replaces the tag to kind mapping.
func WithBlockKinds(kinds map[string]sharh.BlockKind) BlockOption {
	return func(p *BlockParser) {
		p.kinds = make(map[string]sharh.BlockKind, len(kinds))
		for tag, kind := range kinds {
			p.kinds[strings.ToLower(tag)] = kind
		}
	}
}

// NewBlockParser creates a BlockParser using DefaultBlockKinds unless
// overridden.
func NewBlockParser(opts ...BlockOption) *BlockParser {
	p := &BlockParser{kinds: DefaultBlockKinds()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseBlocks returns the page's blocks in document order. Block text is the
// concatenation of the element's trimmed text nodes and Tags are the tokens
// of its class attribute.
func (p *BlockParser) ParseBlocks(html string) ([]sharh.Block, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, sharh.Errorf(sharh.EINVALID, "failed to parse HTML: %v", err)
	}

	var blocks []sharh.Block
	doc.Find("body").First().Children().Each(func(_ int, sel *goquery.Selection) {
		kind, ok := p.kinds[goquery.NodeName(sel)]
		if !ok {
			return
		}
		blocks = append(blocks, sharh.Block{
			Kind: kind,
			Text: strippedText(sel, ""),
			Tags: classes(sel),
		})
	})
	return blocks, nil
}
