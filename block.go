package sharh

import "slices"

// BlockKind identifies the structural role of a Block.
type BlockKind string

// Block kinds produced by a PageParser.
const (
	KindSectionHeading BlockKind = "section_heading"
	KindSubHeading     BlockKind = "sub_heading"
	KindParagraph      BlockKind = "paragraph"
)

// Valid reports whether k is one of the known block kinds.
func (k BlockKind) Valid() bool {
	switch k {
	case KindSectionHeading, KindSubHeading, KindParagraph:
		return true
	}
	return false
}

// Block is the smallest unit of parsed page content. Text is already stripped
// of markup. Tags carry the style classes of the source element and are only
// consulted to recognize footnote and emphasis paragraphs.
type Block struct {
	Kind BlockKind `json:"kind"`
	Text string    `json:"text"`
	Tags []string  `json:"tags,omitempty"`
}

// Validate returns an error if the block does not satisfy the block contract.
func (b Block) Validate() error {
	if b.Kind == "" {
		return Errorf(EINVALID, "block kind required")
	}
	if !b.Kind.Valid() {
		return Errorf(EINVALID, "block kind %q unknown", b.Kind)
	}
	return nil
}

// HasTag reports whether the block carries tag. The empty tag never matches.
func (b Block) HasTag(tag string) bool {
	if tag == "" {
		return false
	}
	return slices.Contains(b.Tags, tag)
}

// Page is the parsed content of one fetched page of a book.
// A nil *Page stands for a page that could not be fetched.
type Page struct {
	Index  int
	URL    string
	Blocks []Block
}
