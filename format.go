package sharh

import "strings"

// Format describes the vocabulary a source uses to mark sections and the
// start of their commentary. It is passed explicitly to the extractor so the
// same core can run against any source and against synthetic block streams.
type Format struct {
	// MarkerToken must appear in a section heading for it to open a section.
	MarkerToken string `json:"markerToken"`

	// TitleTokens mark a page's leading heading as a book title even when
	// it happens to contain MarkerToken.
	TitleTokens []string `json:"titleTokens,omitempty"`

	// AnchorPhrases are the phrases announcing "commentary starts here".
	AnchorPhrases []string `json:"anchorPhrases"`

	// EmphasisTag marks paragraphs that may act as anchors.
	EmphasisTag string `json:"emphasisTag"`

	// FootnoteTag marks paragraphs that never contribute body text.
	FootnoteTag string `json:"footnoteTag"`

	// LabelPrefix is prepended to the section number to build result keys.
	LabelPrefix string `json:"labelPrefix"`
}

// NafahatFormat returns the format of the Nafahat al-Wilaya commentary pages:
// sermons open with "الخطبة N" headings and their explanation is announced by
// a "mohem" paragraph or an h3 containing "الشرح والتفسير" or a variant.
func NafahatFormat() Format {
	return Format{
		MarkerToken:   "الخطبة",
		TitleTokens:   []string{"نفحات", "الولاية"},
		AnchorPhrases: []string{"الشرح والتفسير", "شرح الخطبة", "الشرح", "التفسير", "شرح"},
		EmphasisTag:   "mohem",
		FootnoteTag:   "foot1",
		LabelPrefix:   "الخطبة",
	}
}

// Validate returns an error if the format cannot drive an extraction.
func (f Format) Validate() error {
	if f.MarkerToken == "" {
		return Errorf(EINVALID, "format marker token required")
	}
	if len(f.AnchorPhrases) == 0 {
		return Errorf(EINVALID, "format anchor phrases required")
	}
	for _, p := range f.AnchorPhrases {
		if p == "" {
			return Errorf(EINVALID, "format anchor phrases must not be empty")
		}
	}
	return nil
}

// isTitle reports whether a page's leading section heading names the book
// rather than a section.
func (f Format) isTitle(text string) bool {
	if !strings.Contains(text, f.MarkerToken) {
		return true
	}
	return containsAny(text, f.TitleTokens)
}

func (f Format) hasAnchorPhrase(text string) bool {
	return containsAny(text, f.AnchorPhrases)
}

func containsAny(s string, substrs []string) bool {
	for _, sub := range substrs {
		if sub != "" && strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
