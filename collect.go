package sharh

import "strings"

// openSection is the section currently being scanned.
type openSection struct {
	Section
	anchors   int
	footnotes int
}

// collect appends the text of b to the section body if b is body text.
// Only paragraphs contribute; footnote paragraphs and paragraphs without
// visible text are dropped. It reports whether b was collected.
func (f Format) collect(sec *openSection, b Block) bool {
	if b.Kind != KindParagraph {
		return false
	}
	if b.HasTag(f.FootnoteTag) {
		sec.footnotes++
		return false
	}
	if strings.TrimSpace(b.Text) == "" {
		return false
	}
	sec.Paragraphs = append(sec.Paragraphs, b.Text)
	return true
}
