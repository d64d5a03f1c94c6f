package sharh

// IsAnchor reports whether b announces the start of a section's commentary.
// Anchors are emphasis-tagged paragraphs or sub-headings whose text contains
// one of the format's anchor phrases. Anchors never contribute body text.
func (f Format) IsAnchor(b Block) bool {
	switch b.Kind {
	case KindParagraph:
		return b.HasTag(f.EmphasisTag) && f.hasAnchorPhrase(b.Text)
	case KindSubHeading:
		return f.hasAnchorPhrase(b.Text)
	default:
		return false
	}
}
