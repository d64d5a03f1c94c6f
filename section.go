package sharh

import (
	"sort"
	"strconv"
	"strings"
)

// ParagraphSeparator joins the paragraphs of a section body.
const ParagraphSeparator = "\n\n"

// Section is one numbered unit of a source document (a sermon, a letter)
// together with the commentary paragraphs collected for it.
type Section struct {
	Number     int
	Label      string
	Paragraphs []string
}

// Text returns the section body with paragraphs separated by a blank line.
func (s *Section) Text() string {
	return strings.Join(s.Paragraphs, ParagraphSeparator)
}

// Label renders the result key for a section number.
func (f Format) Label(number int) string {
	return f.LabelPrefix + strconv.Itoa(number)
}

// ParseLabel extracts the section number from a label built with prefix.
func ParseLabel(label, prefix string) (int, bool) {
	rest, ok := strings.CutPrefix(label, prefix)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(rest))
	if err != nil {
		return 0, false
	}
	return n, true
}

// SortLabels orders labels by section number. Labels that do not parse sort
// after numbered ones, lexically.
func SortLabels(labels []string, prefix string) {
	sort.SliceStable(labels, func(i, j int) bool {
		ni, oki := ParseLabel(labels[i], prefix)
		nj, okj := ParseLabel(labels[j], prefix)
		switch {
		case oki && okj:
			if ni != nj {
				return ni < nj
			}
			return labels[i] < labels[j]
		case oki != okj:
			return oki
		default:
			return labels[i] < labels[j]
		}
	})
}
