// Package html renders extracted sections as a self-contained HTML viewer
// using the standard html/template package.
package html

import (
	"bytes"
	"encoding/json"
	"html/template"
	"io"
	"strings"

	"github.com/fwojciec/sharh"
)

// Entry is one section shown by the viewer.
type Entry struct {
	Label      string
	Paragraphs []string
}

// Options configures the rendered page.
type Options struct {
	Title       string
	Subtitle    string
	Lang        string
	Dir         string
	Placeholder string
}

// DefaultOptions returns Arabic right-to-left page settings.
func DefaultOptions() Options {
	return Options{
		Title:       "شروح نهج البلاغة",
		Subtitle:    "Nahj al-Balagha Explanations",
		Lang:        "ar",
		Dir:         "rtl",
		Placeholder: "ابحث في الشروح...",
	}
}

// Viewer renders entries into a single HTML page with client-side search.
type Viewer struct {
	opts Options
	tmpl *template.Template
}

// NewViewer creates a Viewer with the given options.
func NewViewer(opts Options) *Viewer {
	return &Viewer{
		opts: opts,
		tmpl: template.Must(template.New("viewer").Parse(viewerTemplate)),
	}
}

// Render writes the page for entries to w. Entries are shown in the given
// order; each card carries its plain text for the search filter.
func (v *Viewer) Render(w io.Writer, entries []Entry) error {
	type card struct {
		Entry
		Search string
	}
	cards := make([]card, len(entries))
	for i, e := range entries {
		cards[i] = card{
			Entry:  e,
			Search: strings.ToLower(e.Label + " " + strings.Join(e.Paragraphs, " ")),
		}
	}

	var buf bytes.Buffer
	err := v.tmpl.Execute(&buf, struct {
		Options
		Cards []card
		Total int
	}{v.opts, cards, len(cards)})
	if err != nil {
		return err
	}
	_, err = buf.WriteTo(w)
	return err
}

// EntriesFromJSON converts a label→value document into viewer entries
// ordered by section number. Values may be plain strings or objects with a
// "text" field; blanked entries ({}) produce no paragraphs.
func EntriesFromJSON(doc map[string]json.RawMessage, prefix string) ([]Entry, error) {
	labels := make([]string, 0, len(doc))
	for label := range doc {
		labels = append(labels, label)
	}
	sharh.SortLabels(labels, prefix)

	entries := make([]Entry, 0, len(labels))
	for _, label := range labels {
		text, err := entryText(doc[label])
		if err != nil {
			return nil, sharh.Errorf(sharh.EINVALID, "entry %q: %v", label, err)
		}
		entries = append(entries, Entry{Label: label, Paragraphs: splitParagraphs(text)})
	}
	return entries, nil
}

func entryText(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var obj struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return "", err
	}
	return obj.Text, nil
}

func splitParagraphs(text string) []string {
	var out []string
	for _, p := range strings.Split(text, sharh.ParagraphSeparator) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
