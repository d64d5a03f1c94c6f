package sharh

// SectionStatus records what happened to a section when it was closed.
type SectionStatus string

// Section statuses reported in diagnostics.
const (
	SectionEmitted  SectionStatus = "emitted"
	SectionNoAnchor SectionStatus = "no_anchor"
	SectionEmpty    SectionStatus = "empty"
)

// SectionDiagnostic describes one matched section boundary.
type SectionDiagnostic struct {
	Number     int           `json:"number"`
	Label      string        `json:"label"`
	Status     SectionStatus `json:"status"`
	Anchors    int           `json:"anchors"`
	Paragraphs int           `json:"paragraphs"`
	Footnotes  int           `json:"footnotes"`

	// Overwrote is set when an earlier section with the same label was
	// replaced by this one.
	Overwrote bool `json:"overwrote,omitempty"`
}

// ExtractStats counts the silent outcomes of an extraction.
type ExtractStats struct {
	Sections         int `json:"sections"`
	Emitted          int `json:"emitted"`
	OmittedNoAnchor  int `json:"omittedNoAnchor"`
	OmittedEmpty     int `json:"omittedEmpty"`
	Overwritten      int `json:"overwritten"`
	FootnotesDropped int `json:"footnotesDropped"`

	// Discarded counts paragraphs seen outside an anchored section.
	Discarded int `json:"discarded"`
}

// Omitted returns the number of sections left out of the result.
func (s ExtractStats) Omitted() int {
	return s.OmittedNoAnchor + s.OmittedEmpty
}

// Result maps section labels to their commentary text.
type Result struct {
	Sections    map[string]string
	Diagnostics []SectionDiagnostic
	Stats       ExtractStats
}

// NewResult returns an empty Result.
func NewResult() *Result {
	return &Result{Sections: make(map[string]string)}
}

// Merge adds the sections of other to r. Labels already present are
// overwritten and counted as such.
func (r *Result) Merge(other *Result) {
	if other == nil {
		return
	}
	for label, text := range other.Sections {
		if _, ok := r.Sections[label]; ok {
			r.Stats.Overwritten++
		}
		r.Sections[label] = text
	}
	r.Diagnostics = append(r.Diagnostics, other.Diagnostics...)

	r.Stats.Sections += other.Stats.Sections
	r.Stats.Emitted += other.Stats.Emitted
	r.Stats.OmittedNoAnchor += other.Stats.OmittedNoAnchor
	r.Stats.OmittedEmpty += other.Stats.OmittedEmpty
	r.Stats.Overwritten += other.Stats.Overwritten
	r.Stats.FootnotesDropped += other.Stats.FootnotesDropped
	r.Stats.Discarded += other.Stats.Discarded
}

// Labels returns the result keys ordered by section number.
func (r *Result) Labels(prefix string) []string {
	labels := make([]string, 0, len(r.Sections))
	for label := range r.Sections {
		labels = append(labels, label)
	}
	SortLabels(labels, prefix)
	return labels
}

// SectionExtractor turns the ordered pages of one book into sections.
type SectionExtractor interface {
	ExtractSections(pages []*Page) (*Result, error)
}

var _ SectionExtractor = (*Extractor)(nil)

// Extractor implements SectionExtractor with a fixed Format.
// It holds no mutable state and is safe for concurrent use.
type Extractor struct {
	format Format
}

// NewExtractor creates a new Extractor for the given format.
func NewExtractor(format Format) *Extractor {
	return &Extractor{format: format}
}

// Format returns the extractor's format.
func (e *Extractor) Format() Format {
	return e.format
}

// ExtractSections builds the block stream from pages and extracts sections.
func (e *Extractor) ExtractSections(pages []*Page) (*Result, error) {
	if err := e.format.Validate(); err != nil {
		return nil, err
	}
	stream, err := BuildStream(pages, e.format)
	if err != nil {
		return nil, err
	}
	return Extract(stream, e.format)
}

// Extract walks a flat block stream once and returns the commentary of every
// section that has an anchor followed by at least one paragraph. When a
// label repeats, the later section wins.
func Extract(stream []Block, format Format) (*Result, error) {
	if err := format.Validate(); err != nil {
		return nil, err
	}

	s := newScanner(format)
	for i, b := range stream {
		if err := b.Validate(); err != nil {
			return nil, Errorf(EINVALID, "block %d: %s", i, ErrorMessage(err))
		}
		s.step(b)
	}
	return s.finish(), nil
}

// scanState is the state of the extraction scanner.
type scanState int

const (
	// seekSection: no section is open; everything but a boundary is discarded.
	seekSection scanState = iota
	// seekAnchor: a section is open but its commentary has not started.
	seekAnchor
	// collecting: paragraphs are appended to the open section.
	collecting
)

func (s scanState) String() string {
	switch s {
	case seekSection:
		return "seek_section"
	case seekAnchor:
		return "seek_anchor"
	case collecting:
		return "collecting"
	default:
		return "unknown"
	}
}

// scanner is the single-pass state machine behind Extract.
type scanner struct {
	format Format
	state  scanState
	open   *openSection
	result *Result
}

func newScanner(format Format) *scanner {
	return &scanner{
		format: format,
		state:  seekSection,
		result: NewResult(),
	}
}

// step consumes one block. A boundary closes the open section in any state.
func (s *scanner) step(b Block) {
	if number, ok := s.format.MatchBoundary(b); ok {
		s.finalize()
		s.open = &openSection{Section: Section{
			Number: number,
			Label:  s.format.Label(number),
		}}
		s.result.Stats.Sections++
		s.state = seekAnchor
		return
	}

	switch s.state {
	case seekSection:
		s.discard(b)
	case seekAnchor:
		if s.format.IsAnchor(b) {
			s.open.anchors++
			s.state = collecting
			return
		}
		s.discard(b)
	case collecting:
		if s.format.IsAnchor(b) {
			s.open.anchors++
			return
		}
		s.format.collect(s.open, b)
	}
}

func (s *scanner) discard(b Block) {
	if b.Kind == KindParagraph {
		s.result.Stats.Discarded++
	}
}

// finalize closes the open section, emitting it if it collected any text.
func (s *scanner) finalize() {
	sec := s.open
	if sec == nil {
		return
	}
	s.open = nil

	diag := SectionDiagnostic{
		Number:     sec.Number,
		Label:      sec.Label,
		Anchors:    sec.anchors,
		Paragraphs: len(sec.Paragraphs),
		Footnotes:  sec.footnotes,
	}
	s.result.Stats.FootnotesDropped += sec.footnotes

	switch {
	case s.state == seekAnchor:
		diag.Status = SectionNoAnchor
		s.result.Stats.OmittedNoAnchor++
	case len(sec.Paragraphs) == 0:
		diag.Status = SectionEmpty
		s.result.Stats.OmittedEmpty++
	default:
		diag.Status = SectionEmitted
		if _, ok := s.result.Sections[sec.Label]; ok {
			diag.Overwrote = true
			s.result.Stats.Overwritten++
		}
		s.result.Sections[sec.Label] = sec.Text()
		s.result.Stats.Emitted++
	}
	s.result.Diagnostics = append(s.result.Diagnostics, diag)
}

// finish closes the last section and returns the result.
func (s *scanner) finish() *Result {
	s.finalize()
	s.state = seekSection
	return s.result
}
