package sharh

import (
	"strconv"
	"strings"
	"unicode"
)

// MatchBoundary reports whether b opens a new section and returns the
// section number. A boundary is a section heading containing the marker token
// and at least one run of decimal digits.
//
// The number is the last digit run in the heading: footnote reference
// numbers precede the real section number in contaminated headings such as
// "الخطبة(1) 21".
func (f Format) MatchBoundary(b Block) (int, bool) {
	if b.Kind != KindSectionHeading || f.MarkerToken == "" {
		return 0, false
	}
	if !strings.Contains(b.Text, f.MarkerToken) {
		return 0, false
	}
	return lastNumber(b.Text)
}

// lastNumber returns the value of the last maximal run of decimal digits in s.
// Digits of any script count (Arabic-Indic numerals included). Runs too large
// for an int are not numbers.
func lastNumber(s string) (int, bool) {
	var last string
	var run []byte
	for _, r := range s {
		if d, ok := digitValue(r); ok {
			run = append(run, byte('0'+d))
			continue
		}
		if len(run) > 0 {
			last = string(run)
			run = run[:0]
		}
	}
	if len(run) > 0 {
		last = string(run)
	}
	if last == "" {
		return 0, false
	}

	n, err := strconv.Atoi(last)
	if err != nil {
		return 0, false
	}
	return n, true
}

// digitValue returns the numeric value of a Unicode decimal digit.
// Every Nd range starts at a zero and holds complete runs of ten digits.
func digitValue(r rune) (int, bool) {
	if r >= '0' && r <= '9' {
		return int(r - '0'), true
	}
	if !unicode.IsDigit(r) {
		return 0, false
	}
	for _, rng := range unicode.Digit.R16 {
		if lo, hi := rune(rng.Lo), rune(rng.Hi); r >= lo && r <= hi {
			return int(r-lo) % 10, true
		}
	}
	for _, rng := range unicode.Digit.R32 {
		if lo, hi := rune(rng.Lo), rune(rng.Hi); r >= lo && r <= hi {
			return int(r-lo) % 10, true
		}
	}
	return 0, false
}
