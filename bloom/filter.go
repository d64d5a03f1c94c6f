// Package bloom provides probabilistic URL deduplication for scrapes that
// follow many links from one listing page.
package bloom

import (
	"net/url"
	"strings"

	"github.com/bits-and-blooms/bloom/v3"
)

// Filter remembers URLs it has seen. Membership tests may report false
// positives at roughly the configured rate but never false negatives.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a Filter sized for n expected URLs with the given false
// positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records url.
func (f *Filter) Add(url string) {
	f.f.AddString(normalize(url))
}

// Test reports whether url may have been recorded.
func (f *Filter) Test(url string) bool {
	return f.f.TestString(normalize(url))
}

// Seen records url and reports whether it may have been recorded before.
func (f *Filter) Seen(url string) bool {
	return f.f.TestAndAddString(normalize(url))
}

// EstimatedCount returns the approximate number of distinct URLs recorded.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}

// normalize drops the fragment and lowercases scheme and host so links to
// the same page compare equal.
func normalize(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return raw
	}
	u.Fragment = ""
	u.RawFragment = ""
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	return u.String()
}
