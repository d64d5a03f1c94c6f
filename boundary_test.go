package sharh_test

import (
	"testing"

	"github.com/fwojciec/sharh"
	"github.com/stretchr/testify/assert"
)

func TestFormat_MatchBoundary(t *testing.T) {
	t.Parallel()

	format := testFormat()

	for _, tt := range []struct {
		name   string
		block  sharh.Block
		number int
		ok     bool
	}{
		{"plain number", heading("Sermon 7"), 7, true},
		{"footnote before number", heading("Sermon(1) 12"), 12, true},
		{"three digit runs", heading("Sermon 2 [3] 45"), 45, true},
		{"number glued to marker", heading("Sermon65"), 65, true},
		{"arabic-indic digits", heading("Sermon ١٣٠"), 130, true},
		{"extended arabic-indic digits", heading("Sermon ۴۲"), 42, true},
		{"no digits", heading("Sermon of the Camel"), 0, false},
		{"no marker", heading("Chapter 3"), 0, false},
		{"sub-heading", subHeading("Sermon 3"), 0, false},
		{"paragraph", para("Sermon 3"), 0, false},
		{"overflowing number", heading("Sermon 99999999999999999999999"), 0, false},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			number, ok := format.MatchBoundary(tt.block)

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.number, number)
		})
	}
}

func TestFormat_IsAnchor(t *testing.T) {
	t.Parallel()

	format := testFormat()

	assert.True(t, format.IsAnchor(para("The Commentary", "em")))
	assert.True(t, format.IsAnchor(subHeading("Explanation")))
	assert.False(t, format.IsAnchor(para("The Commentary")))
	assert.False(t, format.IsAnchor(para("Emphasis only", "em")))
	assert.False(t, format.IsAnchor(subHeading("Part two")))
	assert.False(t, format.IsAnchor(heading("Commentary")))
}

func TestFormat_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, sharh.NafahatFormat().Validate())

	f := testFormat()
	f.AnchorPhrases = nil
	assert.Equal(t, sharh.EINVALID, sharh.ErrorCode(f.Validate()))

	f = testFormat()
	f.AnchorPhrases = []string{""}
	assert.Equal(t, sharh.EINVALID, sharh.ErrorCode(f.Validate()))
}
