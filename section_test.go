package sharh_test

import (
	"testing"

	"github.com/fwojciec/sharh"
	"github.com/stretchr/testify/assert"
)

func TestSection_Text(t *testing.T) {
	t.Parallel()

	s := &sharh.Section{Paragraphs: []string{"A.", "B."}}

	assert.Equal(t, "A.\n\nB.", s.Text())
}

func TestParseLabel(t *testing.T) {
	t.Parallel()

	n, ok := sharh.ParseLabel("الخطبة54", "الخطبة")
	assert.True(t, ok)
	assert.Equal(t, 54, n)

	_, ok = sharh.ParseLabel("letter3", "الخطبة")
	assert.False(t, ok)

	_, ok = sharh.ParseLabel("الخطبةx", "الخطبة")
	assert.False(t, ok)
}

func TestSortLabels(t *testing.T) {
	t.Parallel()

	labels := []string{"s10", "intro", "s2", "appendix", "s1"}

	sharh.SortLabels(labels, "s")

	assert.Equal(t, []string{"s1", "s2", "s10", "appendix", "intro"}, labels)
}

func TestRecordsFromSections(t *testing.T) {
	t.Parallel()

	records := sharh.RecordsFromSections("c1", map[string]string{
		"s2":    "two",
		"s1":    "one",
		"extra": "x",
	}, "s")

	if assert.Len(t, records, 3) {
		assert.Equal(t, "s1", records[0].Label)
		assert.Equal(t, 0, records[0].Position)
		if assert.NotNil(t, records[0].Number) {
			assert.Equal(t, 1, *records[0].Number)
		}
		assert.Equal(t, "s2", records[1].Label)
		assert.Equal(t, "extra", records[2].Label)
		assert.Nil(t, records[2].Number)
		assert.Equal(t, "c1", records[2].CollectionID)
	}
}
