package html_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fwojciec/sharh"
	"github.com/fwojciec/sharh/html"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewer_Render(t *testing.T) {
	t.Parallel()

	t.Run("renders right-to-left page with one card per entry", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		v := html.NewViewer(html.DefaultOptions())

		err := v.Render(&buf, []html.Entry{
			{Label: "الخطبة1", Paragraphs: []string{"أول", "ثان"}},
			{Label: "الخطبة2"},
		})

		require.NoError(t, err)
		out := buf.String()
		assert.Contains(t, out, `<html lang="ar" dir="rtl">`)
		assert.Equal(t, 2, strings.Count(out, `<article class="card"`))
		assert.Contains(t, out, "<h2>الخطبة1</h2>")
		assert.Contains(t, out, "<p>ثان</p>")
		assert.Contains(t, out, `<p class="empty">`)
		assert.Less(t, strings.Index(out, "الخطبة1"), strings.Index(out, "الخطبة2"))
	})

	t.Run("escapes markup in text", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		v := html.NewViewer(html.DefaultOptions())

		err := v.Render(&buf, []html.Entry{{Label: "x", Paragraphs: []string{"<script>alert(1)</script>"}}})

		require.NoError(t, err)
		assert.NotContains(t, buf.String(), "<script>alert(1)</script>")
		assert.Contains(t, buf.String(), "&lt;script&gt;")
	})
}

func TestEntriesFromJSON(t *testing.T) {
	t.Parallel()

	t.Run("orders labels numerically and splits paragraphs", func(t *testing.T) {
		t.Parallel()

		doc := map[string]json.RawMessage{
			"s10": json.RawMessage(`"ten"`),
			"s2":  json.RawMessage(`"two a\n\ntwo b"`),
		}

		entries, err := html.EntriesFromJSON(doc, "s")

		require.NoError(t, err)
		assert.Equal(t, []html.Entry{
			{Label: "s2", Paragraphs: []string{"two a", "two b"}},
			{Label: "s10", Paragraphs: []string{"ten"}},
		}, entries)
	})

	t.Run("reads catalog objects and blanked entries", func(t *testing.T) {
		t.Parallel()

		doc := map[string]json.RawMessage{
			"Letter": json.RawMessage(`{"text":"body","notes":[]}`),
			"Gone":   json.RawMessage(`{}`),
		}

		entries, err := html.EntriesFromJSON(doc, "")

		require.NoError(t, err)
		assert.Equal(t, []html.Entry{
			{Label: "Gone"},
			{Label: "Letter", Paragraphs: []string{"body"}},
		}, entries)
	})

	t.Run("rejects unsupported values", func(t *testing.T) {
		t.Parallel()

		_, err := html.EntriesFromJSON(map[string]json.RawMessage{"x": json.RawMessage(`[1]`)}, "")

		assert.Equal(t, sharh.EINVALID, sharh.ErrorCode(err))
	})
}
