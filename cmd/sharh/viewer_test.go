package main_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/sharh"
	main "github.com/fwojciec/sharh/cmd/sharh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewerCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("renders sections ordered by number", func(t *testing.T) {
		t.Parallel()

		in := writeFile(t, "explanations.json", `{"الخطبة10": "عاشر", "الخطبة2": "ثان\n\nفقرة"}`)
		out := filepath.Join(t.TempDir(), "viewer.html")
		deps, stdout, _ := newDeps()

		err := (&main.ViewerCmd{In: in, Out: out, Prefix: "الخطبة", Title: "شروح"}).Run(deps)

		require.NoError(t, err)
		page := readFile(t, out)
		assert.Contains(t, page, "<title>شروح</title>")
		second := strings.Index(page, "ثان")
		tenth := strings.Index(page, "عاشر")
		require.NotEqual(t, -1, second)
		require.NotEqual(t, -1, tenth)
		assert.Less(t, second, tenth)
		assert.Contains(t, page, "فقرة")
		assert.Contains(t, stdout.String(), "Wrote 2 sections")
	})

	t.Run("rejects entries that are neither text nor objects", func(t *testing.T) {
		t.Parallel()

		in := writeFile(t, "bad.json", `{"a": [1]}`)
		deps, _, _ := newDeps()

		err := (&main.ViewerCmd{In: in, Out: filepath.Join(t.TempDir(), "v.html")}).Run(deps)

		assert.Equal(t, sharh.EINVALID, sharh.ErrorCode(err))
	})
}
