package main_test

import (
	"path/filepath"
	"testing"

	main "github.com/fwojciec/sharh/cmd/sharh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("writes cleaned document ordered by label", func(t *testing.T) {
		t.Parallel()

		in := writeFile(t, "in.json", `{"الخطبة10": "ج [3]", "الخطبة2": "ب[1]  نص"}`)
		out := filepath.Join(t.TempDir(), "out.json")
		deps, stdout, _ := newDeps()

		err := (&main.CleanCmd{In: in, Out: out, Prefix: "الخطبة"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "{\n  \"الخطبة2\": \"ب نص\",\n  \"الخطبة10\": \"ج\"\n}\n", readFile(t, out))
		assert.JSONEq(t, `{"الخطبة10": "ج [3]", "الخطبة2": "ب[1]  نص"}`, readFile(t, in))
		assert.Contains(t, stdout.String(), "Cleaned")
	})

	t.Run("rewrites input when no output is given", func(t *testing.T) {
		t.Parallel()

		in := writeFile(t, "in.json", `{"a": {"text": "x[12]", "notes": []}}`)
		deps, _, _ := newDeps()

		err := (&main.CleanCmd{In: in}).Run(deps)

		require.NoError(t, err)
		assert.JSONEq(t, `{"a": {"text": "x", "notes": []}}`, readFile(t, in))
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		t.Parallel()

		in := writeFile(t, "in.json", `{"a":`)
		deps, _, stderr := newDeps()

		err := (&main.CleanCmd{In: in}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "invalid JSON")
	})
}
