package sharh_test

import (
	"testing"

	"github.com/fwojciec/sharh"
	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name string
		in   string
		want string
	}{
		{"bracketed reference", "word[3] next", "word next"},
		{"parenthesized reference", "word([12]) next", "word next"},
		{"zero-width padded reference", "word(​[12]​) next", "word next"},
		{"irregular whitespace", "  a \t b\n\n c  ", "a b c"},
		{"arabic-indic reference", "كلمة[٣] أخرى", "كلمة أخرى"},
		{"nested references", "a [[1]2] b", "a b"},
		{"non-numeric brackets kept", "see [note] here", "see [note] here"},
		{"empty", "", ""},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, sharh.CleanText(tt.in))
		})
	}
}

func TestCleanText_Idempotent(t *testing.T) {
	t.Parallel()

	for _, in := range []string{
		"A[3] sentence ([12]) with\t\tirregular   whitespace ",
		"(​[7]​)leading and [[1]2] nested",
		"([[4]])",
		" text　more ",
	} {
		once := sharh.CleanText(in)
		assert.Equal(t, once, sharh.CleanText(once), "input %q", in)
	}
}

func TestCleanJSON(t *testing.T) {
	t.Parallel()

	t.Run("cleans keys and nested values", func(t *testing.T) {
		t.Parallel()

		in := map[string]any{
			"Title[1]": map[string]any{
				"text":  "Body ([2])  text",
				"notes": []any{"note[3]", 4.0, nil},
			},
		}

		got := sharh.CleanJSON(in)

		assert.Equal(t, map[string]any{
			"Title": map[string]any{
				"text":  "Body text",
				"notes": []any{"note", 4.0, nil},
			},
		}, got)
	})

	t.Run("resolves colliding keys deterministically", func(t *testing.T) {
		t.Parallel()

		in := map[string]any{
			"Title":    "plain",
			"Title[1]": "referenced",
		}

		got := sharh.CleanJSON(in)

		assert.Equal(t, map[string]any{"Title": "referenced"}, got)
	})

	t.Run("passes scalars through", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, true, sharh.CleanJSON(true))
		assert.Equal(t, 1.5, sharh.CleanJSON(1.5))
		assert.Nil(t, sharh.CleanJSON(nil))
	})
}
