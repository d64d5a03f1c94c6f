package sharh

import (
	"regexp"
	"sort"
	"strings"
)

// footnoteRef matches footnote reference markers such as "[3]", "([12])" and
// the zero-width-space padded "(​[12]​)".
var footnoteRef = regexp.MustCompile(`\(\x{200B}?\[\p{Nd}+\]\x{200B}?\)|\[\p{Nd}+\]`)

// CleanText removes footnote reference markers, collapses whitespace runs to
// a single space and trims the ends. Removal repeats until no marker is left,
// so CleanText(CleanText(s)) == CleanText(s) even for nested markers like
// "[[1]2]".
func CleanText(s string) string {
	for {
		next := footnoteRef.ReplaceAllString(s, "")
		if next == s {
			break
		}
		s = next
	}
	return strings.Join(strings.Fields(s), " ")
}

// CleanJSON applies CleanText to every string and every object key of a
// decoded JSON value. When two keys clean to the same string, the key that
// sorts last wins.
func CleanJSON(v any) any {
	switch v := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		cleaned := make(map[string]any, len(v))
		for _, k := range keys {
			cleaned[CleanText(k)] = CleanJSON(v[k])
		}
		return cleaned
	case []any:
		cleaned := make([]any, len(v))
		for i, item := range v {
			cleaned[i] = CleanJSON(item)
		}
		return cleaned
	case string:
		return CleanText(v)
	default:
		return v
	}
}
