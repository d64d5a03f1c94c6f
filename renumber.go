package sharh

import (
	"encoding/json"
	"sort"
	"strconv"
)

// ShiftLabels moves every section numbered from or higher by delta.
// Labels that do not parse with prefix are kept as they are. It returns the
// relabeled mapping and the number of labels that changed, or ECONFLICT if
// two sections would end up under the same label.
func ShiftLabels[V any](m map[string]V, prefix string, from, delta int) (map[string]V, int, error) {
	return relabel(m, prefix, func(n int) (int, bool) {
		if n >= from {
			return n + delta, true
		}
		return n, true
	})
}

// DeleteLabel removes the section numbered id and closes the gap by moving
// every higher-numbered section down by one.
func DeleteLabel[V any](m map[string]V, prefix string, id int) (map[string]V, int, error) {
	return relabel(m, prefix, func(n int) (int, bool) {
		switch {
		case n == id:
			return 0, false
		case n > id:
			return n - 1, true
		default:
			return n, true
		}
	})
}

// relabel rebuilds m with the numbers mapped by fn; fn returning false drops
// the section. changed counts renamed and dropped labels.
func relabel[V any](m map[string]V, prefix string, fn func(int) (int, bool)) (map[string]V, int, error) {
	out := make(map[string]V, len(m))
	from := make(map[string]string, len(m))
	changed := 0

	labels := make([]string, 0, len(m))
	for label := range m {
		labels = append(labels, label)
	}
	SortLabels(labels, prefix)

	for _, label := range labels {
		target := label
		if n, ok := ParseLabel(label, prefix); ok {
			next, keep := fn(n)
			if !keep {
				changed++
				continue
			}
			if next != n {
				target = prefix + strconv.Itoa(next)
				changed++
			}
		}
		if prev, ok := from[target]; ok {
			return nil, 0, Errorf(ECONFLICT, "labels %q and %q both map to %q", prev, label, target)
		}
		from[target] = label
		out[target] = m[label]
	}
	return out, changed, nil
}

// BlankEntries replaces the value of every listed key present in doc with an
// empty JSON object. It returns the keys that were blanked, in sorted order.
func BlankEntries(doc map[string]json.RawMessage, keys []string) []string {
	seen := make(map[string]bool, len(keys))
	var blanked []string
	for _, key := range keys {
		if _, ok := doc[key]; !ok || seen[key] {
			continue
		}
		seen[key] = true
		doc[key] = json.RawMessage("{}")
		blanked = append(blanked, key)
	}
	sort.Strings(blanked)
	return blanked
}
