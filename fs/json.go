// Package fs provides file-based storage for extracted documents.
package fs

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/fwojciec/sharh"
)

// Ordered is a JSON object whose keys are written in Keys order. Keys
// missing from Values are skipped.
type Ordered[V any] struct {
	Keys   []string
	Values map[string]V
}

// SortedByLabel orders m by section number, unnumbered labels last.
func SortedByLabel[V any](m map[string]V, prefix string) Ordered[V] {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sharh.SortLabels(keys, prefix)
	return Ordered[V]{Keys: keys, Values: m}
}

// MarshalJSON implements json.Marshaler.
func (o Ordered[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	first := true
	for _, k := range o.Keys {
		v, ok := o.Values[k]
		if !ok {
			continue
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		if err := enc.Encode(k); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := enc.Encode(v); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Encode writes v as UTF-8 JSON indented by two spaces, without escaping
// HTML characters or non-ASCII text.
func Encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
