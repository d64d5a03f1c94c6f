package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/fwojciec/sharh"
)

// Ensure JSONStore implements sharh.DocumentStore at compile time.
var _ sharh.DocumentStore = (*JSONStore)(nil)

// JSONStore writes one JSON document with atomic replace semantics.
// Save writes path.tmp; Commit renames it over path.
type JSONStore struct {
	path string
}

// NewJSONStore creates a JSONStore for the document at path.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// Path returns the final document path.
func (s *JSONStore) Path() string {
	return s.path
}

func (s *JSONStore) tempPath() string {
	return s.path + ".tmp"
}

func (s *JSONStore) Save(ctx context.Context, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := Encode(&buf, v); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	return os.WriteFile(s.tempPath(), buf.Bytes(), 0644)
}

func (s *JSONStore) Commit() error {
	if _, err := os.Stat(s.tempPath()); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return sharh.Errorf(sharh.EINVALID, "nothing saved for %s", s.path)
		}
		return err
	}
	return os.Rename(s.tempPath(), s.path)
}

func (s *JSONStore) Abort() error {
	err := os.Remove(s.tempPath())
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// Load decodes the JSON document at path into v.
// Returns ENOTFOUND if the file does not exist.
func Load(path string, v any) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return sharh.Errorf(sharh.ENOTFOUND, "file %s not found", path)
	} else if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return sharh.Errorf(sharh.EINVALID, "%s: invalid JSON: %v", path, err)
	}
	return nil
}
