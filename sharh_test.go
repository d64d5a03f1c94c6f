package sharh_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/sharh"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := sharh.Errorf(sharh.ENOTFOUND, "collection %q not found", "test")

	assert.Equal(t, sharh.ENOTFOUND, sharh.ErrorCode(err))
	assert.Equal(t, "collection \"test\" not found", sharh.ErrorMessage(err))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("saving: %w", sharh.Errorf(sharh.ECONFLICT, "exists"))

	assert.Equal(t, sharh.ECONFLICT, sharh.ErrorCode(err))
	assert.Equal(t, "exists", sharh.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("disk full")

	assert.Equal(t, sharh.EINTERNAL, sharh.ErrorCode(err))
	assert.Equal(t, "Internal error", sharh.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, sharh.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, sharh.ErrorMessage(nil))
}

func TestCollection_Validate(t *testing.T) {
	t.Parallel()

	valid := &sharh.Collection{Name: "nafahat", SourceURL: "http://example.com", Kind: sharh.KindExplanations}
	assert.NoError(t, valid.Validate())

	missingName := &sharh.Collection{SourceURL: "http://example.com", Kind: sharh.KindCatalog}
	assert.Equal(t, sharh.EINVALID, sharh.ErrorCode(missingName.Validate()))

	badKind := &sharh.Collection{Name: "x", SourceURL: "http://example.com", Kind: "other"}
	assert.Equal(t, sharh.EINVALID, sharh.ErrorCode(badKind.Validate()))
}
