package webreduce_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/webreduce"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := webreduce.Errorf(webreduce.ENOTFOUND, "page %q not cached", "https://example.com")

	assert.Equal(t, webreduce.ENOTFOUND, webreduce.ErrorCode(err))
	assert.Equal(t, "page \"https://example.com\" not cached", webreduce.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, webreduce.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, webreduce.EINTERNAL, webreduce.ErrorCode(errors.New("boom")))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("fetch root page: %w", webreduce.Errorf(webreduce.EUNAVAILABLE, "HTTP 503"))

	assert.Equal(t, webreduce.EUNAVAILABLE, webreduce.ErrorCode(err))
	assert.Equal(t, "HTTP 503", webreduce.ErrorMessage(err))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, webreduce.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", webreduce.ErrorMessage(errors.New("boom")))
}
