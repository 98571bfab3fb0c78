package devhub_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/devhub"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := devhub.Errorf(devhub.ENOTFOUND, "document %q not found", "foo/bar")

	assert.Equal(t, devhub.ENOTFOUND, devhub.ErrorCode(err))
	assert.Equal(t, "document \"foo/bar\" not found", devhub.ErrorMessage(err))
}

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, devhub.ErrorCode(nil))
	})

	t.Run("wrapped application error", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("sync: %w", devhub.Errorf(devhub.EINVALID, "pages must be an array"))
		assert.Equal(t, devhub.EINVALID, devhub.ErrorCode(err))
	})

	t.Run("non-application error is internal", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("disk on fire")
		assert.Equal(t, devhub.EINTERNAL, devhub.ErrorCode(err))
		assert.Equal(t, "Internal error.", devhub.ErrorMessage(err))
	})
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, devhub.ErrorMessage(nil))
}

func TestErrorDetails(t *testing.T) {
	t.Parallel()

	err := &devhub.Error{Code: devhub.EINVALID, Message: "missing fields", Details: []string{"title"}}
	assert.Equal(t, []string{"title"}, devhub.ErrorDetails(fmt.Errorf("wrap: %w", err)))
	assert.Nil(t, devhub.ErrorDetails(fmt.Errorf("plain")))
}
