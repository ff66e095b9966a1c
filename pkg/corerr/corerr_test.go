package corerr

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	t.Run("withPath", func(t *testing.T) {
		err := NewNotFoundError("/tmp/missing")
		assert.Equal(t, "NotFound: not found (path: /tmp/missing)", err.Error())
	})

	t.Run("withActor", func(t *testing.T) {
		err := NewActorError("navigator", "invariant violated")
		assert.Equal(t, "ActorError: invariant violated (actor: navigator)", err.Error())
	})

	t.Run("bare", func(t *testing.T) {
		err := NewCancelledError()
		assert.Equal(t, "Cancelled: operation cancelled", err.Error())
	})
}

func TestFromOSError(t *testing.T) {
	t.Run("notExist", func(t *testing.T) {
		_, err := os.Open("/nonexistent/path/does/not/exist")
		ce := FromOSError("/nonexistent/path/does/not/exist", err)
		assert.Equal(t, NotFound, ce.Code)
	})

	t.Run("passthroughCoreError", func(t *testing.T) {
		original := NewInvalidDataError("bad")
		ce := FromOSError("p", original)
		assert.Same(t, original, ce)
	})

	t.Run("nil", func(t *testing.T) {
		assert.Nil(t, FromOSError("p", nil))
	})

	t.Run("fallsBackToIo", func(t *testing.T) {
		ce := FromOSError("p", errors.New("boom"))
		assert.Equal(t, Io, ce.Code)
	})
}

func TestIsHelpers(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFoundError("p")))
	assert.False(t, IsNotFound(NewCancelledError()))
	assert.True(t, IsCancelled(NewCancelledError()))
	assert.False(t, IsCancelled(errors.New("plain")))
}

func TestCodeString(t *testing.T) {
	assert.Equal(t, "NotFound", NotFound.String())
	assert.Contains(t, Code(999).String(), "Unknown")
}
