package errorx

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validation("bad %s", "bounds")))
	assert.Equal(t, KindNotFound, KindOf(NotFound("post %d", 1)))
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))

	wrapped := fmt.Errorf("handler: %w", NotFound("post"))
	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsValidation(wrapped))
	assert.False(t, IsNotFound(nil))
}

func TestInternal_Details(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal("query posts", cause)

	assert.Equal(t, "query posts: connection refused", err.Error())
	assert.Equal(t, "connection refused", err.Details())
	assert.ErrorIs(t, err, cause)
	assert.Empty(t, Validation("x").Details())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "validation", KindValidation.String())
	assert.Equal(t, "internal", Kind(42).String())
}
