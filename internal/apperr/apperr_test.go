package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	err := NotFound("Book not found")

	kind, ok := KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, KindNotFound, kind)
	assert.Equal(t, "Book not found", err.Error())
}

func TestKindOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("handling request: %w", Conflict("Username already exists"))

	kind, ok := KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, KindConflict, kind)
}

func TestKindOf_Unclassified(t *testing.T) {
	_, ok := KindOf(errors.New("connection reset"))
	assert.False(t, ok)
}
