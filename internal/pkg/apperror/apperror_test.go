package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validation("bad input")))
	assert.Equal(t, KindNotFound, KindOf(NotFound("missing")))
	assert.Equal(t, KindConflict, KindOf(Conflict("already open")))
	assert.Equal(t, KindUnknown, KindOf(errors.New("io timeout")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestKindSurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("closing session: %w", Conflict("this session table is already closed"))
	assert.True(t, IsConflict(wrapped))
	assert.False(t, IsNotFound(wrapped))
}
