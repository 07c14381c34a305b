package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindBadRequest, KindOf(BadRequest("bad value %d", 7)))
	assert.Equal(t, KindNotFound, KindOf(NotFound("missing")))
	assert.Equal(t, KindInternal, KindOf(Internal(errors.New("db down"), "query failed")))
	assert.Equal(t, KindInternal, KindOf(errors.New("foreign error")))
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("outer: %w", NotFound("missing"))
	assert.True(t, IsNotFound(err))
	assert.False(t, IsBadRequest(err))
}

func TestInternalKeepsCause(t *testing.T) {
	cause := errors.New("db down")
	err := Internal(cause, "query failed")
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "query failed")
	assert.Contains(t, err.Error(), "db down")
}
