package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf_UnwrapsChain(t *testing.T) {
	base := errors.New("dial tcp: refused")
	err := fmt.Errorf("open db: %w", Connection("postgres.Open", base))

	assert.Equal(t, KindConnection, KindOf(err))
	assert.True(t, Is(err, KindConnection))
	assert.ErrorIs(t, err, base)
}

func TestKindOf_PlainError(t *testing.T) {
	assert.Equal(t, KindUnknown, KindOf(errors.New("boom")))
	assert.False(t, Is(nil, KindQuery))
}

func TestError_Message(t *testing.T) {
	assert.Equal(t, "legajos.search: syntax error", Query("legajos.search", errors.New("syntax error")).Error())
	assert.Equal(t, "legajos.detail: not_found", E(KindNotFound, "legajos.detail", nil).Error())
}
