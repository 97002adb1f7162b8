package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSentinel = errors.New("sentinel")

func TestWrap_NilStaysNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "context"))
	assert.NoError(t, Wrapf(nil, "context %d", 1))
}

func TestWrap_KeepsCause(t *testing.T) {
	err := Wrap(errSentinel, "loading room")
	assert.True(t, Is(err, errSentinel))
	assert.Equal(t, "loading room: sentinel", err.Error())
}

func TestMark(t *testing.T) {
	base := New("unique constraint failed")
	marked := Mark(base, errSentinel)

	assert.True(t, Is(marked, errSentinel))
	assert.Equal(t, "unique constraint failed", marked.Error())
	assert.Equal(t, errSentinel, Mark(nil, errSentinel))
}
