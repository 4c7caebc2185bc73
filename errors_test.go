package tuicore

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapTermErrorPreservesCause(t *testing.T) {
	cause := errors.New("ioctl failed")
	err := wrapTermError("read", cause)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "read")

	var te *TermError
	assert.True(t, errors.As(err, &te))
	assert.Equal(t, cause, te.Err)
}

func TestWrapTermErrorNilIsNil(t *testing.T) {
	assert.NoError(t, wrapTermError("read", nil))
}

func TestWrapRenderErrorPreservesCause(t *testing.T) {
	cause := errors.New("short write")
	err := wrapRenderError("draw", cause)
	var re *RenderError
	assert.True(t, errors.As(err, &re))
	assert.Equal(t, cause, re.Err)
}

func TestInvalidInputPanics(t *testing.T) {
	assert.Panics(t, func() { invalidInput("bad weight") })
}
