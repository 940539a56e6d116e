package pulse

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifySurfaceError(t *testing.T) {
	cases := []struct {
		message string
		kind    SurfaceErrorKind
	}{
		{"SurfaceGetCurrentTextureStatus_Lost", SurfaceErrorLost},
		{"surface lost", SurfaceErrorLost},
		{"SurfaceGetCurrentTextureStatus_OutOfMemory", SurfaceErrorOutOfMemory},
		{"out of memory", SurfaceErrorOutOfMemory},
		{"SurfaceGetCurrentTextureStatus_Outdated", SurfaceErrorOutdated},
		{"SurfaceGetCurrentTextureStatus_Timeout", SurfaceErrorTimeout},
		{"acquire timed out", SurfaceErrorTimeout},
		{"out-of-memory", SurfaceErrorOutOfMemory},
		{"wgpu.(*Surface).GetCurrentTexture(): out-of-memory", SurfaceErrorOutOfMemory},
		{"wgpu.(*Surface).GetCurrentTexture(): lost", SurfaceErrorLost},
		{"wgpu.(*Surface).GetCurrentTexture(): outdated", SurfaceErrorOutdated},
		{"device-lost", SurfaceErrorOutOfMemory},
		{"DeviceLost", SurfaceErrorOutOfMemory},
		{"device lost", SurfaceErrorOutOfMemory},
		{"validation error", SurfaceErrorOther},
	}

	for _, tc := range cases {
		t.Run(tc.message, func(t *testing.T) {
			err := ClassifySurfaceError(errors.New(tc.message))
			assert.Equal(t, tc.kind, err.Kind)
			assert.EqualError(t, err.Err, tc.message)
		})
	}
}

func TestClassifySurfaceErrorKeepsSurfaceError(t *testing.T) {
	wrapped := fmt.Errorf("acquire: %w", ErrOutOfMemory)
	assert.Same(t, ErrOutOfMemory, ClassifySurfaceError(wrapped))

	assert.Nil(t, ClassifySurfaceError(nil))
}

func TestSurfaceErrorIs(t *testing.T) {
	err := fmt.Errorf("render: %w", &SurfaceError{Kind: SurfaceErrorLost, Err: errors.New("lost")})

	assert.ErrorIs(t, err, ErrSurfaceLost)
	assert.NotErrorIs(t, err, ErrOutOfMemory)
	assert.NotErrorIs(t, err, ErrSurfaceTimeout)
}

func TestSurfaceErrorMessage(t *testing.T) {
	assert.EqualError(t, ErrSurfaceOutdated, "surface error: Outdated")

	err := &SurfaceError{Kind: SurfaceErrorTimeout, Err: errors.New("no frame")}
	assert.EqualError(t, err, "surface error: Timeout: no frame")
}
