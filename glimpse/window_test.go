package glimpse

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func TestKeyOf(t *testing.T) {
	key, ok := keyOf(glfw.KeyEscape)
	assert.True(t, ok)
	assert.Equal(t, KeyEscape, key)

	key, ok = keyOf(glfw.KeyKPEnter)
	assert.True(t, ok)
	assert.Equal(t, KeyEnter, key)

	_, ok = keyOf(glfw.KeyF24)
	assert.False(t, ok)
}

func TestEveryMappedKeyHasAName(t *testing.T) {
	for _, key := range glfwToKey {
		assert.NotEqual(t, "Unknown", key.String())
	}

	assert.Equal(t, "Unknown", KeyUnknown.String())
}

func TestEventStrings(t *testing.T) {
	assert.Equal(t, "Resize(800x600)", ResizeEvent{Width: 800, Height: 600}.String())
	assert.Equal(t, "Key(Escape, Pressed)", KeyEvent{Key: KeyEscape, Action: KeyPressed}.String())
	assert.Equal(t, "Exit", Exit.String())
	assert.Equal(t, "Continue", Continue.String())
}
