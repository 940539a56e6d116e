package pulse_test

import (
	"errors"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/viewport/pulse"
	"github.com/oliverbestmann/viewport/pulse/pulsetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewViewConfiguresInitialSize(t *testing.T) {
	surface := pulsetest.NewSurface()

	view, err := pulse.NewView(surface, 1000, 800, nil)
	require.NoError(t, err)

	require.Len(t, surface.Configs, 1)
	config := surface.LastConfig()
	assert.Equal(t, uint32(1000), config.Width)
	assert.Equal(t, uint32(800), config.Height)
	assert.Equal(t, wgpu.TextureFormatBGRA8UnormSrgb, config.Format)
	assert.Equal(t, wgpu.PresentModeFifo, config.PresentMode)

	assert.Equal(t, wgpu.TextureFormatBGRA8UnormSrgb, view.Format())
	assert.Equal(t, pulse.DefaultClearColor, view.ClearColor)
}

func TestNewViewWithoutFormats(t *testing.T) {
	surface := pulsetest.NewSurface()
	surface.Caps.Formats = nil

	_, err := pulse.NewView(surface, 100, 100, nil)
	assert.ErrorIs(t, err, pulse.ErrNoSurfaceFormat)
}

func TestNewViewPrefersPresentMode(t *testing.T) {
	surface := pulsetest.NewSurface()
	surface.Caps.PresentModes = []wgpu.PresentMode{wgpu.PresentModeFifo, wgpu.PresentModeMailbox}

	_, err := pulse.NewView(surface, 100, 100, &pulse.ViewOptions{
		PresentModes: []wgpu.PresentMode{wgpu.PresentModeImmediate, wgpu.PresentModeMailbox},
	})
	require.NoError(t, err)

	assert.Equal(t, wgpu.PresentModeMailbox, surface.LastConfig().PresentMode)
}

func TestResizeSequence(t *testing.T) {
	surface := pulsetest.NewSurface()

	view, err := pulse.NewView(surface, 100, 100, nil)
	require.NoError(t, err)

	sizes := [][2]uint32{{200, 150}, {640, 480}, {1, 1}, {1920, 1080}}
	for _, size := range sizes {
		require.NoError(t, view.Resize(size[0], size[1]))
	}

	require.Len(t, surface.Configs, len(sizes)+1)

	for idx, size := range sizes {
		config := surface.Configs[idx+1]
		assert.Equal(t, size[0], config.Width)
		assert.Equal(t, size[1], config.Height)
		assert.Equal(t, view.Format(), config.Format)
	}

	width, height := view.Size()
	assert.Equal(t, uint32(1920), width)
	assert.Equal(t, uint32(1080), height)
}

func TestResizeToZeroIsIgnored(t *testing.T) {
	surface := pulsetest.NewSurface()

	view, err := pulse.NewView(surface, 300, 200, nil)
	require.NoError(t, err)

	require.NoError(t, view.Resize(0, 0))
	require.NoError(t, view.Resize(0, 500))
	require.NoError(t, view.Resize(500, 0))

	require.Len(t, surface.Configs, 1)

	width, height := view.Size()
	assert.Equal(t, uint32(300), width)
	assert.Equal(t, uint32(200), height)
}

func TestZeroInitialSizeIsNeverConfigured(t *testing.T) {
	surface := pulsetest.NewSurface()

	view, err := pulse.NewView(surface, 0, 0, nil)
	require.NoError(t, err)
	require.NoError(t, view.Reconfigure())

	assert.Empty(t, surface.Configs)

	require.NoError(t, view.Resize(10, 20))
	require.Len(t, surface.Configs, 1)
	assert.Equal(t, uint32(10), surface.LastConfig().Width)
}

func TestRenderFrameBeforeFirstConfigure(t *testing.T) {
	surface := pulsetest.NewSurface()

	view, err := pulse.NewView(surface, 0, 0, nil)
	require.NoError(t, err)

	var calls int
	dresser := pulse.DresserFunc(func(pass pulse.RenderPass) { calls++ })

	assert.ErrorIs(t, view.RenderFrame(dresser), pulse.ErrSurfaceOutdated)

	// nothing was acquired from the unconfigured surface
	assert.Empty(t, surface.Frames)
	assert.Zero(t, calls)

	require.NoError(t, view.Resize(640, 480))
	require.NoError(t, view.RenderFrame(dresser))

	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, surface.Presented())
}

func TestReconfigureUsesLastSize(t *testing.T) {
	surface := pulsetest.NewSurface()

	view, err := pulse.NewView(surface, 300, 200, nil)
	require.NoError(t, err)
	require.NoError(t, view.Resize(640, 480))
	require.NoError(t, view.Resize(0, 0))

	require.NoError(t, view.Reconfigure())

	config := surface.LastConfig()
	assert.Equal(t, uint32(640), config.Width)
	assert.Equal(t, uint32(480), config.Height)
}

func TestResizeConfigureFailureKeepsSize(t *testing.T) {
	surface := pulsetest.NewSurface()

	view, err := pulse.NewView(surface, 300, 200, nil)
	require.NoError(t, err)

	surface.ConfigureError = errors.New("device lost")
	assert.Error(t, view.Resize(640, 480))

	width, height := view.Size()
	assert.Equal(t, uint32(300), width)
	assert.Equal(t, uint32(200), height)
}
