package pulse

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectSurfaceFormat(t *testing.T) {
	cases := []struct {
		name     string
		formats  []wgpu.TextureFormat
		expected wgpu.TextureFormat
	}{
		{
			name:     "first srgb",
			formats:  []wgpu.TextureFormat{wgpu.TextureFormatBGRA8Unorm, wgpu.TextureFormatBGRA8UnormSrgb, wgpu.TextureFormatRGBA8UnormSrgb},
			expected: wgpu.TextureFormatBGRA8UnormSrgb,
		},
		{
			name:     "rgba srgb",
			formats:  []wgpu.TextureFormat{wgpu.TextureFormatRGBA8Unorm, wgpu.TextureFormatRGBA8UnormSrgb},
			expected: wgpu.TextureFormatRGBA8UnormSrgb,
		},
		{
			name:     "no srgb",
			formats:  []wgpu.TextureFormat{wgpu.TextureFormatRGBA8Unorm, wgpu.TextureFormatBGRA8Unorm},
			expected: wgpu.TextureFormatRGBA8Unorm,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			format, err := SelectSurfaceFormat(tc.formats)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, format)

			// selection is deterministic
			again, _ := SelectSurfaceFormat(tc.formats)
			assert.Equal(t, format, again)
		})
	}
}

func TestSelectSurfaceFormatEmpty(t *testing.T) {
	_, err := SelectSurfaceFormat(nil)
	assert.ErrorIs(t, err, ErrNoSurfaceFormat)
}

func TestIsSRGB(t *testing.T) {
	srgb := []wgpu.TextureFormat{
		wgpu.TextureFormatRGBA8UnormSrgb,
		wgpu.TextureFormatBGRA8UnormSrgb,
		wgpu.TextureFormatBC7RGBAUnormSrgb,
		wgpu.TextureFormatETC2RGBA8UnormSrgb,
		wgpu.TextureFormatASTC12x12UnormSrgb,
	}

	for _, format := range srgb {
		assert.True(t, IsSRGB(format), "%v", format)
	}

	linear := []wgpu.TextureFormat{
		wgpu.TextureFormatRGBA8Unorm,
		wgpu.TextureFormatBGRA8Unorm,
		wgpu.TextureFormatBC7RGBAUnorm,
		wgpu.TextureFormatRGBA16Float,
	}

	for _, format := range linear {
		assert.False(t, IsSRGB(format), "%v", format)
	}
}

func TestSelectSurfaceFormatCompressedSRGB(t *testing.T) {
	format, err := SelectSurfaceFormat([]wgpu.TextureFormat{wgpu.TextureFormatRGBA8Unorm, wgpu.TextureFormatBC1RGBAUnormSrgb})
	require.NoError(t, err)
	assert.Equal(t, wgpu.TextureFormatBC1RGBAUnormSrgb, format)
}
