package pulse

import (
	"errors"
	"slices"

	"github.com/cogentcore/webgpu/wgpu"
)

var ErrNoSurfaceFormat = errors.New("surface does not support any texture format")

var srgbFormats = []wgpu.TextureFormat{
	wgpu.TextureFormatRGBA8UnormSrgb,
	wgpu.TextureFormatBGRA8UnormSrgb,

	wgpu.TextureFormatBC1RGBAUnormSrgb,
	wgpu.TextureFormatBC2RGBAUnormSrgb,
	wgpu.TextureFormatBC3RGBAUnormSrgb,
	wgpu.TextureFormatBC7RGBAUnormSrgb,

	wgpu.TextureFormatETC2RGB8UnormSrgb,
	wgpu.TextureFormatETC2RGB8A1UnormSrgb,
	wgpu.TextureFormatETC2RGBA8UnormSrgb,

	wgpu.TextureFormatASTC4x4UnormSrgb,
	wgpu.TextureFormatASTC5x4UnormSrgb,
	wgpu.TextureFormatASTC5x5UnormSrgb,
	wgpu.TextureFormatASTC6x5UnormSrgb,
	wgpu.TextureFormatASTC6x6UnormSrgb,
	wgpu.TextureFormatASTC8x5UnormSrgb,
	wgpu.TextureFormatASTC8x6UnormSrgb,
	wgpu.TextureFormatASTC8x8UnormSrgb,
	wgpu.TextureFormatASTC10x5UnormSrgb,
	wgpu.TextureFormatASTC10x6UnormSrgb,
	wgpu.TextureFormatASTC10x8UnormSrgb,
	wgpu.TextureFormatASTC10x10UnormSrgb,
	wgpu.TextureFormatASTC12x10UnormSrgb,
	wgpu.TextureFormatASTC12x12UnormSrgb,
}

// IsSRGB returns true if values stored in the given format are gamma encoded.
func IsSRGB(format wgpu.TextureFormat) bool {
	return slices.Contains(srgbFormats, format)
}

// SelectSurfaceFormat picks the first sRGB format from the list of
// supported formats, or the first format if there is no sRGB format.
// Shaders assume an sRGB target, colors come out darker otherwise.
func SelectSurfaceFormat(formats []wgpu.TextureFormat) (wgpu.TextureFormat, error) {
	if len(formats) == 0 {
		return wgpu.TextureFormatUndefined, ErrNoSurfaceFormat
	}

	for _, format := range formats {
		if IsSRGB(format) {
			return format, nil
		}
	}

	return formats[0], nil
}
