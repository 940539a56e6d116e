package pulse

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/cogentcore/webgpu/wgpu"
	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Sampler used for textures loaded with NewTextureFromBytes.
var DefaultSampler = wgpu.SamplerDescriptor{
	AddressModeU:  wgpu.AddressModeClampToEdge,
	AddressModeV:  wgpu.AddressModeClampToEdge,
	AddressModeW:  wgpu.AddressModeClampToEdge,
	MagFilter:     wgpu.FilterModeLinear,
	MinFilter:     wgpu.FilterModeNearest,
	MipmapFilter:  wgpu.MipmapFilterModeNearest,
	LodMinClamp:   0,
	LodMaxClamp:   32,
	MaxAnisotropy: 1,
}

// Texture is a sampled 2d texture in srgb color space, uploaded once.
type Texture struct {
	Label   string
	Width   uint32
	Height  uint32
	Texture *wgpu.Texture
	View    *wgpu.TextureView

	// Sampler is shared through the sampler cache and
	// must not be released.
	Sampler *wgpu.Sampler
}

// DecodeRGBA decodes an encoded image (png, jpeg, bmp or webp) into
// tightly packed 8 bit rgba pixels.
func DecodeRGBA(data []byte) (*image.RGBA, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	if rgba, ok := src.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) && rgba.Stride == 4*rgba.Rect.Dx() {
		return rgba, nil
	}

	bounds := src.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), src, bounds.Min, draw.Src)

	return rgba, nil
}

// NewTextureFromBytes decodes the image in data and uploads it into
// a new texture.
func NewTextureFromBytes(ctx *Context, data []byte, label string) (*Texture, error) {
	rgba, err := DecodeRGBA(data)
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", label, err)
	}

	return NewTextureFromImage(ctx, rgba, label)
}

func NewTextureFromImage(ctx *Context, rgba *image.RGBA, label string) (*Texture, error) {
	width := uint32(rgba.Rect.Dx())
	height := uint32(rgba.Rect.Dy())

	size := wgpu.Extent3D{
		Width:              width,
		Height:             height,
		DepthOrArrayLayers: 1,
	}

	texture, err := ctx.Device.CreateTexture(&wgpu.TextureDescriptor{
		Label:         label,
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        wgpu.TextureFormatRGBA8UnormSrgb,
		Usage:         wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create texture %q: %w", label, err)
	}

	guard := NewReleaseGuard(texture)
	defer guard.Release()

	ctx.Queue.WriteTexture(
		&wgpu.ImageCopyTexture{
			Aspect:   wgpu.TextureAspectAll,
			Texture:  texture,
			MipLevel: 0,
			Origin:   wgpu.Origin3D{X: 0, Y: 0, Z: 0},
		},
		rgba.Pix,
		&wgpu.TextureDataLayout{
			Offset:       0,
			BytesPerRow:  4 * width,
			RowsPerImage: height,
		},
		&size,
	)

	view, err := texture.CreateView(nil)
	if err != nil {
		return nil, fmt.Errorf("create view for %q: %w", label, err)
	}

	viewGuard := NewReleaseGuard(view)
	defer viewGuard.Release()

	sampler, err := CachedSampler(ctx.Device, DefaultSampler)
	if err != nil {
		return nil, err
	}

	guard.Keep()
	viewGuard.Keep()

	return &Texture{
		Label:   label,
		Width:   width,
		Height:  height,
		Texture: texture,
		View:    view,
		Sampler: sampler,
	}, nil
}

// BindGroup creates a bind group exposing the texture view at binding 0
// and the sampler at binding 1 of the given layout.
func (t *Texture) BindGroup(ctx *Context, layout *wgpu.BindGroupLayout) (*wgpu.BindGroup, error) {
	group, err := ctx.Device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  t.Label + " bind group",
		Layout: layout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, TextureView: t.View},
			{Binding: 1, Sampler: t.Sampler},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create bind group for %q: %w", t.Label, err)
	}

	return group, nil
}

func (t *Texture) Release() {
	t.View.Release()
	t.Texture.Release()
}
