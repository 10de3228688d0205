package ggfx

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/require"
)

// Test kernels shared across root package tests.

var (
	red   = color.RGBA{R: 255, A: 255}
	green = color.RGBA{G: 255, A: 255}
	blue  = color.RGBA{B: 255, A: 255}
)

// tintFilter replaces every pixel of its input with c.
func tintFilter(c color.RGBA) *Filter {
	return NewFilter("tint", KernelFunc(func(p Params) *Image {
		return Transform(p.Image(InputImageKey), nil, func(dst draw.Image, _ image.Image, _ *RenderOptions) error {
			draw.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
			return nil
		})
	}))
}

// insetFilter drops "inputInset" pixels from every edge of its input.
func insetFilter(n int) *Filter {
	f := NewFilter("inset", KernelFunc(func(p Params) *Image {
		inset, ok := p.Int("inputInset", 0)
		if !ok || inset < 0 {
			return nil
		}
		return Transform(p.Image(InputImageKey),
			func(r image.Rectangle) image.Rectangle { return r.Inset(inset) },
			func(dst draw.Image, src image.Image, _ *RenderOptions) error {
				draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min.Add(image.Pt(inset, inset)), draw.Src)
				return nil
			})
	}))
	f.SetValue("inputInset", n)
	return f
}

// brokenFilter never produces output.
func brokenFilter() *Filter {
	return NewFilter("broken", KernelFunc(func(Params) *Image { return nil }))
}

// failingFilter produces an image whose rendering fails.
func failingFilter() *Filter {
	return NewFilter("failing", KernelFunc(func(p Params) *Image {
		return Transform(p.Image(InputImageKey), nil, func(draw.Image, image.Image, *RenderOptions) error {
			return image.ErrFormat
		})
	}))
}

// panickingFilter panics while building its output, or while drawing it
// when inDraw is set.
func panickingFilter(inDraw bool) *Filter {
	return NewFilter("panicking", KernelFunc(func(p Params) *Image {
		if !inDraw {
			panic("kernel bug")
		}
		return Transform(p.Image(InputImageKey), nil, func(draw.Image, image.Image, *RenderOptions) error {
			panic("draw bug")
		})
	}))
}

// scaleFilter multiplies the extent of its input by k, filling the output
// with the input's top-left pixel.
func scaleFilter(k int) *Filter {
	return NewFilter("scale", KernelFunc(func(p Params) *Image {
		return Transform(p.Image(InputImageKey),
			func(r image.Rectangle) image.Rectangle { return image.Rect(0, 0, r.Dx()*k, r.Dy()*k) },
			func(dst draw.Image, src image.Image, _ *RenderOptions) error {
				draw.Draw(dst, dst.Bounds(), image.NewUniform(src.At(0, 0)), image.Point{}, draw.Src)
				return nil
			})
	}))
}

// solidFilter generates a w×h image of c without any input.
func solidFilter(w, h int, c color.RGBA) *Filter {
	return NewFilter("solid", KernelFunc(func(Params) *Image {
		return Generate(image.Rect(0, 0, w, h), func(dst draw.Image, _ *RenderOptions) error {
			draw.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
			return nil
		})
	}))
}

// render materializes img with a fresh software renderer.
func render(t *testing.T, img *Image) *Bitmap {
	t.Helper()
	require.NotNil(t, img)
	bm, err := NewSoftwareRenderer().Render(img, img.Extent())
	require.NoError(t, err)
	return bm
}

// stubRenderable snapshots to a fixed bitmap or error.
type stubRenderable struct {
	bitmap *Bitmap
	err    error
	calls  int
}

func (s *stubRenderable) Snapshot() (*Bitmap, error) {
	s.calls++
	return s.bitmap, s.err
}
