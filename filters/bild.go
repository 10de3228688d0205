package filters

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/effect"
	"github.com/gogpu/ggfx"
)

// bildKernel builds a kernel around a bild operation, which returns a new
// image the size of its input. build reports false when the parameters are
// invalid.
func bildKernel(build func(p ggfx.Params) (func(image.Image) *image.RGBA, bool)) ggfx.Kernel {
	return ggfx.KernelFunc(func(p ggfx.Params) *ggfx.Image {
		input := p.Image(ggfx.InputImageKey)
		if input == nil {
			return nil
		}
		op, ok := build(p)
		if !ok {
			return nil
		}
		return ggfx.Transform(input, nil,
			func(dst draw.Image, src image.Image, _ *ggfx.RenderOptions) error {
				out := op(src)
				draw.Draw(dst, dst.Bounds(), out, out.Bounds().Min, draw.Src)
				return nil
			})
	})
}

var boxBlur = bildKernel(func(p ggfx.Params) (func(image.Image) *image.RGBA, bool) {
	radius, ok := p.Float(RadiusKey, 10)
	if !ok || radius < 0 || radius > MaxKernelRadius {
		return nil, false
	}
	return func(src image.Image) *image.RGBA {
		return blur.Box(src, radius)
	}, true
})

var exposureAdjust = bildKernel(func(p ggfx.Params) (func(image.Image) *image.RGBA, bool) {
	ev, ok := p.Float(EVKey, 0)
	if !ok {
		return nil, false
	}
	gain := math.Exp2(ev)
	return func(src image.Image) *image.RGBA {
		return adjust.Apply(src, func(c color.RGBA) color.RGBA {
			// Channels stay premultiplied, so alpha caps them.
			limit := float64(c.A)
			scale := func(v uint8) uint8 {
				return uint8(math.Min(math.Round(float64(v)*gain), limit))
			}
			return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
		})
	}, true
})

var sharpen = bildKernel(func(ggfx.Params) (func(image.Image) *image.RGBA, bool) {
	return effect.Sharpen, true
})

var edges = bildKernel(func(p ggfx.Params) (func(image.Image) *image.RGBA, bool) {
	intensity, ok := p.Float(IntensityKey, 1)
	if !ok || intensity <= 0 || intensity > MaxKernelRadius {
		return nil, false
	}
	return func(src image.Image) *image.RGBA {
		return effect.EdgeDetection(src, intensity)
	}, true
})
