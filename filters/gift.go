package filters

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/disintegration/gift"
	"github.com/gogpu/ggfx"
)

// giftKernel builds a kernel from a constructor of gift filters. build
// reports false when the parameters are invalid.
func giftKernel(build func(p ggfx.Params) ([]gift.Filter, bool)) ggfx.Kernel {
	return ggfx.KernelFunc(func(p ggfx.Params) *ggfx.Image {
		input := p.Image(ggfx.InputImageKey)
		if input == nil {
			return nil
		}
		fs, ok := build(p)
		if !ok {
			return nil
		}
		return ggfx.Transform(input, gift.New(fs...).Bounds,
			func(dst draw.Image, src image.Image, opts *ggfx.RenderOptions) error {
				// A GIFT carries mutable settings, so each render gets its own.
				g := gift.New(fs...)
				g.SetParallelization(opts == nil || opts.Workers != 1)
				g.Draw(dst, src)
				return nil
			})
	})
}

var gaussianBlur = giftKernel(func(p ggfx.Params) ([]gift.Filter, bool) {
	radius, ok := p.Float(RadiusKey, 10)
	if !ok || radius < 0 || radius > MaxRadius {
		return nil, false
	}
	return []gift.Filter{gift.GaussianBlur(float32(radius))}, true
})

var crop = giftKernel(func(p ggfx.Params) ([]gift.Filter, bool) {
	r, ok := p.Rect(RectangleKey)
	if !ok || r.Empty() {
		return nil, false
	}
	if in := p.Image(ggfx.InputImageKey); in != nil && !r.Overlaps(in.Extent()) {
		return nil, false
	}
	return []gift.Filter{gift.Crop(r)}, true
})

var colorInvert = giftKernel(func(ggfx.Params) ([]gift.Filter, bool) {
	return []gift.Filter{gift.Invert()}, true
})

var grayscale = giftKernel(func(ggfx.Params) ([]gift.Filter, bool) {
	return []gift.Filter{gift.Grayscale()}, true
})

var sepiaTone = giftKernel(func(p ggfx.Params) ([]gift.Filter, bool) {
	intensity, ok := p.Float(IntensityKey, 1)
	if !ok || intensity < 0 || intensity > 1 {
		return nil, false
	}
	return []gift.Filter{gift.Sepia(float32(intensity * 100))}, true
})

var colorControls = giftKernel(func(p ggfx.Params) ([]gift.Filter, bool) {
	brightness, ok1 := p.Float(BrightnessKey, 0)
	contrast, ok2 := p.Float(ContrastKey, 1)
	saturation, ok3 := p.Float(SaturationKey, 1)
	if !ok1 || !ok2 || !ok3 || contrast < 0 || saturation < 0 {
		return nil, false
	}
	return []gift.Filter{
		gift.Brightness(float32(clamp(brightness, -1, 1) * 100)),
		gift.Contrast(float32(clamp(contrast-1, -1, 1) * 100)),
		gift.Saturation(float32(clamp(saturation-1, -1, 5) * 100)),
	}, true
})

var hueAdjust = giftKernel(func(p ggfx.Params) ([]gift.Filter, bool) {
	angle, ok := p.Float(AngleKey, 0)
	if !ok {
		return nil, false
	}
	// gift takes a shift in degrees within [-180, 180].
	deg := math.Remainder(angle*180/math.Pi, 360)
	return []gift.Filter{gift.Hue(float32(deg))}, true
})

var gammaAdjust = giftKernel(func(p ggfx.Params) ([]gift.Filter, bool) {
	power, ok := p.Float(PowerKey, 1)
	if !ok || power <= 0 {
		return nil, false
	}
	// gift raises to 1/gamma.
	return []gift.Filter{gift.Gamma(float32(1 / power))}, true
})

var pixellate = giftKernel(func(p ggfx.Params) ([]gift.Filter, bool) {
	scale, ok := p.Int(ScaleKey, 8)
	if !ok || scale < 1 {
		return nil, false
	}
	return []gift.Filter{gift.Pixelate(scale)}, true
})

var unsharpMask = giftKernel(func(p ggfx.Params) ([]gift.Filter, bool) {
	radius, ok1 := p.Float(RadiusKey, 2.5)
	intensity, ok2 := p.Float(IntensityKey, 0.5)
	if !ok1 || !ok2 || radius < 0 || radius > MaxRadius || intensity < 0 {
		return nil, false
	}
	return []gift.Filter{gift.UnsharpMask(float32(radius), float32(intensity), 0)}, true
})

var rotate = giftKernel(func(p ggfx.Params) ([]gift.Filter, bool) {
	angle, ok := p.Float(AngleKey, 0)
	if !ok {
		return nil, false
	}
	deg := angle * 180 / math.Pi
	return []gift.Filter{gift.Rotate(float32(deg), color.Transparent, gift.CubicInterpolation)}, true
})

var flip = giftKernel(func(p ggfx.Params) ([]gift.Filter, bool) {
	horizontal, ok := p.Bool(HorizontalKey, true)
	if !ok {
		return nil, false
	}
	if horizontal {
		return []gift.Filter{gift.FlipHorizontal()}, true
	}
	return []gift.Filter{gift.FlipVertical()}, true
})

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
