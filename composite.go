package ggfx

import (
	"image"

	"github.com/gogpu/ggfx/internal/blend"
	"github.com/pkg/errors"
)

// Names of the built-in compositing filters. Each reads the foreground from
// InputImageKey and the background from BackgroundImageKey.
const (
	SourceOverCompositing = "sourceOverCompositing"
	SourceInCompositing   = "sourceInCompositing"
	SourceOutCompositing  = "sourceOutCompositing"
	SourceAtopCompositing = "sourceAtopCompositing"
)

func init() {
	Register(SourceOverCompositing, compositeKernel(blend.SourceOver))
	Register(SourceInCompositing, compositeKernel(blend.SourceIn))
	Register(SourceOutCompositing, compositeKernel(blend.SourceOut))
	Register(SourceAtopCompositing, compositeKernel(blend.SourceAtop))
}

func compositeKernel(m blend.Mode) Kernel {
	return KernelFunc(func(p Params) *Image {
		return Combine(p.Image(BackgroundImageKey), p.Image(InputImageKey),
			func(dst, bg, fg *image.RGBA, opts *RenderOptions) error {
				workers := 1
				if opts != nil {
					workers = opts.Workers
				}
				return blend.Composite(dst, bg, fg, m, workers)
			})
	})
}

// Over draws foreground over background.
func Over(background, foreground Convertible) *Bitmap {
	return composite(SourceOverCompositing, background, foreground)
}

// Out keeps foreground where background is transparent.
func Out(background, foreground Convertible) *Bitmap {
	return composite(SourceOutCompositing, background, foreground)
}

// Atop draws foreground over background, clipped to background's alpha.
func Atop(background, foreground Convertible) *Bitmap {
	return composite(SourceAtopCompositing, background, foreground)
}

// In keeps foreground where background is opaque.
func In(background, foreground Convertible) *Bitmap {
	return composite(SourceInCompositing, background, foreground)
}

// composite runs a compositing filter and renders it. On failure it returns
// the background unchanged.
func composite(name string, background, foreground Convertible) *Bitmap {
	p := std()
	bm, err := func() (_ *Bitmap, err error) {
		defer recoverRendering(&err)
		f := FilterNamed(name)
		f.SetValue(BackgroundImageKey, graphImageOf(background, p))
		f.SetValue(InputImageKey, graphImageOf(foreground, p))
		out := f.Output()
		if out == nil {
			return nil, errors.Wrap(ErrMissingFilterInput, name)
		}
		return p.Render(out)
	}()
	if err != nil {
		p.log().Debug("ggfx: compositing failed", "filter", name, "err", err)
		return fallback(background)
	}
	return bm
}

// Apply threads img through filters and renders the result, keeping img's
// scale and orientation. If the filters produce nothing or rendering fails,
// Apply returns img unfiltered.
func Apply(img Convertible, filters ...*Filter) *Bitmap {
	p := std()
	bm, err := apply(p, graphImageOf(img, p), filters)
	if err != nil {
		p.log().Debug("ggfx: apply failed", "err", err)
		return fallback(img)
	}
	scale, orientation := metadata(img)
	return bm.WithMetadata(scale, orientation)
}

func apply(p *Pipeline, input *Image, filters []*Filter) (_ *Bitmap, err error) {
	defer recoverRendering(&err)
	out := ApplyFilters(input, filters)
	if out == nil {
		return nil, errors.Wrapf(ErrMissingInput, "%d filters", len(filters))
	}
	return p.Render(out)
}

// ApplyAs is [Apply] returning a value of img's own kind: a lazy *Image for
// an *Image, a *Bitmap for a *Bitmap and a Raster for a Raster. Other kinds
// cannot be rebuilt from pixels and are returned unchanged. On failure img
// is returned unfiltered.
func ApplyAs[T Convertible](img T, filters ...*Filter) T {
	var out any
	switch v := any(img).(type) {
	case *Image:
		out = chainImage(v, filters)
	case *Bitmap:
		out = Apply(v, filters...)
	case Raster:
		out = Raster{Apply(v, filters...)}
	default:
		std().log().Debug("ggfx: apply cannot rebuild input kind", "type", typeName(img))
		return img
	}
	if t, ok := out.(T); ok {
		return t
	}
	return img
}

// chainImage is the lazy form of Apply. It returns input when the filters
// produce nothing.
func chainImage(input *Image, filters []*Filter) (out *Image) {
	defer func() {
		if r := recover(); r != nil {
			std().log().Debug("ggfx: apply failed", "panic", r)
			out = input
		}
	}()
	if out = ApplyFilters(input, filters); out == nil {
		out = input
	}
	return out
}

// fallback materializes v, or returns an empty bitmap if that fails.
func fallback(v Convertible) *Bitmap {
	if v != nil {
		if b, err := v.Bitmap(); err == nil && b != nil {
			return b
		}
	}
	return NewBitmap(0, 0)
}
