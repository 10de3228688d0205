package filters

import (
	"image"
	"image/draw"
	"math"

	"github.com/gogpu/ggfx"
	"github.com/nfnt/resize"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// lanczosScale resizes with a Lanczos-3 kernel. The output height is the
// input height times scale; the width is also multiplied by the aspect ratio.
var lanczosScale = ggfx.KernelFunc(func(p ggfx.Params) *ggfx.Image {
	input := p.Image(ggfx.InputImageKey)
	if input == nil {
		return nil
	}
	scale, ok1 := p.Float(ScaleKey, 1)
	aspect, ok2 := p.Float(AspectRatioKey, 1)
	if !ok1 || !ok2 || scale <= 0 || aspect <= 0 {
		return nil
	}
	in := input.Extent()
	fw := math.Round(float64(in.Dx()) * scale * aspect)
	fh := math.Round(float64(in.Dy()) * scale)
	if fw > MaxDimension || fh > MaxDimension {
		return nil
	}
	size := func(image.Rectangle) image.Rectangle {
		return image.Rect(0, 0, max(int(fw), 1), max(int(fh), 1))
	}
	return ggfx.Transform(input, size,
		func(dst draw.Image, src image.Image, _ *ggfx.RenderOptions) error {
			b := dst.Bounds()
			out := resize.Resize(uint(b.Dx()), uint(b.Dy()), src, resize.Lanczos3)
			draw.Draw(dst, b, out, out.Bounds().Min, draw.Src)
			return nil
		})
})

// affineTransform maps the input through an affine matrix. The output extent
// is the bounding box of the mapped input, moved to the origin.
var affineTransform = ggfx.KernelFunc(func(p ggfx.Params) *ggfx.Image {
	input := p.Image(ggfx.InputImageKey)
	if input == nil {
		return nil
	}
	m, ok := p[TransformKey].(f64.Aff3)
	if !ok || m[0]*m[4]-m[1]*m[3] == 0 {
		return nil
	}
	box, ok := transformedBounds(m, input.Extent())
	if !ok || box.Empty() {
		return nil
	}
	s2d := m
	s2d[2] -= float64(box.Min.X)
	s2d[5] -= float64(box.Min.Y)
	return ggfx.Transform(input,
		func(image.Rectangle) image.Rectangle { return box },
		func(dst draw.Image, src image.Image, _ *ggfx.RenderOptions) error {
			xdraw.CatmullRom.Transform(dst, s2d, src, src.Bounds(), xdraw.Over, nil)
			return nil
		})
})

// transformedBounds returns the integer bounding box of r mapped through m.
// It reports false when a corner is not finite or lands further than
// MaxDimension from the origin.
func transformedBounds(m f64.Aff3, r image.Rectangle) (image.Rectangle, bool) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, pt := range [4][2]float64{
		{float64(r.Min.X), float64(r.Min.Y)},
		{float64(r.Max.X), float64(r.Min.Y)},
		{float64(r.Min.X), float64(r.Max.Y)},
		{float64(r.Max.X), float64(r.Max.Y)},
	} {
		x := m[0]*pt[0] + m[1]*pt[1] + m[2]
		y := m[3]*pt[0] + m[4]*pt[1] + m[5]
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}
	for _, v := range [4]float64{minX, minY, maxX, maxY} {
		if math.IsNaN(v) || math.Abs(v) > MaxDimension {
			return image.Rectangle{}, false
		}
	}
	return image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	), true
}
