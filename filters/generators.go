package filters

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/gogpu/ggfx"
)

func extentParam(p ggfx.Params) (image.Rectangle, bool) {
	if _, set := p[ExtentKey]; !set {
		return DefaultExtent, true
	}
	r, ok := p.Rect(ExtentKey)
	return r, ok && !r.Empty()
}

// constantColor generates a solid image. It ignores any input image.
var constantColor = ggfx.KernelFunc(func(p ggfx.Params) *ggfx.Image {
	c, ok := p.Color(ColorKey, nil)
	if !ok {
		return nil
	}
	extent, ok := extentParam(p)
	if !ok {
		return nil
	}
	return ggfx.Generate(extent, func(dst draw.Image, _ *ggfx.RenderOptions) error {
		draw.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
		return nil
	})
})

// checkerboard generates alternating squares starting with color0 at the
// origin.
var checkerboard = ggfx.KernelFunc(func(p ggfx.Params) *ggfx.Image {
	c0, ok0 := p.Color(Color0Key, color.White)
	c1, ok1 := p.Color(Color1Key, color.Black)
	width, okw := p.Int(WidthKey, 8)
	extent, oke := extentParam(p)
	if !ok0 || !ok1 || !okw || !oke || width < 1 {
		return nil
	}
	return ggfx.Generate(extent, func(dst draw.Image, _ *ggfx.RenderOptions) error {
		b := dst.Bounds()
		u0, u1 := image.NewUniform(c0), image.NewUniform(c1)
		for y := b.Min.Y; y < b.Max.Y; y += width {
			for x := b.Min.X; x < b.Max.X; x += width {
				u := u0
				if ((x-b.Min.X)/width+(y-b.Min.Y)/width)%2 == 1 {
					u = u1
				}
				cell := image.Rect(x, y, x+width, y+width).Intersect(b)
				draw.Draw(dst, cell, u, image.Point{}, draw.Src)
			}
		}
		return nil
	})
})
