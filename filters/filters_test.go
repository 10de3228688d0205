package filters_test

import (
	"image"
	"image/color"
	"math"
	"strings"
	"testing"

	"github.com/gogpu/ggfx"
	"github.com/gogpu/ggfx/filters"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f64"
)

var (
	black = color.RGBA{A: 255}
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	red   = color.RGBA{R: 255, A: 255}
)

// bitmapOf returns a w×h bitmap painted by paint.
func bitmapOf(w, h int, paint func(x, y int) color.RGBA) *ggfx.Bitmap {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetRGBA(x, y, paint(x, y))
		}
	}
	return ggfx.FromImage(img)
}

func solid(w, h int, c color.RGBA) *ggfx.Bitmap {
	return bitmapOf(w, h, func(int, int) color.RGBA { return c })
}

// apply runs fs over b and renders the result.
func apply(t *testing.T, b *ggfx.Bitmap, fs ...*ggfx.Filter) *ggfx.Bitmap {
	t.Helper()
	out := ggfx.ApplyFilters(ggfx.NewImage(b), fs)
	require.NotNil(t, out)
	bm, err := out.Bitmap()
	require.NoError(t, err)
	return bm
}

func rgbaAt(b *ggfx.Bitmap, x, y int) color.RGBA {
	return b.At(x, y).(color.RGBA)
}

func TestCatalogIsRegistered(t *testing.T) {
	names := []string{
		filters.GaussianBlurName, filters.BoxBlurName, filters.CropName,
		filters.ColorInvertName, filters.GrayscaleName, filters.SepiaToneName,
		filters.ColorControlsName, filters.HueAdjustName, filters.GammaAdjustName,
		filters.ExposureAdjustName, filters.SharpenName, filters.EdgesName,
		filters.PixellateName, filters.UnsharpMaskName, filters.RotateName,
		filters.FlipName, filters.LanczosScaleName, filters.AffineTransformName,
		filters.ConstantColorName, filters.CheckerboardName,
	}
	registered := ggfx.FilterNames()
	for _, name := range names {
		assert.Contains(t, registered, name)
		f := ggfx.FilterNamed(strings.ToUpper(name))
		if assert.NotNil(t, f, name) {
			assert.Equal(t, name, f.Name())
		}
	}
}

func TestNew(t *testing.T) {
	f := filters.New(filters.GaussianBlurName, filters.RadiusKey, 3.0)
	require.NotNil(t, f)
	assert.Equal(t, 3.0, f.Value(filters.RadiusKey))

	assert.Nil(t, filters.New("noSuchFilter"))
	assert.Panics(t, func() { filters.New(filters.CropName, filters.RectangleKey) })
	assert.Panics(t, func() { filters.New(filters.CropName, 1, 2) })
}

func TestInvalidParametersProduceNoOutput(t *testing.T) {
	input := solid(4, 4, red)
	tests := []struct {
		name   string
		filter *ggfx.Filter
	}{
		{"negative blur", filters.GaussianBlur(-1)},
		{"blur radius of wrong type", filters.New(filters.GaussianBlurName, filters.RadiusKey, "big")},
		{"crop without rectangle", filters.New(filters.CropName)},
		{"crop outside input", filters.Crop(image.Rect(10, 10, 20, 20))},
		{"sepia above one", filters.SepiaTone(2)},
		{"zero gamma", filters.GammaAdjust(0)},
		{"zero pixellate", filters.Pixellate(0)},
		{"fractional pixellate", filters.New(filters.PixellateName, filters.ScaleKey, 2.5)},
		{"zero scale", filters.LanczosScale(0, 1)},
		{"singular transform", filters.AffineTransform(f64.Aff3{1, 2, 0, 2, 4, 0})},
		{"constant without color", filters.New(filters.ConstantColorName)},
		{"checkerboard zero width", filters.Checkerboard(white, black, 0, image.Rect(0, 0, 8, 8))},
		{"flip of wrong type", filters.New(filters.FlipName, filters.HorizontalKey, "yes")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tt.filter.Params(map[string]any{ggfx.InputImageKey: input})
			assert.Nil(t, f.Output())
		})
	}
}

func TestInvalidFilterIsSkippedInChain(t *testing.T) {
	input := solid(4, 4, red)
	out := apply(t, input, filters.GaussianBlur(-1), filters.ColorInvert())
	assert.Equal(t, color.RGBA{G: 255, B: 255, A: 255}, rgbaAt(out, 1, 1))
}

func TestFiltersWithoutInputProduceNoOutput(t *testing.T) {
	assert.Nil(t, filters.GaussianBlur(2).Output())
	assert.Nil(t, filters.Sharpen().Output())
	assert.Nil(t, filters.LanczosScale(2, 1).Output())
}

func TestGaussianBlur(t *testing.T) {
	input := bitmapOf(21, 21, func(x, y int) color.RGBA {
		if x == 10 && y == 10 {
			return white
		}
		return black
	})
	out := apply(t, input, filters.GaussianBlur(2))

	assert.Equal(t, input.Bounds(), out.Bounds())
	center, near := rgbaAt(out, 10, 10), rgbaAt(out, 11, 10)
	assert.Less(t, center.R, uint8(255))
	assert.Greater(t, near.R, uint8(0))
	assert.Zero(t, rgbaAt(out, 0, 0).R)
}

func TestCropThenBlurDiffersFromBlurThenCrop(t *testing.T) {
	input := bitmapOf(20, 10, func(x, _ int) color.RGBA {
		if x < 10 {
			return white
		}
		return black
	})
	r := image.Rect(10, 0, 20, 10)

	cropFirst := apply(t, input, filters.Crop(r), filters.GaussianBlur(3))
	blurFirst := apply(t, input, filters.GaussianBlur(3), filters.Crop(r))

	require.Equal(t, image.Rect(0, 0, 10, 10), cropFirst.Bounds())
	require.Equal(t, image.Rect(0, 0, 10, 10), blurFirst.Bounds())
	assert.Zero(t, rgbaAt(cropFirst, 0, 5).R, "cropped black half stays black")
	assert.Greater(t, rgbaAt(blurFirst, 0, 5).R, uint8(0), "white bled in before the crop")
	assert.NotEqual(t, cropFirst.Data(), blurFirst.Data())
}

func TestCrop(t *testing.T) {
	input := bitmapOf(8, 8, func(x, y int) color.RGBA {
		return color.RGBA{R: uint8(x), G: uint8(y), A: 255}
	})
	out := apply(t, input, filters.Crop(image.Rect(2, 3, 6, 10)))

	assert.Equal(t, image.Rect(0, 0, 4, 5), out.Bounds())
	assert.Equal(t, color.RGBA{R: 2, G: 3, A: 255}, rgbaAt(out, 0, 0))
	assert.Equal(t, color.RGBA{R: 5, G: 7, A: 255}, rgbaAt(out, 3, 4))
}

func TestColorInvert(t *testing.T) {
	out := apply(t, solid(2, 2, red), filters.ColorInvert())
	assert.Equal(t, color.RGBA{G: 255, B: 255, A: 255}, rgbaAt(out, 0, 0))
}

func TestGrayscale(t *testing.T) {
	out := apply(t, solid(2, 2, color.RGBA{R: 200, G: 40, B: 90, A: 255}), filters.Grayscale())
	c := rgbaAt(out, 1, 1)
	assert.Equal(t, c.R, c.G)
	assert.Equal(t, c.G, c.B)
}

func TestSepiaTone(t *testing.T) {
	gray := color.RGBA{R: 128, G: 128, B: 128, A: 255}
	out := apply(t, solid(2, 2, gray), filters.SepiaTone(1))
	c := rgbaAt(out, 0, 0)
	assert.Greater(t, c.R, c.B, "sepia is warm")

	same := apply(t, solid(2, 2, gray), filters.SepiaTone(0))
	assert.Equal(t, gray, rgbaAt(same, 0, 0))
}

func TestColorControls_Brightness(t *testing.T) {
	gray := color.RGBA{R: 100, G: 100, B: 100, A: 255}
	brighter := apply(t, solid(2, 2, gray), filters.ColorControls(0.5, 1, 1))
	darker := apply(t, solid(2, 2, gray), filters.ColorControls(-0.5, 1, 1))
	assert.Greater(t, rgbaAt(brighter, 0, 0).R, gray.R)
	assert.Less(t, rgbaAt(darker, 0, 0).R, gray.R)
}

func TestHueAdjust(t *testing.T) {
	out := apply(t, solid(2, 2, red), filters.HueAdjust(2*math.Pi/3))
	c := rgbaAt(out, 0, 0)
	assert.Greater(t, c.G, c.R, "a third of a turn moves red toward green")
}

func TestGammaAdjust(t *testing.T) {
	gray := color.RGBA{R: 128, G: 128, B: 128, A: 255}
	out := apply(t, solid(2, 2, gray), filters.GammaAdjust(2))
	assert.Less(t, rgbaAt(out, 0, 0).R, gray.R, "powers above one darken")
}

func TestExposureAdjust(t *testing.T) {
	out := apply(t, solid(2, 2, color.RGBA{R: 100, G: 50, B: 200, A: 255}), filters.ExposureAdjust(1))
	assert.Equal(t, color.RGBA{R: 200, G: 100, B: 255, A: 255}, rgbaAt(out, 0, 0))

	half := color.RGBA{R: 100, A: 128}
	out = apply(t, solid(2, 2, half), filters.ExposureAdjust(1))
	assert.Equal(t, color.RGBA{R: 128, A: 128}, rgbaAt(out, 0, 0), "premultiplied channels stay within alpha")
}

func TestBoxBlur(t *testing.T) {
	input := bitmapOf(9, 9, func(x, y int) color.RGBA {
		if x == 4 && y == 4 {
			return white
		}
		return black
	})
	out := apply(t, input, filters.BoxBlur(1))
	assert.Equal(t, input.Bounds(), out.Bounds())
	assert.Greater(t, rgbaAt(out, 3, 4).R, uint8(0))
	assert.Zero(t, rgbaAt(out, 0, 0).R)
}

func TestSharpenAndEdgesKeepExtent(t *testing.T) {
	input := bitmapOf(6, 6, func(x, _ int) color.RGBA {
		if x < 3 {
			return white
		}
		return black
	})
	sharp := apply(t, input, filters.Sharpen())
	assert.Equal(t, input.Bounds(), sharp.Bounds())

	edges := apply(t, input, filters.Edges(1))
	assert.Equal(t, input.Bounds(), edges.Bounds())
	assert.Greater(t, rgbaAt(edges, 2, 3).R, rgbaAt(edges, 0, 3).R, "the edge is brighter than flat areas")
}

func TestPixellate(t *testing.T) {
	input := bitmapOf(4, 4, func(x, _ int) color.RGBA {
		if x%2 == 0 {
			return white
		}
		return black
	})
	out := apply(t, input, filters.Pixellate(4))
	assert.Equal(t, rgbaAt(out, 0, 0), rgbaAt(out, 3, 3))
}

func TestUnsharpMask(t *testing.T) {
	out := apply(t, solid(5, 5, red), filters.UnsharpMask(2.5, 0.5))
	assert.Equal(t, red, rgbaAt(out, 2, 2), "flat areas are unchanged")
}

func TestRotateGrowsExtent(t *testing.T) {
	out := apply(t, solid(10, 10, red), filters.Rotate(math.Pi/4))
	assert.Greater(t, out.Width(), 10)
	assert.Greater(t, out.Height(), 10)
	assert.Zero(t, rgbaAt(out, 0, 0).A, "corners are transparent")
}

func TestFlip(t *testing.T) {
	input := bitmapOf(4, 3, func(x, y int) color.RGBA {
		if x == 0 && y == 0 {
			return red
		}
		return black
	})
	h := apply(t, input, filters.Flip(true))
	assert.Equal(t, red, rgbaAt(h, 3, 0))

	v := apply(t, input, filters.Flip(false))
	assert.Equal(t, red, rgbaAt(v, 0, 2))

	def := apply(t, input, filters.New(filters.FlipName))
	assert.Equal(t, red, rgbaAt(def, 3, 0), "horizontal by default")
}

func TestLanczosScale(t *testing.T) {
	input := solid(20, 10, red)
	tests := []struct {
		name   string
		filter *ggfx.Filter
		want   image.Rectangle
	}{
		{"half", filters.LanczosScale(0.5, 1), image.Rect(0, 0, 10, 5)},
		{"double", filters.LanczosScale(2, 1), image.Rect(0, 0, 40, 20)},
		{"stretched", filters.LanczosScale(1, 2), image.Rect(0, 0, 40, 10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := apply(t, input, tt.filter)
			assert.Equal(t, tt.want, out.Bounds())
			assert.Equal(t, red, rgbaAt(out, out.Width()/2, out.Height()/2))
		})
	}
}

func TestAffineTransform(t *testing.T) {
	input := solid(4, 4, red)

	scaled := apply(t, input, filters.AffineTransform(f64.Aff3{2, 0, 0, 0, 2, 0}))
	assert.Equal(t, image.Rect(0, 0, 8, 8), scaled.Bounds())
	assert.GreaterOrEqual(t, rgbaAt(scaled, 4, 4).R, uint8(250))

	// A translation alone moves nothing: extents are anchored at the origin.
	moved := apply(t, input, filters.AffineTransform(f64.Aff3{1, 0, 5, 0, 1, 7}))
	assert.Equal(t, image.Rect(0, 0, 4, 4), moved.Bounds())
	assert.Equal(t, red, rgbaAt(moved, 1, 1))
}

func TestConstantColor(t *testing.T) {
	f := filters.ConstantColor(red, image.Rect(10, 10, 16, 14))
	img := f.Output()
	require.NotNil(t, img)
	assert.Equal(t, image.Rect(0, 0, 6, 4), img.Extent())

	bm, err := img.Bitmap()
	require.NoError(t, err)
	assert.Equal(t, red, rgbaAt(bm, 5, 3))

	def := filters.New(filters.ConstantColorName, filters.ColorKey, red).Output()
	require.NotNil(t, def)
	assert.Equal(t, filters.DefaultExtent, def.Extent())
}

func TestConstantColorStartsChain(t *testing.T) {
	blue := color.RGBA{B: 255, A: 255}
	out := ggfx.ApplyFilters(nil, []*ggfx.Filter{
		filters.ConstantColor(blue, image.Rect(0, 0, 3, 3)),
		filters.ColorInvert(),
	})
	require.NotNil(t, out)
	bm, err := out.Bitmap()
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 255, G: 255, A: 255}, rgbaAt(bm, 1, 1))
}

func TestCheckerboard(t *testing.T) {
	img := filters.Checkerboard(white, red, 4, image.Rect(0, 0, 10, 10)).Output()
	require.NotNil(t, img)
	bm, err := img.Bitmap()
	require.NoError(t, err)

	assert.Equal(t, white, rgbaAt(bm, 0, 0))
	assert.Equal(t, red, rgbaAt(bm, 4, 0))
	assert.Equal(t, red, rgbaAt(bm, 0, 4))
	assert.Equal(t, white, rgbaAt(bm, 4, 4))
	assert.Equal(t, white, rgbaAt(bm, 9, 9))
}

func TestFiltersThroughPipeline(t *testing.T) {
	input := solid(8, 8, red).WithMetadata(2, ggfx.OrientationLeft)
	out := ggfx.Filters(input, func() ggfx.Result {
		return ggfx.List(filters.Crop(image.Rect(0, 0, 4, 4)), filters.ColorInvert())
	})
	require.NotNil(t, out)
	assert.Equal(t, image.Rect(0, 0, 4, 4), out.Bounds())
	assert.Equal(t, 2.0, out.Scale())
	assert.Equal(t, ggfx.OrientationLeft, out.Orientation())
}

func TestNonFiniteAndOversizedParametersAreSkipped(t *testing.T) {
	tests := []struct {
		name   string
		filter *ggfx.Filter
	}{
		{"NaN blur", filters.GaussianBlur(math.NaN())},
		{"infinite blur", filters.GaussianBlur(math.Inf(1))},
		{"huge blur", filters.GaussianBlur(1e9)},
		{"huge unsharp mask", filters.UnsharpMask(1e9, 1)},
		{"huge box blur", filters.BoxBlur(1e6)},
		{"huge edges", filters.Edges(1e6)},
		{"NaN rotation", filters.Rotate(math.NaN())},
		{"NaN hue", filters.HueAdjust(math.NaN())},
		{"infinite exposure", filters.ExposureAdjust(math.Inf(-1))},
		{"huge scale", filters.LanczosScale(4e8, 1)},
		{"infinite aspect ratio", filters.LanczosScale(1, math.Inf(1))},
		{"huge transform", filters.AffineTransform(f64.Aff3{1e9, 0, 0, 0, 1e9, 0})},
		{"NaN transform", filters.AffineTransform(f64.Aff3{1, 0, math.NaN(), 0, 1, 0})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := solid(4, 4, red)
			var out *ggfx.Bitmap
			require.NotPanics(t, func() {
				out = ggfx.Filters(input, func() ggfx.Result { return ggfx.List(tt.filter) })
			})
			require.NotNil(t, out)
			// A skipped filter leaves the input as the chain's result.
			assert.Equal(t, image.Rect(0, 0, 4, 4), out.Bounds())
			assert.Equal(t, red, rgbaAt(out, 2, 2))
		})
	}
}

func TestIntermediateImagesRespectRendererLimit(t *testing.T) {
	p := ggfx.New(ggfx.WithRenderer(ggfx.NewSoftwareRenderer(ggfx.WithMaxPixels(100))))
	img, err := p.Resolve(ggfx.NewImage(solid(10, 10, red)), ggfx.List(
		filters.LanczosScale(100, 1),
		filters.Crop(image.Rect(0, 0, 5, 5)),
	))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 5, 5), img.Extent())

	_, err = p.Render(img)
	require.ErrorIs(t, err, ggfx.ErrRendering)
	assert.True(t, strings.Contains(err.Error(), "exceeds 100 pixels"), err.Error())
}
