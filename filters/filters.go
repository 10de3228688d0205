package filters

import (
	"image"
	"image/color"

	"github.com/gogpu/ggfx"
	"golang.org/x/image/math/f64"
)

// Filter names.
const (
	GaussianBlurName    = "gaussianBlur"
	BoxBlurName         = "boxBlur"
	CropName            = "crop"
	ColorInvertName     = "colorInvert"
	GrayscaleName       = "grayscale"
	SepiaToneName       = "sepiaTone"
	ColorControlsName   = "colorControls"
	HueAdjustName       = "hueAdjust"
	GammaAdjustName     = "gammaAdjust"
	ExposureAdjustName  = "exposureAdjust"
	SharpenName         = "sharpen"
	EdgesName           = "edges"
	PixellateName       = "pixellate"
	UnsharpMaskName     = "unsharpMask"
	RotateName          = "rotate"
	FlipName            = "flip"
	LanczosScaleName    = "lanczosScale"
	AffineTransformName = "affineTransform"
	ConstantColorName   = "constantColor"
	CheckerboardName    = "checkerboard"
)

// Parameter keys.
const (
	RadiusKey      = "inputRadius"
	RectangleKey   = "inputRectangle"
	IntensityKey   = "inputIntensity"
	BrightnessKey  = "inputBrightness"
	ContrastKey    = "inputContrast"
	SaturationKey  = "inputSaturation"
	AngleKey       = "inputAngle"
	PowerKey       = "inputPower"
	EVKey          = "inputEV"
	ScaleKey       = "inputScale"
	AspectRatioKey = "inputAspectRatio"
	HorizontalKey  = "inputHorizontal"
	TransformKey   = "inputTransform"
	ColorKey       = "inputColor"
	Color0Key      = "inputColor0"
	Color1Key      = "inputColor1"
	WidthKey       = "inputWidth"
	ExtentKey      = "inputExtent"
)

// Parameter bounds. Values past them make a filter produce no output.
const (
	// MaxRadius bounds Gaussian blur and unsharp mask radii.
	MaxRadius = 500

	// MaxKernelRadius bounds box blur and edge radii, whose cost grows with
	// the square of the radius.
	MaxKernelRadius = 100

	// MaxDimension bounds the width and height produced by geometry filters.
	MaxDimension = 1 << 20
)

// DefaultExtent is the extent of generated images unless ExtentKey is set.
var DefaultExtent = image.Rect(0, 0, 256, 256)

func init() {
	ggfx.Register(GaussianBlurName, gaussianBlur)
	ggfx.Register(BoxBlurName, boxBlur)
	ggfx.Register(CropName, crop)
	ggfx.Register(ColorInvertName, colorInvert)
	ggfx.Register(GrayscaleName, grayscale)
	ggfx.Register(SepiaToneName, sepiaTone)
	ggfx.Register(ColorControlsName, colorControls)
	ggfx.Register(HueAdjustName, hueAdjust)
	ggfx.Register(GammaAdjustName, gammaAdjust)
	ggfx.Register(ExposureAdjustName, exposureAdjust)
	ggfx.Register(SharpenName, sharpen)
	ggfx.Register(EdgesName, edges)
	ggfx.Register(PixellateName, pixellate)
	ggfx.Register(UnsharpMaskName, unsharpMask)
	ggfx.Register(RotateName, rotate)
	ggfx.Register(FlipName, flip)
	ggfx.Register(LanczosScaleName, lanczosScale)
	ggfx.Register(AffineTransformName, affineTransform)
	ggfx.Register(ConstantColorName, constantColor)
	ggfx.Register(CheckerboardName, checkerboard)
}

// New returns a registered filter with the given key/value parameters.
// It panics on an odd number of arguments or a non-string key, and returns
// nil if name is not registered.
func New(name string, keyvals ...any) *ggfx.Filter {
	if len(keyvals)%2 != 0 {
		panic("filters: odd number of key/value arguments")
	}
	f := ggfx.FilterNamed(name)
	if f == nil {
		return nil
	}
	values := make(map[string]any, len(keyvals)/2)
	for i := 0; i < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			panic("filters: parameter key is not a string")
		}
		values[key] = keyvals[i+1]
	}
	return f.Params(values)
}

// GaussianBlur blurs with a Gaussian of the given standard deviation.
func GaussianBlur(radius float64) *ggfx.Filter {
	return New(GaussianBlurName, RadiusKey, radius)
}

// BoxBlur averages each pixel with its neighbours within radius.
func BoxBlur(radius float64) *ggfx.Filter {
	return New(BoxBlurName, RadiusKey, radius)
}

// Crop keeps the part of the input inside r.
func Crop(r image.Rectangle) *ggfx.Filter {
	return New(CropName, RectangleKey, r)
}

// ColorInvert inverts every color channel.
func ColorInvert() *ggfx.Filter {
	return New(ColorInvertName)
}

// Grayscale removes color.
func Grayscale() *ggfx.Filter {
	return New(GrayscaleName)
}

// SepiaTone tints toward sepia; intensity is in [0, 1].
func SepiaTone(intensity float64) *ggfx.Filter {
	return New(SepiaToneName, IntensityKey, intensity)
}

// ColorControls adjusts brightness (additive, [-1, 1]), contrast and
// saturation (multiplicative, 1 is unchanged).
func ColorControls(brightness, contrast, saturation float64) *ggfx.Filter {
	return New(ColorControlsName,
		BrightnessKey, brightness,
		ContrastKey, contrast,
		SaturationKey, saturation)
}

// HueAdjust rotates hues by angle radians.
func HueAdjust(angle float64) *ggfx.Filter {
	return New(HueAdjustName, AngleKey, angle)
}

// GammaAdjust raises every channel to power.
func GammaAdjust(power float64) *ggfx.Filter {
	return New(GammaAdjustName, PowerKey, power)
}

// ExposureAdjust multiplies colors by 2^ev.
func ExposureAdjust(ev float64) *ggfx.Filter {
	return New(ExposureAdjustName, EVKey, ev)
}

// Sharpen applies a 3×3 sharpening kernel.
func Sharpen() *ggfx.Filter {
	return New(SharpenName)
}

// Edges highlights edges found within intensity pixels.
func Edges(intensity float64) *ggfx.Filter {
	return New(EdgesName, IntensityKey, intensity)
}

// Pixellate replaces blocks of scale×scale pixels with their average.
func Pixellate(scale int) *ggfx.Filter {
	return New(PixellateName, ScaleKey, scale)
}

// UnsharpMask sharpens by subtracting a blur of the given radius.
func UnsharpMask(radius, intensity float64) *ggfx.Filter {
	return New(UnsharpMaskName, RadiusKey, radius, IntensityKey, intensity)
}

// Rotate rotates counter-clockwise by angle radians; the extent grows to fit.
func Rotate(angle float64) *ggfx.Filter {
	return New(RotateName, AngleKey, angle)
}

// Flip mirrors horizontally, or vertically when horizontal is false.
func Flip(horizontal bool) *ggfx.Filter {
	return New(FlipName, HorizontalKey, horizontal)
}

// LanczosScale resizes by scale, stretching the width by aspectRatio.
func LanczosScale(scale, aspectRatio float64) *ggfx.Filter {
	return New(LanczosScaleName, ScaleKey, scale, AspectRatioKey, aspectRatio)
}

// AffineTransform maps the input through m with Catmull-Rom resampling.
func AffineTransform(m f64.Aff3) *ggfx.Filter {
	return New(AffineTransformName, TransformKey, m)
}

// ConstantColor generates an image of c over extent.
func ConstantColor(c color.Color, extent image.Rectangle) *ggfx.Filter {
	return New(ConstantColorName, ColorKey, c, ExtentKey, extent)
}

// Checkerboard generates squares of width pixels alternating c0 and c1.
func Checkerboard(c0, c1 color.Color, width int, extent image.Rectangle) *ggfx.Filter {
	return New(CheckerboardName, Color0Key, c0, Color1Key, c1, WidthKey, width, ExtentKey, extent)
}
