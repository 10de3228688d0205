package ggfx

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
)

// Orientation describes how a bitmap's pixels are meant to be displayed.
// It is metadata only: filters never rotate pixels because of it.
type Orientation uint8

// Orientation values, matching the EXIF orientation tags 1-8.
const (
	OrientationUp Orientation = iota
	OrientationDown
	OrientationLeft
	OrientationRight
	OrientationUpMirrored
	OrientationDownMirrored
	OrientationLeftMirrored
	OrientationRightMirrored
)

// String returns a human-readable name for the orientation.
func (o Orientation) String() string {
	switch o {
	case OrientationUp:
		return "Up"
	case OrientationDown:
		return "Down"
	case OrientationLeft:
		return "Left"
	case OrientationRight:
		return "Right"
	case OrientationUpMirrored:
		return "UpMirrored"
	case OrientationDownMirrored:
		return "DownMirrored"
	case OrientationLeftMirrored:
		return "LeftMirrored"
	case OrientationRightMirrored:
		return "RightMirrored"
	default:
		return "Unknown"
	}
}

// Bitmap is a materialized image: premultiplied RGBA pixels plus display
// metadata. A Bitmap is not modified by ggfx once it has been returned.
type Bitmap struct {
	width       int
	height      int
	data        []uint8 // premultiplied RGBA, 4 bytes per pixel
	scale       float64
	orientation Orientation
}

// NewBitmap creates a transparent bitmap with scale 1 and orientation Up.
func NewBitmap(width, height int) *Bitmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Bitmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
		scale:  1,
	}
}

// FromImage creates a bitmap from any image. The bitmap is anchored at the
// origin regardless of img.Bounds().Min.
func FromImage(img image.Image) *Bitmap {
	bounds := img.Bounds()
	bm := NewBitmap(bounds.Dx(), bounds.Dy())
	dst := bm.rgba()
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
	return bm
}

// Width returns the width of the bitmap in pixels.
func (b *Bitmap) Width() int {
	return b.width
}

// Height returns the height of the bitmap in pixels.
func (b *Bitmap) Height() int {
	return b.height
}

// Data returns the raw premultiplied RGBA pixel data.
func (b *Bitmap) Data() []uint8 {
	return b.data
}

// Scale returns the display scale factor of the bitmap.
func (b *Bitmap) Scale() float64 {
	return b.scale
}

// Orientation returns the display orientation of the bitmap.
func (b *Bitmap) Orientation() Orientation {
	return b.orientation
}

// Empty reports whether the bitmap has no pixels.
func (b *Bitmap) Empty() bool {
	return b == nil || b.width == 0 || b.height == 0
}

// WithMetadata returns a bitmap sharing b's pixels with the given scale and
// orientation. A non-positive scale is replaced by 1.
func (b *Bitmap) WithMetadata(scale float64, o Orientation) *Bitmap {
	if scale <= 0 {
		scale = 1
	}
	cp := *b
	cp.scale = scale
	cp.orientation = o
	return &cp
}

// ToImage returns a copy of the pixels as an image.RGBA.
func (b *Bitmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	copy(img.Pix, b.data)
	return img
}

// rgba returns an image.RGBA view sharing the bitmap's pixel data.
func (b *Bitmap) rgba() *image.RGBA {
	return &image.RGBA{
		Pix:    b.data,
		Stride: b.width * 4,
		Rect:   image.Rect(0, 0, b.width, b.height),
	}
}

// SavePNG saves the bitmap to a PNG file.
func (b *Bitmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, b.rgba())
}

// At implements the image.Image interface.
func (b *Bitmap) At(x, y int) color.Color {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return color.RGBA{}
	}
	i := (y*b.width + x) * 4
	return color.RGBA{R: b.data[i], G: b.data[i+1], B: b.data[i+2], A: b.data[i+3]}
}

// Bounds implements the image.Image interface.
func (b *Bitmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// ColorModel implements the image.Image interface.
func (b *Bitmap) ColorModel() color.Model {
	return color.RGBAModel
}

// GraphImage implements [Convertible] by wrapping the bitmap in a source image.
func (b *Bitmap) GraphImage() (*Image, error) {
	return NewImage(b), nil
}

// Bitmap implements [Convertible]; it returns b itself.
func (b *Bitmap) Bitmap() (*Bitmap, error) {
	return b, nil
}
