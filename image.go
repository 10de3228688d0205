package ggfx

import (
	"image"
	"image/draw"
	"math"

	"github.com/pkg/errors"
)

// RenderOptions are handed to image draw functions while an Image is being
// rendered.
type RenderOptions struct {
	// Workers is the number of goroutines a draw function may use.
	// Values below 1 mean "pick a default".
	Workers int

	// MaxPixels bounds the area of every buffer allocated while rendering,
	// intermediate ones included. Zero means no limit beyond what fits in
	// memory addressing.
	MaxPixels int
}

// DrawFunc draws a unary operation of src into dst. dst is sized to the
// extent of the operation's output and anchored at the origin.
type DrawFunc func(dst draw.Image, src image.Image, opts *RenderOptions) error

// GenerateFunc draws an image with no input into dst.
type GenerateFunc func(dst draw.Image, opts *RenderOptions) error

// CombineFunc draws a binary operation into dst. All three images share the
// same bounds.
type CombineFunc func(dst, background, foreground *image.RGBA, opts *RenderOptions) error

// maxAllocPixels is the largest area an RGBA buffer can address.
const maxAllocPixels = math.MaxInt / 4

// checkExtent reports an ErrRendering error when r is empty or larger than
// maxPixels. The comparison cannot overflow.
func checkExtent(r image.Rectangle, maxPixels int) error {
	w, h := r.Dx(), r.Dy()
	if w <= 0 || h <= 0 {
		return errors.Wrapf(ErrRendering, "empty extent %v", r)
	}
	limit := maxPixels
	if limit <= 0 || limit > maxAllocPixels {
		limit = maxAllocPixels
	}
	if w > limit/h {
		return errors.Wrapf(ErrRendering, "extent %v exceeds %d pixels", r, limit)
	}
	return nil
}

// Image is a graph image: a lazy, immutable description of pixels that have
// not been computed yet. Rendering walks the graph from the leaves.
//
// Images are created from bitmaps with [NewImage] or [NewImageFromStd], and
// by filter kernels with [Transform], [Generate] and [Combine]. Extents are
// always anchored at the origin.
type Image struct {
	extent image.Rectangle
	source *Bitmap // set for bitmap-backed images, which have no draw
	draw   func(dst *image.RGBA, opts *RenderOptions) error
}

// NewImage returns an image backed by the pixels of b, or nil if b is nil.
func NewImage(b *Bitmap) *Image {
	if b == nil {
		return nil
	}
	return &Image{
		extent: b.Bounds(),
		source: b,
	}
}

// NewImageFromStd returns an image holding a copy of img's pixels, or nil if
// img is nil.
func NewImageFromStd(img image.Image) *Image {
	switch v := img.(type) {
	case nil:
		return nil
	case *Bitmap:
		return NewImage(v)
	default:
		return NewImage(FromImage(img))
	}
}

// Transform returns the lazy output of a unary operation applied to input.
// bounds maps the input extent to the output extent; fn draws the output.
// Transform returns nil if input is nil.
func Transform(input *Image, bounds func(image.Rectangle) image.Rectangle, fn DrawFunc) *Image {
	if input == nil || fn == nil {
		return nil
	}
	extent := input.extent
	if bounds != nil {
		extent = anchor(bounds(extent))
	}
	return &Image{
		extent: extent,
		draw: func(dst *image.RGBA, opts *RenderOptions) error {
			src, err := input.render(opts)
			if err != nil {
				return err
			}
			return fn(dst, src, opts)
		},
	}
}

// Generate returns the lazy output of an operation that needs no input.
func Generate(extent image.Rectangle, fn GenerateFunc) *Image {
	if fn == nil {
		return nil
	}
	return &Image{
		extent: anchor(extent),
		draw: func(dst *image.RGBA, opts *RenderOptions) error {
			return fn(dst, opts)
		},
	}
}

// Combine returns the lazy output of a binary operation over background and
// foreground. The output extent is the union of both extents. Combine returns
// nil if either input is nil.
func Combine(background, foreground *Image, fn CombineFunc) *Image {
	if background == nil || foreground == nil || fn == nil {
		return nil
	}
	extent := background.extent.Union(foreground.extent)
	return &Image{
		extent: extent,
		draw: func(dst *image.RGBA, opts *RenderOptions) error {
			bg, err := background.renderIn(extent, opts)
			if err != nil {
				return err
			}
			fg, err := foreground.renderIn(extent, opts)
			if err != nil {
				return err
			}
			return fn(dst, bg, fg, opts)
		},
	}
}

// Extent returns the bounds of the image once rendered.
func (img *Image) Extent() image.Rectangle {
	return img.extent
}

// Source returns the bitmap the image was created from, or nil if the image
// is the output of an operation.
func (img *Image) Source() *Bitmap {
	return img.source
}

// GraphImage implements [Convertible]; it returns img itself.
func (img *Image) GraphImage() (*Image, error) {
	return img, nil
}

// Bitmap implements [Convertible] by rendering the full extent with the
// default renderer.
func (img *Image) Bitmap() (*Bitmap, error) {
	if img == nil {
		return nil, nil
	}
	return defaultRenderer().Render(img, img.extent)
}

// render draws the full extent into a new buffer. Bitmap-backed images
// return a read-only view of their source pixels.
func (img *Image) render(opts *RenderOptions) (*image.RGBA, error) {
	if img.source != nil {
		return img.source.rgba(), nil
	}
	var maxPixels int
	if opts != nil {
		maxPixels = opts.MaxPixels
	}
	if err := checkExtent(img.extent, maxPixels); err != nil {
		return nil, err
	}
	dst := image.NewRGBA(img.extent)
	if err := img.draw(dst, opts); err != nil {
		return nil, err
	}
	return dst, nil
}

// renderIn renders img into a transparent buffer of the given bounds.
func (img *Image) renderIn(bounds image.Rectangle, opts *RenderOptions) (*image.RGBA, error) {
	src, err := img.render(opts)
	if err != nil {
		return nil, err
	}
	if src.Rect == bounds {
		return src, nil
	}
	dst := image.NewRGBA(bounds)
	draw.Draw(dst, src.Rect, src, src.Rect.Min, draw.Src)
	return dst, nil
}

// anchor moves r so that its minimum point is the origin.
func anchor(r image.Rectangle) image.Rectangle {
	return image.Rect(0, 0, r.Dx(), r.Dy())
}
