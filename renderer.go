package ggfx

import (
	"image"
	"image/draw"
	"runtime"
	"sync"

	"github.com/pkg/errors"
)

// Renderer materializes graph images into bitmaps.
type Renderer interface {
	// Render draws the part of img inside rect into a new bitmap anchored at
	// the origin. Returns an error wrapping ErrRendering on failure.
	Render(img *Image, rect image.Rectangle) (*Bitmap, error)
}

// RendererOption configures a SoftwareRenderer.
type RendererOption func(*SoftwareRenderer)

// WithWorkers sets how many goroutines filter kernels may use.
// Values below 1 select min(6, GOMAXPROCS).
func WithWorkers(n int) RendererOption {
	return func(r *SoftwareRenderer) {
		r.workers = n
	}
}

// WithMaxPixels limits the area of every buffer a render allocates,
// including intermediate images. Zero disables the limit.
func WithMaxPixels(n int) RendererOption {
	return func(r *SoftwareRenderer) {
		r.maxPixels = n
	}
}

// SoftwareRenderer renders graph images on the CPU.
type SoftwareRenderer struct {
	workers   int
	maxPixels int
}

// DefaultMaxPixels bounds the rendered area of a SoftwareRenderer unless
// WithMaxPixels overrides it.
const DefaultMaxPixels = 16384 * 16384

// NewSoftwareRenderer creates a new software renderer.
func NewSoftwareRenderer(opts ...RendererOption) *SoftwareRenderer {
	r := &SoftwareRenderer{maxPixels: DefaultMaxPixels}
	for _, opt := range opts {
		opt(r)
	}
	if r.workers < 1 {
		r.workers = min(6, runtime.GOMAXPROCS(0))
	}
	return r
}

// Workers returns the worker count handed to kernels.
func (r *SoftwareRenderer) Workers() int {
	return r.workers
}

// Render implements [Renderer]. Every buffer allocated on the way,
// intermediate ones included, is subject to the pixel limit. A panic in a
// kernel is returned as ErrRendering.
func (r *SoftwareRenderer) Render(img *Image, rect image.Rectangle) (_ *Bitmap, err error) {
	if img == nil {
		return nil, errors.Wrap(ErrRendering, "nil image")
	}
	defer recoverRendering(&err)

	rect = rect.Intersect(img.extent)
	if rect.Empty() {
		return nil, errors.Wrapf(ErrRendering, "empty extent %v", img.extent)
	}
	if err := checkExtent(img.extent, r.maxPixels); err != nil {
		return nil, err
	}

	src, err := img.render(&RenderOptions{Workers: r.workers, MaxPixels: r.maxPixels})
	if err != nil {
		return nil, asRenderingError(err)
	}

	out := NewBitmap(rect.Dx(), rect.Dy())
	draw.Draw(out.rgba(), out.Bounds(), src, rect.Min, draw.Src)
	return out, nil
}

// recoverRendering turns a panic into an ErrRendering error stored in *err.
// It must be called directly by a deferred statement.
func recoverRendering(err *error) {
	if r := recover(); r != nil {
		*err = errors.Wrapf(ErrRendering, "panic: %v", r)
	}
}

// asRenderingError classifies err as ErrRendering, keeping its message.
func asRenderingError(err error) error {
	if errors.Is(err, ErrRendering) {
		return err
	}
	return errors.Wrap(ErrRendering, err.Error())
}

var defaultRenderer = sync.OnceValue(func() *SoftwareRenderer {
	return NewSoftwareRenderer()
})
