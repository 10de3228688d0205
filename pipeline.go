package ggfx

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/pkg/errors"
)

// Pipeline runs declarative filter blocks and materializes their output.
// A Pipeline holds configuration only and is safe for concurrent use.
type Pipeline struct {
	opts pipelineOptions
}

// New creates a pipeline with the given options.
func New(opts ...Option) *Pipeline {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Pipeline{opts: o}
}

var std = sync.OnceValue(func() *Pipeline { return New() })

// Filters runs block on the default pipeline. See [Pipeline.Filters].
func Filters(input Convertible, block Block) *Bitmap {
	return std().Filters(input, block)
}

// Chain runs block on the default pipeline. See [Pipeline.Chain].
func Chain(input Convertible, block func() []*Filter) *Image {
	return std().Chain(input, block)
}

// Filters evaluates block, resolves its result against input and renders
// the outcome.
//
// The returned bitmap carries input's scale and orientation when input is a
// *Bitmap, and scale 1 with orientation Up otherwise. Filters never fails:
// on any error it logs the cause and returns a bitmap showing the error
// message instead.
func (p *Pipeline) Filters(input Convertible, block Block) *Bitmap {
	bm, err := p.filters(input, block)
	if err != nil {
		return p.handleError(err)
	}
	return bm
}

func (p *Pipeline) filters(input Convertible, block Block) (_ *Bitmap, err error) {
	defer recoverRendering(&err)

	result := None()
	if block != nil {
		result = block()
	}
	img, err := p.Resolve(graphImageOf(input, p), result)
	if err != nil {
		return nil, err
	}
	bm, err := p.renderer().Render(img, img.Extent())
	if err != nil {
		return nil, err
	}
	scale, orientation := metadata(input)
	return bm.WithMetadata(scale, orientation), nil
}

// Resolve turns a block result into a graph image.
//
//   - A filter list is applied to input with [ApplyFilters]; an empty list
//     fails with ErrMissingReturn (or passes input through under
//     EmptyChainPermissive) and a list producing nothing fails with
//     ErrMissingInput.
//   - A produced image is returned as is; input, if any, is ignored.
//   - None returns input, or fails with ErrMissingFilterInput without one.
//   - Anything else fails with ErrUnknown.
func (p *Pipeline) Resolve(input *Image, r Result) (*Image, error) {
	switch r.kind {
	case resultFilters:
		filters := r.Filters()
		if len(filters) == 0 {
			if p.opts.emptyChain == EmptyChainPermissive {
				return p.passThrough(input)
			}
			return nil, ErrMissingReturn
		}
		out := ApplyFilters(input, filters)
		if out == nil {
			return nil, errors.Wrapf(ErrMissingInput, "%d filters", len(filters))
		}
		return out, nil
	case resultImage:
		if input != nil {
			p.log().Warn("ggfx: input ignored, block produced its own image")
		}
		return r.Image(), nil
	case resultNone:
		return p.passThrough(input)
	default:
		return nil, ErrUnknown
	}
}

func (p *Pipeline) passThrough(input *Image) (*Image, error) {
	if input == nil {
		return nil, ErrMissingFilterInput
	}
	return input, nil
}

// Chain applies the filters returned by block to input without rendering.
// It never fails: an input that cannot be converted is treated as absent,
// and the result is nil when nothing produced an image or a kernel panicked.
func (p *Pipeline) Chain(input Convertible, block func() []*Filter) (out *Image) {
	defer func() {
		if r := recover(); r != nil {
			p.log().Error("ggfx: chaining failed", "panic", r)
			out = nil
		}
	}()

	var filters []*Filter
	if block != nil {
		filters = block()
	}
	return ApplyFilters(graphImageOf(input, p), filters)
}

// Render materializes img with the pipeline's renderer.
func (p *Pipeline) Render(img *Image) (*Bitmap, error) {
	if img == nil {
		return nil, errors.Wrap(ErrRendering, "nil image")
	}
	return p.renderer().Render(img, img.Extent())
}

func (p *Pipeline) handleError(err error) *Bitmap {
	description := "Error: " + err.Error()
	p.log().Error("ggfx: filtering failed", "err", description)
	return ErrorBitmap(description, p.opts.errorWidth)
}

func (p *Pipeline) renderer() Renderer {
	if p.opts.renderer != nil {
		return p.opts.renderer
	}
	return defaultRenderer()
}

func (p *Pipeline) log() *slog.Logger {
	if p.opts.logger != nil {
		return p.opts.logger
	}
	return Logger()
}

func typeName(v any) string {
	return fmt.Sprintf("%T", v)
}
