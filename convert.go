package ggfx

import (
	"image"

	"github.com/pkg/errors"
)

// Convertible is implemented by every image-like value ggfx accepts as a
// filter input. Each implementation owns its conversion.
type Convertible interface {
	// GraphImage returns the value as a lazy graph image.
	GraphImage() (*Image, error)

	// Bitmap returns the value as materialized pixels.
	Bitmap() (*Bitmap, error)
}

// Renderable is a displayable entity that can be snapshotted into a bitmap.
// Snapshot may block, for instance while it waits for a UI thread.
type Renderable interface {
	Snapshot() (*Bitmap, error)
}

// Raster adapts a standard library image to [Convertible].
type Raster struct {
	image.Image
}

// GraphImage implements [Convertible].
func (r Raster) GraphImage() (*Image, error) {
	if r.Image == nil {
		return nil, nil
	}
	return NewImageFromStd(r.Image), nil
}

// Bitmap implements [Convertible].
func (r Raster) Bitmap() (*Bitmap, error) {
	if r.Image == nil {
		return nil, nil
	}
	if b, ok := r.Image.(*Bitmap); ok {
		return b, nil
	}
	return FromImage(r.Image), nil
}

// View adapts a [Renderable] to [Convertible]. Every conversion takes a new
// snapshot.
type View struct {
	Renderable
}

// GraphImage implements [Convertible].
func (v View) GraphImage() (*Image, error) {
	b, err := v.Bitmap()
	if err != nil {
		return nil, err
	}
	return NewImage(b), nil
}

// Bitmap implements [Convertible].
func (v View) Bitmap() (*Bitmap, error) {
	if v.Renderable == nil {
		return nil, errors.Wrap(ErrWrongInputType, "nil renderable")
	}
	b, err := v.Snapshot()
	if err != nil {
		return nil, errors.Wrapf(ErrRendering, "snapshot %T: %v", v.Renderable, err)
	}
	if b == nil {
		return nil, errors.Wrapf(ErrRendering, "snapshot %T: no bitmap", v.Renderable)
	}
	return b, nil
}

// Coerce converts v to a graph image. The first matching case wins:
//
//  1. *Image, returned as is
//  2. *Bitmap, wrapped without copying
//  3. any other [Convertible], via its own GraphImage
//  4. [Renderable], snapshotted
//  5. image.Image, copied
//
// A nil value yields (nil, nil). Other types fail with ErrWrongInputType.
func Coerce(v any) (*Image, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case *Image:
		return x, nil
	case *Bitmap:
		return NewImage(x), nil
	case Convertible:
		return x.GraphImage()
	case Renderable:
		return View{x}.GraphImage()
	case image.Image:
		return NewImageFromStd(x), nil
	default:
		return nil, errors.Wrapf(ErrWrongInputType, "%T", v)
	}
}

// graphImageOf resolves an optional caller input. Failures are logged and the
// input is treated as absent.
func graphImageOf(input Convertible, p *Pipeline) *Image {
	if input == nil {
		return nil
	}
	img, err := input.GraphImage()
	if err != nil {
		p.log().Debug("ggfx: input ignored", "type", typeName(input), "err", err)
		return nil
	}
	return img
}

// metadata reports the display metadata an input carries, defaulting to
// scale 1 and orientation Up.
func metadata(input Convertible) (float64, Orientation) {
	if m, ok := input.(interface {
		Scale() float64
		Orientation() Orientation
	}); ok && m != nil {
		if b, isBitmap := m.(*Bitmap); isBitmap && b == nil {
			return 1, OrientationUp
		}
		return m.Scale(), m.Orientation()
	}
	return 1, OrientationUp
}
