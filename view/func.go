package view

import (
	"image"
	"image/draw"

	"github.com/gogpu/ggfx"
	"github.com/pkg/errors"
)

// Func is a [ggfx.Renderable] whose pixels come from a draw function.
type Func struct {
	// Thread runs Draw. A nil Thread runs it on the calling goroutine.
	Thread *Thread

	// Size is the snapshot size in pixels.
	Size image.Point

	// Scale is recorded as the snapshot's scale factor. Zero means 1.
	Scale float64

	// Draw paints into a transparent image of Size.
	Draw func(dst draw.Image) error
}

// Snapshot implements [ggfx.Renderable].
func (f Func) Snapshot() (*ggfx.Bitmap, error) {
	if f.Draw == nil {
		return nil, errors.New("view: nil draw function")
	}
	if f.Size.X <= 0 || f.Size.Y <= 0 {
		return nil, errors.Errorf("view: invalid size %v", f.Size)
	}
	dst := image.NewRGBA(image.Rectangle{Max: f.Size})

	var err error
	paint := func() { err = f.Draw(dst) }
	if f.Thread == nil {
		paint()
	} else if terr := f.Thread.Do(paint); terr != nil {
		return nil, terr
	}
	if err != nil {
		return nil, errors.Wrap(err, "view: draw")
	}
	return ggfx.FromImage(dst).WithMetadata(f.Scale, ggfx.OrientationUp), nil
}
