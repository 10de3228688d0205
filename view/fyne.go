package view

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/software"
	"fyne.io/fyne/v2/theme"
	"github.com/gogpu/ggfx"
	"github.com/pkg/errors"
)

// ErrNoApp is returned when a fyne snapshot is taken before an app exists.
var ErrNoApp = errors.New("view: no fyne app")

// Fyne is a [ggfx.Renderable] that snapshots a fyne canvas object with the
// software painter. The snapshot is taken on the fyne thread.
type Fyne struct {
	Object fyne.CanvasObject

	// Theme defaults to the fyne default theme.
	Theme fyne.Theme

	// Scale is recorded as the snapshot's scale factor. Zero means 1.
	Scale float64
}

// Snapshot implements [ggfx.Renderable].
func (f Fyne) Snapshot() (*ggfx.Bitmap, error) {
	if f.Object == nil {
		return nil, errors.New("view: nil fyne object")
	}
	if fyne.CurrentApp() == nil {
		return nil, ErrNoApp
	}
	th := f.Theme
	if th == nil {
		th = theme.DefaultTheme()
	}

	var img image.Image
	fyne.DoAndWait(func() {
		img = software.Render(f.Object, th)
	})
	if img == nil || img.Bounds().Empty() {
		return nil, errors.Errorf("view: %T rendered nothing", f.Object)
	}
	return ggfx.FromImage(img).WithMetadata(f.Scale, ggfx.OrientationUp), nil
}
