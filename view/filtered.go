package view

import "github.com/gogpu/ggfx"

// Filtered is a [ggfx.Renderable] that snapshots Content and runs it
// through a filter block. Failures show up as the pipeline's error bitmap.
type Filtered struct {
	Content ggfx.Renderable
	Block   ggfx.Block

	// Pipeline defaults to ggfx.New().
	Pipeline *ggfx.Pipeline
}

// Snapshot implements [ggfx.Renderable].
func (f Filtered) Snapshot() (*ggfx.Bitmap, error) {
	p := f.Pipeline
	if p == nil {
		p = ggfx.New()
	}
	return p.Filters(ggfx.View{Renderable: f.Content}, f.Block), nil
}
