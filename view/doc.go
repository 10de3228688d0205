// Package view snapshots displayable content into ggfx bitmaps.
//
// Every type here implements [ggfx.Renderable], so it can be passed to
// [ggfx.View] and used as a filter chain input:
//
//	out := ggfx.Filters(ggfx.View{Renderable: view.Fyne{Object: label}}, block)
//
// UI toolkits only draw on their own thread. [Fyne] marshals the snapshot
// with fyne.DoAndWait; [Func] runs its draw function on a [Thread].
package view
