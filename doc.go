// Package ggfx chains image filters declaratively.
//
// # Overview
//
// ggfx lets a caller describe a sequence of filters as a block and run it
// over an image-like input. The filters themselves come from the
// ggfx/filters catalog (or any [Kernel] registered with [Register]); ggfx
// only wires each filter's output into the next filter's input, resolves
// what a block returned, and renders the result.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/ggfx"
//	    "github.com/gogpu/ggfx/filters"
//	)
//
//	out := ggfx.Filters(photo, func() ggfx.Result {
//	    return ggfx.List(
//	        filters.Crop(image.Rect(0, 0, 400, 300)),
//	        filters.GaussianBlur(4),
//	        filters.SepiaTone(0.8),
//	    )
//	})
//	_ = out.SavePNG("out.png")
//
// # Images
//
// Three representations are involved:
//   - [Image]: a lazy graph image; filters build these without touching pixels
//   - [Bitmap]: materialized pixels with scale and orientation metadata
//   - [Renderable]: anything that can snapshot itself into a Bitmap, such
//     as the fyne views in ggfx/view
//
// [Coerce] converts any of them, or a plain image.Image, into an Image.
//
// # Chaining
//
// [ApplyFilters] is a left fold: a filter whose [InputImageKey] is unset
// receives the current image, and a filter that produces nothing is
// skipped. [Pipeline.Filters] additionally resolves the block result and
// renders it; it never fails and returns an error bitmap instead.
//
// # Logging
//
// ggfx is silent by default. Use [SetLogger] or [WithLogger] to receive
// diagnostics through log/slog.
package ggfx
