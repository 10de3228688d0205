package ggfx

// resultKind tags the shape of a block result. The zero value is not a
// recognized shape.
type resultKind uint8

const (
	resultInvalid resultKind = iota
	resultNone
	resultFilters
	resultImage
)

// Result is what a declarative filter block evaluates to: nothing, a list of
// filters, or an image it already produced. Build one with [None], [Single],
// [List] or [Produced]; the zero Result is rejected with ErrUnknown.
type Result struct {
	kind    resultKind
	filters []*Filter
	image   *Image
}

// Block is a declarative filter block.
type Block func() Result

// None returns a result carrying nothing; the caller's input passes through.
func None() Result {
	return Result{kind: resultNone}
}

// Single returns a result holding a one-element filter list.
func Single(f *Filter) Result {
	return List(f)
}

// List returns a result holding filters in order. Nil filters are dropped.
func List(filters ...*Filter) Result {
	kept := make([]*Filter, 0, len(filters))
	for _, f := range filters {
		if f != nil {
			kept = append(kept, f)
		}
	}
	return Result{kind: resultFilters, filters: kept}
}

// Produced returns a result holding an image built inside the block, usually
// by [Chain]. Produced(nil) is the same as None().
func Produced(img *Image) Result {
	if img == nil {
		return None()
	}
	return Result{kind: resultImage, image: img}
}

// Filters returns the filter list of a List or Single result.
func (r Result) Filters() []*Filter {
	return r.filters
}

// Image returns the image of a Produced result.
func (r Result) Image() *Image {
	return r.image
}

// Build flattens filter groups into one list, in order.
//
//	ggfx.Build(
//	    ggfx.Group(filters.Crop(r)),
//	    ggfx.When(blur, filters.GaussianBlur(4)),
//	    ggfx.Either(mono, ggfx.Group(filters.Grayscale()), ggfx.Group(filters.SepiaTone(1))),
//	)
func Build(groups ...[]*Filter) []*Filter {
	var out []*Filter
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// Group returns its arguments as a filter group.
func Group(filters ...*Filter) []*Filter {
	return filters
}

// When returns filters if cond is true and an empty group otherwise.
func When(cond bool, filters ...*Filter) []*Filter {
	if !cond {
		return nil
	}
	return filters
}

// Either returns first if cond is true and second otherwise.
func Either(cond bool, first, second []*Filter) []*Filter {
	if cond {
		return first
	}
	return second
}
