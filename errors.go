package ggfx

// FilterError is the closed set of failures reported while building,
// resolving or rendering a filter chain. All of them are non-fatal.
//
// Callers match them with errors.Is; context added with errors.Wrap is
// transparent to that check.
type FilterError uint8

const (
	// ErrWrongInputType reports a value that cannot be coerced to an Image.
	ErrWrongInputType FilterError = iota + 1

	// ErrMissingInput reports a non-empty chain that produced no image.
	ErrMissingInput

	// ErrMissingReturn reports a block that returned an empty filter list.
	ErrMissingReturn

	// ErrMissingFilterInput reports that neither the block nor the caller
	// supplied an image or filters.
	ErrMissingFilterInput

	// ErrRendering reports that a graph image could not be materialized, or
	// that an image parameter could not be coerced.
	ErrRendering

	// ErrUnknown reports a block result of no recognized shape.
	ErrUnknown
)

// Error returns the human-readable description of e.
func (e FilterError) Error() string {
	switch e {
	case ErrWrongInputType:
		return "incorrect input type: acceptable inputs are *ggfx.Image, *ggfx.Bitmap, ggfx.Convertible, ggfx.Renderable and image.Image"
	case ErrMissingInput:
		return "missing input: the filters produced no image, provide an input to Filters or set " + InputImageKey + " on the first filter"
	case ErrMissingReturn:
		return "missing return value: the block returned no filters"
	case ErrMissingFilterInput:
		return "missing input in chaining: provide an input to Filters or Chain, or a value for " + InputImageKey
	case ErrRendering:
		return "error while rendering filtered image"
	case ErrUnknown:
		return "unknown error: the block returned an unrecognized result"
	default:
		return "ggfx: invalid FilterError"
	}
}
