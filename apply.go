package ggfx

// ApplyFilters threads initial through filters in order and returns the
// last image produced.
//
// A filter whose InputImageKey is unset receives the current image; a filter
// with an explicit input keeps it. A filter that produces no output leaves
// the current image unchanged and the chain continues with the next filter.
// Nil filters are ignored.
//
// ApplyFilters returns nil if initial is nil and no filter produced output.
func ApplyFilters(initial *Image, filters []*Filter) *Image {
	current := initial
	for i, f := range filters {
		if f == nil {
			continue
		}
		if f.Value(InputImageKey) == nil {
			f.SetValue(InputImageKey, current)
		}
		out := f.Output()
		if out == nil {
			Logger().Debug("ggfx: filter skipped", "index", i, "filter", f.name)
			continue
		}
		current = out
	}
	return current
}
