package ggfx

import (
	"fmt"
	"image"
	"image/color"
	"maps"
	"math"
	"slices"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/text/cases"
)

// Reserved parameter keys.
const (
	// InputImageKey holds the image a filter reads. Chains fill it in when the
	// caller left it unset.
	InputImageKey = "inputImage"

	// BackgroundImageKey holds the second image of compositing filters.
	BackgroundImageKey = "inputBackgroundImage"
)

// Kernel implements one filter kind. Kernels never modify their parameters.
type Kernel interface {
	// Output returns the lazy output image for the given parameters, or nil
	// if required parameters are missing or invalid.
	Output(p Params) *Image
}

// KernelFunc adapts a function to [Kernel].
type KernelFunc func(p Params) *Image

// Output implements [Kernel].
func (fn KernelFunc) Output(p Params) *Image {
	return fn(p)
}

// Filter is a named transformation with a parameter bag. Filters are mutable
// and meant to be built right before a chain runs and used once.
type Filter struct {
	name   string
	kernel Kernel
	params Params
}

// NewFilter creates a filter named name whose output is computed by k.
// Registered filter kinds are created with [FilterNamed] instead.
func NewFilter(name string, k Kernel) *Filter {
	return &Filter{
		name:   name,
		kernel: k,
		params: make(Params),
	}
}

// Name returns the filter name.
func (f *Filter) Name() string {
	return f.name
}

// Value returns the parameter stored under key, or nil.
func (f *Filter) Value(key string) any {
	return f.params[key]
}

// SetValue stores a parameter. Storing nil, including a nil *Image or nil
// *Bitmap, removes the key.
func (f *Filter) SetValue(key string, v any) {
	if f.params == nil {
		f.params = make(Params)
	}
	setParam(f.params, key, v)
}

// Keys returns the names of the parameters currently set, sorted.
func (f *Filter) Keys() []string {
	return slices.Sorted(maps.Keys(f.params))
}

// Output evaluates the filter's kernel. It returns nil when the parameters
// are missing or invalid.
func (f *Filter) Output() *Image {
	if f == nil || f.kernel == nil {
		return nil
	}
	return f.kernel.Output(f.params)
}

// Params applies values to the filter and returns it.
//
// Keys are applied in sorted order. Values for [InputImageKey] and
// [BackgroundImageKey] go through [Coerce]; if any of them cannot be coerced
// to an image, none of the values are applied and the filter is returned
// unchanged.
func (f *Filter) Params(values map[string]any) *Filter {
	if f == nil {
		return nil
	}
	staged := maps.Clone(f.params)
	if staged == nil {
		staged = make(Params)
	}
	for _, key := range slices.Sorted(maps.Keys(values)) {
		v := values[key]
		if !isImageKey(key) {
			setParam(staged, key, v)
			continue
		}
		img, err := Coerce(v)
		if err == nil && img == nil {
			err = errors.Wrapf(ErrRendering, "%s: no image", key)
		}
		if err != nil {
			Logger().Debug("ggfx: parameters abandoned", "filter", f.name, "key", key, "err", err)
			return f
		}
		staged[key] = img
	}
	f.params = staged
	return f
}

// String returns the filter name and its parameter keys.
func (f *Filter) String() string {
	return fmt.Sprintf("%s%v", f.name, f.Keys())
}

func isImageKey(key string) bool {
	return key == InputImageKey || key == BackgroundImageKey
}

func setParam(p Params, key string, v any) {
	switch x := v.(type) {
	case nil:
		delete(p, key)
	case *Image:
		if x == nil {
			delete(p, key)
			return
		}
		p[key] = x
	case *Bitmap:
		if x == nil {
			delete(p, key)
			return
		}
		p[key] = x
	default:
		p[key] = v
	}
}

// Params is a filter's parameter bag as seen by its kernel.
//
// The typed getters return a default when the key is absent and report
// false when the stored value has the wrong type.
type Params map[string]any

// Image returns the image stored under key. Bitmaps are wrapped on the fly.
func (p Params) Image(key string) *Image {
	switch v := p[key].(type) {
	case *Image:
		return v
	case *Bitmap:
		return NewImage(v)
	default:
		return nil
	}
}

// Float returns a numeric parameter as float64. NaN and infinities are
// reported as invalid.
func (p Params) Float(key string, def float64) (float64, bool) {
	var f float64
	switch v := p[key].(type) {
	case nil:
		return def, true
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		return float64(v), true
	default:
		return def, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return def, false
	}
	return f, true
}

// Int returns an integer parameter. Floats with no fractional part are accepted.
func (p Params) Int(key string, def int) (int, bool) {
	switch v := p[key].(type) {
	case nil:
		return def, true
	case int:
		return v, true
	case float64:
		if v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
			return def, false
		}
		return int(v), true
	default:
		return def, false
	}
}

// Bool returns a boolean parameter.
func (p Params) Bool(key string, def bool) (bool, bool) {
	switch v := p[key].(type) {
	case nil:
		return def, true
	case bool:
		return v, true
	default:
		return def, false
	}
}

// Rect returns a rectangle parameter. ok is false when it is absent.
func (p Params) Rect(key string) (image.Rectangle, bool) {
	r, ok := p[key].(image.Rectangle)
	return r, ok
}

// Color returns a color parameter.
func (p Params) Color(key string, def color.Color) (color.Color, bool) {
	switch v := p[key].(type) {
	case nil:
		return def, def != nil
	case color.Color:
		return v, true
	default:
		return def, false
	}
}

// registry maps case-folded filter names to kernels.
var registry = struct {
	sync.RWMutex
	kernels map[string]registration
}{kernels: make(map[string]registration)}

type registration struct {
	name   string
	kernel Kernel
}

// foldName folds a filter name for case-insensitive lookup. Casers are not
// safe for concurrent use, so each call builds its own.
func foldName(name string) string {
	return cases.Fold().String(name)
}

// Register makes a filter kind available by name. Names are matched
// case-insensitively. Register panics if name is empty, k is nil, or the name
// is already registered.
func Register(name string, k Kernel) {
	if name == "" || k == nil {
		panic("ggfx: Register with empty name or nil kernel")
	}
	key := foldName(name)
	registry.Lock()
	defer registry.Unlock()
	if _, dup := registry.kernels[key]; dup {
		panic("ggfx: Register called twice for filter " + name)
	}
	registry.kernels[key] = registration{name: name, kernel: k}
}

// FilterNamed returns a new filter of the registered kind name, or nil if no
// such kind is registered.
func FilterNamed(name string) *Filter {
	registry.RLock()
	r, ok := registry.kernels[foldName(name)]
	registry.RUnlock()
	if !ok {
		return nil
	}
	return NewFilter(r.name, r.kernel)
}

// FilterNames returns the registered filter names, sorted.
func FilterNames() []string {
	registry.RLock()
	defer registry.RUnlock()
	names := make([]string, 0, len(registry.kernels))
	for _, r := range registry.kernels {
		names = append(names, r.name)
	}
	slices.Sort(names)
	return names
}
