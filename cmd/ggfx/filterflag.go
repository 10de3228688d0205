package main

import (
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/ggfx"
	"github.com/pkg/errors"
)

// filterList collects -filter flags. Each is name[:key=value,...] where a
// value is a number, true or false, a color #rrggbb[aa], or a rectangle
// x0/y0/x1/y1.
type filterList []string

func (l *filterList) String() string {
	return strings.Join(*l, " ")
}

func (l *filterList) Set(s string) error {
	if _, _, err := parseFilter(s); err != nil {
		return err
	}
	*l = append(*l, s)
	return nil
}

// build creates the filters in order.
func (l filterList) build() ([]*ggfx.Filter, error) {
	fs := make([]*ggfx.Filter, 0, len(l))
	for _, s := range l {
		name, params, err := parseFilter(s)
		if err != nil {
			return nil, err
		}
		f := ggfx.FilterNamed(name)
		if f == nil {
			return nil, errors.Errorf("unknown filter %q", name)
		}
		fs = append(fs, f.Params(params))
	}
	return fs, nil
}

func parseFilter(s string) (string, map[string]any, error) {
	name, args, _ := strings.Cut(s, ":")
	name = strings.TrimSpace(name)
	if name == "" {
		return "", nil, errors.Errorf("filter %q: missing name", s)
	}
	params := make(map[string]any)
	if args == "" {
		return name, params, nil
	}
	for _, kv := range strings.Split(args, ",") {
		key, raw, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return "", nil, errors.Errorf("filter %q: bad parameter %q", s, kv)
		}
		v, err := parseValue(raw)
		if err != nil {
			return "", nil, errors.Wrapf(err, "filter %q: parameter %s", s, key)
		}
		params[key] = v
	}
	return name, params, nil
}

func parseValue(raw string) (any, error) {
	switch {
	case raw == "true" || raw == "false":
		return raw == "true", nil
	case strings.HasPrefix(raw, "#"):
		return parseColor(raw[1:])
	case strings.Count(raw, "/") == 3:
		return parseRect(raw)
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, errors.Errorf("cannot parse %q", raw)
	}
	return f, nil
}

func parseColor(hex string) (color.Color, error) {
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return nil, errors.Errorf("color #%s: want 6 or 8 hex digits", hex)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, errors.Wrapf(err, "color #%s", hex)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

func parseRect(raw string) (image.Rectangle, error) {
	var n [4]int
	for i, part := range strings.Split(raw, "/") {
		v, err := strconv.Atoi(part)
		if err != nil {
			return image.Rectangle{}, errors.Errorf("rectangle %q: %v", raw, err)
		}
		n[i] = v
	}
	return image.Rect(n[0], n[1], n[2], n[3]), nil
}
