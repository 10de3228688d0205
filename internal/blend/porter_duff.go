// Package blend implements the Porter-Duff operators used by the
// compositing filters.
//
// All operations work on premultiplied alpha values in the range 0-255,
// which is the layout of image.RGBA.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

import (
	"fmt"
	"image"

	"github.com/gogpu/ggfx/internal/parallel"
)

// Mode is a Porter-Duff compositing operator. S is the foreground (source)
// and D the background (destination).
type Mode uint8

const (
	SourceOver Mode = iota // Result: S + D*(1-Sa)
	SourceIn               // Result: S*Da
	SourceOut              // Result: S*(1-Da)
	SourceAtop             // Result: S*Da + D*(1-Sa)
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case SourceOver:
		return "SourceOver"
	case SourceIn:
		return "SourceIn"
	case SourceOut:
		return "SourceOut"
	case SourceAtop:
		return "SourceAtop"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// Func is the signature of a per-pixel blend operation on premultiplied
// source (sr..sa) and destination (dr..da) colors.
type Func func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

// FuncFor returns the blend function for m. Unknown modes use SourceOver.
func FuncFor(m Mode) Func {
	switch m {
	case SourceIn:
		return sourceIn
	case SourceOut:
		return sourceOut
	case SourceAtop:
		return sourceAtop
	default:
		return sourceOver
	}
}

// Composite blends fg onto bg into dst with mode m, splitting rows across at
// most workers goroutines. The three images must share the same bounds.
func Composite(dst, bg, fg *image.RGBA, m Mode, workers int) error {
	if dst.Rect != bg.Rect || dst.Rect != fg.Rect {
		return fmt.Errorf("blend: bounds mismatch: dst %v, background %v, foreground %v", dst.Rect, bg.Rect, fg.Rect)
	}
	fn := FuncFor(m)
	w := dst.Rect.Dx()
	parallel.Rows(dst.Rect.Dy(), workers, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			di := y * dst.Stride
			bi := y * bg.Stride
			fi := y * fg.Stride
			for x := 0; x < w; x++ {
				s := fg.Pix[fi : fi+4 : fi+4]
				d := bg.Pix[bi : bi+4 : bi+4]
				r, g, b, a := fn(s[0], s[1], s[2], s[3], d[0], d[1], d[2], d[3])
				o := dst.Pix[di : di+4 : di+4]
				o[0], o[1], o[2], o[3] = r, g, b, a
				di += 4
				bi += 4
				fi += 4
			}
		}
	})
	return nil
}

// sourceOver composites source over destination.
// Formula: S + D * (1 - Sa)
func sourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return addClamp(sr, mulDiv255(dr, invSa)),
		addClamp(sg, mulDiv255(dg, invSa)),
		addClamp(sb, mulDiv255(db, invSa)),
		addClamp(sa, mulDiv255(da, invSa))
}

// sourceIn shows source where destination is opaque.
// Formula: S * Da
func sourceIn(sr, sg, sb, sa, _, _, _, da byte) (byte, byte, byte, byte) {
	return mulDiv255(sr, da), mulDiv255(sg, da), mulDiv255(sb, da), mulDiv255(sa, da)
}

// sourceOut shows source where destination is transparent.
// Formula: S * (1 - Da)
func sourceOut(sr, sg, sb, sa, _, _, _, da byte) (byte, byte, byte, byte) {
	invDa := 255 - da
	return mulDiv255(sr, invDa), mulDiv255(sg, invDa), mulDiv255(sb, invDa), mulDiv255(sa, invDa)
}

// sourceAtop composites source over destination, keeping destination alpha.
// Formula: S * Da + D * (1 - Sa)
func sourceAtop(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return addClamp(mulDiv255(sr, da), mulDiv255(dr, invSa)),
		addClamp(mulDiv255(sg, da), mulDiv255(dg, invSa)),
		addClamp(mulDiv255(sb, da), mulDiv255(db, invSa)),
		da
}
