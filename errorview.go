package ggfx

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"strings"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

var (
	errorIconColor = color.RGBA{R: 0xff, G: 0x3b, B: 0x30, A: 0xff}
	errorTextColor = color.RGBA{A: 0xff}
)

// ErrorBitmap draws a placeholder for a failed result: a red crossed circle
// half as wide as the bitmap, with message wrapped underneath. The height
// follows from the number of text lines.
func ErrorBitmap(message string, width int) *Bitmap {
	if width < 64 {
		width = 64
	}
	face := basicfont.Face7x13
	const (
		padding    = 8
		lineHeight = 15
	)

	lines := wrapText(message, face, width-2*padding)
	diameter := width / 2
	height := padding + diameter + padding + len(lines)*lineHeight + padding

	bm := NewBitmap(width, height)
	dst := bm.rgba()

	drawCrossedCircle(dst, float32(width)/2, float32(padding+diameter/2), float32(diameter)/2)

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(errorTextColor),
		Face: face,
	}
	y := padding + diameter + padding
	for _, line := range lines {
		w := d.MeasureString(line).Ceil()
		d.Dot = fixed.P((width-w)/2, y+face.Ascent)
		d.DrawString(line)
		y += lineHeight
	}
	return bm
}

// drawCrossedCircle fills a ring with an X inside it, centered on (cx, cy).
func drawCrossedCircle(dst *image.RGBA, cx, cy, r float32) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over

	stroke := max(r/8, 1)
	addCircle(z, cx, cy, r, false)
	addCircle(z, cx, cy, r-stroke, true)

	arm := (r - stroke) * 0.5
	addSegment(z, cx-arm, cy-arm, cx+arm, cy+arm, stroke)
	addSegment(z, cx-arm, cy+arm, cx+arm, cy-arm, stroke)

	z.Draw(dst, b, image.NewUniform(errorIconColor), image.Point{})
}

// addCircle appends a circle approximated by four cubic Béziers. Reversed
// circles wind the other way and cut holes.
func addCircle(z *vector.Rasterizer, cx, cy, r float32, reversed bool) {
	const k = 0.5522847498 // 4/3 * (sqrt(2) - 1)
	c := r * k
	if !reversed {
		z.MoveTo(cx+r, cy)
		z.CubeTo(cx+r, cy+c, cx+c, cy+r, cx, cy+r)
		z.CubeTo(cx-c, cy+r, cx-r, cy+c, cx-r, cy)
		z.CubeTo(cx-r, cy-c, cx-c, cy-r, cx, cy-r)
		z.CubeTo(cx+c, cy-r, cx+r, cy-c, cx+r, cy)
	} else {
		z.MoveTo(cx+r, cy)
		z.CubeTo(cx+r, cy-c, cx+c, cy-r, cx, cy-r)
		z.CubeTo(cx-c, cy-r, cx-r, cy-c, cx-r, cy)
		z.CubeTo(cx-r, cy+c, cx-c, cy+r, cx, cy+r)
		z.CubeTo(cx+c, cy+r, cx+r, cy+c, cx+r, cy)
	}
	z.ClosePath()
}

// addSegment appends a line from (x0, y0) to (x1, y1) of the given width as
// a quadrilateral.
func addSegment(z *vector.Rasterizer, x0, y0, x1, y1, width float32) {
	dx, dy := x1-x0, y1-y0
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		return
	}
	nx, ny := -dy/length*width/2, dx/length*width/2
	z.MoveTo(x0+nx, y0+ny)
	z.LineTo(x1+nx, y1+ny)
	z.LineTo(x1-nx, y1-ny)
	z.LineTo(x0-nx, y0-ny)
	z.ClosePath()
}

// wrapText splits s into lines no wider than maxWidth pixels. Words longer
// than a line are broken between runes.
func wrapText(s string, face font.Face, maxWidth int) []string {
	var lines []string
	var line string
	fits := func(t string) bool {
		return font.MeasureString(face, t).Ceil() <= maxWidth
	}
	for _, word := range strings.Fields(s) {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if fits(candidate) {
			line = candidate
			continue
		}
		if line != "" {
			lines = append(lines, line)
			line = ""
		}
		for !fits(word) {
			// Always take at least one rune so the loop makes progress.
			_, n := utf8.DecodeRuneInString(word)
			for n < len(word) {
				_, size := utf8.DecodeRuneInString(word[n:])
				if !fits(word[:n+size]) {
					break
				}
				n += size
			}
			lines = append(lines, word[:n])
			word = word[n:]
		}
		line = word
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
