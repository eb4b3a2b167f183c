// Package draw provides shapes and text for frame buffers.
//
// Shapes are sequences of points. They may extend beyond the target, points outside
// of the target are discarded by the target when drawn.
package draw

import (
	"image"
	"image/color"
	"image/draw"
	"iter"

	"github.com/BeatGlow/framebuf"
	"github.com/BeatGlow/framebuf/pixel"
)

// Image is an alias for [image/draw.Image].
type Image = draw.Image

// Op is an alias for [image/draw.Op].
type Op = draw.Op

const (
	// Over specifies ``(src in mask) over dst''.
	Over Op = iota

	// Src specifies ``src in mask''.
	Src
)

// Draw calls [DrawMask] with a nil mask.
func Draw(dst Image, r image.Rectangle, src image.Image, sp image.Point, op Op) {
	DrawMask(dst, r, src, sp, nil, image.Point{}, op)
}

// DrawMask aligns r.Min in dst with sp in src and mp in mask and then replaces the rectangle r
// in dst with the result of a Porter-Duff composition. A nil mask is treated as opaque.
func DrawMask(dst Image, r image.Rectangle, src image.Image, sp image.Point, mask image.Image, mp image.Point, op Op) {
	draw.DrawMask(dst, r, src, sp, mask, mp, op)
}

// Blit copies all of src to dst, with the top left corner of src at pt.
func Blit(dst Image, pt image.Point, src image.Image, op Op) {
	sb := src.Bounds()
	Draw(dst, sb.Sub(sb.Min).Add(pt), src, sb.Min, op)
}

// BlitMask draws c through mask to dst, with the top left corner of mask at pt. Mask
// pixels with a zero alpha leave dst untouched.
func BlitMask(dst Image, pt image.Point, mask image.Image, c color.Color) {
	mb := mask.Bounds()
	DrawMask(dst, mb.Sub(mb.Min).Add(pt), image.NewUniform(c), image.Point{}, mask, mb.Min, Over)
}

// Plot colors all points with c.
func Plot[C pixel.Color](points iter.Seq[image.Point], c C) iter.Seq[framebuf.Pixel[C]] {
	return func(yield func(framebuf.Pixel[C]) bool) {
		for p := range points {
			if !yield(framebuf.Pixel[C]{Point: p, Color: c}) {
				return
			}
		}
	}
}

// Stroke draws all points with color c.
func Stroke[C pixel.Color](dst framebuf.DrawTarget[C], points iter.Seq[image.Point], c C) {
	dst.DrawSeq(Plot(points, c))
}

// Paint sets all points in dst to c.
func Paint(dst Image, points iter.Seq[image.Point], c color.Color) {
	for p := range points {
		dst.Set(p.X, p.Y, c)
	}
}
