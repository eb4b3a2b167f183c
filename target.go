package framebuf

import (
	"image"
	"iter"

	"github.com/BeatGlow/framebuf/pixel"
)

// Pixel is a single pixel write request.
type Pixel[C pixel.Color] struct {
	Point image.Point
	Color C
}

// P is shorthand for Pixel[C]{Point: image.Pt(x, y), Color: c}.
func P[C pixel.Color](x, y int, c C) Pixel[C] {
	return Pixel[C]{Point: image.Pt(x, y), Color: c}
}

// DrawTarget accepts pixel writes.
type DrawTarget[C pixel.Color] interface {
	// Size of the target in pixels.
	Size() image.Point

	// Draw pixels in order. Pixels outside of the target are discarded.
	Draw(...Pixel[C])

	// DrawSeq draws all pixels produced by seq, in order.
	DrawSeq(seq iter.Seq[Pixel[C]])

	// Clear sets all pixels to a single color.
	Clear(C)
}

// Interface checks.
var (
	_ DrawTarget[pixel.Mono]   = (*Buffer[pixel.Mono])(nil)
	_ DrawTarget[pixel.CRGB16] = (*Buffer[pixel.CRGB16])(nil)
)
