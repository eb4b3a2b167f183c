package framebuf

import (
	"fmt"
	"image"
	"image/color"
	"iter"
	"log"
	"math"
	"slices"

	"github.com/BeatGlow/framebuf/pixel"
)

// Buffer is a frame buffer of width × height pixels of color C, stored in row-major order.
//
// The dimensions are fixed at construction.
type Buffer[C pixel.Color] struct {
	width  int
	height int
	pix    []C
	model  color.Model
}

// New allocates a frame buffer where every pixel has the zero value of C.
func New[C pixel.Color](width, height int) (*Buffer[C], error) {
	if !validSize(width, height) {
		return nil, fmt.Errorf("%w %dx%d", ErrSize, width, height)
	}
	return From(width, height, make([]C, width*height))
}

// From creates a frame buffer using pix as its storage. The length of pix must be width × height.
//
// The buffer takes ownership of pix, pix is not copied.
func From[C pixel.Color](width, height int, pix []C) (*Buffer[C], error) {
	if !validSize(width, height) {
		return nil, fmt.Errorf("%w %dx%d", ErrSize, width, height)
	}
	if len(pix) != width*height {
		return nil, fmt.Errorf("%w %dx%d: expected %d pixels, got %d", ErrSize, width, height, width*height, len(pix))
	}
	if debug {
		log.Printf("framebuf: %dx%d buffer with %d-bit %T pixels", width, height, pixel.Bits[C](), *new(C))
	}
	return &Buffer[C]{
		width:  width,
		height: height,
		pix:    pix,
		model:  pixel.ModelOf[C](),
	}, nil
}

// validSize reports whether width × height is positive and fits in an int.
func validSize(width, height int) bool {
	return width > 0 && height > 0 && width <= math.MaxInt/height
}

// Must returns b, or panics if err is not nil.
func Must[C pixel.Color](b *Buffer[C], err error) *Buffer[C] {
	if err != nil {
		panic(err)
	}
	return b
}

// Size returns the buffer dimensions.
func (b *Buffer[C]) Size() image.Point {
	return image.Pt(b.width, b.height)
}

// Bounds is the buffer bounding box, with the origin at (0, 0).
func (b *Buffer[C]) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// Len is the number of pixels in the buffer.
func (b *Buffer[C]) Len() int {
	return len(b.pix)
}

// Pix returns the backing storage. Changes to the returned slice are visible in the buffer.
func (b *Buffer[C]) Pix() []C {
	return b.pix
}

// Clone returns a copy of the buffer with its own storage.
func (b *Buffer[C]) Clone() *Buffer[C] {
	c := *b
	c.pix = slices.Clone(b.pix)
	return &c
}

func (b *Buffer[C]) in(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// PixelAt returns the color at (x, y). It returns false if (x, y) is out of bounds.
func (b *Buffer[C]) PixelAt(x, y int) (c C, ok bool) {
	if !b.in(x, y) {
		return
	}
	return b.pix[y*b.width+x], true
}

// SetPixel sets the pixel at (x, y). Pixels out of bounds are ignored.
func (b *Buffer[C]) SetPixel(x, y int, c C) {
	if b.in(x, y) {
		b.pix[y*b.width+x] = c
	}
}

// Draw pixels in order, later pixels overwrite earlier ones. Pixels out of bounds are
// ignored, so shapes can be partially drawn outside of the buffer.
func (b *Buffer[C]) Draw(pixels ...Pixel[C]) {
	for _, p := range pixels {
		b.SetPixel(p.Point.X, p.Point.Y, p.Color)
	}
}

// DrawSeq draws all pixels from seq, see [Buffer.Draw].
func (b *Buffer[C]) DrawSeq(seq iter.Seq[Pixel[C]]) {
	for p := range seq {
		b.SetPixel(p.Point.X, p.Point.Y, p.Color)
	}
}

// Clear sets all pixels to c.
func (b *Buffer[C]) Clear(c C) {
	for i := range b.pix {
		b.pix[i] = c
	}
}

// ClearDefault sets all pixels to the zero value of C, which is black for the colors in
// package pixel.
func (b *Buffer[C]) ClearDefault() {
	clear(b.pix)
}

// All returns the pixel colors in row-major order.
func (b *Buffer[C]) All() iter.Seq[C] {
	return func(yield func(C) bool) {
		for _, c := range b.pix {
			if !yield(c) {
				return
			}
		}
	}
}

// Pixels returns the pixel coordinates and colors in row-major order.
func (b *Buffer[C]) Pixels() iter.Seq2[image.Point, C] {
	return func(yield func(image.Point, C) bool) {
		for y := 0; y < b.height; y++ {
			row := b.pix[y*b.width : (y+1)*b.width]
			for x, c := range row {
				if !yield(image.Pt(x, y), c) {
					return
				}
			}
		}
	}
}

// ColorModel returns the model for C. For colors outside of package pixel and
// image/color, the model only passes through values of type C.
func (b *Buffer[C]) ColorModel() color.Model {
	if b.model != nil {
		return b.model
	}
	return color.ModelFunc(func(c color.Color) color.Color {
		if v, ok := b.convert(c); ok {
			return v
		}
		return c
	})
}

func (b *Buffer[C]) convert(c color.Color) (C, bool) {
	if v, ok := c.(C); ok {
		return v, true
	}
	if b.model == nil {
		var zero C
		return zero, false
	}
	v, ok := b.model.Convert(c).(C)
	return v, ok
}

// At returns the color at (x, y), or [color.Transparent] if out of bounds.
func (b *Buffer[C]) At(x, y int) color.Color {
	if !b.in(x, y) {
		return color.Transparent
	}
	return b.pix[y*b.width+x]
}

// Set the pixel at (x, y), after converting c to C. Colors that can't be converted are
// ignored.
func (b *Buffer[C]) Set(x, y int, c color.Color) {
	if !b.in(x, y) {
		return
	}
	if v, ok := b.convert(c); ok {
		b.pix[y*b.width+x] = v
	}
}

// Fill the buffer with a single color, after converting c to C.
func (b *Buffer[C]) Fill(c color.Color) {
	if v, ok := b.convert(c); ok {
		b.Clear(v)
	}
}
