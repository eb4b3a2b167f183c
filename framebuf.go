// Package framebuf provides a fixed size, in-memory pixel frame buffer.
//
// A [Buffer] holds width × height pixel colors in row-major order. It accepts pixel
// writes through [DrawTarget] and [image/draw.Image], can be iterated pixel by pixel,
// and 16-bit buffers can be viewed as words for bulk transfer to a display.
//
// A Buffer is not safe for concurrent use.
package framebuf

import (
	"errors"
	"os"
)

var debug bool

func init() {
	debug = os.Getenv("FRAMEBUF_DEBUG") != ""
}

// Errors
var (
	ErrSize     = errors.New("framebuf: invalid size")
	ErrWordSize = errors.New("framebuf: pixel color is not 16 bits wide")
)
