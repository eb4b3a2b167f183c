package framebuf

import (
	"unsafe"

	"github.com/BeatGlow/framebuf/pixel"
)

// AsWords returns the storage of b as 16-bit words, one word per pixel in row-major order.
//
// The returned slice aliases the buffer: writes to either are visible in both. No copy
// is made. The words are in native byte order.
func AsWords[C pixel.Color16](b *Buffer[C]) []uint16 {
	return b.words()
}

// Words is like [AsWords], but checks at run time that C is exactly 16 bits wide and
// returns [ErrWordSize] if it isn't.
func (b *Buffer[C]) Words() ([]uint16, error) {
	var c C
	if unsafe.Sizeof(c) != 2 || unsafe.Alignof(c) != 2 {
		return nil, ErrWordSize
	}
	return b.words(), nil
}

func (b *Buffer[C]) words() []uint16 {
	if len(b.pix) == 0 {
		return nil
	}
	return unsafe.Slice((*uint16)(unsafe.Pointer(&b.pix[0])), len(b.pix))
}
