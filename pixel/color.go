package pixel

import "image/color"

// Models for the standard color types.
var (
	MonoModel   color.Model = color.ModelFunc(monoModel)
	Gray2Model  color.Model = color.ModelFunc(gray2Model)
	Gray4Model  color.Model = color.ModelFunc(gray4Model)
	CRGB15Model color.Model = color.ModelFunc(crgb15Model)
	CRGB16Model color.Model = color.ModelFunc(crgb16Model)
	CBGR15Model color.Model = color.ModelFunc(cbgr15Model)
	CBGR16Model color.Model = color.ModelFunc(cbgr16Model)
)

var (
	Off = Mono{false}
	On  = Mono{true}
)

// luma returns the 16-bit luminance of c.
func luma(c color.Color) uint32 {
	r, g, b, _ := c.RGBA()

	// These coefficients (the fractions 0.299, 0.587 and 0.114) are the same
	// as those given by the JFIF specification and used by func RGBToYCbCr in
	// ycbcr.go.
	//
	// Note that 19595 + 38470 + 7471 equals 65536.
	return (19595*r + 38470*g + 7471*b + 1<<15) >> 16
}

// Mono represents a 1-bit monochrome color.
type Mono struct {
	On bool
}

func (c Mono) RGBA() (r, g, b, a uint32) {
	if c.On {
		return 0xffff, 0xffff, 0xffff, 0xffff
	}
	return 0, 0, 0, 0xffff
}

func monoModel(c color.Color) color.Color {
	if _, ok := c.(Mono); ok {
		return c
	}
	return Mono{On: luma(c)>>15 != 0}
}

// Gray2 represents a 2-bit grayscale color, Y is in the range [0, 3].
type Gray2 struct {
	Y uint8
}

func (c Gray2) RGBA() (r, g, b, a uint32) {
	y := uint32(c.Y & 0x3)
	y |= y << 2
	y |= y << 4
	y |= y << 8
	return y, y, y, 0xffff
}

func gray2Model(c color.Color) color.Color {
	if _, ok := c.(Gray2); ok {
		return c
	}
	return Gray2{Y: uint8(luma(c) >> 14)}
}

// Gray4 represents a 4-bit grayscale color, Y is in the range [0, 15].
type Gray4 struct {
	Y uint8
}

func (c Gray4) RGBA() (r, g, b, a uint32) {
	y := uint32(c.Y & 0xf)
	y |= y << 4
	y |= y << 8
	return y, y, y, 0xffff
}

func gray4Model(c color.Color) color.Color {
	if _, ok := c.(Gray4); ok {
		return c
	}
	return Gray4{Y: uint8(luma(c) >> 12)}
}

// CRGB15 represents a 15-bit 5-5-5 RGB color.
type CRGB15 struct {
	// CIgnore, 1, CRed, 5, CGreen, 5, CBlue, 5
	V uint16
}

func (c CRGB15) RGBA() (r, g, b, a uint32) {
	return expand555(c.V>>10, c.V>>5, c.V)
}

func crgb15Model(c color.Color) color.Color {
	if _, ok := c.(CRGB15); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	r = (r & 0xF800) >> 1
	g = (g & 0xF800) >> 6
	b = (b & 0xF800) >> 11
	return CRGB15{uint16(r | g | b)}
}

// CBGR15 represents a 15-bit 5-5-5 BGR color.
type CBGR15 struct {
	// CIgnore, 1, CBlue, 5, CGreen, 5, CRed, 5
	V uint16
}

func (c CBGR15) RGBA() (r, g, b, a uint32) {
	return expand555(c.V, c.V>>5, c.V>>10)
}

func cbgr15Model(c color.Color) color.Color {
	if _, ok := c.(CBGR15); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	r = (r & 0xF800) >> 11
	g = (g & 0xF800) >> 6
	b = (b & 0xF800) >> 1
	return CBGR15{uint16(r | g | b)}
}

// CRGB16 represents a 16-bit 5-6-5 RGB color.
type CRGB16 struct {
	// CRed, 5, CGreen, 6, CBlue, 5
	V uint16
}

func (c CRGB16) RGBA() (r, g, b, a uint32) {
	return expand565(c.V>>11, c.V>>5, c.V)
}

func crgb16Model(c color.Color) color.Color {
	switch c := c.(type) {
	case CRGB16:
		return c
	case Mono:
		if c.On {
			return CRGB16{0xffff}
		}
		return CRGB16{}
	default:
		r, g, b, _ := c.RGBA()
		r = (r & 0xF800)
		g = (g & 0xFC00) >> 5
		b = (b & 0xF800) >> 11
		return CRGB16{uint16(r | g | b)}
	}
}

// CBGR16 represents a 16-bit 5-6-5 BGR color.
type CBGR16 struct {
	// CBlue, 5, CGreen, 6, CRed, 5
	V uint16
}

func (c CBGR16) RGBA() (r, g, b, a uint32) {
	return expand565(c.V, c.V>>5, c.V>>11)
}

func cbgr16Model(c color.Color) color.Color {
	switch c := c.(type) {
	case CBGR16:
		return c
	case Mono:
		if c.On {
			return CBGR16{0xffff}
		}
		return CBGR16{}
	default:
		r, g, b, _ := c.RGBA()
		r = (r & 0xF800) >> 11
		g = (g & 0xFC00) >> 5
		b = (b & 0xF800)
		return CBGR16{uint16(r | g | b)}
	}
}

// expand555 scales three 5-bit components (in the low bits) to 16 bits.
func expand555(r5, g5, b5 uint16) (r, g, b, a uint32) {
	return expand5(r5), expand5(g5), expand5(b5), 0xffff
}

// expand565 scales 5-, 6- and 5-bit components (in the low bits) to 16 bits.
func expand565(r5, g6, b5 uint16) (r, g, b, a uint32) {
	return expand5(r5), expand6(g6), expand5(b5), 0xffff
}

func expand5(v uint16) uint32 {
	// Build a 5-bit value at the top of the low byte.
	v = (v & 0x1f) << 3
	// Duplicate the high bits in the low bits.
	v |= v >> 5
	// Duplicate the whole value in the high byte.
	v |= v << 8
	return uint32(v)
}

func expand6(v uint16) uint32 {
	v = (v & 0x3f) << 2
	v |= v >> 6
	v |= v << 8
	return uint32(v)
}
