package pixel

import (
	"image/color"
	"unsafe"
)

// Color is a pixel color that can be stored in a frame buffer.
type Color interface {
	color.Color
	comparable
}

// Color16 is a pixel color stored in exactly one 16-bit word.
//
// The type set is limited to types with an underlying struct{ V uint16 }, such as
// [CRGB15], [CRGB16], [CBGR15] and [CBGR16].
type Color16 interface {
	Color
	~struct{ V uint16 }
}

// ModelOf returns the color model for C, or nil if C is not a known color type.
func ModelOf[C Color]() color.Model {
	var c C
	switch any(c).(type) {
	case Mono:
		return MonoModel
	case Gray2:
		return Gray2Model
	case Gray4:
		return Gray4Model
	case CRGB15:
		return CRGB15Model
	case CRGB16:
		return CRGB16Model
	case CBGR15:
		return CBGR15Model
	case CBGR16:
		return CBGR16Model
	case color.RGBA:
		return color.RGBAModel
	case color.RGBA64:
		return color.RGBA64Model
	case color.NRGBA:
		return color.NRGBAModel
	case color.NRGBA64:
		return color.NRGBA64Model
	case color.Gray:
		return color.GrayModel
	case color.Gray16:
		return color.Gray16Model
	case color.Alpha:
		return color.AlphaModel
	case color.Alpha16:
		return color.Alpha16Model
	case color.CMYK:
		return color.CMYKModel
	case color.YCbCr:
		return color.YCbCrModel
	default:
		return nil
	}
}

// Bits returns the number of significant bits per pixel of C.
//
// For types outside of this package, this is the in-memory size in bits.
func Bits[C Color]() int {
	var c C
	switch any(c).(type) {
	case Mono:
		return 1
	case Gray2:
		return 2
	case Gray4:
		return 4
	case CRGB15, CBGR15:
		return 15
	case CRGB16, CBGR16:
		return 16
	default:
		return int(unsafe.Sizeof(c)) * 8
	}
}
