package draw

import (
	"image"
	"image/color"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// DefaultFace is the 7x13 pixel bitmap font used by [Text].
var DefaultFace font.Face = basicfont.Face7x13

// Text draws s in the [DefaultFace], with the baseline of the first glyph starting at dot.
func Text(dst Image, dot image.Point, s string, c color.Color) {
	TextFace(dst, DefaultFace, dot, s, c)
}

// TextFace draws s using face, with the baseline of the first glyph starting at dot. Glyphs
// are clipped to the bounds of dst.
func TextFace(dst Image, face font.Face, dot image.Point, s string, c color.Color) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(dot.X, dot.Y),
	}
	d.DrawString(s)
}

// TextBounds returns the bounding box of s drawn with face at dot.
func TextBounds(face font.Face, dot image.Point, s string) image.Rectangle {
	b, _ := font.BoundString(face, s)
	return image.Rect(
		b.Min.X.Floor(), b.Min.Y.Floor(),
		b.Max.X.Ceil(), b.Max.Y.Ceil(),
	).Add(dot)
}

// GoRegular returns the Go Regular TrueType font at size points (72 DPI, so points are pixels).
func GoRegular(size float64) (font.Face, error) {
	return ParseTrueType(goregular.TTF, size)
}

// ParseTrueType parses a TrueType font and returns a hinted face at size points.
func ParseTrueType(data []byte, size float64) (font.Face, error) {
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}
