package main

import (
	"bufio"
	"image"
	"image/color"
	"io"

	"golang.org/x/image/font"

	"github.com/BeatGlow/framebuf"
	"github.com/BeatGlow/framebuf/draw"
	"github.com/BeatGlow/framebuf/pixel"
)

const logoSize = 12

// logo is a triangle pointing right, in the top right corner of each frame.
var logo = newLogo(logoSize)

func newLogo(n int) *image.Alpha {
	m := image.NewAlpha(image.Rect(0, 0, n, n))
	for y := 0; y < n; y++ {
		for x := 0; x <= min(y, n-1-y); x++ {
			m.SetAlpha(x, y, color.Alpha{A: 0xff})
		}
	}
	return m
}

func logoAt(size image.Point) image.Point {
	return image.Pt(size.X-4-logoSize, 4)
}

// renderFrame draws a border, a circle bouncing along the middle row, a logo and text.
func renderFrame(fb *framebuf.Buffer[pixel.Mono], offset int, text string, face font.Face) {
	var (
		size   = fb.Size()
		radius = size.Y / 4
		span   = size.X + 2*radius
		x      = offset%span - radius
	)
	fb.ClearDefault()
	draw.Stroke(fb, draw.RoundedRectangle(fb.Bounds(), 4), pixel.On)
	draw.Stroke(fb, draw.Circle(image.Pt(x, size.Y/2), radius), pixel.On)
	draw.BlitMask(fb, logoAt(size), logo, color.White)

	metrics := face.Metrics()
	draw.TextFace(fb, face, image.Pt(4, 2+metrics.Ascent.Ceil()), text, color.White)
}

// printFrame writes the frame buffer as text, one line per row.
func printFrame(w io.Writer, fb *framebuf.Buffer[pixel.Mono]) error {
	var (
		out   = bufio.NewWriter(w)
		width = fb.Size().X
	)
	for p, c := range fb.Pixels() {
		if c.On {
			out.WriteByte('#')
		} else {
			out.WriteByte('.')
		}
		if p.X == width-1 {
			out.WriteByte('\n')
		}
	}
	return out.Flush()
}
