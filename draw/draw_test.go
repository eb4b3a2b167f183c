package draw

import (
	"image"
	"image/color"
	"testing"

	"github.com/BeatGlow/framebuf"
	"github.com/BeatGlow/framebuf/pixel"
)

func TestDraw(t *testing.T) {
	b := framebuf.Must(framebuf.New[pixel.CRGB16](8, 8))
	b.Fill(color.White)

	src := image.NewUniform(color.RGBA{B: 0xff, A: 0xff})
	Draw(b, image.Rect(6, 6, 12, 12), src, image.Point{}, Src)
	for p, c := range b.Pixels() {
		want := uint16(0xffff)
		if p.X >= 6 && p.Y >= 6 {
			want = 0x001f
		}
		if c.V != want {
			t.Errorf("pixel %s is %#04x, expected %#04x", p, c.V, want)
		}
	}
}

func TestBlit(t *testing.T) {
	b := framebuf.Must(framebuf.New[pixel.Mono](8, 8))

	// The source does not start at the origin.
	src := image.NewGray(image.Rect(5, 5, 8, 7))
	for y := 5; y < 7; y++ {
		for x := 5; x < 8; x++ {
			src.SetGray(x, y, color.Gray{Y: 0xff})
		}
	}
	src.SetGray(7, 6, color.Gray{})

	b.Draw(framebuf.P(3, 2, pixel.On), framebuf.P(0, 0, pixel.On))
	Blit(b, image.Pt(1, 1), src, Src)
	for p, c := range b.Pixels() {
		want := p.In(image.Rect(1, 1, 4, 3)) && p != image.Pt(3, 2) || p == image.Pt(0, 0)
		if c.On != want {
			t.Errorf("pixel %s is %v, expected %t", p, c, want)
		}
	}

	// Clipped at the buffer edge.
	b.ClearDefault()
	Blit(b, image.Pt(6, -1), src, Src)
	for p, c := range b.Pixels() {
		want := p == image.Pt(6, 0) || p == image.Pt(7, 0)
		if c.On != want {
			t.Errorf("pixel %s is %v, expected %t", p, c, want)
		}
	}
}

func TestBlitMask(t *testing.T) {
	b := framebuf.Must(framebuf.New[pixel.Gray4](4, 4))
	b.Clear(pixel.Gray4{Y: 3})

	mask := image.NewAlpha(image.Rect(0, 0, 2, 2))
	mask.SetAlpha(1, 1, color.Alpha{A: 0xff})

	BlitMask(b, image.Pt(2, 2), mask, color.White)
	for p, c := range b.Pixels() {
		want := pixel.Gray4{Y: 3}
		if p == image.Pt(3, 3) {
			want = pixel.Gray4{Y: 15}
		}
		if c != want {
			t.Errorf("pixel %s is %v, expected %v", p, c, want)
		}
	}
}
