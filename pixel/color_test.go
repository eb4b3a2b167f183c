package pixel

import (
	"fmt"
	"image/color"
	"math/rand"
	"testing"
)

func TestMono(t *testing.T) {
	for y := 0; y < 2; y++ {
		t.Run("", func(it *testing.T) {
			c := Off
			if y > 0 {
				c = On
			}
			r, g, b, _ := c.RGBA()
			v := y * 0xF
			want := uint32(v | v<<4 | v<<8 | v<<12)
			if r != want {
				it.Errorf("expected red to be %#04x, got %#04x", want, r)
			}
			if g != want {
				it.Errorf("expected green to be %#04x, got %#04x", want, g)
			}
			if b != want {
				it.Errorf("expected blue to be %#04x, got %#04x", want, b)
			}
		})
	}
}

func TestGray2(t *testing.T) {
	for y := 0; y < 4; y++ {
		t.Run(fmt.Sprint(y), func(it *testing.T) {
			c := Gray2{Y: uint8(y)}
			r, g, b, _ := c.RGBA()
			v := y * 5
			want := uint32(v | v<<4 | v<<8 | v<<12)
			if r != want {
				it.Errorf("expected red to be %#04x, got %#04x", want, r)
			}
			if g != want {
				it.Errorf("expected green to be %#04x, got %#04x", want, g)
			}
			if b != want {
				it.Errorf("expected blue to be %#04x, got %#04x", want, b)
			}
		})
	}
}

func TestGray4(t *testing.T) {
	for y := 0; y < 16; y++ {
		t.Run(fmt.Sprint(y), func(it *testing.T) {
			c := Gray4{Y: uint8(y)}
			r, g, b, _ := c.RGBA()
			want := uint32(y | y<<4 | y<<8 | y<<12)
			if r != want {
				it.Errorf("expected red to be %#04x, got %#04x", want, r)
			}
			if g != want {
				it.Errorf("expected green to be %#04x, got %#04x", want, g)
			}
			if b != want {
				it.Errorf("expected blue to be %#04x, got %#04x", want, b)
			}
		})
	}
}

func TestModelRoundTrip(t *testing.T) {
	tests := []struct {
		Name  string
		Model color.Model
	}{
		{"mono", MonoModel},
		{"gray2", Gray2Model},
		{"gray4", Gray4Model},
		{"crgb15", CRGB15Model},
		{"crgb16", CRGB16Model},
		{"cbgr15", CBGR15Model},
		{"cbgr16", CBGR16Model},
	}
	for _, test := range tests {
		t.Run(test.Name, func(it *testing.T) {
			for i := 0; i < 256; i++ {
				c := test.Model.Convert(testRandomColor())
				if v := test.Model.Convert(color.RGBA64Model.Convert(c)); v != c {
					it.Fatalf("expected %#+v to survive a round trip, got %#+v", c, v)
				}
			}
		})
	}
}

func TestCRGB16Layout(t *testing.T) {
	tests := []struct {
		Color color.Color
		Want  uint16
	}{
		{color.RGBA{R: 0xff, A: 0xff}, 0xf800},
		{color.RGBA{G: 0xff, A: 0xff}, 0x07e0},
		{color.RGBA{B: 0xff, A: 0xff}, 0x001f},
		{color.White, 0xffff},
		{color.Black, 0x0000},
		{On, 0xffff},
	}
	for _, test := range tests {
		if v := CRGB16Model.Convert(test.Color).(CRGB16).V; v != test.Want {
			t.Errorf("expected %v to convert to %#04x, got %#04x", test.Color, test.Want, v)
		}
		// BGR stores red in the low bits.
		want := test.Want>>11 | test.Want&0x07e0 | test.Want<<11
		if v := CBGR16Model.Convert(test.Color).(CBGR16).V; v != want {
			t.Errorf("expected %v to convert to BGR %#04x, got %#04x", test.Color, want, v)
		}
	}
}

func TestCRGB15Layout(t *testing.T) {
	if v := CRGB15Model.Convert(color.RGBA{R: 0xff, A: 0xff}).(CRGB15).V; v != 0x7c00 {
		t.Errorf("expected red to be %#04x, got %#04x", 0x7c00, v)
	}
	if v := CBGR15Model.Convert(color.RGBA{R: 0xff, A: 0xff}).(CBGR15).V; v != 0x001f {
		t.Errorf("expected BGR red to be %#04x, got %#04x", 0x001f, v)
	}
	if v := CRGB15Model.Convert(color.White).(CRGB15).V; v != 0x7fff {
		t.Errorf("expected white to be %#04x, got %#04x", 0x7fff, v)
	}
}

func TestMonoModel(t *testing.T) {
	if v := MonoModel.Convert(color.White); v != On {
		t.Errorf("expected white to be on, got %v", v)
	}
	if v := MonoModel.Convert(color.Black); v != Off {
		t.Errorf("expected black to be off, got %v", v)
	}
	if v := MonoModel.Convert(color.Gray{Y: 0x40}); v != Off {
		t.Errorf("expected dark gray to be off, got %v", v)
	}
	if v := MonoModel.Convert(color.Gray{Y: 0xc0}); v != On {
		t.Errorf("expected light gray to be on, got %v", v)
	}
}

func TestModelOf(t *testing.T) {
	if m := ModelOf[Mono](); m != MonoModel {
		t.Errorf("expected mono model, got %v", m)
	}
	if m := ModelOf[CRGB16](); m != CRGB16Model {
		t.Errorf("expected CRGB16 model, got %v", m)
	}
	if m := ModelOf[color.RGBA](); m != color.RGBAModel {
		t.Errorf("expected RGBA model, got %v", m)
	}
	type custom struct{ color.Gray }
	if m := ModelOf[custom](); m != nil {
		t.Errorf("expected no model for a custom type, got %v", m)
	}
}

func TestBits(t *testing.T) {
	tests := []struct {
		Name string
		Bits int
		Want int
	}{
		{"mono", Bits[Mono](), 1},
		{"gray2", Bits[Gray2](), 2},
		{"gray4", Bits[Gray4](), 4},
		{"crgb15", Bits[CRGB15](), 15},
		{"cbgr16", Bits[CBGR16](), 16},
		{"rgba", Bits[color.RGBA](), 32},
		{"gray16", Bits[color.Gray16](), 16},
	}
	for _, test := range tests {
		if test.Bits != test.Want {
			t.Errorf("%s: expected %d bits, got %d", test.Name, test.Want, test.Bits)
		}
	}
}

func testRandomColor() color.Color {
	return color.RGBA{
		R: uint8(rand.Intn(256)),
		G: uint8(rand.Intn(256)),
		B: uint8(rand.Intn(256)),
		A: 0xFF,
	}
}
