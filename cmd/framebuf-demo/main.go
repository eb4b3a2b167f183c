package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"golang.org/x/image/font"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/host/v3"

	"github.com/BeatGlow/framebuf"
	"github.com/BeatGlow/framebuf/conn"
	"github.com/BeatGlow/framebuf/draw"
	"github.com/BeatGlow/framebuf/pixel"
)

func main() {
	if err := run(); err != nil {
		fatal(err)
	}
}

func run() (err error) {
	widthFlag := flag.Int("width", 128, "Display width")
	heightFlag := flag.Int("height", 64, "Display height")
	i2cBusFlag := flag.String("i2c-bus", "", "I²C bus name (default: use first available)")
	rotateFlag := flag.Bool("rotate", false, "Rotate the display 180°")
	textFlag := flag.String("text", "framebuf", "Text to draw")
	fontSizeFlag := flag.Float64("font-size", 0, "TrueType font size in points (default: use the bitmap font)")
	framesFlag := flag.Int("frames", 0, "Number of frames to draw (default: until interrupted)")
	asciiFlag := flag.Bool("ascii", false, "Print a single frame to stdout instead of using a display")
	flag.Parse()

	fb, err := framebuf.New[pixel.Mono](*widthFlag, *heightFlag)
	if err != nil {
		return err
	}

	face := draw.DefaultFace
	if *fontSizeFlag > 0 {
		if face, err = draw.GoRegular(*fontSizeFlag); err != nil {
			return err
		}
		defer face.Close()
	}

	if *asciiFlag {
		renderFrame(fb, 0, *textFlag, face)
		return printFrame(os.Stdout, fb)
	}

	if _, err = host.Init(); err != nil {
		return err
	}

	bus, err := i2creg.Open(*i2cBusFlag)
	if err != nil {
		return err
	}
	defer bus.Close()

	dev, err := ssd1306.NewI2C(bus, &ssd1306.Opts{
		W:       *widthFlag,
		H:       *heightFlag,
		Rotated: *rotateFlag,
	})
	if err != nil {
		return err
	}
	fmt.Printf("using display: %s\n", dev)

	// The display is halted before the bus is closed, also when animating fails.
	defer func() {
		err = errors.Join(err, dev.Halt())
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	return animate(ctx, dev, fb, *framesFlag, *textFlag, face)
}

func animate(ctx context.Context, dev *ssd1306.Dev, fb *framebuf.Buffer[pixel.Mono], frames int, text string, face font.Face) error {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	fmt.Println("hit control-c to stop...")
	for offset := 0; frames == 0 || offset < frames; offset++ {
		renderFrame(fb, offset, text, face)
		if err := conn.Show(dev, fb); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
	return nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
