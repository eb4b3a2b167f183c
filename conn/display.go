package conn

import (
	"image"

	"periph.io/x/conn/v3/display"
)

// Show draws src onto the full display area of d.
func Show(d display.Drawer, src image.Image) error {
	if d == nil {
		return ErrNilDrawer
	}
	return d.Draw(d.Bounds(), src, src.Bounds().Min)
}
