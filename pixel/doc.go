// Package pixel implements fixed bit depth pixel colors suitable for OLED and LCD frame buffers.
//
// The colors are compatible with Go's native [color.Color] and [color.Model] interfaces, and
// every type in this package has a fixed in-memory size, so they can be stored in a
// frame buffer and handed to a display transport without conversion.
package pixel
