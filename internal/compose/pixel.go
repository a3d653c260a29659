// Package compose maps rectangular window regions onto byte offsets in a
// flat display buffer. Geometry objects (Point, Rectangle, Border, Window)
// are stateless descriptors: they hold offsets, never buffer references,
// so all color state lives in the caller-supplied buffer.
package compose

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds reports a pixel access past the end of the buffer.
	ErrOutOfBounds = errors.New("pixel offset out of buffer bounds")
	// ErrBadTemplate reports window geometry that cannot be built.
	ErrBadTemplate = errors.New("invalid window template")
)

// Pixel addresses a single pixel in the display buffer. Offset is the
// byte index of the blue channel; green and red follow at +1 and +2.
// The BGR order is the packing the framebuffer device expects and is a
// fixed external contract.
type Pixel struct {
	Offset int
}

// SetColor writes c into buf at the pixel's offset.
func (p Pixel) SetColor(buf []byte, c Color) error {
	if p.Offset < 0 || p.Offset+2 >= len(buf) {
		return fmt.Errorf("%w: offset %d, buffer %d bytes", ErrOutOfBounds, p.Offset, len(buf))
	}
	buf[p.Offset] = c.B
	buf[p.Offset+1] = c.G
	buf[p.Offset+2] = c.R
	return nil
}

// GetColor reads the pixel's current color back from buf.
func (p Pixel) GetColor(buf []byte) (Color, error) {
	if p.Offset < 0 || p.Offset+2 >= len(buf) {
		return Color{}, fmt.Errorf("%w: offset %d, buffer %d bytes", ErrOutOfBounds, p.Offset, len(buf))
	}
	return Color{R: buf[p.Offset+2], G: buf[p.Offset+1], B: buf[p.Offset]}, nil
}
