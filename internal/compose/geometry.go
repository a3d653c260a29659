package compose

import "fmt"

// Geometry is the display geometry reported by the device: visible rows,
// bytes per row (including any hardware padding), and bytes per pixel.
type Geometry struct {
	Height        int
	RowStride     int
	BytesPerPixel int
}

// Columns returns the number of addressable pixel columns per row. When
// the stride carries padding this overestimates the visible width, which
// is acceptable: writes into padding stay inside the buffer.
func (g Geometry) Columns() int {
	if g.BytesPerPixel == 0 {
		return 0
	}
	return g.RowStride / g.BytesPerPixel
}

// BufferSize returns the backing buffer length for this geometry.
func (g Geometry) BufferSize() int {
	return g.RowStride * g.Height
}

// Validate checks that the geometry can host 3-byte BGR pixels.
func (g Geometry) Validate() error {
	if g.Height <= 0 || g.RowStride <= 0 {
		return fmt.Errorf("%w: display geometry %dx%d stride", ErrBadTemplate, g.Height, g.RowStride)
	}
	if g.BytesPerPixel < 3 {
		return fmt.Errorf("%w: %d bytes per pixel, need at least 3 for BGR", ErrBadTemplate, g.BytesPerPixel)
	}
	if g.RowStride < g.BytesPerPixel {
		return fmt.Errorf("%w: row stride %d smaller than pixel size %d", ErrBadTemplate, g.RowStride, g.BytesPerPixel)
	}
	return nil
}
