package compose

import "fmt"

// Rectangle is a grid of Pixels anchored at Location. Pixels[row][col]
// addresses screen position (Location.X+col, Location.Y+row). Built once;
// immutable afterwards except for colors written through its Pixels.
type Rectangle struct {
	Location Point
	Height   int
	Width    int
	Pixels   [][]Pixel
}

// NewRectangle materializes the pixel grid for the given area. Every
// offset comes from the single addressing formula
//
//	offset = (row + loc.Y) * RowStride + (col + loc.X) * BytesPerPixel
//
// The area must lie inside the display: callers validate templates
// against geometry before construction (see Template.Validate).
func NewRectangle(loc Point, height, width int, geom Geometry) (Rectangle, error) {
	if loc.X < 0 || loc.Y < 0 || height < 0 || width < 0 {
		return Rectangle{}, fmt.Errorf("%w: rectangle %dx%d at (%d,%d)", ErrBadTemplate, width, height, loc.X, loc.Y)
	}
	if loc.Y+height > geom.Height || loc.X+width > geom.Columns() {
		return Rectangle{}, fmt.Errorf("%w: rectangle %dx%d at (%d,%d) exceeds display %dx%d",
			ErrBadTemplate, width, height, loc.X, loc.Y, geom.Columns(), geom.Height)
	}
	rows := make([][]Pixel, height)
	for row := 0; row < height; row++ {
		line := make([]Pixel, width)
		for col := 0; col < width; col++ {
			line[col] = Pixel{Offset: (row+loc.Y)*geom.RowStride + (col+loc.X)*geom.BytesPerPixel}
		}
		rows[row] = line
	}
	return Rectangle{Location: loc, Height: height, Width: width, Pixels: rows}, nil
}

// Fill writes c to every pixel of the rectangle, row-major. Offsets in a
// well-formed rectangle are pairwise disjoint, so the write order does
// not affect the result.
func (r Rectangle) Fill(buf []byte, c Color) error {
	for _, row := range r.Pixels {
		for _, p := range row {
			if err := p.SetColor(buf, c); err != nil {
				return err
			}
		}
	}
	return nil
}
